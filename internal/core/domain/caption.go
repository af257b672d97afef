package domain

// CaptionView is a record field prepared for display outside a panel.
type CaptionView struct {
	RecordID string
	Field    string

	// Raw is the unprocessed field value.
	Raw string

	// Present is false when the field is missing or null.
	Present bool

	// Output is the normalised form of Raw.
	Output FormattedOutput

	// Markdown is Output with hard line breaks applied.
	Markdown string

	// CharCount is the number of characters in Raw.
	CharCount int
}
