package domain

// DefaultTruncationMarker is appended to input cut at the maximum length.
const DefaultTruncationMarker = "\n… [truncated]"

// RenderStyle selects the terminal markdown theme.
type RenderStyle string

// Available render styles.
const (
	RenderStyleAuto  RenderStyle = "auto"
	RenderStyleDark  RenderStyle = "dark"
	RenderStyleLight RenderStyle = "light"
	RenderStyleNoTTY RenderStyle = "notty"
)

// IsValid returns true if the style is recognised.
func (s RenderStyle) IsValid() bool {
	switch s {
	case RenderStyleAuto, RenderStyleDark, RenderStyleLight, RenderStyleNoTTY:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (s RenderStyle) String() string {
	return string(s)
}

// AllRenderStyles returns every supported style.
func AllRenderStyles() []RenderStyle {
	return []RenderStyle{RenderStyleAuto, RenderStyleDark, RenderStyleLight, RenderStyleNoTTY}
}

// DisplaySettings configures how captions are normalised and shown.
type DisplaySettings struct {
	// MaxLength truncates raw values longer than this many characters.
	// Zero disables truncation.
	MaxLength int

	// TruncationMarker is appended to truncated values.
	TruncationMarker string

	// DefaultField is preselected when a panel opens.
	DefaultField string

	// Style is the terminal markdown theme.
	Style RenderStyle
}

// DefaultDisplaySettings returns the settings used when nothing is configured.
func DefaultDisplaySettings() DisplaySettings {
	return DisplaySettings{
		MaxLength:        0,
		TruncationMarker: DefaultTruncationMarker,
		DefaultField:     "",
		Style:            RenderStyleAuto,
	}
}
