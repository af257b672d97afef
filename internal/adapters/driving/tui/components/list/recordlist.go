// Package list provides list display components for the TUI.
package list

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"

	"github.com/custodia-labs/caption-viewer/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/caption-viewer/internal/core/domain"
)

// RecordList displays records in a navigable list with a one-line preview.
type RecordList struct {
	records      []domain.Record
	previewField string
	selected     int
	styles       *styles.Styles
	width        int
	height       int
}

// NewRecordList creates a new record list component.
func NewRecordList(s *styles.Styles) *RecordList {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &RecordList{
		styles: s,
		width:  80,
		height: 10,
	}
}

// Init initialises the record list.
func (r *RecordList) Init() tea.Cmd {
	return nil
}

// Update handles list navigation messages.
func (r *RecordList) Update(msg tea.Msg) (*RecordList, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "up", "k":
			r.MoveUp()
		case "down", "j":
			r.MoveDown()
		case "home", "g":
			r.selected = 0
		case "end", "G":
			if len(r.records) > 0 {
				r.selected = len(r.records) - 1
			}
		}
	}
	return r, nil
}

// View renders the record list.
func (r *RecordList) View() string {
	if len(r.records) == 0 {
		return r.styles.Muted.Render("No records. Import some with: captionview records import <file>")
	}

	lines := make([]string, 0, len(r.records)*2+2)
	lines = append(lines, r.styles.Subtitle.Render(fmt.Sprintf("Records (%d)", len(r.records))), "")

	// Each record takes two lines.
	visibleCount := (r.height - 4) / 2
	if visibleCount < 1 {
		visibleCount = 1
	}

	start := 0
	if r.selected >= visibleCount {
		start = r.selected - visibleCount + 1
	}
	end := min(start+visibleCount, len(r.records))

	for i := start; i < end; i++ {
		lines = append(lines, r.renderRecord(i, &r.records[i]))
	}

	return strings.Join(lines, "\n")
}

func (r *RecordList) renderRecord(index int, rec *domain.Record) string {
	indicator := "  "
	if index == r.selected {
		indicator = "> "
	}

	title := truncate(rec.ID, max(r.width-6, 10))
	var titleLine string
	if index == r.selected {
		titleLine = r.styles.Selected.Render(indicator + title)
	} else {
		titleLine = r.styles.Normal.Render(indicator + title)
	}

	preview := r.preview(rec)
	if preview == "" {
		preview = "(no text)"
	}
	previewLine := r.styles.Muted.Render("    " + truncate(preview, max(r.width-6, 20)))

	return titleLine + "\n" + previewLine
}

// preview returns the first line of the preview field.
func (r *RecordList) preview(rec *domain.Record) string {
	if r.previewField == "" {
		return ""
	}
	text, ok := rec.GetField(r.previewField)
	if !ok {
		return ""
	}
	first, _, _ := strings.Cut(strings.TrimSpace(text), "\n")
	return first
}

// truncate shortens s to fit within width terminal cells.
func truncate(s string, width int) string {
	return runewidth.Truncate(s, width, "...")
}

// SetRecords updates the record list, keeping the selection in range.
func (r *RecordList) SetRecords(records []domain.Record) {
	r.records = records
	if r.selected >= len(records) {
		r.selected = max(len(records)-1, 0)
	}
}

// Records returns the current records.
func (r *RecordList) Records() []domain.Record {
	return r.records
}

// SetPreviewField sets the field shown under each record ID.
func (r *RecordList) SetPreviewField(field string) {
	r.previewField = field
}

// Selected returns the index of the selected record.
func (r *RecordList) Selected() int {
	return r.selected
}

// SetSelected sets the selected index.
func (r *RecordList) SetSelected(index int) {
	if index >= 0 && index < len(r.records) {
		r.selected = index
	}
}

// SelectedRecord returns the currently selected record, or nil if none.
func (r *RecordList) SelectedRecord() *domain.Record {
	if len(r.records) == 0 || r.selected < 0 || r.selected >= len(r.records) {
		return nil
	}
	return &r.records[r.selected]
}

// MoveUp moves selection up.
func (r *RecordList) MoveUp() {
	if r.selected > 0 {
		r.selected--
	}
}

// MoveDown moves selection down.
func (r *RecordList) MoveDown() {
	if r.selected < len(r.records)-1 {
		r.selected++
	}
}

// SetDimensions sets the component dimensions.
func (r *RecordList) SetDimensions(width, height int) {
	r.width = width
	r.height = height
}

// Count returns the number of records.
func (r *RecordList) Count() int {
	return len(r.records)
}

// IsEmpty returns whether the list is empty.
func (r *RecordList) IsEmpty() bool {
	return len(r.records) == 0
}
