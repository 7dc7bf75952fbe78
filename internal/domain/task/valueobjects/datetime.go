package valueobjects

import (
	"fmt"
	"strings"
	"time"

	"taskdesk/internal/shared/biztime"
)

// Cell layouts accepted by the backing sheet. Parsing tries them in
// order; formatting only ever emits the first or third.
const (
	layoutDateTime        = "2006/01/02 15:04"
	layoutDateTimeSeconds = "2006/01/02 15:04:05"
	layoutDate            = "2006/01/02"
)

// CellMode is the editor's explicit choice of how a datetime field is
// encoded on save. It is captured per save in the edit form and never
// inferred from the value being written: a date-only value and a full
// value whose time was simply left untouched are textually ambiguous,
// and inferring the mode is exactly how earlier revisions accidentally
// wrote dates back into cells that were meant to stay blank.
type CellMode string

const (
	ModeFull     CellMode = "full"
	ModeDateOnly CellMode = "date_only"
	ModeBlank    CellMode = "blank"
)

var validCellModes = map[CellMode]bool{
	ModeFull:     true,
	ModeDateOnly: true,
	ModeBlank:    true,
}

func (m CellMode) String() string {
	return string(m)
}

func (m CellMode) IsValid() bool {
	return validCellModes[m]
}

func NewCellMode(s string) (CellMode, error) {
	m := CellMode(s)
	if !m.IsValid() {
		return "", fmt.Errorf("invalid cell mode: %s", s)
	}
	return m, nil
}

// ParseDateTimeCell reads a datetime cell in any of the accepted
// layouts. Empty, whitespace-only, or unparseable content yields nil,
// never an error: malformed cells degrade to "absent" and the caller
// substitutes its own default.
func ParseDateTimeCell(raw string) *time.Time {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil
	}
	for _, layout := range []string{layoutDateTime, layoutDateTimeSeconds, layoutDate} {
		if t, err := time.ParseInLocation(layout, s, biztime.Location()); err == nil {
			return &t
		}
	}
	return nil
}

// FormatDateTimeCell renders t according to the editor's chosen mode.
// ModeBlank renders the empty string regardless of t.
func FormatDateTimeCell(t time.Time, mode CellMode) string {
	switch mode {
	case ModeFull:
		return t.Format(layoutDateTime)
	case ModeDateOnly:
		return t.Format(layoutDate)
	default:
		return ""
	}
}

// ParseDateCell reads a calendar-date cell, falling back to the supplied
// default (typically "today") when the cell is empty or malformed.
func ParseDateCell(raw string, fallback time.Time) time.Time {
	if t := ParseDateTimeCell(raw); t != nil {
		return *t
	}
	return fallback
}

// FormatDateCell renders a calendar date with no time component.
func FormatDateCell(t time.Time) string {
	return t.Format(layoutDate)
}

// CellModeOf reports the shape a stored cell currently has. It exists
// only to pre-select the edit form's mode widget; the save path must use
// the mode the editor actually chose.
func CellModeOf(raw string) CellMode {
	s := strings.TrimSpace(raw)
	t := ParseDateTimeCell(s)
	switch {
	case t == nil:
		return ModeBlank
	case strings.Contains(s, ":"):
		return ModeFull
	default:
		return ModeDateOnly
	}
}

// DateTimeCell is a datetime field's in-memory form: the parsed value
// plus the encoding the editor chose. Keeping the two together is what
// preserves "date-only vs datetime vs blank" intent across an edit
// session.
type DateTimeCell struct {
	value time.Time
	mode  CellMode
}

// NewDateTimeCell pairs a value with an explicit encoding mode.
func NewDateTimeCell(t time.Time, mode CellMode) DateTimeCell {
	if mode == ModeBlank {
		return DateTimeCell{mode: ModeBlank}
	}
	return DateTimeCell{value: t, mode: mode}
}

// BlankDateTimeCell is the "not set" cell; for a completion field it
// conventionally means "not yet completed".
func BlankDateTimeCell() DateTimeCell {
	return DateTimeCell{mode: ModeBlank}
}

// ParseDateTimeCellString builds a cell from its stored textual form,
// deriving the mode from the stored shape.
func ParseDateTimeCellString(raw string) DateTimeCell {
	t := ParseDateTimeCell(raw)
	if t == nil {
		return BlankDateTimeCell()
	}
	return DateTimeCell{value: *t, mode: CellModeOf(raw)}
}

func (c DateTimeCell) Mode() CellMode {
	return c.mode
}

// Value returns the cell's time and whether the cell holds one at all.
func (c DateTimeCell) Value() (time.Time, bool) {
	if c.mode == ModeBlank || c.mode == "" {
		return time.Time{}, false
	}
	return c.value, true
}

func (c DateTimeCell) IsBlank() bool {
	return c.mode == ModeBlank || c.mode == ""
}

// String renders the cell exactly as it is persisted.
func (c DateTimeCell) String() string {
	if c.IsBlank() {
		return ""
	}
	return FormatDateTimeCell(c.value, c.mode)
}
