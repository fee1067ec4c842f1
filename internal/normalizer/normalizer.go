// Package normalizer turns a raw log line in one of the recognized shapes into
// a canonical tab-separated line.
package normalizer

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"lognorm/internal/normalizer/format"
)

var (
	// ErrUnrecognized is returned when a line matches none of the formats
	ErrUnrecognized = errors.New("line matches no known format")
	// ErrInvalidDate is returned when a matched line carries an impossible date
	ErrInvalidDate = errors.New("invalid date")
)

const (
	dottedDateLayout = "02.01.2006"
	dashedDateLayout = "2006-01-02"
)

// Entry is one normalized line
type Entry struct {
	Date    string // reformatted to the output layout
	Time    string // verbatim from the source line
	Level   string
	Method  string
	Message string
}

// Normalizer classifies lines against the configured formats
type Normalizer struct {
	def     *Definition
	formats []format.Format
}

// New creates a normalizer from the embedded definition
func New() (*Normalizer, error) {
	def, err := LoadDefinition()
	if err != nil {
		return nil, fmt.Errorf("failed to load definition: %w", err)
	}

	return NewWithDefinition(def)
}

func NewWithDefinition(def *Definition) (*Normalizer, error) {
	formats := make([]format.Format, 0, len(def.Formats))

	for _, name := range def.Formats {
		f, err := format.Create(name)
		if err != nil {
			return nil, fmt.Errorf("failed to create format: %w", err)
		}

		formats = append(formats, f)
	}

	return &Normalizer{def: def, formats: formats}, nil
}

// Definition returns the definition the normalizer was built from
func (n *Normalizer) Definition() *Definition {
	return n.def
}

// Normalize parses line into an Entry. Any error means the line is a problem line.
func (n *Normalizer) Normalize(line string) (Entry, error) {
	for _, f := range n.formats {
		fields, ok := f.Match(line)
		if !ok {
			continue
		}

		return n.build(fields)
	}

	return Entry{}, ErrUnrecognized
}

// Classify returns the canonical line for line, or false when line must go to problems
func (n *Normalizer) Classify(line string) (string, bool) {
	entry, err := n.Normalize(line)
	if err != nil {
		return "", false
	}

	return n.Format(entry), true
}

// Format joins the entry fields with the output separator
func (n *Normalizer) Format(e Entry) string {
	return strings.Join([]string{e.Date, e.Time, e.Level, e.Method, e.Message}, n.def.Output.Separator)
}

// NormalizeLevel maps a level token through the level table, case-insensitively
func (n *Normalizer) NormalizeLevel(level string) string {
	if mapped, ok := n.def.Levels[strings.ToUpper(level)]; ok {
		return mapped
	}

	return n.def.Sentinels.Level
}

func (n *Normalizer) build(fields format.Fields) (Entry, error) {
	date, err := parseDate(fields.Date)
	if err != nil {
		return Entry{}, err
	}

	method := strings.TrimSpace(fields.Method)
	if fields.Method == "" {
		method = n.def.Sentinels.Method
	}

	return Entry{
		Date:    date.Format(n.def.Output.DateLayout),
		Time:    fields.Time,
		Level:   n.NormalizeLevel(fields.Level),
		Method:  method,
		Message: strings.TrimSpace(fields.Message),
	}, nil
}

// parseDate picks the layout by separator and rejects dates that do not exist
func parseDate(s string) (time.Time, error) {
	layout := dashedDateLayout
	if strings.Contains(s, ".") {
		layout = dottedDateLayout
	}

	t, err := time.Parse(layout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w %q: %w", ErrInvalidDate, s, err)
	}

	if t.Year() < 1 {
		return time.Time{}, fmt.Errorf("%w %q: year out of range", ErrInvalidDate, s)
	}

	return t, nil
}
