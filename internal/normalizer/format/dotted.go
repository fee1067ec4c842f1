package format

import "regexp"

// DottedFormat matches "DD.MM.YYYY HH:MM:SS.mmm LEVEL   message".
// It carries no method/origin field.
type DottedFormat struct {
	re *regexp.Regexp
}

var dottedPattern = regexp.MustCompile(
	`^(?P<date>\d{2}\.\d{2}\.\d{4})\s(?P<time>\d{2}:\d{2}:\d{2}\.\d{3})\s(?P<level>[A-Za-z]+)\s+(?P<message>.+)$`)

func NewDotted() *DottedFormat {
	return &DottedFormat{re: dottedPattern}
}

func (f *DottedFormat) Name() string { return NameDotted }

func (f *DottedFormat) Match(line string) (Fields, bool) {
	groups := captures(f.re, line)
	if groups == nil {
		return Fields{}, false
	}

	return Fields{
		Date:    groups["date"],
		Time:    groups["time"],
		Level:   groups["level"],
		Message: groups["message"],
	}, true
}
