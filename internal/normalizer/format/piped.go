package format

import "regexp"

// PipedFormat matches "YYYY-MM-DD HH:MM:SS.mmmm| LEVEL|thread|method|message"
type PipedFormat struct {
	re *regexp.Regexp
}

var pipedPattern = regexp.MustCompile(
	`^(?P<date>\d{4}-\d{2}-\d{2})\s(?P<time>\d{2}:\d{2}:\d{2}\.\d{4})\|\s*(?P<level>[A-Za-z]+)\|\d+\|(?P<method>[^|]+)\|(?P<message>.+)$`)

func NewPiped() *PipedFormat {
	return &PipedFormat{re: pipedPattern}
}

func (f *PipedFormat) Name() string { return NamePiped }

func (f *PipedFormat) Match(line string) (Fields, bool) {
	groups := captures(f.re, line)
	if groups == nil {
		return Fields{}, false
	}

	return Fields{
		Date:    groups["date"],
		Time:    groups["time"],
		Level:   groups["level"],
		Method:  groups["method"],
		Message: groups["message"],
	}, true
}
