package format

import (
	"fmt"
	"regexp"
)

// Fields holds the untrimmed captures of a recognized line
type Fields struct {
	Date    string
	Time    string
	Level   string
	Method  string // empty when the shape carries no method/origin
	Message string
}

// Format recognizes a single hardcoded line shape
type Format interface {
	Name() string
	Match(line string) (Fields, bool)
}

const (
	NameDotted = "dotted"
	NamePiped  = "piped"
)

// Create is factory function to create formats by name
func Create(name string) (Format, error) {
	switch name {
	case NameDotted:
		return NewDotted(), nil
	case NamePiped:
		return NewPiped(), nil
	default:
		return nil, fmt.Errorf("unknown line format: %s", name)
	}
}

// captures maps named groups of re to their values in line, nil when line does not match
func captures(re *regexp.Regexp, line string) map[string]string {
	match := re.FindStringSubmatch(line)
	if match == nil {
		return nil
	}

	groups := make(map[string]string, len(match))
	for i, name := range re.SubexpNames() {
		if i == 0 || name == "" {
			continue
		}
		groups[name] = match[i]
	}

	return groups
}
