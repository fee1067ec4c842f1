package normalizer

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"lognorm/internal/normalizer/format"
)

// Definition is the compiled-in description of the canonical output
type Definition struct {
	Name      string
	Formats   []string
	Sentinels struct {
		Method string
		Level  string
	}
	Output struct {
		DateLayout string
		Separator  string
	}
	Input struct {
		MaxLineBytes int
	}
	Levels map[string]string
}

//go:embed definition.toml
var definitionData []byte

// LoadDefinition decodes and validates the embedded definition
func LoadDefinition() (*Definition, error) {
	return ParseDefinition(definitionData)
}

// ParseDefinition decodes a definition in TOML format
func ParseDefinition(data []byte) (*Definition, error) {
	var def Definition

	_, err := toml.Decode(string(data), &def)
	if err != nil {
		return nil, fmt.Errorf("failed to parse definition TOML: %w", err)
	}

	err = def.validate()
	if err != nil {
		return nil, err
	}

	// Level lookup is case-insensitive
	levels := make(map[string]string, len(def.Levels))
	for k, v := range def.Levels {
		levels[strings.ToUpper(k)] = v
	}
	def.Levels = levels

	return &def, nil
}

func (d *Definition) validate() error {
	if len(d.Formats) == 0 {
		return errors.New("definition has no formats")
	}

	for _, name := range d.Formats {
		if _, err := format.Create(name); err != nil {
			return err
		}
	}

	if d.Sentinels.Method == "" {
		return errors.New("definition missing Sentinels.Method")
	}

	if d.Sentinels.Level == "" {
		return errors.New("definition missing Sentinels.Level")
	}

	if d.Output.DateLayout == "" {
		return errors.New("definition missing Output.DateLayout")
	}

	if d.Output.Separator == "" {
		return errors.New("definition missing Output.Separator")
	}

	if d.Input.MaxLineBytes <= 0 {
		return errors.New("Input.MaxLineBytes must be positive")
	}

	if len(d.Levels) == 0 {
		return errors.New("definition has no level mappings")
	}

	return nil
}
