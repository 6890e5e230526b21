package theme

import (
	"fmt"
	"image/color"
	"os"

	"gopkg.in/yaml.v3"
)

// hexColor parses "#rrggbb" or "#rrggbbaa" YAML scalars.
type hexColor color.RGBA

func (c *hexColor) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	parsed, err := parseHex(s)
	if err != nil {
		return err
	}
	*c = hexColor(parsed)
	return nil
}

func parseHex(s string) (color.RGBA, error) {
	if len(s) == 0 || s[0] != '#' {
		return color.RGBA{}, fmt.Errorf("color %q must start with '#'", s)
	}
	digits := s[1:]
	if len(digits) != 6 && len(digits) != 8 {
		return color.RGBA{}, fmt.Errorf("color %q must be #rrggbb or #rrggbbaa", s)
	}

	var vals [4]uint8
	vals[3] = 0xff
	for i := 0; i < len(digits)/2; i++ {
		hi, ok1 := hexDigit(digits[i*2])
		lo, ok2 := hexDigit(digits[i*2+1])
		if !ok1 || !ok2 {
			return color.RGBA{}, fmt.Errorf("color %q has a non-hex digit", s)
		}
		vals[i] = hi<<4 | lo
	}
	return color.RGBA{R: vals[0], G: vals[1], B: vals[2], A: vals[3]}, nil
}

func hexDigit(b byte) (uint8, bool) {
	switch {
	case b >= '0' && b <= '9':
		return b - '0', true
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10, true
	case b >= 'A' && b <= 'F':
		return b - 'A' + 10, true
	}
	return 0, false
}

type themeSpec struct {
	Name         string   `yaml:"name"`
	Background   hexColor `yaml:"background"`
	Foreground   hexColor `yaml:"foreground"`
	Cursor       hexColor `yaml:"cursor"`
	Region       hexColor `yaml:"region"`
	Keyword      hexColor `yaml:"keyword"`
	Variable     hexColor `yaml:"variable"`
	Function     hexColor `yaml:"function"`
	Preprocessor hexColor `yaml:"preprocessor"`
	Type         hexColor `yaml:"type"`
}

type themeFile struct {
	Themes []themeSpec `yaml:"themes"`
}

// Parse decodes a YAML theme list. Every theme needs a name, and names
// must be unique within the file.
func Parse(data []byte) ([]Theme, error) {
	var file themeFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	themes := make([]Theme, 0, len(file.Themes))
	for i, spec := range file.Themes {
		if spec.Name == "" {
			return nil, fmt.Errorf("theme %d has no name", i)
		}
		if seen[spec.Name] {
			return nil, fmt.Errorf("duplicate theme %q", spec.Name)
		}
		seen[spec.Name] = true
		themes = append(themes, Theme{
			Name:         spec.Name,
			Background:   color.RGBA(spec.Background),
			Foreground:   color.RGBA(spec.Foreground),
			Cursor:       color.RGBA(spec.Cursor),
			Region:       color.RGBA(spec.Region),
			Keyword:      color.RGBA(spec.Keyword),
			Variable:     color.RGBA(spec.Variable),
			Function:     color.RGBA(spec.Function),
			Preprocessor: color.RGBA(spec.Preprocessor),
			Type:         color.RGBA(spec.Type),
		})
	}
	return themes, nil
}

// Load reads and parses a YAML theme file.
func Load(path string) ([]Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	themes, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return themes, nil
}
