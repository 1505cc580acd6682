package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Example is a curated sample sentence shown in the examples picker.
type Example struct {
	Javanese string `yaml:"javanese" json:"javanese"` // Aksara text submitted to the engine
	Latin    string `yaml:"latin" json:"latin"`       // Expected romanization, for the listing
	English  string `yaml:"english" json:"english"`   // Gloss, for the listing
}

// DefaultExamples returns the built-in curated sentences, used when no
// examples.yaml exists.
func DefaultExamples() []Example {
	return []Example{
		{Javanese: "ꦲꦏꦸ ꦩꦔꦤ꧀ ꦱꦼꦒ", Latin: "aku mangan sega", English: "I eat rice"},
		{Javanese: "ꦢꦺꦮꦺꦏꦺ ꦩ꧀ꦭꦏꦸ", Latin: "dheweke mlaku", English: "he/she walks"},
		{Javanese: "ꦱꦸꦒꦺꦁ ꦄꦮꦤ꧀", Latin: "sugeng awan", English: "good day"},
		{Javanese: "ꦏꦸꦭ ꦱꦶꦤꦻꦴ", Latin: "kula sinau", English: "I study"},
	}
}

// LoadExamples loads curated examples from examples.yaml in the given
// directory. A missing file is not an error: the built-in examples are
// returned instead.
func LoadExamples(dir string) ([]Example, error) {
	data, err := os.ReadFile(filepath.Join(dir, "examples.yaml"))
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultExamples(), nil
		}
		return nil, fmt.Errorf("reading examples file: %w", err)
	}

	var doc struct {
		Examples []Example `yaml:"examples"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing examples file: %w", err)
	}
	if len(doc.Examples) == 0 {
		return DefaultExamples(), nil
	}

	return doc.Examples, nil
}

// SaveExamples writes curated examples to examples.yaml in the given
// directory.
func SaveExamples(dir string, examples []Example) error {
	doc := struct {
		Examples []Example `yaml:"examples"`
	}{Examples: examples}

	out, err := yaml.Marshal(&doc)
	if err != nil {
		return fmt.Errorf("marshaling examples: %w", err)
	}

	if err := os.WriteFile(filepath.Join(dir, "examples.yaml"), out, 0644); err != nil {
		return fmt.Errorf("writing examples file: %w", err)
	}

	return nil
}
