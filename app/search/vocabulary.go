package search

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"rental-frontend/app/domain"
)

//go:embed vocabulary.yaml
var defaultVocabulary []byte

// PropertyKeywords maps free-text keywords to a property type
type PropertyKeywords struct {
	Type     domain.PropertyType `yaml:"type"`
	Keywords []string            `yaml:"keywords"`
}

// FeatureKeywords maps free-text keywords to a listing feature name
type FeatureKeywords struct {
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords"`
}

// Vocabulary holds the words the parser recognises. Order matters: the first
// location found wins and the last property type found wins.
type Vocabulary struct {
	Locations     []string           `yaml:"locations"`
	PropertyTypes []PropertyKeywords `yaml:"property_types"`
	Features      []FeatureKeywords  `yaml:"features"`
}

// DefaultVocabulary returns the vocabulary compiled into the binary
func DefaultVocabulary() (*Vocabulary, error) {
	return parseVocabulary(defaultVocabulary)
}

// LoadVocabulary reads a vocabulary file, falling back to the embedded one when path is empty
func LoadVocabulary(path string) (*Vocabulary, error) {
	if path == "" {
		return DefaultVocabulary()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read search vocabulary: %w", err)
	}

	vocab, err := parseVocabulary(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return vocab, nil
}

func parseVocabulary(data []byte) (*Vocabulary, error) {
	var vocab Vocabulary
	if err := yaml.Unmarshal(data, &vocab); err != nil {
		return nil, fmt.Errorf("failed to parse search vocabulary: %w", err)
	}

	if err := vocab.normalize(); err != nil {
		return nil, err
	}
	return &vocab, nil
}

// normalize lower-cases keywords and rejects entries the parser cannot use
func (v *Vocabulary) normalize() error {
	for i, loc := range v.Locations {
		loc = strings.ToLower(strings.TrimSpace(loc))
		if loc == "" {
			return fmt.Errorf("search vocabulary: empty location at index %d", i)
		}
		v.Locations[i] = loc
	}

	for i := range v.PropertyTypes {
		pt := &v.PropertyTypes[i]
		if !pt.Type.Valid() {
			return fmt.Errorf("search vocabulary: unknown property type %q", pt.Type)
		}
		if err := lowerKeywords(pt.Keywords); err != nil {
			return fmt.Errorf("search vocabulary: property type %q: %w", pt.Type, err)
		}
	}

	for i := range v.Features {
		f := &v.Features[i]
		if strings.TrimSpace(f.Name) == "" {
			return fmt.Errorf("search vocabulary: feature at index %d has no name", i)
		}
		if err := lowerKeywords(f.Keywords); err != nil {
			return fmt.Errorf("search vocabulary: feature %q: %w", f.Name, err)
		}
	}

	return nil
}

func lowerKeywords(keywords []string) error {
	if len(keywords) == 0 {
		return errors.New("no keywords")
	}
	for i, kw := range keywords {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw == "" {
			return errors.New("empty keyword")
		}
		keywords[i] = kw
	}
	return nil
}
