// Package draft handles card draft files, the YAML staging area between
// PDF extraction and card upload.
package draft

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/at-ishikawa/studybuddy/internal/api"
)

// Card is a single question and answer pair waiting to be uploaded.
type Card struct {
	Question string `yaml:"question"`
	Answer   string `yaml:"answer"`
	Tag      string `yaml:"tag,omitempty"`
}

// Draft is a set of candidate cards extracted from a document. A draft
// can be edited by hand before it is imported into a deck.
type Draft struct {
	Source    string `yaml:"source,omitempty"`
	CreatedAt Date   `yaml:"created_at,omitempty"`
	Cards     []Card `yaml:"cards,omitempty"`
}

// FromExtraction builds a draft from extracted question and answer pairs.
func FromExtraction(source string, pairs []api.QAPair, tag string) Draft {
	cards := make([]Card, 0, len(pairs))
	for _, pair := range pairs {
		cards = append(cards, Card{
			Question: pair.Question,
			Answer:   pair.Answer,
			Tag:      tag,
		})
	}
	return Draft{
		Source:    source,
		CreatedAt: NewDate(time.Now()),
		Cards:     cards,
	}
}

// Date represents a date in YYYY-MM-DD format for YAML serialization
type Date struct {
	time.Time
}

// NewDate creates a Date from a time.Time.
func NewDate(t time.Time) Date {
	return Date{Time: t}
}

// MarshalYAML implements the yaml.Marshaler interface
func (d Date) MarshalYAML() (interface{}, error) {
	return d.Format("2006-01-02"), nil
}

// UnmarshalYAML implements the yaml.Unmarshaler interface
func (d *Date) UnmarshalYAML(value *yaml.Node) error {
	// First try the YYYY-MM-DD format
	t, err := time.Parse("2006-01-02", value.Value)
	if err == nil {
		d.Time = t
		return nil
	}

	// If that fails, try the RFC3339 timestamp format
	t, err = time.Parse(time.RFC3339, value.Value)
	if err == nil {
		d.Time = t
		return nil
	}

	return fmt.Errorf("unable to parse date '%s': expected YYYY-MM-DD or RFC3339 format", value.Value)
}
