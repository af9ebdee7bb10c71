package faq

import (
	"fmt"
	"os"

	"github.com/acs-faq/backend/internal/models"
	"gopkg.in/yaml.v3"
)

type fileFormat struct {
	FAQs []Entry `yaml:"faqs"`
}

// LoadFile reads a YAML document of the form {faqs: [{question, answer}]}.
// A JSON file with the same shape also parses, since JSON is valid YAML.
func LoadFile(path string) (*Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read FAQ file: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Set, error) {
	var doc fileFormat
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse FAQ file: %w", err)
	}

	set := NewSet(doc.FAQs)
	if set.Len() == 0 {
		return nil, fmt.Errorf("FAQ file contains no usable entries")
	}
	return set, nil
}

// LoadFromRepository builds the set from stored records in display order.
func LoadFromRepository(repo models.FAQRepository) (*Set, error) {
	records, err := repo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list FAQ entries: %w", err)
	}

	entries := make([]Entry, 0, len(records))
	for _, r := range records {
		entries = append(entries, Entry{Question: r.Question, Answer: r.Answer})
	}

	set := NewSet(entries)
	if set.Len() == 0 {
		return nil, fmt.Errorf("no FAQ entries stored; run the seed command first")
	}
	return set, nil
}
