package faq

import "strings"

// Entry is one official question/answer pair.
type Entry struct {
	Question string `yaml:"question" json:"question"`
	Answer   string `yaml:"answer" json:"answer"`
}

// Set is the FAQ knowledge base. It is built once at startup and never mutated.
type Set struct {
	entries []Entry
}

// NewSet copies entries, dropping any with an empty question or answer.
func NewSet(entries []Entry) *Set {
	kept := make([]Entry, 0, len(entries))
	for _, e := range entries {
		q := strings.TrimSpace(e.Question)
		a := strings.TrimSpace(e.Answer)
		if q == "" || a == "" {
			continue
		}
		kept = append(kept, Entry{Question: q, Answer: a})
	}
	return &Set{entries: kept}
}

// Entries returns a copy in load order.
func (s *Set) Entries() []Entry {
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

func (s *Set) Len() int {
	return len(s.entries)
}
