package seeder

import (
	"regexp"
	"strings"

	"github.com/acs-faq/backend/internal/faq"
	"github.com/acs-faq/backend/internal/models"
)

// EntryProcessor normalizes FAQ entries before they are written to the database.
type EntryProcessor struct {
	multiWhitespace *regexp.Regexp
	htmlTags        *regexp.Regexp
	markdownLinks   *regexp.Regexp
}

// Report summarizes one Prepare pass.
type Report struct {
	Input      int
	Kept       int
	Duplicates int
	Empty      int
	Words      int
}

func NewEntryProcessor() *EntryProcessor {
	return &EntryProcessor{
		multiWhitespace: regexp.MustCompile(`\s+`),
		htmlTags:        regexp.MustCompile(`<[^>]*>`),
		markdownLinks:   regexp.MustCompile(`\[([^\]]+)\]\([^)]*\)`),
	}
}

// CleanContent strips markup and collapses whitespace.
func (p *EntryProcessor) CleanContent(content string) string {
	content = p.htmlTags.ReplaceAllString(content, "")

	// Keep link text, drop the target
	content = p.markdownLinks.ReplaceAllString(content, "$1")

	content = p.multiWhitespace.ReplaceAllString(content, " ")
	return strings.TrimSpace(content)
}

// Prepare cleans every entry, drops the ones left empty and keeps the first
// occurrence of each question, compared case-insensitively.
func (p *EntryProcessor) Prepare(entries []faq.Entry) ([]faq.Entry, Report) {
	report := Report{Input: len(entries)}
	seen := make(map[string]bool)
	var prepared []faq.Entry

	for _, entry := range entries {
		question := p.CleanContent(entry.Question)
		answer := p.CleanContent(entry.Answer)
		if question == "" || answer == "" {
			report.Empty++
			continue
		}

		key := strings.ToLower(question)
		if seen[key] {
			report.Duplicates++
			continue
		}
		seen[key] = true

		report.Words += p.CountWords(answer)
		prepared = append(prepared, faq.Entry{Question: question, Answer: answer})
	}

	report.Kept = len(prepared)
	return prepared, report
}

// ToRecords assigns positions in file order.
func (p *EntryProcessor) ToRecords(entries []faq.Entry) []models.FAQRecord {
	records := make([]models.FAQRecord, 0, len(entries))
	for i, entry := range entries {
		records = append(records, models.FAQRecord{
			Question: entry.Question,
			Answer:   entry.Answer,
			Position: i,
		})
	}
	return records
}

func (p *EntryProcessor) CountWords(content string) int {
	return len(strings.Fields(content))
}
