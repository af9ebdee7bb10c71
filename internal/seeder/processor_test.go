package seeder

import (
	"testing"

	"github.com/acs-faq/backend/internal/faq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanContent(t *testing.T) {
	p := NewEntryProcessor()

	assert.Equal(t, "Call 311 now.", p.CleanContent("  <p>Call <b>311</b>\n\n now.</p> "))
	assert.Equal(t, "See the ACS site for details.", p.CleanContent("See the [ACS site](https://www.nyc.gov/site/acs) for details."))
}

func TestPrepare(t *testing.T) {
	p := NewEntryProcessor()

	entries, report := p.Prepare([]faq.Entry{
		{Question: "What are ACS hours?", Answer: "Open 24 hours a day."},
		{Question: "what are acs  hours?", Answer: "A duplicate."},
		{Question: "<br>", Answer: "No question left after cleaning."},
		{Question: "How do I report abuse?", Answer: "Call the <b>State Central Register</b>."},
	})

	require.Len(t, entries, 2)
	assert.Equal(t, "What are ACS hours?", entries[0].Question)
	assert.Equal(t, "Call the State Central Register.", entries[1].Answer)

	assert.Equal(t, Report{Input: 4, Kept: 2, Duplicates: 1, Empty: 1, Words: 10}, report)
}

func TestToRecords(t *testing.T) {
	p := NewEntryProcessor()

	records := p.ToRecords([]faq.Entry{
		{Question: "first", Answer: "a"},
		{Question: "second", Answer: "b"},
	})

	require.Len(t, records, 2)
	assert.Equal(t, 0, records[0].Position)
	assert.Equal(t, "second", records[1].Question)
	assert.Equal(t, 1, records[1].Position)
}
