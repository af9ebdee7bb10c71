// Package guidance produces canned guidance answers. It performs no I/O and always
// returns text, which makes it the last stop of the fallback chain.
package guidance

import (
	"strings"

	"github.com/sirupsen/logrus"
)

var (
	definitionKeywords = []string{"what is", "what are", "define", "definition"}
	procedureKeywords  = []string{"how to", "how do", "process", "procedure"}
)

type rule struct {
	name   string
	match  func(lower string) bool
	render func(question string) string
}

// rules are checked in order; the last one always matches.
var rules = []rule{
	{
		name: "nyc_overview",
		match: func(lower string) bool {
			return containsAny(lower, definitionKeywords) && strings.Contains(lower, "nyc") && strings.Contains(lower, "acs")
		},
		render: renderNYCOverview,
	},
	{
		name: "acs_disambiguation",
		match: func(lower string) bool {
			return containsAny(lower, definitionKeywords) && strings.Contains(lower, "acs")
		},
		render: renderDisambiguation,
	},
	{
		name:   "procedure",
		match:  func(lower string) bool { return containsAny(lower, procedureKeywords) },
		render: renderProcedure,
	},
	{
		name:   "general",
		match:  func(string) bool { return true },
		render: renderGeneral,
	},
}

type Generator struct {
	rules  []rule
	logger *logrus.Logger
}

func NewGenerator(logger *logrus.Logger) *Generator {
	return &Generator{rules: rules, logger: logger}
}

// Generate picks the first matching template. A panic while rendering is answered with Apology.
func (g *Generator) Generate(question string) (answer string) {
	defer func() {
		if r := recover(); r != nil {
			g.logger.WithField("panic", r).Error("Guidance template failed")
			answer = Apology(question)
		}
	}()

	lower := strings.ToLower(question)
	for _, r := range g.rules {
		if r.match(lower) {
			g.logger.WithField("template", r.name).Debug("Generated direct guidance")
			return r.render(question)
		}
	}
	return Apology(question)
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}
