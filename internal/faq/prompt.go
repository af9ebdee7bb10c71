package faq

import (
	"fmt"
	"strings"
)

// NoMatchSentinel is the phrase the model must emit when no FAQ entry is close enough.
const NoMatchSentinel = "Sorry, I can only answer based on the official ACS FAQs"

const noMatchReply = NoMatchSentinel + ". Do you want me to provide you an answer from the web?"

const SystemPrompt = "You are a helpful ACS FAQ assistant. Only answer based on the provided FAQ database."

// BuildPrompt embeds every entry verbatim followed by the user's question.
func BuildPrompt(set *Set, question string) string {
	var faqContext strings.Builder
	for _, e := range set.Entries() {
		fmt.Fprintf(&faqContext, "Q: %s\nA: %s\n\n", e.Question, e.Answer)
	}

	return fmt.Sprintf(`You are an ACS FAQ assistant. Based on the following FAQ database, answer the user's question.
If you find a closely related question in the FAQ database, provide the corresponding answer.
If no closely related question exists, respond with: "%s"

FAQ Database:
%s
User Question: %s

Instructions:
- Only answer based on the provided FAQ database
- If the question closely matches an FAQ, provide the exact answer from the database
- If no close match exists, use the standard "Sorry" response
- Do not make up information not in the FAQ database

Answer:`, noMatchReply, strings.TrimRight(faqContext.String(), "\n")+"\n", question)
}
