package websearch

import (
	"net/url"
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

var multiWhitespace = regexp.MustCompile(`\s+`)

func collapseWhitespace(s string) string {
	return strings.TrimSpace(multiWhitespace.ReplaceAllString(s, " "))
}

// truncateRunes cuts s to at most n characters without splitting a UTF-8 sequence.
func truncateRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n])
}

// textAfter returns the text that follows anchor inside root, up to the next <a> element.
// Script and style bodies are skipped.
func textAfter(root, anchor *html.Node) string {
	var b strings.Builder
	seen := false

	var walk func(n *html.Node) bool
	walk = func(n *html.Node) bool {
		if n == anchor {
			seen = true
			return true
		}
		if n.Type == html.ElementNode {
			switch n.DataAtom {
			case atom.A:
				if seen {
					return false
				}
			case atom.Script, atom.Style:
				return true
			}
		}
		if seen && n.Type == html.TextNode {
			b.WriteString(n.Data)
			b.WriteByte(' ')
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if !walk(c) {
				return false
			}
		}
		return true
	}
	walk(root)

	return collapseWhitespace(b.String())
}

// unwrapRedirect resolves DuckDuckGo's //duckduckgo.com/l/?uddg=<target> links to the target.
func unwrapRedirect(href string) string {
	if !strings.Contains(href, "uddg=") {
		return href
	}
	parsed, err := url.Parse(href)
	if err != nil {
		return href
	}
	if target := parsed.Query().Get("uddg"); target != "" {
		return target
	}
	return href
}
