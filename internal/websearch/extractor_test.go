package websearch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func paragraph(n int) string {
	return strings.Repeat("x", n)
}

func htmlServer(t *testing.T, body string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		io.WriteString(w, body)
	}))
	t.Cleanup(server.Close)
	return server
}

func fixturePage(lengths ...int) string {
	var b strings.Builder
	b.WriteString("<html><body><nav><p>Menu</p></nav><main>")
	for _, n := range lengths {
		fmt.Fprintf(&b, "<p>  %s  </p>\n", paragraph(n))
	}
	b.WriteString("</main></body></html>")
	return b.String()
}

func TestExtractor_SkipsShortParagraphs(t *testing.T) {
	server := htmlServer(t, fixturePage(10, 45, 60, 20, 80))
	extractor := NewExtractor(5*time.Second, logrus.New())

	got := extractor.ExtractParagraphs(context.Background(), server.URL, 2)
	assert.Equal(t, paragraph(45)+"\n\n"+paragraph(60), got)

	got = extractor.ExtractParagraphs(context.Background(), server.URL, 3)
	assert.Equal(t, paragraph(45)+"\n\n"+paragraph(60)+"\n\n"+paragraph(80), got)
}

func TestExtractor_BoundaryLength(t *testing.T) {
	server := htmlServer(t, fixturePage(40, 41))
	extractor := NewExtractor(5*time.Second, logrus.New())

	got := extractor.ExtractParagraphs(context.Background(), server.URL, 3)
	assert.Equal(t, paragraph(41), got)
}

func TestExtractor_NoContent(t *testing.T) {
	server := htmlServer(t, fixturePage(5, 12, 40))
	extractor := NewExtractor(5*time.Second, logrus.New())

	assert.Equal(t, NoContentMessage, extractor.ExtractParagraphs(context.Background(), server.URL, 3))
}

func TestExtractor_UserAgent(t *testing.T) {
	var userAgent string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userAgent = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "text/html")
		io.WriteString(w, fixturePage(50))
	}))
	defer server.Close()

	NewExtractor(5*time.Second, logrus.New()).ExtractParagraphs(context.Background(), server.URL, 3)
	assert.Equal(t, ExtractorUserAgent, userAgent)
}

func TestExtractor_FetchFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer server.Close()

	extractor := NewExtractor(5*time.Second, logrus.New())

	assert.Equal(t, ExtractFailedMessage, extractor.ExtractParagraphs(context.Background(), server.URL, 3))
	assert.Equal(t, ExtractFailedMessage, extractor.ExtractParagraphs(context.Background(), "http://127.0.0.1:1/unreachable", 3))
}

func TestExtractor_CancelledContext(t *testing.T) {
	server := htmlServer(t, fixturePage(50))
	extractor := NewExtractor(5*time.Second, logrus.New())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.Equal(t, ExtractFailedMessage, extractor.ExtractParagraphs(ctx, server.URL, 3))
}
