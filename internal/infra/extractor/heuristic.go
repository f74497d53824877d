package extractor

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/FAFFA-GOLD/ai-news-batch/internal/usecase/ingest"
	textutil "github.com/FAFFA-GOLD/ai-news-batch/internal/utils/text"
)

// HeuristicExtractor implements the ContentExtractor interface with a
// layout heuristic tuned for editorial pages. It tries, in order:
//
//  1. the first <article> element
//  2. the first <main> or [role=main] element
//  3. elements whose class contains "article" or "content", in document order
//
// The first candidate whose visible text reaches the configured minimum
// length wins. When no candidate qualifies, the full <body> text is used
// regardless of length. Script, style and embedded-frame content is
// stripped before measuring.
//
// Thread safety: HeuristicExtractor is safe for concurrent use.
type HeuristicExtractor struct {
	fetcher *pageFetcher
	cfg     Config
}

// NewHeuristicExtractor creates a HeuristicExtractor with the given
// configuration.
func NewHeuristicExtractor(cfg Config) *HeuristicExtractor {
	return &HeuristicExtractor{
		fetcher: newPageFetcher(cfg),
		cfg:     cfg,
	}
}

// Extract fetches the article page and returns its main text content.
// Returns ingest.ErrNoContent when the page yields no visible text at all;
// the caller falls back to the feed summary.
func (e *HeuristicExtractor) Extract(ctx context.Context, urlStr string) (string, error) {
	body, _, err := e.fetcher.fetch(ctx, urlStr)
	if err != nil {
		return "", err
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	// 不可視要素を先に除去してから本文を測る
	doc.Find("script, style, noscript, template, iframe").Remove()

	for _, sel := range e.candidates(doc) {
		text := visibleText(sel)
		if textutil.CountRunes(text) >= e.cfg.MinChars {
			return text, nil
		}
	}

	// No candidate reached the threshold; whole-page text is better than
	// nothing.
	text := visibleText(doc.Find("body"))
	if text == "" {
		return "", fmt.Errorf("%w: %s", ingest.ErrNoContent, urlStr)
	}
	return text, nil
}

// candidates returns the container elements to try, in priority order.
func (e *HeuristicExtractor) candidates(doc *goquery.Document) []*goquery.Selection {
	var out []*goquery.Selection

	if sel := doc.Find("article").First(); sel.Length() > 0 {
		out = append(out, sel)
	}
	if sel := doc.Find("main, [role=main]").First(); sel.Length() > 0 {
		out = append(out, sel)
	}
	doc.Find(`[class*="article"], [class*="content"]`).Each(func(_ int, sel *goquery.Selection) {
		out = append(out, sel)
	})

	return out
}

// blockTags are elements that introduce a line break around their text when
// rendered, so their boundaries become newlines in the extracted output.
var blockTags = map[string]bool{
	"address": true, "article": true, "aside": true, "blockquote": true,
	"div": true, "dl": true, "dd": true, "dt": true, "fieldset": true,
	"figcaption": true, "figure": true, "footer": true, "form": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"header": true, "hr": true, "li": true, "main": true, "ol": true,
	"p": true, "pre": true, "section": true, "table": true, "td": true,
	"th": true, "tr": true, "ul": true,
}

// visibleText renders the selection's text with block-level elements
// separated by newlines, whitespace trimmed per line, and blank lines
// dropped. Plain sel.Text() would glue adjacent paragraphs together.
func visibleText(sel *goquery.Selection) string {
	var b strings.Builder
	for _, node := range sel.Nodes {
		writeNodeText(node, &b)
	}

	var lines []string
	for _, line := range strings.Split(b.String(), "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n")
}

func writeNodeText(n *html.Node, b *strings.Builder) {
	switch n.Type {
	case html.TextNode:
		b.WriteString(n.Data)
	case html.ElementNode:
		if n.Data == "br" {
			b.WriteString("\n")
			return
		}
		block := blockTags[n.Data]
		if block {
			b.WriteString("\n")
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			writeNodeText(c, b)
		}
		if block {
			b.WriteString("\n")
		}
	case html.DocumentNode:
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			writeNodeText(c, b)
		}
	}
}
