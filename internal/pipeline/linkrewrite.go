package pipeline

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Attributes added to external links.
const (
	newTabTarget = "_blank"
	newTabRel    = "noopener noreferrer"
)

// OpenLinksInNewTab adds target="_blank" and rel="noopener noreferrer" to
// absolute http(s) links in an HTML fragment, so links inside a dataset's
// details do not navigate away from the catalog page.
//
// Does NOT rewrite:
//   - relative links and #anchors (stay within the site)
//   - mailto:, tel: and other schemes
//   - links that already declare a target
//
// Fragments without an anchor tag are returned unchanged. Otherwise the
// fragment is re-serialized, which normalizes void tags (<br /> to <br/>)
// and entity escaping.
func OpenLinksInNewTab(fragment string) (string, error) {
	if !strings.Contains(fragment, "<a") {
		return fragment, nil
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return "", fmt.Errorf("parsing HTML fragment: %w", err)
	}

	doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		if _, has := s.Attr("target"); has {
			return
		}
		href, _ := s.Attr("href")
		if !isExternalURL(href) {
			return
		}
		s.SetAttr("target", newTabTarget)
		s.SetAttr("rel", newTabRel)
	})

	out, err := doc.Find("body").Html()
	if err != nil {
		return "", fmt.Errorf("rendering HTML fragment: %w", err)
	}
	return out, nil
}

// isExternalURL returns true for absolute http and https URLs.
func isExternalURL(href string) bool {
	lower := strings.ToLower(strings.TrimSpace(href))
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}
