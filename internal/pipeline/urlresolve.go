package pipeline

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ErrInvalidBaseURL indicates a base URL that is not an absolute http(s) URL.
var ErrInvalidBaseURL = errors.New("invalid base URL")

// ParseBaseURL parses raw as the base for ResolveRelativeURLs.
// Only absolute http and https URLs are accepted. A path without a
// trailing slash is treated as a directory.
func ParseBaseURL(raw string) (*url.URL, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBaseURL, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("%w: %q is not an absolute http(s) URL", ErrInvalidBaseURL, raw)
	}
	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	return u, nil
}

// ResolveRelativeURLs resolves relative image and link targets in an HTML
// fragment against base, so a dataset's details still work when data.js is
// served from another location than the linked files.
// If base is nil, returns the fragment unchanged.
//
// Rewrites:
//   - img[src]
//   - a[href], except #anchors
//
// Does NOT rewrite:
//   - absolute URLs of any scheme (http, mailto, data...)
//   - protocol-relative //host URLs
//   - srcset attributes
func ResolveRelativeURLs(fragment string, base *url.URL) (string, error) {
	if base == nil || (!strings.Contains(fragment, "src=") && !strings.Contains(fragment, "href=")) {
		return fragment, nil
	}

	root, err := parseFragment(fragment)
	if err != nil {
		return "", fmt.Errorf("parsing HTML fragment: %w", err)
	}

	resolveNode(root, base)

	return renderFragment(root)
}

// parseFragment parses content in a body context and wraps the resulting
// nodes in a document node for uniform traversal.
func parseFragment(content string) (*html.Node, error) {
	context := &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Body,
		Data:     "body",
	}
	nodes, err := html.ParseFragment(strings.NewReader(content), context)
	if err != nil {
		return nil, err
	}

	container := &html.Node{Type: html.DocumentNode}
	for _, n := range nodes {
		container.AppendChild(n)
	}
	return container, nil
}

// renderFragment renders the children of root without a document wrapper.
func renderFragment(root *html.Node) (string, error) {
	var buf strings.Builder
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&buf, c); err != nil {
			return "", fmt.Errorf("rendering HTML fragment: %w", err)
		}
	}
	return buf.String(), nil
}

// resolveNode walks the tree and resolves img and link targets.
func resolveNode(n *html.Node, base *url.URL) {
	if n.Type == html.ElementNode {
		switch n.DataAtom {
		case atom.Img:
			resolveAttr(n, "src", base)
		case atom.A:
			resolveAttr(n, "href", base)
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		resolveNode(c, base)
	}
}

// resolveAttr resolves a single attribute if it holds a relative reference.
func resolveAttr(n *html.Node, key string, base *url.URL) {
	for i, attr := range n.Attr {
		if attr.Key != key || !isRelativeRef(attr.Val) {
			continue
		}
		ref, err := url.Parse(strings.TrimSpace(attr.Val))
		if err != nil {
			continue // leave malformed targets as written
		}
		n.Attr[i].Val = base.ResolveReference(ref).String()
	}
}

// isRelativeRef reports whether ref is a relative path worth resolving.
func isRelativeRef(ref string) bool {
	ref = strings.TrimSpace(ref)
	switch {
	case ref == "", strings.HasPrefix(ref, "#"), strings.HasPrefix(ref, "//"):
		return false
	}
	u, err := url.Parse(ref)
	return err == nil && u.Scheme == ""
}
