// Package pipeline implements the Markdown-to-HTML stage for catalog text.
//
// The stage runs in this order for each additionalInfo cell:
//   - Markdown preprocessing (line ending normalization)
//   - Markdown to HTML fragment via Goldmark (tables, definition lists,
//     footnotes, optional fenced-code highlighting)
//   - Optional resolution of relative link and image targets against a
//     base URL (golang.org/x/net/html)
//   - Optional rewrite of external links to open in a new tab (goquery)
//   - Flattening: every newline removed so the fragment is one line
//
// Column splitting, schema projection and script serialization live in the
// root catalog2js package; this package only knows about markup.
package pipeline
