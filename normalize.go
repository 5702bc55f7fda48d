package catalog2js

import "strings"

// ListSeparator delimits values in multi-value cells.
const ListSeparator = ";"

// ListColumns are the cells split into string lists.
var ListColumns = []string{"categories", "region", "tags", "invisibleTags"}

// SplitList splits s on ListSeparator, trims each piece, and drops empty
// pieces. It never returns nil, so an empty cell encodes as [] rather
// than null.
func SplitList(s string) []string {
	out := []string{}
	if s == "" {
		return out
	}
	for piece := range strings.SplitSeq(s, ListSeparator) {
		if v := strings.TrimSpace(piece); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// JoinList is the inverse used for CSV export.
func JoinList(values []string) string {
	return strings.Join(values, ListSeparator+" ")
}
