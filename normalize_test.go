package catalog2js

import (
	"reflect"
	"strings"
	"testing"
)

func TestSplitList(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{name: "empty", input: "", want: []string{}},
		{name: "single space", input: " ", want: []string{}},
		{name: "whitespace only", input: " \t\n ", want: []string{}},
		{name: "only separators", input: ";;;", want: []string{}},
		{name: "single value", input: "Health", want: []string{"Health"}},
		{name: "trims pieces", input: "Health; Census ;Trade", want: []string{"Health", "Census", "Trade"}},
		{name: "drops empty pieces", input: "a;; b ;", want: []string{"a", "b"}},
		{name: "keeps inner spaces", input: "North America; Europe", want: []string{"North America", "Europe"}},
		{name: "keeps duplicates", input: "a;a", want: []string{"a", "a"}},
		{name: "comma is not a separator", input: "a, b", want: []string{"a, b"}},
		{name: "unicode whitespace", input: " x ; y", want: []string{"x", "y"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := SplitList(tt.input)
			if got == nil {
				t.Fatal("SplitList returned nil, want non-nil slice")
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SplitList(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSplitList_Elements(t *testing.T) {
	t.Parallel()

	inputs := []string{"a;b", " ; x ;; y", "x", ";", "p q ; r"}
	for _, in := range inputs {
		for _, v := range SplitList(in) {
			if v == "" || v != strings.TrimSpace(v) {
				t.Errorf("SplitList(%q) has untrimmed or empty element %q", in, v)
			}
			if !strings.Contains(in, v) {
				t.Errorf("SplitList(%q) element %q is not a substring", in, v)
			}
		}
	}
}

func TestJoinList(t *testing.T) {
	t.Parallel()

	if got := JoinList([]string{"a", "b"}); got != "a; b" {
		t.Errorf("JoinList = %q, want %q", got, "a; b")
	}
	if got := JoinList(nil); got != "" {
		t.Errorf("JoinList(nil) = %q, want empty", got)
	}
}
