// Package placeholder implements the `{#name#}` token syntax used by
// message templates.
package placeholder

import (
	"strings"

	"github.com/iw2rmb/tmplvars/internal/grapheme"
)

const (
	Open  = "{#"
	Close = "#}"
)

// Token returns the placeholder text for name.
func Token(name string) string {
	return Open + name + Close
}

// Span is an unterminated placeholder that ends at the caret.
// Start and End are grapheme offsets; Start points at the "{#".
type Span struct {
	Start   int
	End     int
	Partial string
}

// OpenBefore finds the rightmost "{#" among the clusters preceding the
// caret and reports it when no "#}" follows it. clusters must be exactly
// the document content before the caret.
func OpenBefore(clusters []string) (Span, bool) {
	start := grapheme.LastIndex(clusters, Open)
	if start < 0 {
		return Span{}, false
	}
	from := start + grapheme.Count(Open)
	// The search starts inside the open tag: in "{#}" the '#' closes it.
	if grapheme.Index(clusters, Close, start+1) >= 0 {
		return Span{}, false
	}
	return Span{
		Start:   start,
		End:     len(clusters),
		Partial: grapheme.Join(clusters[from:]),
	}, true
}

// OpenBeforeText is OpenBefore for a plain string and a grapheme caret
// offset. caret is clamped into text.
func OpenBeforeText(text string, caret int) (Span, bool) {
	clusters := grapheme.Split(text)
	caret = min(max(caret, 0), len(clusters))
	return OpenBefore(clusters[:caret])
}

// Ref is one closed placeholder found in content. Start and End are byte
// offsets of the whole token.
type Ref struct {
	Name  string
	Start int
	End   int
}

// Scan returns every closed placeholder in content in order. A "{#" that
// is reopened before it closes is abandoned in favour of the later one.
func Scan(content string) []Ref {
	var refs []Ref
	pos := 0
	for {
		open := strings.Index(content[pos:], Open)
		if open < 0 {
			return refs
		}
		open += pos
		body := open + len(Open)
		end := strings.Index(content[body:], Close)
		if end < 0 {
			return refs
		}
		end += body
		if reopen := strings.LastIndex(content[body:end], Open); reopen >= 0 {
			open = body + reopen
			body = open + len(Open)
		}
		refs = append(refs, Ref{Name: content[body:end], Start: open, End: end + len(Close)})
		pos = end + len(Close)
	}
}

// Names returns the distinct placeholder names in content in order of
// first appearance.
func Names(content string) []string {
	var names []string
	seen := make(map[string]struct{})
	for _, ref := range Scan(content) {
		if _, ok := seen[ref.Name]; ok {
			continue
		}
		seen[ref.Name] = struct{}{}
		names = append(names, ref.Name)
	}
	return names
}

// Fill substitutes placeholders with values. Placeholders with no value
// are left as-is and their names are returned in order of first
// appearance.
func Fill(content string, values map[string]string) (string, []string) {
	refs := Scan(content)
	if len(refs) == 0 {
		return content, nil
	}

	var (
		sb      strings.Builder
		missing []string
		seen    = make(map[string]struct{})
		last    int
	)
	for _, ref := range refs {
		v, ok := values[ref.Name]
		if !ok {
			if _, dup := seen[ref.Name]; !dup {
				seen[ref.Name] = struct{}{}
				missing = append(missing, ref.Name)
			}
			continue
		}
		sb.WriteString(content[last:ref.Start])
		sb.WriteString(v)
		last = ref.End
	}
	sb.WriteString(content[last:])
	return sb.String(), missing
}
