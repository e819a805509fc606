//go:build property_test

package editor

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/iw2rmb/tmplvars/internal/grapheme"
	"github.com/iw2rmb/tmplvars/placeholder"
)

func TestProperty_InsertPlaceholderSplicesAtCaret(t *testing.T) {
	params := gopter.DefaultTestParameters()
	params.MinSuccessfulTests = 300
	properties := gopter.NewProperties(params)

	properties.Property("text becomes before + token + after, caret after token", prop.ForAll(
		func(text string, caret int, name string) bool {
			clusters := grapheme.Split(text)
			caret = caret % (len(clusters) + 1)

			m := New(Config{Text: text})
			m.buf.SetCursorOffset(caret)
			m, err := m.InsertPlaceholder(name)
			if err != nil {
				return false
			}

			token := placeholder.Token(name)
			want := grapheme.Join(clusters[:caret]) + token + grapheme.Join(clusters[caret:])
			return m.buf.Text() == want &&
				m.buf.Offset(m.buf.Cursor()) == caret+grapheme.Count(token) &&
				!m.SuggestionState().Visible()
		},
		gen.OneConstOf("", "Pay ", "Hi {#name#} there", "é👍🏽x", "{#a", "line\nbreak"),
		gen.IntRange(0, 64),
		gen.OneConstOf("amount", "age", "név"),
	))

	properties.Property("blank names never mutate the buffer", prop.ForAll(
		func(text, name string) bool {
			m := New(Config{Text: text})
			v := m.buf.Version()
			_, err := m.InsertPlaceholder(name)
			return err == ErrEmptyName && m.buf.Text() == text && m.buf.Version() == v
		},
		gen.OneConstOf("", "abc", "{#"),
		gen.OneConstOf("", " ", "\t", "  \n "),
	))

	properties.TestingRun(t)
}
