// Package draft builds and validates the template object that the editor
// hands to the persistence layer.
package draft

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/iw2rmb/tmplvars/placeholder"
	"github.com/iw2rmb/tmplvars/variables"
)

// ContentLimit is the maximum template length in characters.
const ContentLimit = 1600

type Category string

const (
	CategoryStudent Category = "student"
	CategoryTeacher Category = "teacher"
	CategoryCommon  Category = "common"
)

var Categories = []Category{CategoryStudent, CategoryTeacher, CategoryCommon}

func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// Template is the serialized template object.
type Template struct {
	Title          string           `json:"title"`
	Category       Category         `json:"category"`
	Content        string           `json:"content"`
	ClassScope     *string          `json:"class_scope"`
	VariableSchema variables.Schema `json:"variable_schema"`
	Status         Status           `json:"status"`
	IsActive       bool             `json:"is_active"`
}

// UnmarshalJSON fills the same status and active defaults as New for
// keys the payload omits.
func (t *Template) UnmarshalJSON(data []byte) error {
	type wire Template
	w := wire{Status: StatusPending, IsActive: true}
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	*t = Template(w)
	return nil
}

// Fields is the raw form input a draft is built from.
type Fields struct {
	Title      string
	Category   string
	Content    string
	ClassScope string
}

// New builds a pending, active template from form input and the
// variable list. Text fields are trimmed and an empty class scope is
// sent as null.
func New(f Fields, vars *variables.List) Template {
	t := Template{
		Title:    strings.TrimSpace(f.Title),
		Category: Category(strings.TrimSpace(f.Category)),
		Content:  strings.TrimSpace(f.Content),
		Status:   StatusPending,
		IsActive: true,
	}
	if scope := strings.TrimSpace(f.ClassScope); scope != "" {
		t.ClassScope = &scope
	}
	if vars != nil {
		t.VariableSchema = vars.Schema()
	}
	return t
}

// Validate reports the first user-correctable problem with t as an
// *InputError.
func (t Template) Validate() error {
	switch {
	case t.Title == "":
		return &InputError{Field: "title", Err: ErrRequired}
	case t.Category == "":
		return &InputError{Field: "category", Err: ErrRequired}
	case t.Content == "":
		return &InputError{Field: "content", Err: ErrRequired}
	case !t.Category.Valid():
		return &InputError{Field: "category", Err: ErrCategory}
	case Length(t.Content) > ContentLimit:
		return &InputError{Field: "content", Err: ErrTooLong}
	}
	return nil
}

// Undeclared returns placeholder names used in the content that have no
// entry in the variable schema.
func (t Template) Undeclared() []string {
	var out []string
	for _, name := range placeholder.Names(t.Content) {
		if _, ok := t.VariableSchema[name]; !ok {
			out = append(out, name)
		}
	}
	return out
}

// Encode writes t as indented JSON.
func (t Template) Encode(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(t); err != nil {
		return fmt.Errorf("encode template: %w", err)
	}
	return nil
}

// Decode reads one template as written by Encode.
func Decode(r io.Reader) (Template, error) {
	var t Template
	if err := json.NewDecoder(r).Decode(&t); err != nil {
		return Template{}, fmt.Errorf("decode template: %w", err)
	}
	return t, nil
}

// DecodeList reads a JSON array of templates, as returned by a listing.
func DecodeList(r io.Reader) ([]Template, error) {
	var ts []Template
	if err := json.NewDecoder(r).Decode(&ts); err != nil {
		return nil, fmt.Errorf("decode template list: %w", err)
	}
	return ts, nil
}

// Length counts characters the way the content limit is enforced.
func Length(content string) int {
	return utf8.RuneCountInString(content)
}

// Counter renders the character counter shown next to the content field.
func Counter(content string, limit int) string {
	if limit <= 0 {
		limit = ContentLimit
	}
	return fmt.Sprintf("%d/%d", Length(content), limit)
}
