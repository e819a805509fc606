// Package variables holds the ordered list of typed template variables an
// author declares while editing a message template, and derives the views
// other components consume from it: autocomplete candidates, chips and
// the variable_schema mapping.
//
// Variables with an empty name stay in the list so that a half-filled row
// is not lost, but they are skipped by every derived view.
package variables
