package editor

import "errors"

// UserInputError is a mistake the author can correct, such as inserting a
// variable that has no name yet. Hosts show it and carry on.
type UserInputError struct {
	Msg string
}

func (e *UserInputError) Error() string { return e.Msg }

var (
	ErrEmptyName error = &UserInputError{Msg: "variable name required"}

	// ErrNoBuffer is returned when a Model that was not built with New is
	// asked to edit text.
	ErrNoBuffer = errors.New("editor: no buffer attached")
)
