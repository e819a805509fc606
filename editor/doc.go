// Package editor provides the template content editor: a Bubble Tea
// component that owns a text buffer and a variable list, renders variable
// chips, inserts `{#name#}` placeholders at the caret, and drives the
// placeholder autocomplete popup that opens after an unterminated "{#".
//
// Hosts either embed Model in a Bubble Tea program and forward messages
// to Update, or drive it directly through InsertPlaceholder, HandleKey,
// BufferChanged and the variable methods.
package editor
