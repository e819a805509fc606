package variables

import "strings"

// Type is the declared value type of a variable.
type Type string

const (
	TypeString  Type = "string"
	TypeInteger Type = "integer"
	TypeFloat   Type = "float"
	TypeDate    Type = "date"
	TypeTime    Type = "time"
	TypeBoolean Type = "boolean"
	TypeEmail   Type = "email"
	TypePhone   Type = "phone"
)

// Types lists every Type in selector order.
var Types = []Type{
	TypeString,
	TypeInteger,
	TypeFloat,
	TypeDate,
	TypeTime,
	TypeBoolean,
	TypeEmail,
	TypePhone,
}

// ParseType maps s to a Type, falling back to TypeString.
func ParseType(s string) Type {
	t := Type(strings.ToLower(strings.TrimSpace(s)))
	if t.Valid() {
		return t
	}
	return TypeString
}

func (t Type) Valid() bool {
	for _, known := range Types {
		if t == known {
			return true
		}
	}
	return false
}

// Next returns the type following t in selector order, wrapping around.
func (t Type) Next() Type {
	for i, known := range Types {
		if t == known {
			return Types[(i+1)%len(Types)]
		}
	}
	return TypeString
}

func (t Type) String() string { return string(t) }

// ID addresses a variable row for its whole lifetime. IDs are never
// reused within a List.
type ID uint64

type Variable struct {
	ID       ID
	Name     string
	Type     Type
	Required bool
}

// Named reports whether the variable takes part in chips, suggestions and
// the schema.
func (v Variable) Named() bool { return v.Name != "" }

// Patch carries the fields to change in Update. Nil fields are left as-is.
type Patch struct {
	Name     *string
	Type     *Type
	Required *bool
}

func NamePatch(name string) Patch { return Patch{Name: &name} }

func TypePatch(t Type) Patch { return Patch{Type: &t} }

func RequiredPatch(required bool) Patch { return Patch{Required: &required} }
