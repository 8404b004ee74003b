package encode

import (
	"encoding/json"
)

type Type struct {
	id   uint
	name string
}

func NewType(id uint, name string) Type {
	return Type{id: id, name: name}
}

func (t Type) ID() uint {
	return t.id
}

func (t Type) Name() string {
	return t.name
}

func (t Type) Equal(b Type) bool {
	return t.id == b.id
}

func (t Type) Empty() bool {
	return t.id < 1
}

func (t Type) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.name), nil
}

// UnmarshalText only sets the name; the id is resolved by Encodings.
func (t *Type) UnmarshalText(b []byte) error {
	t.name = string(b)
	return nil
}

func (t Type) String() string {
	return t.name
}
