package keypair

import (
	"encoding/json"
)

// Type identifies a Provider.
type Type struct {
	id   uint
	name string
}

func NewType(id uint, name string) Type {
	return Type{id: id, name: name}
}

func (k Type) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

func (k Type) ID() uint {
	return k.id
}

func (k Type) Name() string {
	return k.name
}

func (k Type) Equal(b Type) bool {
	return k.id == b.id
}

func (k Type) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Type) UnmarshalText(b []byte) error {
	k.name = string(b)
	return nil
}

func (k Type) Empty() bool {
	return k.id < 1
}

func (k Type) String() string {
	return k.name
}
