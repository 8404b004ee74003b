package encode

import (
	"sync"
)

type Encodings struct {
	sync.RWMutex
	encodings       map[ /*Type*/ uint]Encoding
	encodingsByName map[string]Encoding
	defaultType     Type
}

func NewEncodings() *Encodings {
	return &Encodings{
		encodings:       map[uint]Encoding{},
		encodingsByName: map[string]Encoding{},
	}
}

// NewDefaultEncodings returns Encodings with hex, base64 and base58
// registered; hex is the default.
func NewDefaultEncodings() *Encodings {
	e := NewEncodings()
	_ = e.Register(Hex{})
	_ = e.Register(Base64{})
	_ = e.Register(Base58{})

	return e
}

func (e *Encodings) Register(encoding Encoding) error {
	e.Lock()
	defer e.Unlock()

	if _, found := e.encodings[encoding.Type().ID()]; found {
		return EncodingAlreadyRegisteredError.Newf("type=%q", encoding.Type().String())
	}

	if _, found := e.encodingsByName[encoding.Type().Name()]; found {
		return EncodingAlreadyRegisteredError.Newf("type=%q", encoding.Type().Name())
	}

	e.encodings[encoding.Type().ID()] = encoding
	e.encodingsByName[encoding.Type().Name()] = encoding

	if e.defaultType.Empty() {
		e.defaultType = encoding.Type()
	}

	log.Debug("encoding registered", "type", encoding.Type())

	return nil
}

func (e *Encodings) SetDefault(t Type) error {
	encoding, err := e.Encoding(t)
	if err != nil {
		return err
	}

	e.Lock()
	defer e.Unlock()

	e.defaultType = encoding.Type()

	return nil
}

// Encoding finds by id, or by name when t only carries a name, as it does
// after UnmarshalText.
func (e *Encodings) Encoding(t Type) (Encoding, error) {
	e.RLock()
	defer e.RUnlock()

	var encoding Encoding
	var found bool
	if t.ID() < 1 {
		encoding, found = e.encodingsByName[t.Name()]
	} else {
		encoding, found = e.encodings[t.ID()]
	}

	if !found {
		return nil, EncodingNotRegisteredError.Newf("type=%q", t.String())
	}

	return encoding, nil
}

func (e *Encodings) ByName(name string) (Encoding, error) {
	return e.Encoding(NewType(0, name))
}

func (e *Encodings) Default() (Encoding, error) {
	e.RLock()
	t := e.defaultType
	e.RUnlock()

	return e.Encoding(t)
}
