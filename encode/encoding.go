package encode

import (
	"encoding/base64"
	"encoding/hex"

	"github.com/btcsuite/btcutil/base58"
)

var (
	HexType    Type = NewType(1, "hex")
	Base64Type Type = NewType(2, "base64")
	Base58Type Type = NewType(3, "base58")
)

// Encoding is a reversible text representation of raw bytes. For every
// input b, Decode(Encode(b)) returns b.
type Encoding interface {
	Type() Type
	Encode([]byte) string
	Decode(string) ([]byte, error)
}

type Hex struct{}

func (Hex) Type() Type {
	return HexType
}

func (Hex) Encode(b []byte) string {
	return hex.EncodeToString(b)
}

func (Hex) Decode(s string) ([]byte, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, DecodeFailedError.Newf("invalid hex; length=%d", len(s))
	}

	return b, nil
}

// Base64 is the standard, padded base64 alphabet.
type Base64 struct{}

func (Base64) Type() Type {
	return Base64Type
}

func (Base64) Encode(b []byte) string {
	return base64.StdEncoding.EncodeToString(b)
}

func (Base64) Decode(s string) ([]byte, error) {
	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, DecodeFailedError.Newf("invalid base64; length=%d", len(s))
	}

	return b, nil
}

// Base58 uses the bitcoin alphabet.
type Base58 struct{}

func (Base58) Type() Type {
	return Base58Type
}

func (Base58) Encode(b []byte) string {
	return base58.Encode(b)
}

func (Base58) Decode(s string) ([]byte, error) {
	b := base58.Decode(s)
	if len(b) < 1 && len(s) > 0 {
		return nil, DecodeFailedError.Newf("invalid base58; length=%d", len(s))
	}

	return b, nil
}
