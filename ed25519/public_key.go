// Package ed25519 holds the Ed25519 value types shared by every Ed25519
// provider: public keys, signatures, seeds and PKCS#8 parsing.
package ed25519

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/btcsuite/btcutil/base58"

	"github.com/spikeekips/signatory/encode"
	"github.com/spikeekips/signatory/keypair"
)

const (
	// PublicKeySize is the size of a compressed Edwards-y public key.
	PublicKeySize = 32
	// Algorithm is what PublicKey.Type returns.
	Algorithm = "ed25519"
)

type PublicKey [PublicKeySize]byte

func NewPublicKey(b [PublicKeySize]byte) PublicKey {
	return PublicKey(b)
}

// PublicKeyFromBytes copies b; b must be exactly PublicKeySize long.
func PublicKeyFromBytes(b []byte) (PublicKey, error) {
	if len(b) != PublicKeySize {
		return PublicKey{}, keypair.KeyInvalidError.Newf(
			"expected %d-byte key (got %d)",
			PublicKeySize,
			len(b),
		)
	}

	var pk PublicKey
	copy(pk[:], b)

	return pk, nil
}

// PublicKeyFrom converts any keypair.PublicKey of the ed25519 type.
func PublicKeyFrom(k keypair.PublicKey) (PublicKey, error) {
	switch t := k.(type) {
	case PublicKey:
		return t, nil
	case *PublicKey:
		if t == nil {
			return PublicKey{}, keypair.KeyInvalidError.Newf("nil public key")
		}
		return *t, nil
	}

	if isNil(k) {
		return PublicKey{}, keypair.KeyInvalidError.Newf("nil public key")
	}

	if k.Type() != Algorithm {
		return PublicKey{}, keypair.KeyInvalidError.Newf("not ed25519 public key; type=%q", k.Type())
	}

	return PublicKeyFromBytes(k.Bytes())
}

func DecodePublicKey(s string, e encode.Encoding) (PublicKey, error) {
	b, err := e.Decode(s)
	if err != nil {
		return PublicKey{}, keypair.KeyInvalidError.New(err)
	}

	if len(b) != PublicKeySize {
		return PublicKey{}, keypair.KeyInvalidError.Newf(
			"invalid %d-byte public key (expected %d)",
			len(b),
			PublicKeySize,
		)
	}

	return PublicKeyFromBytes(b)
}

func (pk PublicKey) Encode(e encode.Encoding) string {
	return e.Encode(pk[:])
}

func (pk PublicKey) Type() string {
	return Algorithm
}

func (pk PublicKey) Bytes() []byte {
	b := make([]byte, PublicKeySize)
	copy(b, pk[:])

	return b
}

func (pk PublicKey) Equal(k keypair.PublicKey) bool {
	if isNil(k) || k.Type() != Algorithm {
		return false
	}

	return bytes.Equal(pk[:], k.Bytes())
}

// Compare orders public keys by their bytes.
func (pk PublicKey) Compare(b PublicKey) int {
	return bytes.Compare(pk[:], b[:])
}

func (pk PublicKey) String() string {
	return base58.Encode(pk[:])
}

func (pk PublicKey) GoString() string {
	return fmt.Sprintf("ed25519.PublicKey(%s)", colonDelimitedHex(pk[:]))
}

func (pk PublicKey) MarshalText() ([]byte, error) {
	return []byte(pk.String()), nil
}

func (pk *PublicKey) UnmarshalText(b []byte) error {
	k, err := DecodePublicKey(string(b), encode.Base58{})
	if err != nil {
		return err
	}

	*pk = k

	return nil
}

func colonDelimitedHex(b []byte) string {
	s := make([]string, len(b))
	for i := range b {
		s[i] = fmt.Sprintf("%02X", b[i])
	}

	return strings.Join(s, ":")
}
