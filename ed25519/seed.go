package ed25519

import (
	"io"

	"github.com/spikeekips/signatory/encode"
	"github.com/spikeekips/signatory/keypair"
)

const SeedSize = 32

// Seed is the unexpanded Ed25519 private key. The length check happens
// here, once; providers take a Seed as already valid and never fail on it.
type Seed [SeedSize]byte

func NewSeed(b []byte) (Seed, error) {
	if len(b) != SeedSize {
		return Seed{}, keypair.KeyInvalidError.Newf(
			"expected %d-byte seed (got %d)",
			SeedSize,
			len(b),
		)
	}

	var seed Seed
	copy(seed[:], b)

	return seed, nil
}

// ReadSeed reads exactly SeedSize bytes from r, usually a caller supplied
// entropy source like crypto/rand.Reader.
func ReadSeed(r io.Reader) (Seed, error) {
	var seed Seed
	if _, err := io.ReadFull(r, seed[:]); err != nil {
		return Seed{}, keypair.KeyInvalidError.New(err)
	}

	return seed, nil
}

// DecodeSeed never wraps the decoder error, so the text does not end up in
// error messages.
func DecodeSeed(s string, e encode.Encoding) (Seed, error) {
	b, err := e.Decode(s)
	if err != nil {
		return Seed{}, keypair.KeyInvalidError.Newf("failed to decode %s seed", e.Type())
	}

	return NewSeed(b)
}

func (s Seed) String() string {
	return "ed25519.Seed(<redacted>)"
}

func (s Seed) GoString() string {
	return s.String()
}
