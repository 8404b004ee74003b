package ed25519

import (
	"github.com/btcsuite/btcutil/base58"

	"github.com/spikeekips/signatory/keypair"
)

const SignatureSize = 64

type Signature [SignatureSize]byte

// SignatureFromBytes fails with SignatureInvalidError when b is not
// SignatureSize long; a malformed signature can never verify.
func SignatureFromBytes(b []byte) (Signature, error) {
	if len(b) != SignatureSize {
		return Signature{}, keypair.SignatureInvalidError
	}

	var sig Signature
	copy(sig[:], b)

	return sig, nil
}

// SignatureFrom converts any keypair.Signature; see SignatureFromBytes.
func SignatureFrom(s keypair.Signature) (Signature, error) {
	switch t := s.(type) {
	case Signature:
		return t, nil
	case *Signature:
		if t != nil {
			return *t, nil
		}
	default:
		if !isNil(s) {
			return SignatureFromBytes(t.Bytes())
		}
	}

	return Signature{}, keypair.SignatureInvalidError
}

func (s Signature) Bytes() []byte {
	b := make([]byte, SignatureSize)
	copy(b, s[:])

	return b
}

func (s Signature) String() string {
	return base58.Encode(s[:])
}
