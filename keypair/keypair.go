// Package keypair defines the provider-agnostic signing contracts. Calling
// code depends on these interfaces only; a backend is plugged in by
// implementing them, never by changing them.
package keypair

type KeyImage uint

const (
	// Compressed is a single field element plus a sign bit.
	Compressed KeyImage = iota
	// Uncompressed is two field elements. Curves without an uncompressed
	// form, like Ed25519, return the compressed one.
	Uncompressed
)

func (k KeyImage) String() string {
	switch k {
	case Compressed:
		return "compressed"
	case Uncompressed:
		return "uncompressed"
	}

	return ""
}

type PublicKey interface {
	Type() string
	Bytes() []byte
	Equal(PublicKey) bool
	String() string
}

type Signature interface {
	Bytes() []byte
	String() string
}

// Signer produces signatures. Implementations must be safe for concurrent
// use.
type Signer interface {
	Sign([]byte) (Signature, error)
}

// Verifier returns nil only when the signature is valid for the message;
// any other outcome is SignatureInvalidError, with no further detail.
// Implementations must be safe for concurrent use.
type Verifier interface {
	Verify([]byte, Signature) error
}

// PublicKeyed is a signer which knows its public key. PublicKey never
// changes signer state.
type PublicKeyed interface {
	PublicKey(KeyImage) (PublicKey, error)
}

type KeyedSigner interface {
	Signer
	PublicKeyed
}

// Provider is a concrete backend. NewSigner takes the raw seed as given by
// the caller; NewSignerFromPKCS8 takes a DER encoded PKCS#8 private key.
type Provider interface {
	Type() Type
	NewSigner(seed []byte) (KeyedSigner, error)
	NewSignerFromPKCS8([]byte) (KeyedSigner, error)
	NewVerifier(PublicKey) (Verifier, error)
}
