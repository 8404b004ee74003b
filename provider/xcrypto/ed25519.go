// Package xcrypto is the Ed25519 provider backed by golang.org/x/crypto.
package xcrypto

import (
	xed25519 "golang.org/x/crypto/ed25519"

	"github.com/inconshreveable/log15"
	"github.com/spikeekips/signatory/common"
	"github.com/spikeekips/signatory/ed25519"
	"github.com/spikeekips/signatory/keypair"
)

var log log15.Logger = common.NewLogger("xcrypto")

func Log() log15.Logger {
	return log
}

var ProviderType keypair.Type = keypair.NewType(1, "xcrypto")

// Signer owns the expanded private key; it is never exposed.
type Signer struct {
	key       xed25519.PrivateKey
	publicKey ed25519.PublicKey
}

// NewSigner derives the keypair from an unexpanded seed.
func NewSigner(seed ed25519.Seed) *Signer {
	key := xed25519.NewKeyFromSeed(seed[:])

	pk, err := ed25519.PublicKeyFromBytes(key.Public().(xed25519.PublicKey))
	if err != nil {
		panic(err)
	}

	return &Signer{key: key, publicKey: pk}
}

// NewSignerFromPKCS8 fails with keypair.KeyInvalidError for anything but a
// well formed PKCS#8 Ed25519 private key.
func NewSignerFromPKCS8(der []byte) (*Signer, error) {
	parsed, err := ed25519.ParsePKCS8(der)
	if err != nil {
		log.Debug("pkcs8 key rejected", "error", err)
		return nil, err
	}

	signer := NewSigner(parsed.Seed)
	if err := parsed.CheckPublicKey(signer.publicKey); err != nil {
		log.Debug("pkcs8 key rejected", "error", err)
		return nil, err
	}

	return signer, nil
}

// PublicKey always returns the compressed key, whatever image is asked.
func (s *Signer) PublicKey(keypair.KeyImage) (keypair.PublicKey, error) {
	return s.publicKey, nil
}

func (s *Signer) Ed25519PublicKey() ed25519.PublicKey {
	return s.publicKey
}

func (s *Signer) Sign(msg []byte) (keypair.Signature, error) {
	return s.SignEd25519(msg), nil
}

func (s *Signer) SignEd25519(msg []byte) ed25519.Signature {
	sig, err := ed25519.SignatureFromBytes(xed25519.Sign(s.key, msg))
	if err != nil {
		panic(err)
	}

	return sig
}

func (s *Signer) String() string {
	return "xcrypto.Signer(" + s.publicKey.String() + ")"
}

type Verifier struct {
	publicKey ed25519.PublicKey
}

func NewVerifier(pk ed25519.PublicKey) Verifier {
	return Verifier{publicKey: pk}
}

func (v Verifier) PublicKey() ed25519.PublicKey {
	return v.publicKey
}

func (v Verifier) Verify(msg []byte, signature keypair.Signature) error {
	sig, err := ed25519.SignatureFrom(signature)
	if err != nil {
		return v.failed()
	}

	if !xed25519.Verify(xed25519.PublicKey(v.publicKey[:]), msg, sig[:]) {
		return v.failed()
	}

	return nil
}

func (v Verifier) failed() error {
	log.Debug("signature verification failed", "public_key", v.publicKey)
	return keypair.SignatureInvalidError
}
