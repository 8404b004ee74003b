// Package stellar is the Ed25519 provider backed by the stellar keypair
// package. Keys there are held as strkey text, so public keys are decoded
// from and encoded to the Stellar account address form.
package stellar

import (
	"github.com/inconshreveable/log15"
	stellarKeypair "github.com/stellar/go/keypair"
	"github.com/stellar/go/strkey"

	"github.com/spikeekips/signatory/common"
	"github.com/spikeekips/signatory/ed25519"
	"github.com/spikeekips/signatory/keypair"
)

var log log15.Logger = common.NewLogger("stellar")

func Log() log15.Logger {
	return log
}

var ProviderType keypair.Type = keypair.NewType(2, "stellar")

type Signer struct {
	kp        *stellarKeypair.Full
	publicKey ed25519.PublicKey
}

func NewSigner(seed ed25519.Seed) *Signer {
	kp, err := stellarKeypair.FromRawSeed([ed25519.SeedSize]byte(seed))
	if err != nil {
		panic(err)
	}

	pk, err := PublicKeyFromAddress(kp.Address())
	if err != nil {
		panic(err)
	}

	return &Signer{kp: kp, publicKey: pk}
}

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

func (s *Signer) PublicKey(keypair.KeyImage) (keypair.PublicKey, error) {
	return s.publicKey, nil
}

func (s *Signer) Ed25519PublicKey() ed25519.PublicKey {
	return s.publicKey
}

// Address is the Stellar account address, "G...", of the public key.
func (s *Signer) Address() string {
	return s.kp.Address()
}

func (s *Signer) Sign(msg []byte) (keypair.Signature, error) {
	return s.SignEd25519(msg), nil
}

func (s *Signer) SignEd25519(msg []byte) ed25519.Signature {
	b, err := s.kp.Sign(msg)
	if err != nil {
		panic(err)
	}

	sig, err := ed25519.SignatureFromBytes(b)
	if err != nil {
		panic(err)
	}

	return sig
}

func (s *Signer) String() string {
	return "stellar.Signer(" + s.kp.Address() + ")"
}

type Verifier struct {
	publicKey ed25519.PublicKey
	kp        stellarKeypair.KP
}

func NewVerifier(pk ed25519.PublicKey) (Verifier, error) {
	address, err := strkey.Encode(strkey.VersionByteAccountID, pk[:])
	if err != nil {
		return Verifier{}, keypair.KeyInvalidError.Newf("failed to encode stellar address")
	}

	kp, err := stellarKeypair.Parse(address)
	if err != nil {
		return Verifier{}, keypair.KeyInvalidError.Newf("failed to parse stellar address")
	}

	return Verifier{publicKey: pk, kp: kp}, nil
}

// ParseAddress makes a Verifier from a Stellar account address.
func ParseAddress(address string) (Verifier, error) {
	pk, err := PublicKeyFromAddress(address)
	if err != nil {
		return Verifier{}, err
	}

	return NewVerifier(pk)
}

func (v Verifier) PublicKey() ed25519.PublicKey {
	return v.publicKey
}

func (v Verifier) Address() string {
	return v.kp.Address()
}

func (v Verifier) Verify(msg []byte, signature keypair.Signature) error {
	sig, err := ed25519.SignatureFrom(signature)
	if err != nil {
		return v.failed()
	}

	// every stellar error, ErrInvalidSignature or not, is the same failure
	if err := v.kp.Verify(msg, sig[:]); err != nil {
		return v.failed()
	}

	return nil
}

func (v Verifier) failed() error {
	log.Debug("signature verification failed", "public_key", v.publicKey)
	return keypair.SignatureInvalidError
}

func PublicKeyFromAddress(address string) (ed25519.PublicKey, error) {
	b, err := strkey.Decode(strkey.VersionByteAccountID, address)
	if err != nil {
		return ed25519.PublicKey{}, keypair.KeyInvalidError.Newf("invalid stellar address")
	}

	return ed25519.PublicKeyFromBytes(b)
}
