package stellar

import (
	"github.com/spikeekips/signatory/ed25519"
	"github.com/spikeekips/signatory/keypair"
)

type Provider struct{}

func (Provider) Type() keypair.Type {
	return ProviderType
}

func (Provider) NewSigner(b []byte) (keypair.KeyedSigner, error) {
	seed, err := ed25519.NewSeed(b)
	if err != nil {
		return nil, err
	}

	return NewSigner(seed), nil
}

func (Provider) NewSignerFromPKCS8(b []byte) (keypair.KeyedSigner, error) {
	signer, err := NewSignerFromPKCS8(b)
	if err != nil {
		return nil, err
	}

	return signer, nil
}

func (Provider) NewVerifier(k keypair.PublicKey) (keypair.Verifier, error) {
	pk, err := ed25519.PublicKeyFrom(k)
	if err != nil {
		return nil, err
	}

	verifier, err := NewVerifier(pk)
	if err != nil {
		return nil, err
	}

	return verifier, nil
}

func (p Provider) String() string {
	return p.Type().String()
}
