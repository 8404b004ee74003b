package stellar

import (
	"testing"

	"github.com/stretchr/testify/suite"
	"golang.org/x/xerrors"

	"github.com/spikeekips/signatory/ed25519"
	"github.com/spikeekips/signatory/ed25519/ed25519test"
	"github.com/spikeekips/signatory/keypair"
	"github.com/spikeekips/signatory/provider/xcrypto"
)

type testProvider struct {
	ed25519test.ProviderSuite
}

func (t *testProvider) SetupSuite() {
	t.Provider = Provider{}
}

func TestProvider(t *testing.T) {
	suite.Run(t, new(testProvider))
}

type testStellarSigner struct {
	suite.Suite
}

func (t *testStellarSigner) TestAddress() {
	signer := NewSigner(ed25519test.Vectors[0].MustSeed())
	t.Regexp(`^G[A-Z2-7]{55}$`, signer.Address())
	t.Equal("stellar.Signer("+signer.Address()+")", signer.String())

	pk, err := PublicKeyFromAddress(signer.Address())
	t.NoError(err)
	t.Equal(ed25519test.Vectors[0].MustPublicKey(), pk)

	verifier, err := ParseAddress(signer.Address())
	t.NoError(err)
	t.Equal(signer.Address(), verifier.Address())
	t.Equal(pk, verifier.PublicKey())

	sig := signer.SignEd25519([]byte("show me"))
	t.NoError(verifier.Verify([]byte("show me"), sig))
}

func (t *testStellarSigner) TestInvalidAddress() {
	signer := NewSigner(ed25519test.Vectors[0].MustSeed())

	last := "A"
	if signer.Address()[55:] == last {
		last = "B"
	}

	for _, address := range []string{
		"",
		"findme",
		signer.Address()[:55],
		// a checksum mismatch
		signer.Address()[:55] + last,
	} {
		_, err := ParseAddress(address)
		t.True(xerrors.Is(err, keypair.KeyInvalidError), "%q", address)
	}
}

func (t *testStellarSigner) TestInteroperable() {
	seed := ed25519test.Vectors[1].MustSeed()
	msg := []byte("show me")

	ss := NewSigner(seed)
	xs := xcrypto.NewSigner(seed)

	t.Equal(ss.Ed25519PublicKey(), xs.Ed25519PublicKey())
	t.Equal(ss.SignEd25519(msg), xs.SignEd25519(msg))

	sv, err := NewVerifier(xs.Ed25519PublicKey())
	t.NoError(err)
	t.NoError(sv.Verify(msg, xs.SignEd25519(msg)))
	t.NoError(xcrypto.NewVerifier(ss.Ed25519PublicKey()).Verify(msg, ss.SignEd25519(msg)))
}

func (t *testStellarSigner) TestProvider() {
	var _ keypair.Provider = Provider{}
	var _ keypair.KeyedSigner = (*Signer)(nil)
	var _ keypair.Verifier = Verifier{}

	t.Equal("stellar", Provider{}.String())

	var zero ed25519.PublicKey
	_, err := Provider{}.NewVerifier(zero)
	t.NoError(err)
}

func TestStellarSigner(t *testing.T) {
	suite.Run(t, new(testStellarSigner))
}
