package xcrypto

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/suite"
	"golang.org/x/xerrors"

	"github.com/spikeekips/signatory/ed25519"
	"github.com/spikeekips/signatory/ed25519/ed25519test"
	"github.com/spikeekips/signatory/keypair"
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

type testSigner struct {
	suite.Suite
}

func (t *testSigner) TestNewSigner() {
	v := ed25519test.Vectors[0]

	signer := NewSigner(v.MustSeed())
	t.Equal(v.MustPublicKey(), signer.Ed25519PublicKey())

	sig := signer.SignEd25519(v.MessageBytes())
	t.Equal(v.SignatureBytes(), sig.Bytes())

	t.NoError(NewVerifier(signer.Ed25519PublicKey()).Verify(v.MessageBytes(), sig))
}

func (t *testSigner) TestNewSignerFromPKCS8() {
	v := ed25519test.Vectors[1]

	signer, err := NewSignerFromPKCS8(v.PKCS8V2())
	t.NoError(err)
	t.Equal(v.MustPublicKey(), signer.Ed25519PublicKey())

	_, err = NewSignerFromPKCS8(v.SeedBytes())
	t.True(xerrors.Is(err, keypair.KeyInvalidError))
}

func (t *testSigner) TestString() {
	signer := NewSigner(ed25519test.Vectors[0].MustSeed())

	t.Regexp(regexp.MustCompile(`^xcrypto\.Signer\([1-9A-HJ-NP-Za-km-z]+\)$`), signer.String())
	t.NotContains(signer.String(), ed25519test.Vectors[0].Seed)
}

func (t *testSigner) TestVerifierPublicKey() {
	pk := ed25519test.Vectors[0].MustPublicKey()
	t.Equal(pk, NewVerifier(pk).PublicKey())
}

func (t *testSigner) TestProvider() {
	var _ keypair.Provider = Provider{}
	var _ keypair.KeyedSigner = (*Signer)(nil)
	var _ keypair.Verifier = Verifier{}

	t.Equal("xcrypto", Provider{}.String())

	k, err := Provider{}.NewVerifier(ed25519test.Vectors[0].MustPublicKey())
	t.NoError(err)
	_, ok := k.(Verifier)
	t.True(ok)

	var zero ed25519.PublicKey
	_, err = Provider{}.NewVerifier(&zero)
	t.NoError(err)
}

func TestSigner(t *testing.T) {
	suite.Run(t, new(testSigner))
}
