package keypair

import (
	"testing"

	"github.com/stretchr/testify/suite"
	"golang.org/x/xerrors"
)

type dummyProvider struct {
	t Type
}

func (d dummyProvider) Type() Type {
	return d.t
}

func (d dummyProvider) NewSigner([]byte) (KeyedSigner, error) {
	return nil, KeyInvalidError.Newf("provider=%s", d.t)
}

func (d dummyProvider) NewSignerFromPKCS8([]byte) (KeyedSigner, error) {
	return nil, KeyInvalidError.Newf("provider=%s", d.t)
}

func (d dummyProvider) NewVerifier(PublicKey) (Verifier, error) {
	return nil, KeyInvalidError.Newf("provider=%s", d.t)
}

var (
	dummyAType = NewType(1, "dummy-a")
	dummyBType = NewType(2, "dummy-b")
)

type testProviders struct {
	suite.Suite
}

func (t *testProviders) TestRegister() {
	p := NewProviders()
	t.NoError(p.Register(dummyProvider{t: dummyAType}))

	// register again
	err := p.Register(dummyProvider{t: dummyAType})
	t.True(xerrors.Is(err, ProviderAlreadyRegisteredError))

	// same name, other id
	err = p.Register(dummyProvider{t: NewType(3, "dummy-a")})
	t.True(xerrors.Is(err, ProviderAlreadyRegisteredError))
}

func (t *testProviders) TestDefault() {
	p := NewProviders()

	_, err := p.Default()
	t.True(xerrors.Is(err, ProviderNotRegisteredError))

	_, err = p.NewSigner(nil)
	t.True(xerrors.Is(err, ProviderNotRegisteredError))

	t.NoError(p.Register(dummyProvider{t: dummyAType}))
	t.NoError(p.Register(dummyProvider{t: dummyBType}))

	d, err := p.Default()
	t.NoError(err)
	t.Equal(dummyAType, d.Type())

	t.NoError(p.SetDefault(dummyBType))

	_, err = p.NewSigner(nil)
	t.True(xerrors.Is(err, KeyInvalidError))
	t.Contains(err.Error(), "provider=dummy-b")

	_, err = p.NewSignerFromPKCS8(nil)
	t.Contains(err.Error(), "provider=dummy-b")

	_, err = p.NewVerifier(nil)
	t.Contains(err.Error(), "provider=dummy-b")

	err = p.SetDefault(NewType(9, "unknown"))
	t.True(xerrors.Is(err, ProviderNotRegisteredError))
}

func (t *testProviders) TestProviderByName() {
	p := NewProviders()
	t.NoError(p.Register(dummyProvider{t: dummyAType}))

	var kt Type
	t.NoError(kt.UnmarshalText([]byte("dummy-a")))
	t.True(kt.Empty())

	d, err := p.Provider(kt)
	t.NoError(err)
	t.True(dummyAType.Equal(d.Type()))

	_, err = p.Provider(NewType(0, "dummy-c"))
	t.True(xerrors.Is(err, ProviderNotRegisteredError))
}

func TestProviders(t *testing.T) {
	suite.Run(t, new(testProviders))
}

type testKeyImage struct {
	suite.Suite
}

func (t *testKeyImage) TestString() {
	t.Equal("compressed", Compressed.String())
	t.Equal("uncompressed", Uncompressed.String())
	t.Equal("", KeyImage(9).String())
}

func TestKeyImage(t *testing.T) {
	suite.Run(t, new(testKeyImage))
}
