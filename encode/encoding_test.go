package encode

import (
	"testing"

	"github.com/stretchr/testify/suite"
	"golang.org/x/xerrors"
)

type testEncoding struct {
	suite.Suite
}

func (t *testEncoding) encodings() []Encoding {
	return []Encoding{Hex{}, Base64{}, Base58{}}
}

func (t *testEncoding) TestRoundTrip() {
	inputs := [][]byte{
		{},
		{0},
		make([]byte, 32),
		[]byte("findme"),
		{0, 0, 1, 2, 0xff, 0xfe},
	}

	for _, e := range t.encodings() {
		for i, b := range inputs {
			s := e.Encode(b)
			d, err := e.Decode(s)
			t.NoError(err, "%s: %d", e.Type(), i)
			t.Equal(len(b), len(d), "%s: %d", e.Type(), i)
			if len(b) > 0 {
				t.Equal(b, d, "%s: %d", e.Type(), i)
			}
		}
	}
}

func (t *testEncoding) TestKnownValues() {
	b := []byte("show me")

	t.Equal("73686f77206d65", Hex{}.Encode(b))
	t.Equal("c2hvdyBtZQ==", Base64{}.Encode(b))
	t.Equal(32, len(Base58{}.Encode(make([]byte, 32))))
}

func (t *testEncoding) TestDecodeFailed() {
	cases := []struct {
		e Encoding
		s string
	}{
		{e: Hex{}, s: "zz"},
		{e: Hex{}, s: "abc"},
		{e: Base64{}, s: "c2hvdyBtZQ="},
		{e: Base58{}, s: "0OIl"},
	}

	for i, c := range cases {
		_, err := c.e.Decode(c.s)
		t.True(xerrors.Is(err, DecodeFailedError), "%d: %s", i, c.e.Type())
		t.NotContains(err.Error(), c.s)
	}
}

func TestEncoding(t *testing.T) {
	suite.Run(t, new(testEncoding))
}

type testEncodings struct {
	suite.Suite
}

func (t *testEncodings) TestRegister() {
	e := NewEncodings()
	t.NoError(e.Register(Hex{}))

	err := e.Register(Hex{})
	t.True(xerrors.Is(err, EncodingAlreadyRegisteredError))
}

func (t *testEncodings) TestDefault() {
	e := NewEncodings()
	_, err := e.Default()
	t.True(xerrors.Is(err, EncodingNotRegisteredError))

	t.NoError(e.Register(Base58{}))
	t.NoError(e.Register(Hex{}))

	d, err := e.Default()
	t.NoError(err)
	t.Equal(Base58Type, d.Type())

	t.NoError(e.SetDefault(HexType))
	d, _ = e.Default()
	t.Equal(HexType, d.Type())

	err = e.SetDefault(Base64Type)
	t.True(xerrors.Is(err, EncodingNotRegisteredError))
}

func (t *testEncodings) TestByName() {
	e := NewDefaultEncodings()

	for _, name := range []string{"hex", "base64", "base58"} {
		en, err := e.ByName(name)
		t.NoError(err)
		t.Equal(name, en.Type().Name())
	}

	_, err := e.ByName("base32")
	t.True(xerrors.Is(err, EncodingNotRegisteredError))
}

func (t *testEncodings) TestUnmarshalText() {
	var ty Type
	t.NoError(ty.UnmarshalText([]byte("base64")))

	en, err := NewDefaultEncodings().Encoding(ty)
	t.NoError(err)
	t.True(Base64Type.Equal(en.Type()))
}

func TestEncodings(t *testing.T) {
	suite.Run(t, new(testEncodings))
}
