package ed25519

import (
	"encoding/base64"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/suite"
	"golang.org/x/xerrors"

	"github.com/spikeekips/signatory/keypair"
)

const (
	testPKCS8Seed      = "9d61b19deffd5a60ba844af492ec2cc44449c5697b326919703bac031cae7f60"
	testPKCS8PublicKey = "d75a980182b10ab7d54bfed3c964073a0ee172f3daa62325af021a68f707511a"
)

type testPKCS8 struct {
	suite.Suite
}

func (t *testPKCS8) der(s string) []byte {
	b, err := hex.DecodeString(s)
	t.NoError(err)

	return b
}

func (t *testPKCS8) TestV1() {
	parsed, err := ParsePKCS8(t.der("302e020100300506032b657004220420" + testPKCS8Seed))
	t.NoError(err)
	t.Equal(0, parsed.Version)
	t.Nil(parsed.PublicKey)
	t.Equal(testPKCS8Seed, hex.EncodeToString(parsed.Seed[:]))

	var zero PublicKey
	t.NoError(parsed.CheckPublicKey(zero))
}

func (t *testPKCS8) TestV2() {
	parsed, err := ParsePKCS8(t.der(
		"3051020101300506032b657004220420" + testPKCS8Seed + "812100" + testPKCS8PublicKey,
	))
	t.NoError(err)
	t.Equal(1, parsed.Version)
	t.NotNil(parsed.PublicKey)
	t.Equal(testPKCS8PublicKey, hex.EncodeToString(parsed.PublicKey[:]))

	pk, _ := PublicKeyFromBytes(t.der(testPKCS8PublicKey))
	t.NoError(parsed.CheckPublicKey(pk))

	err = parsed.CheckPublicKey(PublicKey{})
	t.True(xerrors.Is(err, keypair.KeyInvalidError))
}

func (t *testPKCS8) TestV2WithAttributes() {
	parsed, err := ParsePKCS8(t.der(
		"3056020101300506032b657004220420" + testPKCS8Seed + "a003020100" + "812100" + testPKCS8PublicKey,
	))
	t.NoError(err)
	t.NotNil(parsed.PublicKey)
}

func (t *testPKCS8) TestV2Explicit() {
	parsed, err := ParsePKCS8(t.der(
		"3053020101300506032b657004220420" + testPKCS8Seed + "a123032100" + testPKCS8PublicKey,
	))
	t.NoError(err)
	t.Equal(1, parsed.Version)
	t.NotNil(parsed.PublicKey)
	t.Equal(testPKCS8PublicKey, hex.EncodeToString(parsed.PublicKey[:]))

	pk, _ := PublicKeyFromBytes(t.der(testPKCS8PublicKey))
	t.NoError(parsed.CheckPublicKey(pk))
	t.True(xerrors.Is(parsed.CheckPublicKey(PublicKey{}), keypair.KeyInvalidError))
}

func (t *testPKCS8) TestRFC8410Example() {
	// RFC 8410 section 10.3; the public key is the one published in 10.1
	der, err := base64.StdEncoding.DecodeString(
		"MHICAQEwBQYDK2VwBCIEINTuctv5E1hK1bbY8fdp+K06/nwoy/HU++CXqI9EdVhC" +
			"oB8wHQYKKoZIhvcNAQkJFDEPDA1DdXJkbGUgQ2hhaXJzgSEAGb9ECWmEzf6FQbrB" +
			"Z9w7lshQhqowtrbLDFw4rXAxZuE=",
	)
	t.NoError(err)

	parsed, err := ParsePKCS8(der)
	t.NoError(err)
	t.Equal(1, parsed.Version)
	t.Equal("d4ee72dbf913584ad5b6d8f1f769f8ad3afe7c28cbf1d4fbe097a88f44755842", hex.EncodeToString(parsed.Seed[:]))
	t.NotNil(parsed.PublicKey)
	t.Equal("19bf44096984cdfe8541bac167dc3b96c85086aa30b6b6cb0c5c38ad703166e1", hex.EncodeToString(parsed.PublicKey[:]))
}

func (t *testPKCS8) TestMalformed() {
	cases := []struct {
		name string
		der  string
		msg  string
	}{
		{name: "empty", der: "", msg: "not a single DER SEQUENCE"},
		{name: "not sequence", der: "0420" + testPKCS8Seed, msg: "not a single DER SEQUENCE"},
		{name: "trailing", der: "302e020100300506032b657004220420" + testPKCS8Seed + "00", msg: "not a single DER SEQUENCE"},
		{name: "no version", der: "3000", msg: "failed to read version"},
		{name: "version", der: "302e020105300506032b657004220420" + testPKCS8Seed, msg: "unknown version=5"},
		{name: "oid", der: "302e020100300506032b656e04220420" + testPKCS8Seed, msg: "not ed25519 key"},
		{name: "parameters", der: "3030020100300706032b6570050004220420" + testPKCS8Seed, msg: "parameters must be absent"},
		{name: "short key", der: "302d020100300506032b65700421041f" + testPKCS8Seed[:62], msg: "expected 32-byte private key (got 31)"},
		{name: "inner trailing", der: "302f020100300506032b657004230420" + testPKCS8Seed + "00", msg: "failed to read private key"},
		{name: "trailing in sequence", der: "3030020100300506032b657004220420" + testPKCS8Seed + "0500", msg: "trailing data"},
		{name: "v1 wrapped public key", der: "3053020100300506032b657004220420" + testPKCS8Seed + "a123032100" + testPKCS8PublicKey, msg: "v1 key must not have public key"},
		{name: "wrapped not bit string", der: "3053020101300506032b657004220420" + testPKCS8Seed + "a123042100" + testPKCS8PublicKey, msg: "invalid public key bit string"},
		{name: "v1 public key", der: "3051020100300506032b657004220420" + testPKCS8Seed + "812100" + testPKCS8PublicKey, msg: "v1 key must not have public key"},
	}

	for _, c := range cases {
		_, err := ParsePKCS8(t.der(c.der))
		t.True(xerrors.Is(err, keypair.KeyInvalidError), c.name)
		t.Contains(err.Error(), c.msg, c.name)
		t.NotContains(err.Error(), testPKCS8Seed, c.name)
	}
}

func TestPKCS8(t *testing.T) {
	suite.Run(t, new(testPKCS8))
}
