// Package ed25519test is the conformance suite every Ed25519 provider runs
// in its own tests.
package ed25519test

import (
	"encoding/base64"
	"encoding/hex"

	"github.com/spikeekips/signatory/ed25519"
)

type Vector struct {
	Seed      string
	PublicKey string
	Message   string
	Signature string
}

// Vectors are TEST 1 and TEST 2 of RFC 8032 section 7.1.
var Vectors = []Vector{
	{
		Seed:      "9d61b19deffd5a60ba844af492ec2cc44449c5697b326919703bac031cae7f60",
		PublicKey: "d75a980182b10ab7d54bfed3c964073a0ee172f3daa62325af021a68f707511a",
		Message:   "",
		Signature: "e5564300c360ac729086e2cc806e828a84877f1eb8e5d974d873e065224901555fb8821590a33bacc61e39701cf9b46bd25bf5f0595bbe24655141438e7a100b",
	},
	{
		Seed:      "4ccd089b28ff96da9db6c346ec114e0f5b8a319f35aba624da8cf6ed4fb8a6fb",
		PublicKey: "3d4017c3e843895a92b70aa74d1b7ebc9c982ccf2ec4968cc0cd55f12af4660c",
		Message:   "72",
		Signature: "92a009a9f0d4cab8720e820b5f642540a2b27b5416503f8fb3762223ebdb69da085ac1e43e15996e458f3613d0f11d8c387b2eaeb4302aeeb00d291612bb0c00",
	},
}

func (v Vector) SeedBytes() []byte {
	return MustHex(v.Seed)
}

func (v Vector) MustSeed() ed25519.Seed {
	seed, err := ed25519.NewSeed(v.SeedBytes())
	if err != nil {
		panic(err)
	}

	return seed
}

func (v Vector) MustPublicKey() ed25519.PublicKey {
	pk, err := ed25519.PublicKeyFromBytes(MustHex(v.PublicKey))
	if err != nil {
		panic(err)
	}

	return pk
}

func (v Vector) MessageBytes() []byte {
	return MustHex(v.Message)
}

func (v Vector) SignatureBytes() []byte {
	return MustHex(v.Signature)
}

// PKCS8V1 is the DER of a PKCS#8 v1 key without public key.
func (v Vector) PKCS8V1() []byte {
	return MustHex("302e020100300506032b657004220420" + v.Seed)
}

// PKCS8V2 is the DER of a PKCS#8 v2 key carrying the public key.
func (v Vector) PKCS8V2() []byte {
	return MustHex("3051020101300506032b657004220420" + v.Seed + "812100" + v.PublicKey)
}

// PKCS8V2Explicit is the DER of a PKCS#8 v2 key whose public key is a BIT
// STRING wrapped in a constructed [1], the layout ring generates.
func (v Vector) PKCS8V2Explicit() []byte {
	return MustHex("3053020101300506032b657004220420" + v.Seed + "a123032100" + v.PublicKey)
}

// RFC8410 is the PKCS#8 v2 example of RFC 8410 section 10.3, with an
// attribute and an implicit [1] public key. PublicKey is the key published
// in section 10.1.
var RFC8410 = struct {
	DER       string
	Seed      string
	PublicKey string
}{
	DER: "MHICAQEwBQYDK2VwBCIEINTuctv5E1hK1bbY8fdp+K06/nwoy/HU++CXqI9EdVhC" +
		"oB8wHQYKKoZIhvcNAQkJFDEPDA1DdXJkbGUgQ2hhaXJzgSEAGb9ECWmEzf6FQbrB" +
		"Z9w7lshQhqowtrbLDFw4rXAxZuE=",
	Seed:      "d4ee72dbf913584ad5b6d8f1f769f8ad3afe7c28cbf1d4fbe097a88f44755842",
	PublicKey: "19bf44096984cdfe8541bac167dc3b96c85086aa30b6b6cb0c5c38ad703166e1",
}

func RFC8410DER() []byte {
	b, err := base64.StdEncoding.DecodeString(RFC8410.DER)
	if err != nil {
		panic(err)
	}

	return b
}

func MustHex(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic(err)
	}

	return b
}

// MalformedPKCS8 returns DER inputs every provider must reject.
func MalformedPKCS8() [][]byte {
	v0, v1 := Vectors[0], Vectors[1]
	v1der := v0.PKCS8V1()

	return [][]byte{
		nil,
		{},
		[]byte("findme"),
		// truncated
		v1der[:len(v1der)-1],
		// trailing data
		append(v0.PKCS8V1(), 0),
		// unknown version
		MustHex("302e020102300506032b657004220420" + v0.Seed),
		// X25519 oid
		MustHex("302e020100300506032b656e04220420" + v0.Seed),
		// algorithm parameters present
		MustHex("3030020100300706032b6570050004220420" + v0.Seed),
		// 31-byte private key
		MustHex("302d020100300506032b65700421041f" + v0.Seed[:62]),
		// private key not wrapped in the inner OCTET STRING
		MustHex("302c020100300506032b65700420" + v0.Seed),
		// v1 with public key
		MustHex("3051020100300506032b657004220420" + v0.Seed + "812100" + v0.PublicKey),
		// public key bit string with unused bits
		MustHex("3051020101300506032b657004220420" + v0.Seed + "812101" + v0.PublicKey),
		// v1 with wrapped public key
		MustHex("3053020100300506032b657004220420" + v0.Seed + "a123032100" + v0.PublicKey),
		// wrapped public key is not a BIT STRING
		MustHex("3053020101300506032b657004220420" + v0.Seed + "a123042100" + v0.PublicKey),
		// wrapped public key with unused bits
		MustHex("3053020101300506032b657004220420" + v0.Seed + "a123032101" + v0.PublicKey),
		// short public key
		MustHex("3050020101300506032b657004220420" + v0.Seed + "812000" + v1.PublicKey[:62]),
	}
}
