package ed25519

import (
	encodingasn1 "encoding/asn1"

	"golang.org/x/crypto/cryptobyte"
	"golang.org/x/crypto/cryptobyte/asn1"

	"github.com/spikeekips/signatory/keypair"
)

// OIDEd25519 is id-Ed25519 from RFC 8410.
var OIDEd25519 = encodingasn1.ObjectIdentifier{1, 3, 101, 112}

const (
	pkcs8V1 = 0
	pkcs8V2 = 1
)

var (
	tagAttributes = asn1.Tag(0).Constructed().ContextSpecific()
	// RFC 8410 form, [1] IMPLICIT BIT STRING
	tagPublicKey = asn1.Tag(1).ContextSpecific()
	// ring form, [1] wrapping a BIT STRING
	tagPublicKeyExplicit = asn1.Tag(1).Constructed().ContextSpecific()
)

// PKCS8Key is the content of a PKCS#8 (RFC 5958 OneAsymmetricKey) Ed25519
// private key. PublicKey is set only for v2 keys which carry one.
type PKCS8Key struct {
	Version   int
	Seed      Seed
	PublicKey *PublicKey
}

// ParsePKCS8 parses DER encoded PKCS#8 v1 or v2 Ed25519 private keys. Any
// structural problem is KeyInvalidError. It does not check that an embedded
// public key belongs to the seed; providers do that against their own
// derivation.
func ParsePKCS8(der []byte) (PKCS8Key, error) {
	input := cryptobyte.String(der)

	var key cryptobyte.String
	if !input.ReadASN1(&key, asn1.SEQUENCE) || !input.Empty() {
		return PKCS8Key{}, keypair.KeyInvalidError.Newf("pkcs8; not a single DER SEQUENCE")
	}

	var version int
	if !key.ReadASN1Integer(&version) {
		return PKCS8Key{}, keypair.KeyInvalidError.Newf("pkcs8; failed to read version")
	}
	if version != pkcs8V1 && version != pkcs8V2 {
		return PKCS8Key{}, keypair.KeyInvalidError.Newf("pkcs8; unknown version=%d", version)
	}

	var algorithm cryptobyte.String
	var oid encodingasn1.ObjectIdentifier
	if !key.ReadASN1(&algorithm, asn1.SEQUENCE) || !algorithm.ReadASN1ObjectIdentifier(&oid) {
		return PKCS8Key{}, keypair.KeyInvalidError.Newf("pkcs8; failed to read algorithm identifier")
	}
	if !oid.Equal(OIDEd25519) {
		return PKCS8Key{}, keypair.KeyInvalidError.Newf("pkcs8; not ed25519 key; oid=%s", oid.String())
	}
	if !algorithm.Empty() {
		return PKCS8Key{}, keypair.KeyInvalidError.Newf("pkcs8; ed25519 algorithm parameters must be absent")
	}

	var privateKey, curvePrivateKey cryptobyte.String
	if !key.ReadASN1(&privateKey, asn1.OCTET_STRING) ||
		!privateKey.ReadASN1(&curvePrivateKey, asn1.OCTET_STRING) ||
		!privateKey.Empty() {
		return PKCS8Key{}, keypair.KeyInvalidError.Newf("pkcs8; failed to read private key")
	}
	if len(curvePrivateKey) != SeedSize {
		return PKCS8Key{}, keypair.KeyInvalidError.Newf(
			"pkcs8; expected %d-byte private key (got %d)",
			SeedSize,
			len(curvePrivateKey),
		)
	}

	var attributes cryptobyte.String
	if !key.ReadOptionalASN1(&attributes, nil, tagAttributes) {
		return PKCS8Key{}, keypair.KeyInvalidError.Newf("pkcs8; failed to read attributes")
	}

	publicKey, hasPublicKey, err := readPKCS8PublicKey(&key)
	if err != nil {
		return PKCS8Key{}, err
	}

	if !key.Empty() {
		return PKCS8Key{}, keypair.KeyInvalidError.Newf("pkcs8; trailing data")
	}

	parsed := PKCS8Key{Version: version}
	copy(parsed.Seed[:], curvePrivateKey)

	switch {
	case hasPublicKey && version == pkcs8V1:
		return PKCS8Key{}, keypair.KeyInvalidError.Newf("pkcs8; v1 key must not have public key")
	case hasPublicKey:
		// BIT STRING; the first byte is the number of unused bits
		var unused uint8
		if !publicKey.ReadUint8(&unused) || unused != 0 {
			return PKCS8Key{}, keypair.KeyInvalidError.Newf("pkcs8; invalid public key bit string")
		}

		pk, err := PublicKeyFromBytes(publicKey)
		if err != nil {
			return PKCS8Key{}, keypair.KeyInvalidError.Newf("pkcs8; invalid public key length=%d", len(publicKey))
		}
		parsed.PublicKey = &pk
	}

	return parsed, nil
}

func readPKCS8PublicKey(key *cryptobyte.String) (cryptobyte.String, bool, error) {
	var publicKey cryptobyte.String
	var present bool
	if !key.ReadOptionalASN1(&publicKey, &present, tagPublicKey) {
		return nil, false, keypair.KeyInvalidError.Newf("pkcs8; failed to read public key")
	}
	if present {
		return publicKey, true, nil
	}

	var wrapped cryptobyte.String
	if !key.ReadOptionalASN1(&wrapped, &present, tagPublicKeyExplicit) {
		return nil, false, keypair.KeyInvalidError.Newf("pkcs8; failed to read public key")
	}
	if !present {
		return nil, false, nil
	}

	if !wrapped.ReadASN1(&publicKey, asn1.BIT_STRING) || !wrapped.Empty() {
		return nil, false, keypair.KeyInvalidError.Newf("pkcs8; invalid public key bit string")
	}

	return publicKey, true, nil
}

// CheckPublicKey returns KeyInvalidError when the key carries a public key
// different from derived.
func (k PKCS8Key) CheckPublicKey(derived PublicKey) error {
	if k.PublicKey == nil {
		return nil
	}

	if k.PublicKey.Compare(derived) != 0 {
		return keypair.KeyInvalidError.Newf("pkcs8; public key does not match private key")
	}

	return nil
}
