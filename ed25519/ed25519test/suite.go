package ed25519test

import (
	"encoding/hex"
	"sync"

	"github.com/stretchr/testify/suite"
	"golang.org/x/sync/errgroup"
	"golang.org/x/xerrors"

	"github.com/spikeekips/signatory/ed25519"
	"github.com/spikeekips/signatory/keypair"
)

// ProviderSuite checks a keypair.Provider against Ed25519 behavior. Embed
// it, set Provider in SetupSuite and run it with suite.Run.
type ProviderSuite struct {
	suite.Suite
	Provider keypair.Provider
}

func (t *ProviderSuite) signer(seed []byte) keypair.KeyedSigner {
	signer, err := t.Provider.NewSigner(seed)
	t.NoError(err)
	t.NotNil(signer)

	return signer
}

func (t *ProviderSuite) publicKey(signer keypair.PublicKeyed) ed25519.PublicKey {
	k, err := signer.PublicKey(keypair.Compressed)
	t.NoError(err)

	pk, err := ed25519.PublicKeyFrom(k)
	t.NoError(err)

	return pk
}

func (t *ProviderSuite) verifier(signer keypair.PublicKeyed) keypair.Verifier {
	k, err := signer.PublicKey(keypair.Compressed)
	t.NoError(err)

	verifier, err := t.Provider.NewVerifier(k)
	t.NoError(err)

	return verifier
}

func (t *ProviderSuite) isSignatureInvalid(err error) {
	t.True(xerrors.Is(err, keypair.SignatureInvalidError), "%+v", err)
	// no reason is given beyond the kind
	t.Equal(keypair.SignatureInvalidError.Error(), err.Error())
}

func (t *ProviderSuite) TestVectors() {
	for i, v := range Vectors {
		signer := t.signer(v.SeedBytes())
		t.Equal(v.MustPublicKey(), t.publicKey(signer), "%d", i)

		sig, err := signer.Sign(v.MessageBytes())
		t.NoError(err)
		t.Equal(v.SignatureBytes(), sig.Bytes(), "%d", i)

		verifier, err := t.Provider.NewVerifier(v.MustPublicKey())
		t.NoError(err)
		t.NoError(verifier.Verify(v.MessageBytes(), sig), "%d", i)

		rsig, err := ed25519.SignatureFromBytes(v.SignatureBytes())
		t.NoError(err)
		t.NoError(verifier.Verify(v.MessageBytes(), rsig), "%d", i)
	}
}

func (t *ProviderSuite) TestPublicKeyDeterministic() {
	seed := Vectors[0].SeedBytes()

	pk0 := t.publicKey(t.signer(seed))
	pk1 := t.publicKey(t.signer(seed))
	t.Equal(pk0, pk1)

	signer := t.signer(seed)
	compressed, err := signer.PublicKey(keypair.Compressed)
	t.NoError(err)
	uncompressed, err := signer.PublicKey(keypair.Uncompressed)
	t.NoError(err)

	t.Equal(ed25519.PublicKeySize, len(compressed.Bytes()))
	t.True(compressed.Equal(uncompressed))
	t.True(compressed.Equal(pk0))
}

func (t *ProviderSuite) TestSignDeterministic() {
	signer := t.signer(make([]byte, ed25519.SeedSize))
	msg := []byte("test message")

	sig0, err := signer.Sign(msg)
	t.NoError(err)
	sig1, err := signer.Sign(msg)
	t.NoError(err)

	t.Equal(ed25519.SignatureSize, len(sig0.Bytes()))
	t.Equal(sig0.Bytes(), sig1.Bytes())

	verifier := t.verifier(signer)
	t.NoError(verifier.Verify(msg, sig0))

	t.isSignatureInvalid(verifier.Verify([]byte("Test message"), sig0))
}

func (t *ProviderSuite) TestSignVerify() {
	msgs := [][]byte{
		nil,
		{},
		[]byte("findme"),
		make([]byte, 1024),
	}

	for _, v := range Vectors {
		signer := t.signer(v.SeedBytes())
		verifier := t.verifier(signer)

		for i, msg := range msgs {
			sig, err := signer.Sign(msg)
			t.NoError(err)
			t.NoError(verifier.Verify(msg, sig), "%d", i)
		}
	}
}

func (t *ProviderSuite) TestTamperedSignature() {
	signer := t.signer(Vectors[1].SeedBytes())
	verifier := t.verifier(signer)

	msg := []byte("show me")
	sig, err := signer.Sign(msg)
	t.NoError(err)

	b := sig.Bytes()
	for i := 0; i < len(b)*8; i++ {
		tampered := make([]byte, len(b))
		copy(tampered, b)
		tampered[i/8] ^= 1 << uint(i%8)

		tsig, err := ed25519.SignatureFromBytes(tampered)
		t.NoError(err)

		err = verifier.Verify(msg, tsig)
		t.True(xerrors.Is(err, keypair.SignatureInvalidError), "bit=%d", i)
	}

	// the original is untouched
	t.NoError(verifier.Verify(msg, sig))
}

func (t *ProviderSuite) TestTamperedMessage() {
	signer := t.signer(Vectors[0].SeedBytes())
	verifier := t.verifier(signer)

	msg := []byte("show me")
	sig, err := signer.Sign(msg)
	t.NoError(err)

	for i := 0; i < len(msg)*8; i++ {
		tampered := make([]byte, len(msg))
		copy(tampered, msg)
		tampered[i/8] ^= 1 << uint(i%8)

		t.isSignatureInvalid(verifier.Verify(tampered, sig))
	}
}

func (t *ProviderSuite) TestOtherPublicKey() {
	signer := t.signer(Vectors[0].SeedBytes())
	other := t.verifier(t.signer(Vectors[1].SeedBytes()))

	msg := []byte("show me")
	sig, err := signer.Sign(msg)
	t.NoError(err)

	t.isSignatureInvalid(other.Verify(msg, sig))
}

func (t *ProviderSuite) TestMalformedSignature() {
	signer := t.signer(Vectors[0].SeedBytes())
	verifier := t.verifier(signer)

	msg := []byte("show me")
	sig, err := signer.Sign(msg)
	t.NoError(err)

	for _, l := range []int{0, 1, 63, 65, 128} {
		b := make([]byte, l)
		copy(b, sig.Bytes())

		t.isSignatureInvalid(verifier.Verify(msg, rawSignature(b)))
	}

	t.isSignatureInvalid(verifier.Verify(msg, nil))
}

func (t *ProviderSuite) TestSeedLength() {
	for _, l := range []int{0, 1, 31, 33, 64} {
		_, err := t.Provider.NewSigner(make([]byte, l))
		t.True(xerrors.Is(err, keypair.KeyInvalidError), "length=%d", l)
	}
}

func (t *ProviderSuite) TestNewVerifierNotEd25519() {
	_, err := t.Provider.NewVerifier(otherPublicKey{})
	t.True(xerrors.Is(err, keypair.KeyInvalidError))

	_, err = t.Provider.NewVerifier(nil)
	t.True(xerrors.Is(err, keypair.KeyInvalidError))
}

func (t *ProviderSuite) TestPKCS8() {
	for i, v := range Vectors {
		for _, der := range [][]byte{v.PKCS8V1(), v.PKCS8V2(), v.PKCS8V2Explicit()} {
			signer, err := t.Provider.NewSignerFromPKCS8(der)
			t.NoError(err, "%d", i)
			t.Equal(v.MustPublicKey(), t.publicKey(signer), "%d", i)

			sig, err := signer.Sign(v.MessageBytes())
			t.NoError(err)
			t.Equal(v.SignatureBytes(), sig.Bytes(), "%d", i)
		}
	}
}

func (t *ProviderSuite) TestPKCS8RFC8410() {
	signer, err := t.Provider.NewSignerFromPKCS8(RFC8410DER())
	if !t.NoError(err) {
		return
	}
	t.Equal(RFC8410.PublicKey, hex.EncodeToString(t.publicKey(signer).Bytes()))
}

func (t *ProviderSuite) TestPKCS8Malformed() {
	for i, der := range MalformedPKCS8() {
		signer, err := t.Provider.NewSignerFromPKCS8(der)
		t.Nil(signer, "%d", i)
		t.True(xerrors.Is(err, keypair.KeyInvalidError), "%d: %+v", i, err)
	}
}

func (t *ProviderSuite) TestPKCS8PublicKeyMismatch() {
	v0, v1 := Vectors[0], Vectors[1]
	der := MustHex("3051020101300506032b657004220420" + v0.Seed + "812100" + v1.PublicKey)

	_, err := t.Provider.NewSignerFromPKCS8(der)
	t.True(xerrors.Is(err, keypair.KeyInvalidError))
	t.Contains(err.Error(), "does not match")

	der = MustHex("3053020101300506032b657004220420" + v0.Seed + "a123032100" + v1.PublicKey)
	_, err = t.Provider.NewSignerFromPKCS8(der)
	t.True(xerrors.Is(err, keypair.KeyInvalidError))
	t.Contains(err.Error(), "does not match")
}

func (t *ProviderSuite) TestConcurrent() {
	signer := t.signer(Vectors[0].SeedBytes())
	verifier := t.verifier(signer)

	expected, err := signer.Sign([]byte("show me"))
	t.NoError(err)

	var mu sync.Mutex
	var sigs [][]byte

	var eg errgroup.Group
	for i := 0; i < 32; i++ {
		eg.Go(func() error {
			sig, err := signer.Sign([]byte("show me"))
			if err != nil {
				return err
			}

			if err := verifier.Verify([]byte("show me"), sig); err != nil {
				return err
			}

			mu.Lock()
			sigs = append(sigs, sig.Bytes())
			mu.Unlock()

			return nil
		})
	}

	t.NoError(eg.Wait())
	t.Equal(32, len(sigs))
	for _, sig := range sigs {
		t.Equal(expected.Bytes(), sig)
	}
}

type rawSignature []byte

func (s rawSignature) Bytes() []byte {
	return []byte(s)
}

func (s rawSignature) String() string {
	return "raw"
}

type otherPublicKey struct{}

func (otherPublicKey) Type() string {
	return "secp256k1"
}

func (otherPublicKey) Bytes() []byte {
	return make([]byte, 33)
}

func (otherPublicKey) Equal(keypair.PublicKey) bool {
	return false
}

func (otherPublicKey) String() string {
	return "secp256k1"
}
