package main

import (
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"golang.org/x/xerrors"

	"github.com/spikeekips/signatory/ed25519"
	"github.com/spikeekips/signatory/keypair"
)

func addKeyFlags(cmd *cobra.Command, e *env) {
	cmd.Flags().StringVar(&e.flags.seed, "seed", "", "encoded 32-byte seed")
	cmd.Flags().StringVar(&e.flags.pkcs8, "pkcs8", "", "DER encoded PKCS#8 private key file")
}

func (e *env) signer() (keypair.KeyedSigner, error) {
	switch {
	case len(e.flags.seed) > 0 && len(e.flags.pkcs8) > 0:
		return nil, xerrors.Errorf("--seed and --pkcs8 can not be used together")
	case len(e.flags.seed) > 0:
		seed, err := ed25519.DecodeSeed(strings.TrimSpace(e.flags.seed), e.encoding)
		if err != nil {
			return nil, err
		}

		return e.provider.NewSigner(seed[:])
	case len(e.flags.pkcs8) > 0:
		b, err := ioutil.ReadFile(e.flags.pkcs8)
		if err != nil {
			return nil, xerrors.Errorf("failed to read pkcs8 file: %w", err)
		}

		return e.provider.NewSignerFromPKCS8(b)
	default:
		return nil, xerrors.Errorf("--seed or --pkcs8 is needed")
	}
}

func readMessage(args []string) ([]byte, error) {
	var r io.Reader = os.Stdin
	if len(args) > 0 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return nil, xerrors.Errorf("failed to open message: %w", err)
		}
		defer f.Close()

		r = f
	}

	return ioutil.ReadAll(r)
}

func newPublicKeyCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "public-key",
		Short: "print the public key of the private key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			signer, err := e.signer()
			if err != nil {
				return err
			}

			k, err := signer.PublicKey(keypair.Compressed)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), e.encoding.Encode(k.Bytes()))
			return err
		},
	}
	addKeyFlags(cmd, e)

	return cmd
}

func newSignCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sign [message file]",
		Short: "sign the message; without file, it is read from stdin",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			signer, err := e.signer()
			if err != nil {
				return err
			}

			msg, err := readMessage(args)
			if err != nil {
				return err
			}

			sig, err := signer.Sign(msg)
			if err != nil {
				return err
			}

			log.Debug("signed", "provider", e.provider.Type(), "length", len(msg))

			_, err = fmt.Fprintln(cmd.OutOrStdout(), e.encoding.Encode(sig.Bytes()))
			return err
		},
	}
	addKeyFlags(cmd, e)

	return cmd
}

func newVerifyCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify [message file]",
		Short: "verify the signatures of the message; without file, it is read from stdin",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(e.flags.signatures) < 1 {
				return xerrors.Errorf("--signature is needed")
			}

			verifier, err := e.verifier()
			if err != nil {
				return err
			}

			msg, err := readMessage(args)
			if err != nil {
				return err
			}

			results := verifySignatures(verifier, msg, e.flags.signatures, e.encoding.Decode)

			var failed int
			for i, err := range results {
				status := "valid"
				if err != nil {
					status = "invalid"
					failed++
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%d: %s\n", i, status)
			}

			if failed > 0 {
				return xerrors.Errorf("%d of %d signatures invalid", failed, len(results))
			}

			return nil
		},
	}
	cmd.Flags().StringVar(&e.flags.publicKey, "public-key", "", "encoded public key; derived from --seed or --pkcs8 if empty")
	cmd.Flags().StringSliceVar(&e.flags.signatures, "signature", nil, "encoded signature; can be repeated")
	addKeyFlags(cmd, e)

	return cmd
}

func (e *env) verifier() (keypair.Verifier, error) {
	if len(e.flags.publicKey) < 1 {
		signer, err := e.signer()
		if err != nil {
			return nil, err
		}

		k, err := signer.PublicKey(keypair.Compressed)
		if err != nil {
			return nil, err
		}

		return e.provider.NewVerifier(k)
	}

	pk, err := ed25519.DecodePublicKey(strings.TrimSpace(e.flags.publicKey), e.encoding)
	if err != nil {
		return nil, err
	}

	return e.provider.NewVerifier(pk)
}

// verifySignatures checks every signature concurrently against the same
// verifier; the result at i is for signatures[i].
func verifySignatures(
	verifier keypair.Verifier,
	msg []byte,
	signatures []string,
	decode func(string) ([]byte, error),
) []error {
	results := make([]error, len(signatures))

	var eg errgroup.Group
	for i := range signatures {
		i := i
		eg.Go(func() error {
			b, err := decode(strings.TrimSpace(signatures[i]))
			if err != nil {
				results[i] = keypair.SignatureInvalidError
				return nil
			}

			sig, err := ed25519.SignatureFromBytes(b)
			if err != nil {
				results[i] = err
				return nil
			}

			results[i] = verifier.Verify(msg, sig)

			return nil
		})
	}

	_ = eg.Wait()

	return results
}
