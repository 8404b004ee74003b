package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/spikeekips/signatory/encode"
	"github.com/spikeekips/signatory/keypair"
	"github.com/spikeekips/signatory/provider/stellar"
	"github.com/spikeekips/signatory/provider/xcrypto"
)

// env is what every command works with, resolved in PersistentPreRunE.
type env struct {
	flags     *flags
	config    Config
	providers *keypair.Providers
	encodings *encode.Encodings
	provider  keypair.Provider
	encoding  encode.Encoding
}

func newProviders() *keypair.Providers {
	p := keypair.NewProviders()
	_ = p.Register(xcrypto.Provider{})
	_ = p.Register(stellar.Provider{})

	return p
}

func (e *env) prepare(cmd *cobra.Command) error {
	var fc Config
	if len(e.flags.configFile) > 0 {
		c, err := loadConfig(e.flags.configFile)
		if err != nil {
			return err
		}
		fc = c
	}

	e.config = e.flags.config(cmd.Flags()).merge(fc).merge(e.flags.defaults())
	if err := e.config.IsValid(e.providers, e.encodings); err != nil {
		return err
	}

	if err := setLogging(e.config.Log); err != nil {
		return err
	}

	provider, err := e.providers.Provider(keypair.NewType(0, e.config.Provider))
	if err != nil {
		return err
	}
	e.provider = provider

	encoding, err := e.encodings.ByName(e.config.Encoding)
	if err != nil {
		return err
	}
	e.encoding = encoding

	log.Debug("config loaded", "config", e.config)

	return nil
}

func newRootCmd() *cobra.Command {
	e := &env{
		flags:     newFlags(),
		providers: newProviders(),
		encodings: encode.NewDefaultEncodings(),
	}

	rootCmd := &cobra.Command{
		Use:           "signatory",
		Short:         "signatory signs and verifies messages with ed25519 providers",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return e.prepare(cmd)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.Var(&e.flags.logLevel, "log-level", "log level: {debug error warn info crit}")
	pf.Var(&e.flags.logFormat, "log-format", "log format: {json terminal}")
	pf.StringVar(&e.flags.logOut, "log", e.flags.logOut, "log output file")
	pf.StringVar(&e.flags.configFile, "config", e.flags.configFile, "yaml config file")
	pf.StringVar(&e.flags.provider, "provider", e.flags.provider, "provider: {xcrypto stellar}")
	pf.StringVar(&e.flags.encoding, "encoding", e.flags.encoding, "text encoding: {hex base64 base58}")

	rootCmd.AddCommand(
		newPublicKeyCmd(e),
		newSignCmd(e),
		newVerifyCmd(e),
	)

	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
