package main

import (
	"strings"

	"github.com/inconshreveable/log15"
	"github.com/spf13/pflag"
	"golang.org/x/xerrors"

	"github.com/spikeekips/signatory/encode"
	"github.com/spikeekips/signatory/provider/xcrypto"
)

// flags is created once per root command, so tests can run commands
// repeatedly without sharing state.
type flags struct {
	logLevel   FlagLogLevel
	logFormat  FlagLogFormat
	logOut     string
	configFile string
	provider   string
	encoding   string
	seed       string
	pkcs8      string
	publicKey  string
	signatures []string
}

func newFlags() *flags {
	return &flags{
		logLevel:  FlagLogLevel{lvl: log15.LvlError},
		logFormat: FlagLogFormat{f: "terminal"},
		provider:  xcrypto.ProviderType.Name(),
		encoding:  encode.HexType.Name(),
	}
}

// config is the configuration made of explicitly set flags only.
func (f *flags) config(fs *pflag.FlagSet) Config {
	var c Config
	if fs.Changed("provider") {
		c.Provider = f.provider
	}
	if fs.Changed("encoding") {
		c.Encoding = f.encoding
	}
	if fs.Changed("log-level") {
		c.Log.Level = f.logLevel.String()
	}
	if fs.Changed("log-format") {
		c.Log.Format = f.logFormat.String()
	}
	if fs.Changed("log") {
		c.Log.Out = f.logOut
	}

	return c
}

func (f *flags) defaults() Config {
	return Config{
		Provider: f.provider,
		Encoding: f.encoding,
		Log: LogConfig{
			Level:  f.logLevel.String(),
			Format: f.logFormat.String(),
			Out:    f.logOut,
		},
	}
}

type FlagLogLevel struct {
	lvl log15.Lvl
}

func (f FlagLogLevel) String() string {
	return f.lvl.String()
}

func (f *FlagLogLevel) Set(v string) error {
	lvl, err := log15.LvlFromString(v)
	if err != nil {
		return err
	}

	f.lvl = lvl

	return nil
}

func (f FlagLogLevel) Type() string {
	return "log-level"
}

type FlagLogFormat struct {
	f string
}

func (f FlagLogFormat) String() string {
	return f.f
}

func (f *FlagLogFormat) Set(v string) error {
	s := strings.ToLower(v)
	switch s {
	case "json":
	case "terminal":
	default:
		return xerrors.Errorf("invalid log format: %q", v)
	}

	f.f = s

	return nil
}

func (f FlagLogFormat) Type() string {
	return "log-format"
}
