package main

import (
	"encoding/json"
	"io/ioutil"

	"github.com/inconshreveable/log15"
	"golang.org/x/xerrors"
	"gopkg.in/yaml.v2"

	"github.com/spikeekips/signatory/encode"
	"github.com/spikeekips/signatory/keypair"
)

type Config struct {
	Provider string    `yaml:"provider" json:"provider"`
	Encoding string    `yaml:"encoding" json:"encoding"`
	Log      LogConfig `yaml:"log" json:"log"`
}

type LogConfig struct {
	Level  string `yaml:"level" json:"level"`
	Format string `yaml:"format" json:"format"`
	Out    string `yaml:"out" json:"out"`
}

func newConfigFromBytes(b []byte) (Config, error) {
	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return Config{}, xerrors.Errorf("invalid config: %w", err)
	}

	return c, nil
}

func loadConfig(f string) (Config, error) {
	b, err := ioutil.ReadFile(f)
	if err != nil {
		return Config{}, xerrors.Errorf("failed to read config: %w", err)
	}

	return newConfigFromBytes(b)
}

// merge fills the empty fields of c from b.
func (c Config) merge(b Config) Config {
	if len(c.Provider) < 1 {
		c.Provider = b.Provider
	}
	if len(c.Encoding) < 1 {
		c.Encoding = b.Encoding
	}
	if len(c.Log.Level) < 1 {
		c.Log.Level = b.Log.Level
	}
	if len(c.Log.Format) < 1 {
		c.Log.Format = b.Log.Format
	}
	if len(c.Log.Out) < 1 {
		c.Log.Out = b.Log.Out
	}

	return c
}

func (c Config) IsValid(providers *keypair.Providers, encodings *encode.Encodings) error {
	if _, err := providers.Provider(keypair.NewType(0, c.Provider)); err != nil {
		return xerrors.Errorf("unknown provider, %q: %w", c.Provider, err)
	}

	if _, err := encodings.ByName(c.Encoding); err != nil {
		return xerrors.Errorf("unknown encoding, %q: %w", c.Encoding, err)
	}

	if len(c.Log.Level) > 0 {
		if _, err := log15.LvlFromString(c.Log.Level); err != nil {
			return xerrors.Errorf("invalid log level, %q: %w", c.Log.Level, err)
		}
	}

	switch c.Log.Format {
	case "", "json", "terminal":
	default:
		return xerrors.Errorf("invalid log format: %q", c.Log.Format)
	}

	return nil
}

func (c Config) String() string {
	b, _ := json.Marshal(c)
	return string(b)
}
