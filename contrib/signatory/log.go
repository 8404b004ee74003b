package main

import (
	"github.com/inconshreveable/log15"

	"github.com/spikeekips/signatory/common"
	"github.com/spikeekips/signatory/encode"
	"github.com/spikeekips/signatory/keypair"
	"github.com/spikeekips/signatory/provider/stellar"
	"github.com/spikeekips/signatory/provider/xcrypto"
)

var log log15.Logger = log15.New("module", "main")

func setLogging(c LogConfig) error {
	lvl := log15.LvlError
	if len(c.Level) > 0 {
		l, err := log15.LvlFromString(c.Level)
		if err != nil {
			return err
		}
		lvl = l
	}

	handler, err := common.LogHandler(common.LogFormatter(c.Format), c.Out)
	if err != nil {
		return err
	}
	handler = log15.CallerFileHandler(handler)

	for _, l := range []log15.Logger{
		log,
		common.Log(),
		encode.Log(),
		keypair.Log(),
		stellar.Log(),
		xcrypto.Log(),
	} {
		common.SetLogger(l, lvl, handler)
	}

	return nil
}
