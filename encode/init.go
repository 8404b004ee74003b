package encode

import (
	"github.com/inconshreveable/log15"

	"github.com/spikeekips/signatory/common"
)

var log log15.Logger = common.NewLogger("encode")

func Log() log15.Logger {
	return log
}
