package encode

import "github.com/spikeekips/signatory/common"

const (
	EncodingAlreadyRegisteredErrorCode common.ErrorCode = iota + 1
	EncodingNotRegisteredErrorCode
	DecodeFailedErrorCode
)

var (
	EncodingAlreadyRegisteredError = common.NewErrorType(
		"encode",
		EncodingAlreadyRegisteredErrorCode,
		"Encoding is already registered in Encodings",
	)
	EncodingNotRegisteredError = common.NewErrorType(
		"encode",
		EncodingNotRegisteredErrorCode,
		"Encoding is not registered in Encodings",
	)
	DecodeFailedError = common.NewErrorType("encode", DecodeFailedErrorCode, "failed to decode")
)
