package keypair

import "github.com/spikeekips/signatory/common"

const (
	KeyInvalidErrorCode common.ErrorCode = iota + 1
	SignatureInvalidErrorCode
	ProviderAlreadyRegisteredErrorCode
	ProviderNotRegisteredErrorCode
)

var (
	// KeyInvalidError is for key material of the wrong length or structure.
	KeyInvalidError = common.NewErrorType("keypair", KeyInvalidErrorCode, "invalid key")
	// SignatureInvalidError is the only failure Verifier returns. It is
	// always returned as is, without message or cause.
	SignatureInvalidError = common.NewErrorType(
		"keypair",
		SignatureInvalidErrorCode,
		"signature verification failed",
	)
	ProviderAlreadyRegisteredError = common.NewErrorType(
		"keypair",
		ProviderAlreadyRegisteredErrorCode,
		"Provider is already registered in Providers",
	)
	ProviderNotRegisteredError = common.NewErrorType(
		"keypair",
		ProviderNotRegisteredErrorCode,
		"Provider is not registered in Providers",
	)
)
