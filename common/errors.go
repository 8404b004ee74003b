package common

const (
	_ ErrorCode = iota
	JSONMarshalErrorCode
)

var JSONMarshalError = NewErrorType("common", JSONMarshalErrorCode, "failed to marshal json")
