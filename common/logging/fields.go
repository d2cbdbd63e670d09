package logging

const (
	// FieldError can be used instead of Err(err) if you have only the error message string.
	FieldError = "err"

	FieldComponent = "component"

	FieldDuration = "duration"
	FieldUrl      = "url"

	FieldHttpMethod = "httpMethod"
	FieldHttpStatus = "httpStatus"

	FieldTransactionHash  = "txHash"
	FieldTransactionNonce = "txNonce"
	FieldSender           = "sender"
	FieldReceiver         = "receiver"

	FieldEndpoint = "endpoint"
	FieldFunction = "function"
	FieldChainId  = "chainId"
)
