package constants

const (
	// HTTP Headers
	HeaderAuthorization = "Authorization"
	HeaderXRequestID    = "X-Request-ID"

	// Context keys
	ContextKeyEmpID     = "empid"
	ContextKeyRole      = "role"
	ContextKeyRequestID = "request_id"

	// List limits
	DefaultListLimit = 200
	MaxListLimit     = 1000

	ErrMsgInternalServerError = "Internal server error occurred"
)
