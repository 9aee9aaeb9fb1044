package domain

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

var (
	MessageFailedBodyRequest    = "failed to parse request body"
	MessageFailedProcessRequest = "failed to process request"
	MessageFailedTokenInvalid   = "failed to token invalid"
	MessageFailedAccessDenied   = "access denied"
	MessageSuccessPing          = "pong"
)
