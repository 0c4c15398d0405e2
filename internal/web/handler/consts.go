package handler

const (
	// APIBasePath is the prefix for all REST endpoints.
	APIBasePath = "/api"

	// RootPath is the root path of the route group.
	RootPath = "/"

	// ErrNilACDFatalLogMsg is used if app or cfg or db var pointer is nil.
	ErrNilACDFatalLogMsg = "app, cfg or db is nil"

	// MsgInternalError is the generic client-facing message for unexpected
	// failures. Details stay in the server log.
	MsgInternalError = "An unknown error occurred"
)
