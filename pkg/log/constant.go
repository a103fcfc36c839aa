package log

const (
	ModeProduction  = "production"
	ModeDevelopment = "development"

	EncodingConsole = "console"
	EncodingJSON    = "json"

	// RequestIDKey is the field name attached to every line logged with a request-scoped context.
	RequestIDKey = "request_id"
)
