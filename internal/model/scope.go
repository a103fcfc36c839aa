package model

// Scope identifies the caller of a console request. ProjectID and UserID are the ones the
// gateway reports for Token once the request passed authentication.
type Scope struct {
	Token     string
	ProjectID string
	UserID    string
}
