package domain

// Session is the identity resolved for a request
type Session struct {
	UserID string
}
