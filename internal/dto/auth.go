package dto

// LoginRequest represents the credentials supplied at login
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	PIN      int    `json:"pin" validate:"required,min=0"`
}

// LoginResponse is returned after a successful login
type LoginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	Owner    string `json:"owner"`
	Message  string `json:"message"`
}

// SessionResponse reports the current session state
type SessionResponse struct {
	LoggedIn         bool   `json:"logged_in"`
	Username         string `json:"username,omitempty"`
	Owner            string `json:"owner,omitempty"`
	RemainingSeconds int    `json:"remaining_seconds"`
}

// MessageResponse represents a simple message response
type MessageResponse struct {
	Message string `json:"message"`
}
