package models

// AuthResponse is returned by login and register. Only the token is used by the client.
type AuthResponse struct {
	Token string `json:"token"`
}

// MessageResponse is the {"message": "..."} body used by the backend for
// confirmations and errors.
type MessageResponse struct {
	Message string `json:"message"`
}
