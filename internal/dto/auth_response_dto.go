package dto

// AuthResponse is returned by a successful signup or login. The token keeps
// the session logged in for subsequent requests.
type AuthResponse struct {
	Message  string `json:"message"`
	Username string `json:"username"`
	Token    string `json:"token"`
}

// StatusResponse carries the outcome message of a user action.
type StatusResponse struct {
	Message string `json:"message"`
}

// ErrorResponse carries a failure message.
type ErrorResponse struct {
	Error string `json:"error"`
}
