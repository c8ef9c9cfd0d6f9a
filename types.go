package main

// loginRequest is the body of POST /login
type loginRequest struct {
	Username string `json:"username"`
}

// tokenResponse is the body of a successful login
type tokenResponse struct {
	Token string `json:"token"`
}

// errorResponse is the uniform error body: a short human-readable message
// with no upstream or verification detail
type errorResponse struct {
	Error string `json:"error"`
}

// healthResponse is the body of GET /health
type healthResponse struct {
	Status        string `json:"status"`
	UptimeSeconds int64  `json:"uptimeSeconds"`
}
