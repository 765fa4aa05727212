package dto

// RegisterRequest is the JSON body for POST /api/register.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the JSON body for POST /api/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse is returned on successful login. The caller keeps userId
// and sends it back on task operations; no token or cookie is issued.
type LoginResponse struct {
	Message  string `json:"message"`
	UserID   int64  `json:"userId"`
	Username string `json:"username"`
}

// MessageResponse is the generic {"message": ...} body used by
// confirmations and every error.
type MessageResponse struct {
	Message string `json:"message"`
}
