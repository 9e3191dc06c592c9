package models

// RegisterRequest represents the JSON body for user registration
// swagger:model RegisterRequest
type RegisterRequest struct {
	// Username, at most 50 characters
	// required: true
	// example: john_doe
	Username string `json:"username" validate:"required,max=50"`

	// Email, at most 100 characters
	// required: true
	// example: john@example.com
	Email string `json:"email" validate:"required,max=100,email"`

	// Password
	// required: true
	// example: Secret123!
	Password string `json:"password" validate:"required"`
}

// LoginRequest represents the JSON body for user login
// swagger:model LoginRequest
type LoginRequest struct {
	// Email
	// required: true
	// example: john@example.com
	Email string `json:"email" validate:"required,email"`

	// Password
	// required: true
	// example: Secret123!
	Password string `json:"password" validate:"required"`
}

// AuthResponse is returned by both register and login
// swagger:model AuthResponse
type AuthResponse struct {
	// Whether the operation succeeded
	// example: true
	IsSuccess bool `json:"isSuccess"`

	// Bearer token, only set by a successful login
	// example: eyJhbGciOiJIUzUxMiIs...
	Token string `json:"token,omitempty"`

	// Failure description
	// example: Invalid credentials.
	ErrorMessage string `json:"errorMessage,omitempty"`

	// Field-level validation failures
	Errors map[string][]string `json:"errors,omitempty"`
}
