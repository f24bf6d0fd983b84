package http

// EmailResponse is the response for GET /v1/user/email.
type EmailResponse struct {
	Email string `json:"email"`
}
