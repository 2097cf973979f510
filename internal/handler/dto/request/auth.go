package request

// LoginRequest is validated by the use case so empty values surface as 401, not 400.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
