package dto

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	AccessToken  string `json:"access_token"`
	ExpiresInSec int64  `json:"expires_in_sec"`
	Email        string `json:"email"`
}

type LogoutResponse struct {
	OK bool `json:"ok"`
}
