package dto

type AuthResult struct {
	Token  string `json:"token"`
	UserID string `json:"userId"`
}
