package models

// User is an account that can authenticate against the API. Village is
// optional; users without one (and admins) see data from every village.
type User struct {
	Username string  `json:"username" gorm:"primaryKey"`
	Password string  `json:"-"` // bcrypt hash
	Role     string  `json:"role" gorm:"check:role IN ('admin','user')"`
	Village  *string `json:"village"`
}

// SignupRequest is the payload accepted by POST /signup.
type SignupRequest struct {
	Username string  `json:"username" binding:"required"`
	Password string  `json:"password" binding:"required"`
	Village  *string `json:"village"`
}

// Token is the response returned by POST /login.
type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}
