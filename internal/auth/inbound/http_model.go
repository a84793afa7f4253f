package inbound

type SendOTPRequest struct {
	Email string `json:"email"`
}

type SendOTPResponse struct {
	Success   bool   `json:"success"`
	Signature string `json:"signature"`
	ExpiresAt int64  `json:"expiresAt"`
	OTP       string `json:"otp,omitempty"`
}

type VerifyOTPRequest struct {
	Email     string `json:"email"`
	OTP       string `json:"otp"`
	Signature string `json:"signature"`
	ExpiresAt int64  `json:"expiresAt"`
}

type UserResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	Role     string `json:"role"`
}

type VerifyOTPResponse struct {
	Success bool         `json:"success"`
	Token   string       `json:"token"`
	User    UserResponse `json:"user"`
}
