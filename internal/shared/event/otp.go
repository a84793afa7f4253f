package event

const OTPIssuedDestination string = "auth_otp_issued"
const OTPIssuedConsumerAudit string = "auth_otp_issued_audit"

type OTPIssuedMessage struct {
	Email     string `json:"email"`
	Channel   string `json:"channel"`
	ExpiresAt int64  `json:"expires_at"`
}

const OTPVerifiedDestination string = "auth_otp_verified"
const OTPVerifiedConsumerAudit string = "auth_otp_verified_audit"

type OTPVerifiedMessage struct {
	Email string `json:"email"`
	Role  string `json:"role"`
}
