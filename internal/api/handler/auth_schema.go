package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

type registerRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Confirm  string `json:"confirm"  validate:"required"`
}

type registerResponse struct {
	Message string `json:"message"`
	// OTPToken correlates the later verification request with this staged
	// registration. The OTP code itself is never part of the response.
	OTPToken string `json:"otp_token"`
}

type verifyOTPRequest struct {
	OTPToken string `json:"otp_token" validate:"required"`
	OTP      string `json:"otp"       validate:"required"`
}

type verifyOTPResponse struct {
	Message string `json:"message"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	Token string `json:"token"`
}
