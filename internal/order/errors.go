package order

import "errors"

var (
	ErrEmptyCart        = errors.New("cart is empty")
	ErrPresetNotFound   = errors.New("preset not found")
	ErrOtpSend          = errors.New("failed to send OTP")
	ErrOtpVerify        = errors.New("OTP verification failed")
	ErrInvalidOtpFormat = errors.New("OTP must be a 6-digit code")
	ErrNotVerified      = errors.New("phone number not verified")
	ErrSubmitFailed     = errors.New("order submission failed")
	// ErrNotConfirmed means the write was sent but the confirmation poll never
	// observed it. The order may or may not have persisted server-side; treat
	// as "unknown, retry later", not as a definite failure.
	ErrNotConfirmed = errors.New("order submitted but not confirmed yet")
)
