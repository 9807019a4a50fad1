package constants

// Pesan error yang dikirim ke client. Detail error asli hanya ditulis ke log.
const (
	ErrInvalidRequestBody    = "Invalid request body."
	ErrInvalidAmount         = "Invalid donation amount."
	ErrInvalidConfig         = "Invalid donation config."
	ErrConfigUnavailable     = "Failed to load donation config."
	ErrConfigUpdateFailed    = "Failed to update donation config."
	ErrPaymentIntentFailed   = "Payment intent failed."
	ErrConnectionTokenFailed = "Connection token failed."
	ErrUnauthorized          = "Unauthorized"
)

// Header opsional dari client untuk mengulang request yang sama tanpa double charge.
const HeaderIdempotencyKey = "Idempotency-Key"
