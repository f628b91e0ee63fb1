package constants

// Redis key formats
const (
	KeyTokenBlacklist = "auth:blacklist:%s" // Format: auth:blacklist:{jti}
	KeyPasswordReset  = "auth:reset:%s"     // Format: auth:reset:{token}

	// Rate Limiting
	KeyRateLimitAuth = "rate:auth"
)
