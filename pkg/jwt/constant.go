package jwt

const (
	// MinSecretKeyLen is the minimum length for HS256 secret key.
	MinSecretKeyLen = 32
	// DefaultTTL is the token lifetime in seconds when none is configured.
	DefaultTTL = 8 * 60 * 60
)
