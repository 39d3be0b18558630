package common

// Durable session-store keys. AuthUserKey holds the canonical serialized
// user; the token keys are reserved for future use and are only ever
// cleared on logout.
const (
	AuthUserKey     = "authUser"
	AccessTokenKey  = "accessToken"
	RefreshTokenKey = "refreshToken"
)
