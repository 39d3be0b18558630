package auth

import (
	"github.com/golang-jwt/jwt/v5"

	"github.com/dmitrijs2005/healthdash/internal/client/models"
)

// userFromToken decodes the bearer token's payload to populate the
// authenticated user. The signature is intentionally NOT verified: the
// backend validates the token on every request, and the decoded claims are
// used for display only, never as a trust decision.
//
// Claims with no value fall back to the login email.
func userFromToken(accessToken, fallbackEmail string) (*models.AuthUser, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(accessToken, claims); err != nil {
		return nil, err
	}

	user := &models.AuthUser{
		ID:          stringClaim(claims, "sub"),
		Email:       stringClaim(claims, "email"),
		Username:    stringClaim(claims, "username"),
		AccessToken: accessToken,
	}
	if user.Email == "" {
		user.Email = fallbackEmail
	}
	if user.Username == "" {
		user.Username = fallbackEmail
	}
	return user, nil
}

func stringClaim(claims jwt.MapClaims, name string) string {
	if v, ok := claims[name].(string); ok {
		return v
	}
	return ""
}
