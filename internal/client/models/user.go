package models

// AuthUser identifies the logged-in principal. The fields mirror the claims
// decoded from the identity provider's access token; AccessToken is the raw
// bearer credential attached to every backend request.
//
// At most one AuthUser is "current" at any time; see the session package.
type AuthUser struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	Username    string `json:"username"`
	AccessToken string `json:"accessToken"`
}
