package provider

import (
	"github.com/golang-jwt/jwt/v5"

	"authbridge/internal/auth/models"
)

// ProfileFromIDToken decodes display claims from an id token without
// verifying the signature. The token was just issued over TLS by the
// provider; verification is the resource server's job, not the client's.
// Decoding failures yield an empty profile rather than an error.
func ProfileFromIDToken(idToken string) models.Profile {
	if idToken == "" {
		return models.Profile{}
	}
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(idToken, claims); err != nil {
		return models.Profile{}
	}
	profile := models.Profile{}
	if sub, ok := claims["sub"].(string); ok {
		profile.Subject = sub
	}
	if email, ok := claims["email"].(string); ok {
		profile.Email = email
	}
	if name, ok := claims["name"].(string); ok {
		profile.Name = name
	}
	return profile
}
