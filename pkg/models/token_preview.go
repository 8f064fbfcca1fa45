package models

import (
	"time"

	"github.com/go-jose/go-jose/v4"
	"github.com/go-jose/go-jose/v4/jwt"
)

var previewAlgorithms = []jose.SignatureAlgorithm{
	jose.HS256, jose.HS384, jose.HS512,
	jose.RS256, jose.RS384, jose.RS512,
	jose.ES256, jose.ES384, jose.ES512,
	jose.EdDSA,
}

// TokenPreview holds what an access token claims about the session.
// Nothing here is verified; it is only shown to the user.
type TokenPreview struct {
	Identity  string
	Name      string
	Room      string
	ExpiresAt *time.Time
}

type accessTokenClaims struct {
	jwt.Claims
	Name  string           `json:"name,omitempty"`
	Video *videoGrantClaim `json:"video,omitempty"`
}

type videoGrantClaim struct {
	Room     string `json:"room,omitempty"`
	RoomJoin bool   `json:"roomJoin,omitempty"`
}

// PreviewToken decodes the claims of a signed JWT without checking its
// signature. It returns nil when the token can't be decoded.
func PreviewToken(raw string) *TokenPreview {
	tok, err := jwt.ParseSigned(raw, previewAlgorithms)
	if err != nil {
		return nil
	}

	claims := new(accessTokenClaims)
	if err := tok.UnsafeClaimsWithoutVerification(claims); err != nil {
		return nil
	}

	p := &TokenPreview{
		Identity: claims.Subject,
		Name:     claims.Name,
	}
	if claims.Video != nil {
		p.Room = claims.Video.Room
	}
	if claims.Expiry != nil {
		t := claims.Expiry.Time()
		p.ExpiresAt = &t
	}
	return p
}
