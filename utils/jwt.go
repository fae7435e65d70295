package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"

	"brewdesk/config"
	"brewdesk/models"

	"github.com/golang-jwt/jwt"
)

var (
	ErrInvalidToken = errors.New("invalid identity token")
)

// HashToken computes a SHA-256 hash of the token string for auth caching.
func HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

// VerifyIdentityToken parses and validates a token minted by the external
// identity provider and extracts the claims brewdesk cares about. The
// provider signs with HMAC using the shared IdentitySecret.
func VerifyIdentityToken(tokenString string) (*models.IdentityClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(config.AppConfig.IdentitySecret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	if iss := config.AppConfig.IdentityIssuer; iss != "" {
		if tokenIss, _ := claims["iss"].(string); tokenIss != iss {
			return nil, errors.New("token issued by unknown issuer")
		}
	}

	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return nil, errors.New("token does not contain a valid 'sub' claim")
	}

	identity := &models.IdentityClaims{Subject: sub}
	if email, ok := claims["email"].(string); ok {
		identity.Email = email
	}
	if name, ok := claims["name"].(string); ok {
		identity.Name = name
	}
	if avatar, ok := claims["picture"].(string); ok {
		identity.AvatarURL = avatar
	}
	return identity, nil
}
