package models

import "time"

// User is the local mirror of an identity-provider account. Identity
// (credentials, sessions) lives with the external provider; we keep only
// the row needed to attribute businesses and reservations.
type User struct {
	ID         string    `bson:"id" json:"id"`
	ExternalID string    `bson:"external_id" json:"externalId"` // subject id at the identity provider
	Email      string    `bson:"email" json:"email"`
	Name       string    `bson:"name,omitempty" json:"name,omitempty"`
	AvatarURL  string    `bson:"avatar_url,omitempty" json:"avatarUrl,omitempty"`
	CreatedAt  time.Time `bson:"created_at" json:"createdAt"`
}

// IdentityClaims are the verified claims extracted from an identity-provider token.
type IdentityClaims struct {
	Subject   string `json:"sub"`
	Email     string `json:"email"`
	Name      string `json:"name,omitempty"`
	AvatarURL string `json:"avatarUrl,omitempty"`
}
