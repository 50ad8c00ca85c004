package model

import (
	"time"

	"github.com/google/uuid"
)

type RegisterRequest struct {
	Username string `json:"username" binding:"required,max=50"`
	Password string `json:"password" binding:"required,min=1"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
}

// TokenClaims is the verified identity attached to a request.
type TokenClaims struct {
	PrincipalID   uuid.UUID
	PrincipalType PrincipalType
	TokenID       string
	ExpiresAt     time.Time
}
