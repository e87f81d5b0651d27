package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/franciscosanchezn/pizza-restaurants-api/internal/models"
	"github.com/go-oauth2/oauth2/v4"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"
)

// JWTAccessGenerate generates JWT access tokens carrying the client's role
type JWTAccessGenerate struct {
	SignedKey    []byte
	SignedMethod jwt.SigningMethod
	DB           *gorm.DB // used when the client info does not carry a role
}

// NewJWTAccessGenerate creates a new JWT access token generator
func NewJWTAccessGenerate(key []byte, method jwt.SigningMethod, db *gorm.DB) *JWTAccessGenerate {
	return &JWTAccessGenerate{
		SignedKey:    key,
		SignedMethod: method,
		DB:           db,
	}
}

// Token generates a JWT access token with custom claims
// This method is called by the OAuth2 library to generate access tokens
func (g *JWTAccessGenerate) Token(ctx context.Context, data *oauth2.GenerateBasic, isGenRefresh bool) (string, string, error) {
	clientID := data.Client.GetID()
	createdAt := data.TokenInfo.GetAccessCreateAt()

	role, err := g.clientRole(ctx, data.Client)
	if err != nil {
		return "", "", fmt.Errorf("failed to resolve client role: %w", err)
	}

	claims := jwt.MapClaims{
		"sub":  clientID,
		"aud":  clientID,
		"role": role,
		"iat":  createdAt.Unix(),
		"exp":  createdAt.Add(data.TokenInfo.GetAccessExpiresIn()).Unix(),
	}
	if scope := data.TokenInfo.GetScope(); scope != "" {
		claims["scope"] = scope
	}

	access, err := jwt.NewWithClaims(g.SignedMethod, claims).SignedString(g.SignedKey)
	if err != nil {
		return "", "", err
	}

	refresh := ""
	if isGenRefresh {
		refreshClaims := jwt.MapClaims{
			"sub": clientID,
			"exp": data.TokenInfo.GetRefreshCreateAt().Add(data.TokenInfo.GetRefreshExpiresIn()).Unix(),
		}
		refresh, err = jwt.NewWithClaims(g.SignedMethod, refreshClaims).SignedString(g.SignedKey)
		if err != nil {
			return "", "", err
		}
	}

	return access, refresh, nil
}

// clientRole reads the role from the stored client so it cannot be requested by the caller
func (g *JWTAccessGenerate) clientRole(ctx context.Context, info oauth2.ClientInfo) (string, error) {
	if client, ok := info.(*models.OAuthClient); ok && client.Role != "" {
		return client.Role, nil
	}

	var client models.OAuthClient
	if err := g.DB.WithContext(ctx).Where("id = ?", info.GetID()).First(&client).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", fmt.Errorf("client %s not found", info.GetID())
		}
		return "", fmt.Errorf("database error: %w", err)
	}
	if client.Role == "" {
		return models.RoleUser, nil
	}
	return client.Role, nil
}
