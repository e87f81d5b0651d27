package models

import (
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	// RoleAdmin may modify restaurants and their menus
	RoleAdmin = "admin"
	// RoleUser may only read
	RoleUser = "user"
)

// OAuthClient is a registered API client allowed to request access tokens.
// Secret holds a bcrypt hash, never the plain secret.
type OAuthClient struct {
	ID        string `gorm:"primaryKey"`
	Secret    string `gorm:"not null"`
	Name      string
	Domain    string
	Role      string `gorm:"not null;default:'user'"`
	Scopes    string // Space-separated list of allowed scopes
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (OAuthClient) TableName() string {
	return "oauth_clients"
}

// GetID implements oauth2.ClientInfo
func (c *OAuthClient) GetID() string {
	return c.ID
}

// GetSecret implements oauth2.ClientInfo
func (c *OAuthClient) GetSecret() string {
	return c.Secret
}

// GetDomain implements oauth2.ClientInfo
func (c *OAuthClient) GetDomain() string {
	return c.Domain
}

// IsPublic implements oauth2.ClientInfo; every client here is confidential
func (c *OAuthClient) IsPublic() bool {
	return false
}

// GetUserID implements oauth2.ClientInfo. Clients act on their own behalf.
func (c *OAuthClient) GetUserID() string {
	return c.ID
}

// VerifyPassword implements oauth2.ClientPasswordVerifier against the bcrypt hash
func (c *OAuthClient) VerifyPassword(secret string) bool {
	return bcrypt.CompareHashAndPassword([]byte(c.Secret), []byte(secret)) == nil
}

// HashSecret replaces the plain secret with its bcrypt hash
func (c *OAuthClient) HashSecret() error {
	hash, err := bcrypt.GenerateFromPassword([]byte(c.Secret), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	c.Secret = string(hash)
	return nil
}
