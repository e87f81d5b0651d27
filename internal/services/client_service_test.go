package services

import (
	"testing"

	"github.com/franciscosanchezn/pizza-restaurants-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientService(t *testing.T) {
	db := setupTestDB(t)
	service := NewClientService(db)

	client := &models.OAuthClient{ID: "dev-client", Secret: "dev-secret-123", Name: "Development", Role: models.RoleAdmin}
	require.NoError(t, service.CreateClient(client))
	assert.NotEqual(t, "dev-secret-123", client.Secret)

	stored, err := service.GetClientByID("dev-client")
	require.NoError(t, err)
	assert.True(t, stored.VerifyPassword("dev-secret-123"))
	assert.False(t, stored.VerifyPassword("wrong"))
	assert.Equal(t, models.RoleAdmin, stored.Role)

	require.NoError(t, service.DeleteClient("dev-client"))
	_, err = service.GetClientByID("dev-client")
	assert.ErrorIs(t, err, ErrClientNotFound)
	assert.ErrorIs(t, service.DeleteClient("dev-client"), ErrClientNotFound)
}
