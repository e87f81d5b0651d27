package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/franciscosanchezn/pizza-restaurants-api/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/go-oauth2/oauth2/v4"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testJWTSecret = "test-jwt-secret-key-32-characters"

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	err = db.AutoMigrate(&models.OAuthClient{}, &models.OAuthToken{})
	require.NoError(t, err)

	return db
}

func createClient(t *testing.T, db *gorm.DB, id, secret, role string) {
	client := &models.OAuthClient{
		ID:     id,
		Secret: secret,
		Domain: "http://localhost",
		Role:   role,
		Scopes: "read write",
	}
	require.NoError(t, client.HashSecret())
	require.NoError(t, db.Create(client).Error)
}

func requestToken(router *gin.Engine, clientID, clientSecret string) *httptest.ResponseRecorder {
	form := url.Values{}
	form.Set("grant_type", "client_credentials")
	form.Set("client_id", clientID)
	form.Set("client_secret", clientSecret)

	req := httptest.NewRequest(http.MethodPost, "/oauth/token", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func newTokenRouter(service *OAuthService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/oauth/token", service.HandleToken)
	return router
}

func TestOAuthServerInitialization(t *testing.T) {
	db := setupTestDB(t)

	oauthService := NewOAuthService(db, testJWTSecret)
	assert.NotNil(t, oauthService)
	assert.NotNil(t, oauthService.GetServer())
}

func TestJWTTokenGeneration(t *testing.T) {
	db := setupTestDB(t)
	oauthService := NewOAuthService(db, testJWTSecret)
	createClient(t, db, "test_client", "test_secret", models.RoleAdmin)

	tokenInfo, err := oauthService.GetServer().Manager.GenerateAccessToken(context.Background(), oauth2.ClientCredentials, &oauth2.TokenGenerateRequest{
		ClientID:     "test_client",
		ClientSecret: "test_secret",
		Scope:        "read",
	})
	require.NoError(t, err)
	require.NotNil(t, tokenInfo)

	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(tokenInfo.GetAccess(), claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(testJWTSecret), nil
	})
	require.NoError(t, err)
	assert.True(t, token.Valid)
	assert.Equal(t, jwt.SigningMethodHS512.Alg(), token.Method.Alg())
	assert.Equal(t, "test_client", claims["sub"])
	assert.Equal(t, models.RoleAdmin, claims["role"])
	assert.Equal(t, "read", claims["scope"])

	exp, err := claims.GetExpirationTime()
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(AccessTokenTTL), exp.Time, time.Minute)

	var stored models.OAuthToken
	require.NoError(t, db.Where("access_token = ?", tokenInfo.GetAccess()).First(&stored).Error)
	assert.Equal(t, "test_client", stored.ClientID)
}

func TestJWTTokenGenerationRejectsWrongSecret(t *testing.T) {
	db := setupTestDB(t)
	oauthService := NewOAuthService(db, testJWTSecret)
	createClient(t, db, "test_client", "test_secret", models.RoleAdmin)

	_, err := oauthService.GetServer().Manager.GenerateAccessToken(context.Background(), oauth2.ClientCredentials, &oauth2.TokenGenerateRequest{
		ClientID:     "test_client",
		ClientSecret: "wrong_secret",
	})
	assert.Error(t, err)
}

func TestHandleToken(t *testing.T) {
	db := setupTestDB(t)
	router := newTokenRouter(NewOAuthService(db, testJWTSecret))
	createClient(t, db, "reader", "reader-secret", models.RoleUser)

	t.Run("issues a bearer token for valid credentials", func(t *testing.T) {
		w := requestToken(router, "reader", "reader-secret")
		require.Equal(t, http.StatusOK, w.Code)

		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.NotEmpty(t, body["access_token"])
		assert.Equal(t, "Bearer", body["token_type"])
		assert.EqualValues(t, AccessTokenTTL.Seconds(), body["expires_in"])
	})

	t.Run("rejects an invalid secret", func(t *testing.T) {
		w := requestToken(router, "reader", "not-the-secret")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "invalid_client")
	})

	t.Run("rejects an unknown client", func(t *testing.T) {
		w := requestToken(router, "nobody", "secret")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestClientStoreIntegration(t *testing.T) {
	db := setupTestDB(t)
	createClient(t, db, "integration_test_client", "integration_test_secret", models.RoleUser)

	clientStore := NewGormClientStore(db)
	ctx := context.Background()

	retrievedClient, err := clientStore.GetByID(ctx, "integration_test_client")
	require.NoError(t, err)
	assert.Equal(t, "integration_test_client", retrievedClient.GetID())

	verifier, ok := retrievedClient.(oauth2.ClientPasswordVerifier)
	require.True(t, ok)
	assert.True(t, verifier.VerifyPassword("integration_test_secret"))
	assert.False(t, verifier.VerifyPassword("integration_test_client"))

	_, err = clientStore.GetByID(ctx, "missing")
	assert.Error(t, err)
}
