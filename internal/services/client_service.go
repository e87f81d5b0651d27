package services

import (
	"errors"
	"fmt"

	"github.com/franciscosanchezn/pizza-restaurants-api/internal/models"
	"gorm.io/gorm"
)

// ClientService manages registered OAuth clients
type ClientService interface {
	// CreateClient hashes the plain secret on the client and stores it
	CreateClient(client *models.OAuthClient) error
	GetClientByID(id string) (*models.OAuthClient, error)
	DeleteClient(id string) error
}

type clientService struct {
	db *gorm.DB
}

func NewClientService(db *gorm.DB) ClientService {
	return &clientService{db: db}
}

func (s *clientService) CreateClient(client *models.OAuthClient) error {
	if err := client.HashSecret(); err != nil {
		return fmt.Errorf("hashing client secret: %w", err)
	}
	return s.db.Create(client).Error
}

func (s *clientService) GetClientByID(id string) (*models.OAuthClient, error) {
	var client models.OAuthClient
	if err := s.db.Where("id = ?", id).First(&client).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, err
	}
	return &client, nil
}

func (s *clientService) DeleteClient(id string) error {
	result := s.db.Where("id = ?", id).Delete(&models.OAuthClient{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrClientNotFound
	}
	return nil
}
