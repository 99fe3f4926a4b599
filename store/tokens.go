package store

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/patentehub/patente_hub/models"
	"github.com/patentehub/patente_hub/utils"
)

// IssueAuthToken creates and persists a session for the user. The token
// value itself is the primary key.
func (s *Store) IssueAuthToken(userID string, ttl time.Duration) (*models.AuthToken, error) {
	token, err := utils.GenerateToken()
	if err != nil {
		return nil, err
	}
	refresh, err := utils.GenerateToken()
	if err != nil {
		return nil, err
	}
	t := models.AuthToken{
		Token:        token,
		RefreshToken: refresh,
		UserID:       userID,
		ExpiresAt:    time.Now().Add(ttl),
	}
	if err := s.db.Create(&t).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (s *Store) GetAuthToken(token string) (*models.AuthToken, error) {
	var t models.AuthToken
	err := s.db.First(&t, "token = ?", token).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (s *Store) DeleteAuthToken(token string) error {
	return s.db.Where("token = ?", token).Delete(&models.AuthToken{}).Error
}

func (s *Store) DeleteAuthTokensByUser(userID string) error {
	return s.db.Where("user_id = ?", userID).Delete(&models.AuthToken{}).Error
}

// CleanExpiredAuthTokens drops every session past its expiry.
func (s *Store) CleanExpiredAuthTokens() (int64, error) {
	res := s.db.Where("expires_at < ?", time.Now()).Delete(&models.AuthToken{})
	return res.RowsAffected, res.Error
}
