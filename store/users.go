package store

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/patentehub/patente_hub/models"
	"github.com/patentehub/patente_hub/utils"
)

// CreateUser inserts a new user. Email and username are lowercased at
// the boundary so uniqueness is effectively case-insensitive; a taken
// email fails with ErrDuplicateKey.
func (s *Store) CreateUser(u *models.User) error {
	if u.ID == "" {
		u.ID = utils.GenerateID()
	}
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	u.Username = strings.ToLower(strings.TrimSpace(u.Username))
	if u.Role == "" {
		u.Role = "user"
	}

	var count int64
	if err := s.db.Model(&models.User{}).Where("email = ?", u.Email).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrDuplicateKey
	}

	if err := s.db.Create(u).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateKey
		}
		return err
	}
	return nil
}

func (s *Store) GetUser(id string) (*models.User, error) {
	var u models.User
	err := s.db.First(&u, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *Store) GetUserByEmail(email string) (*models.User, error) {
	var u models.User
	err := s.db.First(&u, "email = ?", strings.ToLower(strings.TrimSpace(email))).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *Store) GetUserByUsername(username string) (*models.User, error) {
	var u models.User
	err := s.db.First(&u, "username = ?", strings.ToLower(strings.TrimSpace(username))).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *Store) UpdateUser(u *models.User) error {
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	u.Username = strings.ToLower(strings.TrimSpace(u.Username))
	return s.db.Save(u).Error
}

func (s *Store) ListUsers() ([]models.User, error) {
	var users []models.User
	err := s.db.Order("created_at desc").Find(&users).Error
	return users, err
}

// TouchLastLogin stamps the login time without rewriting the record.
func (s *Store) TouchLastLogin(userID string) error {
	now := time.Now()
	return s.db.Model(&models.User{}).Where("id = ?", userID).Update("last_login", &now).Error
}

func (s *Store) SetUserBanned(userID string, banned bool) error {
	return s.updateUserField(userID, "is_banned", banned)
}

func (s *Store) SetUserRole(userID, role string) error {
	return s.updateUserField(userID, "role", role)
}

func (s *Store) SetUserVerified(userID string, verified bool) error {
	return s.updateUserField(userID, "verified", verified)
}

func (s *Store) SetUserPermissions(userID string, permissions []string) error {
	u, err := s.GetUser(userID)
	if err != nil {
		return err
	}
	u.Permissions = permissions
	return s.db.Save(u).Error
}

// SetCommunityRestriction toggles a single social capability (post,
// comment or reply) without banning the account.
func (s *Store) SetCommunityRestriction(userID, action string, allowed bool) error {
	var column string
	switch action {
	case "post":
		column = "restrict_can_post"
	case "comment":
		column = "restrict_can_comment"
	case "reply":
		column = "restrict_can_reply"
	default:
		return fmt.Errorf("unknown community action %q", action)
	}
	return s.updateUserField(userID, column, allowed)
}

func (s *Store) updateUserField(userID, column string, value any) error {
	res := s.db.Model(&models.User{}).Where("id = ?", userID).Update(column, value)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// UpdateUserProgress overwrites the embedded progress sub-record.
func (s *Store) UpdateUserProgress(userID string, progress models.UserProgress) error {
	u, err := s.GetUser(userID)
	if err != nil {
		return err
	}
	u.Progress = progress
	return s.db.Save(u).Error
}

func (s *Store) UpdateUserSettings(userID string, settings models.UserSettings) error {
	u, err := s.GetUser(userID)
	if err != nil {
		return err
	}
	u.Settings = settings
	return s.db.Save(u).Error
}

// PermanentDeleteUser removes the account entirely. Only reachable from
// the explicit admin delete; regular flows never hard-delete users.
func (s *Store) PermanentDeleteUser(userID string) error {
	res := s.db.Where("id = ?", userID).Delete(&models.User{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// UsernameCheck is the result of an availability probe.
type UsernameCheck struct {
	Available   bool     `json:"available"`
	Suggestions []string `json:"suggestions,omitempty"`
}

// CheckUsername performs a case-insensitive availability lookup. When
// the name is taken it offers a handful of free numeric-suffix
// alternatives instead of a bare rejection.
func (s *Store) CheckUsername(username string) (*UsernameCheck, error) {
	name := strings.ToLower(strings.TrimSpace(username))
	if name == "" {
		return &UsernameCheck{Available: false}, nil
	}

	taken, err := s.usernameTaken(name)
	if err != nil {
		return nil, err
	}
	if !taken {
		return &UsernameCheck{Available: true}, nil
	}

	var suggestions []string
	for i := 1; len(suggestions) < 3 && i <= 50; i++ {
		candidate := fmt.Sprintf("%s%d", name, i)
		t, err := s.usernameTaken(candidate)
		if err != nil {
			return nil, err
		}
		if !t {
			suggestions = append(suggestions, candidate)
		}
	}
	return &UsernameCheck{Available: false, Suggestions: suggestions}, nil
}

func (s *Store) usernameTaken(name string) (bool, error) {
	var count int64
	err := s.db.Model(&models.User{}).Where("username = ?", name).Count(&count).Error
	return count > 0, err
}
