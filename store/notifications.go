package store

import (
	"github.com/patentehub/patente_hub/models"
	"github.com/patentehub/patente_hub/utils"
)

func (s *Store) CreateNotification(n *models.Notification) error {
	if n.ID == "" {
		n.ID = utils.GenerateID()
	}
	if n.Type == "" {
		n.Type = "info"
	}
	return s.db.Create(n).Error
}

func (s *Store) ListNotifications(userID string) ([]models.Notification, error) {
	var notifs []models.Notification
	err := s.db.Where("user_id = ?", userID).Order("created_at desc").Find(&notifs).Error
	return notifs, err
}

func (s *Store) MarkNotificationRead(id string) error {
	res := s.db.Model(&models.Notification{}).Where("id = ?", id).Update("read", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// CreateCommunityNotification snapshots the sender's name and avatar,
// like posts do for their author.
func (s *Store) CreateCommunityNotification(n *models.CommunityNotification) error {
	if n.ID == "" {
		n.ID = utils.GenerateID()
	}
	if n.FromUserName == "" || n.FromUserAvatar == "" {
		from, err := s.GetUser(n.FromUserID)
		if err == nil {
			n.FromUserName = from.Name
			n.FromUserAvatar = from.Avatar
		}
	}
	return s.db.Create(n).Error
}

func (s *Store) ListCommunityNotifications(toUserID string) ([]models.CommunityNotification, error) {
	var notifs []models.CommunityNotification
	err := s.db.Where("to_user_id = ?", toUserID).Order("created_at desc").Find(&notifs).Error
	return notifs, err
}

func (s *Store) CountUnreadCommunityNotifications(toUserID string) (int64, error) {
	var count int64
	err := s.db.Model(&models.CommunityNotification{}).
		Where("to_user_id = ? AND read = ?", toUserID, false).
		Count(&count).Error
	return count, err
}

func (s *Store) MarkCommunityNotificationRead(id string) error {
	res := s.db.Model(&models.CommunityNotification{}).Where("id = ?", id).Update("read", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) MarkAllCommunityNotificationsRead(toUserID string) error {
	return s.db.Model(&models.CommunityNotification{}).
		Where("to_user_id = ? AND read = ?", toUserID, false).
		Update("read", true).Error
}
