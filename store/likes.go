package store

import (
	"errors"

	"gorm.io/gorm"

	"github.com/patentehub/patente_hub/models"
	"github.com/patentehub/patente_hub/utils"
)

// ToggleLike flips one user's like on one post and keeps likes_count in
// step. The mutation runs under the post's lock and inside one
// transaction, so paired toggles always round-trip the counter back to
// its original value. Returns whether the post is liked afterwards.
func (s *Store) ToggleLike(postID, userID string) (liked bool, err error) {
	unlock := s.lockPost(postID)
	defer unlock()

	err = s.db.Transaction(func(tx *gorm.DB) error {
		var post models.Post
		if err := tx.First(&post, "id = ?", postID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		var existing models.Like
		lookupErr := tx.Where("post_id = ? AND user_id = ?", postID, userID).
			First(&existing).Error
		if lookupErr != nil && !errors.Is(lookupErr, gorm.ErrRecordNotFound) {
			return lookupErr
		}

		if lookupErr == nil {
			if err := tx.Delete(&existing).Error; err != nil {
				return err
			}
			liked = false
			return tx.Model(&models.Post{}).Where("id = ?", postID).
				Update("likes_count", gorm.Expr("likes_count - 1")).Error
		}

		like := models.Like{
			ID:     utils.GenerateID(),
			PostID: postID,
			UserID: userID,
		}
		if err := tx.Create(&like).Error; err != nil {
			return err
		}
		liked = true
		return tx.Model(&models.Post{}).Where("id = ?", postID).
			Update("likes_count", gorm.Expr("likes_count + 1")).Error
	})
	return liked, err
}

func (s *Store) HasLiked(postID, userID string) (bool, error) {
	var count int64
	err := s.db.Model(&models.Like{}).
		Where("post_id = ? AND user_id = ?", postID, userID).
		Count(&count).Error
	return count > 0, err
}

func (s *Store) ListLikesByPost(postID string) ([]models.Like, error) {
	var likes []models.Like
	err := s.db.Where("post_id = ?", postID).Find(&likes).Error
	return likes, err
}

func (s *Store) ListLikesByUser(userID string) ([]models.Like, error) {
	var likes []models.Like
	err := s.db.Where("user_id = ?", userID).Find(&likes).Error
	return likes, err
}
