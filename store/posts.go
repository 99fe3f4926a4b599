package store

import (
	"errors"

	"gorm.io/gorm"

	"github.com/patentehub/patente_hub/models"
	"github.com/patentehub/patente_hub/utils"
)

// CreatePost snapshots the author's name and avatar onto the post so
// the feed renders without a join.
func (s *Store) CreatePost(p *models.Post) error {
	if p.ID == "" {
		p.ID = utils.GenerateID()
	}
	if p.Type == "" {
		p.Type = models.PostTypeText
	}
	if p.UserName == "" || p.UserAvatar == "" {
		author, err := s.GetUser(p.UserID)
		if err != nil {
			return err
		}
		p.UserName = author.Name
		p.UserAvatar = author.Avatar
	}
	return s.db.Create(p).Error
}

func (s *Store) GetPost(id string) (*models.Post, error) {
	var p models.Post
	err := s.db.First(&p, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// ListPosts returns the feed, pinned posts first.
func (s *Store) ListPosts() ([]models.Post, error) {
	var posts []models.Post
	err := s.db.Order("pinned desc, created_at desc").Find(&posts).Error
	return posts, err
}

func (s *Store) ListPostsByUser(userID string) ([]models.Post, error) {
	var posts []models.Post
	err := s.db.Where("user_id = ?", userID).Order("created_at desc").Find(&posts).Error
	return posts, err
}

func (s *Store) UpdatePost(p *models.Post) error {
	return s.db.Save(p).Error
}

func (s *Store) SetPostPinned(postID string, pinned bool) error {
	res := s.db.Model(&models.Post{}).Where("id = ?", postID).Update("pinned", pinned)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeletePost removes the post together with its likes and comments.
func (s *Store) DeletePost(postID string) error {
	unlock := s.lockPost(postID)
	defer unlock()

	return s.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Where("id = ?", postID).Delete(&models.Post{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		if err := tx.Where("post_id = ?", postID).Delete(&models.Like{}).Error; err != nil {
			return err
		}
		return tx.Where("post_id = ?", postID).Delete(&models.Comment{}).Error
	})
}

// VoteQuizPost records one true/false vote on a quiz post and returns
// the updated tally. Serialized per post like the other counters.
func (s *Store) VoteQuizPost(postID string, answer bool) (*models.Post, error) {
	unlock := s.lockPost(postID)
	defer unlock()

	p, err := s.GetPost(postID)
	if err != nil {
		return nil, err
	}
	if p.Type != models.PostTypeQuiz {
		return nil, ErrInvalidState
	}
	column := "quiz_false_count"
	if answer {
		column = "quiz_true_count"
	}
	if err := s.db.Model(&models.Post{}).Where("id = ?", postID).
		Update(column, gorm.Expr(column+" + 1")).Error; err != nil {
		return nil, err
	}
	return s.GetPost(postID)
}
