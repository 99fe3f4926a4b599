package store

import (
	"errors"
	"log"
	"regexp"
	"strings"

	"gorm.io/gorm"

	"github.com/patentehub/patente_hub/models"
	"github.com/patentehub/patente_hub/utils"
)

// legacyReplyRe matches the old "REPLY_TO:<parent id>:" content prefix
// some exported databases still carry.
var legacyReplyRe = regexp.MustCompile(`^REPLY_TO:([^:]+):`)

// ParseLegacyReply extracts the parent comment id and the bare content
// from a legacy-encoded reply. Kept as a pure function for the one-time
// migration; ParentID is the only source of truth at runtime.
func ParseLegacyReply(content string) (parentID, rest string, ok bool) {
	m := legacyReplyRe.FindStringSubmatch(content)
	if m == nil {
		return "", content, false
	}
	return m[1], strings.TrimPrefix(content, m[0]), true
}

// MigrateLegacyReplies rewrites every comment whose content still
// encodes its parent as a prefix, moving the id into ParentID. Runs at
// startup; a second run finds nothing to do.
func (s *Store) MigrateLegacyReplies() (int, error) {
	var legacy []models.Comment
	if err := s.db.Where("content LIKE ?", "REPLY_TO:%").Find(&legacy).Error; err != nil {
		return 0, err
	}

	migrated := 0
	for _, c := range legacy {
		parentID, rest, ok := ParseLegacyReply(c.Content)
		if !ok {
			continue
		}
		pid := parentID
		err := s.db.Model(&models.Comment{}).Where("id = ?", c.ID).Updates(map[string]any{
			"parent_id": &pid,
			"content":   rest,
		}).Error
		if err != nil {
			return migrated, err
		}
		migrated++
	}
	if migrated > 0 {
		log.Printf("Migrated %d legacy reply comment(s) to parent_id", migrated)
	}
	return migrated, nil
}

// CreateComment inserts a comment and bumps the post's comments_count
// under the post lock.
func (s *Store) CreateComment(c *models.Comment) error {
	if c.ID == "" {
		c.ID = utils.GenerateID()
	}
	if c.UserName == "" || c.UserAvatar == "" {
		author, err := s.GetUser(c.UserID)
		if err != nil {
			return err
		}
		c.UserName = author.Name
		c.UserAvatar = author.Avatar
	}

	unlock := s.lockPost(c.PostID)
	defer unlock()

	return s.db.Transaction(func(tx *gorm.DB) error {
		var post models.Post
		if err := tx.First(&post, "id = ?", c.PostID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		if err := tx.Create(c).Error; err != nil {
			return err
		}
		return tx.Model(&models.Post{}).Where("id = ?", c.PostID).
			Update("comments_count", gorm.Expr("comments_count + 1")).Error
	})
}

func (s *Store) GetComment(id string) (*models.Comment, error) {
	var c models.Comment
	err := s.db.First(&c, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *Store) ListCommentsByPost(postID string) ([]models.Comment, error) {
	var comments []models.Comment
	err := s.db.Where("post_id = ?", postID).Order("created_at asc").Find(&comments).Error
	return comments, err
}

// DeleteComment removes a comment and every reply beneath it, and
// subtracts the full number of removed records from the post's
// comments_count so the counter never drifts.
func (s *Store) DeleteComment(commentID string) error {
	c, err := s.GetComment(commentID)
	if err != nil {
		return err
	}

	unlock := s.lockPost(c.PostID)
	defer unlock()

	return s.db.Transaction(func(tx *gorm.DB) error {
		ids := []string{commentID}
		frontier := []string{commentID}
		for len(frontier) > 0 {
			var children []models.Comment
			if err := tx.Where("parent_id IN ?", frontier).Find(&children).Error; err != nil {
				return err
			}
			frontier = frontier[:0]
			for _, child := range children {
				ids = append(ids, child.ID)
				frontier = append(frontier, child.ID)
			}
		}

		res := tx.Where("id IN ?", ids).Delete(&models.Comment{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return tx.Model(&models.Post{}).Where("id = ?", c.PostID).
			Update("comments_count", gorm.Expr("comments_count - ?", res.RowsAffected)).Error
	})
}
