package handlers

import (
	"errors"
	"regexp"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/patentehub/patente_hub/middleware"
	"github.com/patentehub/patente_hub/models"
	"github.com/patentehub/patente_hub/store"
	"github.com/patentehub/patente_hub/websocket"
)

var mentionRe = regexp.MustCompile(`@(\w+)`)

type CommunityHandler struct {
	store *store.Store
}

func NewCommunityHandler(s *store.Store) *CommunityHandler {
	return &CommunityHandler{store: s}
}

func (h *CommunityHandler) currentUser(c *fiber.Ctx) (*models.User, error) {
	return h.store.GetUser(middleware.UserID(c))
}

// notify persists a community notification and pushes it to the
// recipient's websocket connection if one is open. Self-notifications
// are dropped.
func (h *CommunityHandler) notify(n *models.CommunityNotification) {
	if n.ToUserID == n.FromUserID {
		return
	}
	if err := h.store.CreateCommunityNotification(n); err != nil {
		return
	}
	websocket.Push(n)
}

// sendMentions resolves @username tokens in text and notifies each
// mentioned user once.
func (h *CommunityHandler) sendMentions(from *models.User, text string, postID, commentID *string) []string {
	seen := map[string]bool{}
	var mentioned []string
	for _, m := range mentionRe.FindAllStringSubmatch(text, -1) {
		uname := strings.ToLower(m[1])
		if seen[uname] {
			continue
		}
		seen[uname] = true
		target, err := h.store.GetUserByUsername(uname)
		if err != nil {
			continue
		}
		mentioned = append(mentioned, target.ID)
		h.notify(&models.CommunityNotification{
			ToUserID:   target.ID,
			FromUserID: from.ID,
			Type:       models.NotifMention,
			PostID:     postID,
			CommentID:  commentID,
		})
	}
	return mentioned
}

// --- Posts ---

type CreatePostRequest struct {
	Content      string `json:"content"`
	Image        string `json:"image"`
	Type         string `json:"type" validate:"omitempty,oneof=post quiz"`
	QuizQuestion string `json:"quiz_question"`
	QuizAnswer   bool   `json:"quiz_answer"`
}

func (h *CommunityHandler) CreatePost(c *fiber.Ctx) error {
	user, err := h.currentUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "User not found"})
	}
	if user.IsBanned || !user.Restrictions.CanPost {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Posting is not allowed for this account"})
	}

	var req CreatePostRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if strings.TrimSpace(req.Content) == "" && req.QuizQuestion == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Post content is empty"})
	}

	post := models.Post{
		UserID:       user.ID,
		UserName:     user.Name,
		UserAvatar:   user.Avatar,
		Content:      req.Content,
		Image:        req.Image,
		Type:         req.Type,
		QuizQuestion: req.QuizQuestion,
		QuizAnswer:   req.QuizAnswer,
	}
	if err := h.store.CreatePost(&post); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create post"})
	}

	h.sendMentions(user, req.Content+" "+req.QuizQuestion, &post.ID, nil)
	return c.Status(fiber.StatusCreated).JSON(post)
}

func (h *CommunityHandler) ListPosts(c *fiber.Ctx) error {
	if userID := c.Query("user_id"); userID != "" {
		posts, err := h.store.ListPostsByUser(userID)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
		}
		return c.JSON(posts)
	}
	posts, err := h.store.ListPosts()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	return c.JSON(posts)
}

func (h *CommunityHandler) UpdatePost(c *fiber.Ctx) error {
	post, err := h.store.GetPost(c.Params("postId"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Post not found"})
	}
	user, err := h.currentUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "User not found"})
	}
	if post.UserID != user.ID && user.Role == "user" {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Not your post"})
	}

	var req CreatePostRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	post.Content = req.Content
	post.Image = req.Image
	if err := h.store.UpdatePost(post); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update post"})
	}
	return c.JSON(post)
}

func (h *CommunityHandler) DeletePost(c *fiber.Ctx) error {
	post, err := h.store.GetPost(c.Params("postId"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Post not found"})
	}
	user, err := h.currentUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "User not found"})
	}
	if post.UserID != user.ID && user.Role == "user" {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Not your post"})
	}
	if err := h.store.DeletePost(post.ID); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete post"})
	}
	return c.JSON(fiber.Map{"message": "Post deleted"})
}

func (h *CommunityHandler) PinPost(c *fiber.Ctx) error {
	pinned := c.Query("pinned", "true") != "false"
	if err := h.store.SetPostPinned(c.Params("postId"), pinned); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Post not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	return c.JSON(fiber.Map{"message": "Post pin state updated"})
}

// ToggleLike flips the caller's like and notifies the author on the
// like (not the unlike).
func (h *CommunityHandler) ToggleLike(c *fiber.Ctx) error {
	user, err := h.currentUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "User not found"})
	}
	postID := c.Params("postId")

	liked, err := h.store.ToggleLike(postID, user.ID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Post not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to toggle like"})
	}

	post, err := h.store.GetPost(postID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	if liked {
		h.notify(&models.CommunityNotification{
			ToUserID:   post.UserID,
			FromUserID: user.ID,
			Type:       models.NotifLike,
			PostID:     &post.ID,
		})
	}
	return c.JSON(fiber.Map{"liked": liked, "likes_count": post.LikesCount})
}

func (h *CommunityHandler) VoteQuiz(c *fiber.Ctx) error {
	type Request struct {
		Answer bool `json:"answer"`
	}
	var req Request
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	post, err := h.store.VoteQuizPost(c.Params("postId"), req.Answer)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Post not found"})
		case errors.Is(err, store.ErrInvalidState):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Post is not a quiz"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to record vote"})
		}
	}
	return c.JSON(fiber.Map{
		"correct":    req.Answer == post.QuizAnswer,
		"quiz_stats": post.QuizStats,
	})
}

// --- Comments ---

type CreateCommentRequest struct {
	Content  string  `json:"content" validate:"required"`
	ParentID *string `json:"parent_id,omitempty"`
}

func (h *CommunityHandler) CreateComment(c *fiber.Ctx) error {
	user, err := h.currentUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "User not found"})
	}

	var req CreateCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	isReply := req.ParentID != nil && *req.ParentID != ""
	if user.IsBanned ||
		(isReply && !user.Restrictions.CanReply) ||
		(!isReply && !user.Restrictions.CanComment) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Commenting is not allowed for this account"})
	}

	postID := c.Params("postId")
	comment := models.Comment{
		PostID:     postID,
		UserID:     user.ID,
		UserName:   user.Name,
		UserAvatar: user.Avatar,
		Content:    req.Content,
		ParentID:   req.ParentID,
	}
	comment.Mentions = h.mentionIDs(req.Content)

	if err := h.store.CreateComment(&comment); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Post not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create comment"})
	}

	// Notify the post author, or the parent commenter on a reply.
	if isReply {
		if parent, err := h.store.GetComment(*req.ParentID); err == nil {
			h.notify(&models.CommunityNotification{
				ToUserID:   parent.UserID,
				FromUserID: user.ID,
				Type:       models.NotifReply,
				PostID:     &postID,
				CommentID:  &comment.ID,
			})
		}
	} else if post, err := h.store.GetPost(postID); err == nil {
		h.notify(&models.CommunityNotification{
			ToUserID:   post.UserID,
			FromUserID: user.ID,
			Type:       models.NotifComment,
			PostID:     &postID,
			CommentID:  &comment.ID,
		})
	}
	h.sendMentions(user, req.Content, &postID, &comment.ID)

	return c.Status(fiber.StatusCreated).JSON(comment)
}

func (h *CommunityHandler) mentionIDs(text string) []string {
	var ids []string
	seen := map[string]bool{}
	for _, m := range mentionRe.FindAllStringSubmatch(text, -1) {
		uname := strings.ToLower(m[1])
		if seen[uname] {
			continue
		}
		seen[uname] = true
		if target, err := h.store.GetUserByUsername(uname); err == nil {
			ids = append(ids, target.ID)
		}
	}
	return ids
}

func (h *CommunityHandler) ListComments(c *fiber.Ctx) error {
	comments, err := h.store.ListCommentsByPost(c.Params("postId"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	return c.JSON(comments)
}

func (h *CommunityHandler) DeleteComment(c *fiber.Ctx) error {
	comment, err := h.store.GetComment(c.Params("commentId"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Comment not found"})
	}
	user, err := h.currentUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "User not found"})
	}
	if comment.UserID != user.ID && user.Role == "user" {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Not your comment"})
	}
	if err := h.store.DeleteComment(comment.ID); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete comment"})
	}
	return c.JSON(fiber.Map{"message": "Comment deleted"})
}

// --- Reports ---

type CreateReportRequest struct {
	Type     string `json:"type" validate:"required,oneof=post comment user"`
	TargetID string `json:"target_id" validate:"required"`
	Reason   string `json:"reason" validate:"required"`
}

func (h *CommunityHandler) CreateReport(c *fiber.Ctx) error {
	var req CreateReportRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	report := models.Report{
		Type:     req.Type,
		TargetID: req.TargetID,
		UserID:   middleware.UserID(c),
		Reason:   req.Reason,
	}
	if err := h.store.CreateReport(&report); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create report"})
	}
	return c.Status(fiber.StatusCreated).JSON(report)
}

// --- Community notifications ---

func (h *CommunityHandler) ListNotifications(c *fiber.Ctx) error {
	notifs, err := h.store.ListCommunityNotifications(middleware.UserID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	return c.JSON(notifs)
}

func (h *CommunityHandler) MarkNotificationRead(c *fiber.Ctx) error {
	if err := h.store.MarkCommunityNotificationRead(c.Params("notificationId")); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Notification not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	return c.JSON(fiber.Map{"message": "Notification marked as read"})
}

func (h *CommunityHandler) MarkAllNotificationsRead(c *fiber.Ctx) error {
	if err := h.store.MarkAllCommunityNotificationsRead(middleware.UserID(c)); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	return c.JSON(fiber.Map{"message": "All notifications marked as read"})
}

// Follow adds the target to the caller's following list and notifies
// the target.
func (h *CommunityHandler) Follow(c *fiber.Ctx) error {
	user, err := h.currentUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "User not found"})
	}
	targetID := c.Params("userId")
	if targetID == user.ID {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot follow yourself"})
	}
	if _, err := h.store.GetUser(targetID); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}

	for _, id := range user.Following {
		if id == targetID {
			return c.JSON(fiber.Map{"message": "Already following"})
		}
	}
	user.Following = append(user.Following, targetID)
	if err := h.store.UpdateUser(user); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to follow"})
	}
	h.notify(&models.CommunityNotification{
		ToUserID:   targetID,
		FromUserID: user.ID,
		Type:       models.NotifFollow,
	})
	return c.JSON(fiber.Map{"message": "Following"})
}

func (h *CommunityHandler) Unfollow(c *fiber.Ctx) error {
	user, err := h.currentUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "User not found"})
	}
	targetID := c.Params("userId")
	kept := user.Following[:0]
	for _, id := range user.Following {
		if id != targetID {
			kept = append(kept, id)
		}
	}
	user.Following = kept
	if err := h.store.UpdateUser(user); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to unfollow"})
	}
	return c.JSON(fiber.Map{"message": "Unfollowed"})
}
