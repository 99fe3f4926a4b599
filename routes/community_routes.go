package routes

import (
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"

	"github.com/patentehub/patente_hub/handlers"
	"github.com/patentehub/patente_hub/middleware"
	ws "github.com/patentehub/patente_hub/websocket"
)

func CommunityRoutes(app *fiber.App, h *handlers.CommunityHandler) {
	api := app.Group("/api/v1")

	community := api.Group("/community", middleware.Protected())

	community.Post("/posts", h.CreatePost)
	community.Get("/posts", h.ListPosts)
	community.Put("/posts/:postId", h.UpdatePost)
	community.Delete("/posts/:postId", h.DeletePost)
	community.Put("/posts/:postId/pin", h.PinPost)
	community.Post("/posts/:postId/like", h.ToggleLike)
	community.Post("/posts/:postId/vote", h.VoteQuiz)
	community.Post("/posts/:postId/comments", h.CreateComment)
	community.Get("/posts/:postId/comments", h.ListComments)
	community.Delete("/comments/:commentId", h.DeleteComment)

	community.Post("/reports", h.CreateReport)

	community.Get("/notifications", h.ListNotifications)
	community.Put("/notifications/:notificationId/read", h.MarkNotificationRead)
	community.Put("/notifications/read-all", h.MarkAllNotificationsRead)

	community.Post("/users/:userId/follow", h.Follow)
	community.Delete("/users/:userId/follow", h.Unfollow)

	api.Use("/ws", middleware.Protected(), func(c *fiber.Ctx) error {
		if !websocket.IsWebSocketUpgrade(c) {
			return fiber.ErrUpgradeRequired
		}
		c.Locals("ws_user_id", middleware.UserID(c))
		return c.Next()
	})
	api.Get("/ws", websocket.New(func(conn *websocket.Conn) {
		userID, _ := conn.Locals("ws_user_id").(string)
		if userID == "" {
			conn.Close()
			return
		}
		ws.Serve(userID)(conn)
	}))
}
