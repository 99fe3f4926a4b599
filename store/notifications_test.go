package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/patentehub/patente_hub/models"
)

func TestCommunityNotificationUnreadFlow(t *testing.T) {
	s := newTestStore(t)
	from := seedUser(t, s, "from@example.com", "from")
	to := seedUser(t, s, "to@example.com", "to")

	n1 := &models.CommunityNotification{
		ToUserID: to.ID, FromUserID: from.ID, Type: models.NotifLike,
	}
	require.NoError(t, s.CreateCommunityNotification(n1))
	require.NoError(t, s.CreateCommunityNotification(&models.CommunityNotification{
		ToUserID: to.ID, FromUserID: from.ID, Type: models.NotifFollow,
	}))

	unread, err := s.CountUnreadCommunityNotifications(to.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), unread)

	require.NoError(t, s.MarkCommunityNotificationRead(n1.ID))
	unread, err = s.CountUnreadCommunityNotifications(to.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), unread)

	require.NoError(t, s.MarkAllCommunityNotificationsRead(to.ID))
	unread, err = s.CountUnreadCommunityNotifications(to.ID)
	require.NoError(t, err)
	assert.Zero(t, unread)
}

func TestCommunityNotificationSnapshotsSender(t *testing.T) {
	s := newTestStore(t)
	from := &models.User{
		Email: "from@example.com", Password: "hashed",
		Name: "Karim", Username: "karim", Avatar: "karim.png",
	}
	require.NoError(t, s.CreateUser(from))
	to := seedUser(t, s, "to@example.com", "to")

	n := &models.CommunityNotification{
		ToUserID: to.ID, FromUserID: from.ID, Type: models.NotifComment,
	}
	require.NoError(t, s.CreateCommunityNotification(n))

	list, err := s.ListCommunityNotifications(to.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Karim", list[0].FromUserName)
	assert.Equal(t, "karim.png", list[0].FromUserAvatar)
}

func TestReportLifecycle(t *testing.T) {
	s := newTestStore(t)
	u := seedUser(t, s, "r@example.com", "r")

	r := &models.Report{Type: "post", TargetID: "post-1", UserID: u.ID, Reason: "spam"}
	require.NoError(t, s.CreateReport(r))
	assert.Equal(t, models.ReportPending, r.Status)

	pending, err := s.ListReports(models.ReportPending)
	require.NoError(t, err)
	require.Len(t, pending, 1)

	require.NoError(t, s.SetReportStatus(r.ID, models.ReportReviewed))
	pending, err = s.ListReports(models.ReportPending)
	require.NoError(t, err)
	assert.Empty(t, pending)

	all, err := s.ListReports("")
	require.NoError(t, err)
	assert.Len(t, all, 1)
}
