package store

import (
	"testing"

	"blog-essentials/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	t1 = "2024-05-01T10:00:00.000Z"
	t2 = "2024-05-01T11:00:00.000Z"
	t3 = "2024-05-01T12:00:00.000Z"
)

func TestFetchNotificationsIntoEmptyStore(t *testing.T) {
	s := newTestStore(t)
	assert.Equal(t, "", SelectLatestNotificationDate(s.GetState()))

	s.Dispatch(FetchNotificationsPending{})
	s.Dispatch(FetchNotificationsFulfilled{Notifications: []model.Notification{
		{ID: "n1", Date: t1},
		{ID: "n2", Date: t2},
	}})

	state := s.GetState()
	all := SelectAllNotifications(state)
	require.Len(t, all, 2)
	assert.Equal(t, "n2", all[0].ID)
	assert.Equal(t, "n1", all[1].ID)
	for _, n := range all {
		assert.True(t, n.IsNew)
		assert.False(t, n.Read)
	}
	assert.Equal(t, t2, SelectLatestNotificationDate(state))
	assert.Equal(t, 2, SelectUnreadNotificationCount(state))
	status, _ := SelectNotificationsStatus(state)
	assert.Equal(t, model.StatusSucceeded, status)
}

func TestMarkAllReadAfterFetch(t *testing.T) {
	s := newTestStore(t)
	s.Dispatch(FetchNotificationsFulfilled{Notifications: []model.Notification{
		{ID: "n1", Date: t1},
		{ID: "n2", Date: t2, Read: true},
	}})

	s.Dispatch(AllNotificationsRead{})

	state := s.GetState()
	for _, n := range SelectAllNotifications(state) {
		assert.True(t, n.Read, n.ID)
		assert.False(t, n.IsNew, n.ID)
	}
	assert.Zero(t, SelectUnreadNotificationCount(state))
}

func TestFetchNotificationsUpsertsAndRecomputesIsNew(t *testing.T) {
	s := newTestStore(t)
	s.Dispatch(FetchNotificationsFulfilled{Notifications: []model.Notification{
		{ID: "n1", Date: t1, Message: "hello"},
	}})
	s.Dispatch(AllNotificationsRead{})

	s.Dispatch(FetchNotificationsFulfilled{Notifications: []model.Notification{
		{ID: "n3", Date: t3},
	}})

	all := SelectAllNotifications(s.GetState())
	require.Len(t, all, 2)
	assert.Equal(t, "n3", all[0].ID)
	assert.True(t, all[0].IsNew)
	assert.Equal(t, "n1", all[1].ID)
	assert.True(t, all[1].Read)
	assert.False(t, all[1].IsNew)
	assert.Equal(t, "hello", all[1].Message)
}

func TestFetchNotificationsRejected(t *testing.T) {
	s := newTestStore(t)

	s.Dispatch(FetchNotificationsPending{})
	s.Dispatch(FetchNotificationsRejected{Error: "boom"})

	status, errMsg := SelectNotificationsStatus(s.GetState())
	assert.Equal(t, model.StatusFailed, status)
	assert.Equal(t, "boom", errMsg)
}
