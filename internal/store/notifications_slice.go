package store

import (
	"strings"

	"blog-essentials/internal/entity"
	"blog-essentials/internal/model"
)

// NotificationsState holds notifications newest first.
type NotificationsState struct {
	entity.Collection[model.Notification]
	Status model.RequestStatus
	Error  string
}

func notificationID(n model.Notification) string { return n.ID }

func notificationsNewestFirst(a, b model.Notification) int { return strings.Compare(b.Date, a.Date) }

func newNotificationsState() NotificationsState {
	return NotificationsState{
		Collection: entity.New(notificationID, notificationsNewestFirst),
		Status:     model.StatusIdle,
	}
}

func (s NotificationsState) clone() NotificationsState {
	s.Collection = s.Collection.Clone()
	return s
}

func reduceNotifications(s *NotificationsState, action Action) {
	switch a := action.(type) {
	case FetchNotificationsPending:
		s.Status = model.StatusLoading
	case FetchNotificationsFulfilled:
		s.Status = model.StatusSucceeded
		s.UpsertMany(a.Notifications)
		// anything already read is no longer new
		s.Each(func(n *model.Notification) {
			n.IsNew = !n.Read
		})
	case FetchNotificationsRejected:
		s.Status = model.StatusFailed
		s.Error = a.Error
	case AllNotificationsRead:
		s.Each(func(n *model.Notification) {
			n.Read = true
			n.IsNew = false
		})
	}
}

// SelectAllNotifications returns notifications newest first.
func SelectAllNotifications(state State) []model.Notification {
	return state.Notifications.All()
}

// SelectLatestNotificationDate returns the date of the newest held
// notification, or "" when none are held.
func SelectLatestNotificationDate(state State) string {
	ids := state.Notifications.IDs()
	if len(ids) == 0 {
		return ""
	}
	latest, _ := state.Notifications.ByID(ids[0])
	return latest.Date
}

// SelectUnreadNotificationCount counts notifications not yet marked read.
func SelectUnreadNotificationCount(state State) int {
	count := 0
	for _, n := range state.Notifications.All() {
		if !n.Read {
			count++
		}
	}
	return count
}

func SelectNotificationsStatus(state State) (model.RequestStatus, string) {
	return state.Notifications.Status, state.Notifications.Error
}
