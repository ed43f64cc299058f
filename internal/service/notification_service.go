package service

import (
	"context"
	"net/url"

	"blog-essentials/internal/client"
	"blog-essentials/internal/model"
	"blog-essentials/internal/store"
	"blog-essentials/internal/util"

	"go.uber.org/zap"
)

// NotificationService polls for new notifications and marks them read.
type NotificationService struct {
	store  StateStore
	client client.Client
}

func NewNotificationService(st StateStore, c client.Client) *NotificationService {
	return &NotificationService{store: st, client: c}
}

// FetchNotifications asks the API only for notifications newer than the
// newest one already held, and merges them in.
func (s *NotificationService) FetchNotifications(ctx context.Context) error {
	var since string
	s.store.View(func(st store.State) { since = store.SelectLatestNotificationDate(st) })
	s.store.Dispatch(store.FetchNotificationsPending{})

	path := client.NotificationsPath + "?" + url.Values{"since": {since}}.Encode()
	notifications, err := fetchList[model.Notification](ctx, s.client, path)
	if err != nil {
		util.Logger.Error("fetch notifications failed", zap.String("since", since), util.Error(err))
		s.store.Dispatch(store.FetchNotificationsRejected{Error: err.Error()})
		return err
	}

	util.Logger.Info("notifications fetched",
		zap.String("since", since),
		util.Int("count", len(notifications)))
	s.store.Dispatch(store.FetchNotificationsFulfilled{Notifications: notifications})
	return nil
}

func (s *NotificationService) MarkAllRead() {
	s.store.Dispatch(store.AllNotificationsRead{})
}
