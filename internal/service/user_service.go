package service

import (
	"context"

	"blog-essentials/internal/client"
	"blog-essentials/internal/model"
	"blog-essentials/internal/store"
	"blog-essentials/internal/util"
)

// UserService loads the user list. Users are read-only on this side.
type UserService struct {
	store  StateStore
	client client.Client
}

func NewUserService(st StateStore, c client.Client) *UserService {
	return &UserService{store: st, client: c}
}

// FetchUsers replaces the stored users with the fetched list.
func (s *UserService) FetchUsers(ctx context.Context) error {
	s.store.Dispatch(store.FetchUsersPending{})

	users, err := fetchList[model.User](ctx, s.client, client.UsersPath)
	if err != nil {
		util.Logger.Error("fetch users failed", util.Error(err))
		s.store.Dispatch(store.FetchUsersRejected{Error: err.Error()})
		return err
	}

	util.Logger.Info("users fetched", util.Int("count", len(users)))
	s.store.Dispatch(store.FetchUsersFulfilled{Users: users})
	return nil
}
