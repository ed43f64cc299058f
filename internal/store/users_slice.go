package store

import (
	"blog-essentials/internal/entity"
	"blog-essentials/internal/model"
)

// UsersState holds users in the order the last fetch returned them.
type UsersState struct {
	entity.Collection[model.User]
	Status model.RequestStatus
	Error  string
}

func userID(u model.User) string { return u.ID }

func newUsersState() UsersState {
	return UsersState{
		Collection: entity.New(userID, nil),
		Status:     model.StatusIdle,
	}
}

func (s UsersState) clone() UsersState {
	s.Collection = s.Collection.Clone()
	return s
}

func reduceUsers(s *UsersState, action Action) {
	switch a := action.(type) {
	case FetchUsersPending:
		s.Status = model.StatusLoading
	case FetchUsersFulfilled:
		s.Status = model.StatusSucceeded
		// last fetch wins: nothing from earlier fetches survives
		s.SetAll(a.Users)
	case FetchUsersRejected:
		s.Status = model.StatusFailed
		s.Error = a.Error
	}
}

func SelectAllUsers(state State) []model.User {
	return state.Users.All()
}

func SelectUserByID(state State, id string) (model.User, bool) {
	return state.Users.ByID(id)
}

func SelectUsersStatus(state State) (model.RequestStatus, string) {
	return state.Users.Status, state.Users.Error
}
