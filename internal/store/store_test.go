package store

import (
	"sync"
	"testing"

	"blog-essentials/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stateView flattens a State into plain values that reflect.DeepEqual can
// compare; collections carry func fields, which never compare equal.
type stateView struct {
	PostIDs             []string
	Posts               []model.Post
	PostsStatus         model.RequestStatus
	PostsError          string
	UserIDs             []string
	Users               []model.User
	UsersStatus         model.RequestStatus
	UsersError          string
	NotificationIDs     []string
	Notifications       []model.Notification
	NotificationsStatus model.RequestStatus
	NotificationsError  string
}

func viewOf(s State) stateView {
	return stateView{
		PostIDs:             s.Posts.IDs(),
		Posts:               s.Posts.All(),
		PostsStatus:         s.Posts.Status,
		PostsError:          s.Posts.Error,
		UserIDs:             s.Users.IDs(),
		Users:               s.Users.All(),
		UsersStatus:         s.Users.Status,
		UsersError:          s.Users.Error,
		NotificationIDs:     s.Notifications.IDs(),
		Notifications:       s.Notifications.All(),
		NotificationsStatus: s.Notifications.Status,
		NotificationsError:  s.Notifications.Error,
	}
}

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s := New(nil)
	t.Cleanup(s.Close)
	return s
}

func TestInitialState(t *testing.T) {
	s := newTestStore(t)

	state := s.GetState()

	assert.Equal(t, model.StatusIdle, state.Posts.Status)
	assert.Equal(t, model.StatusIdle, state.Users.Status)
	assert.Equal(t, model.StatusIdle, state.Notifications.Status)
	assert.Zero(t, state.Posts.Len())
	assert.Zero(t, state.Users.Len())
	assert.Zero(t, state.Notifications.Len())
}

func TestGetStateReturnsIndependentSnapshot(t *testing.T) {
	s := newTestStore(t)
	s.Dispatch(PostAdded{Post: model.Post{ID: "1", Title: "First"}})

	snapshot := s.GetState()
	s.Dispatch(PostUpdated{ID: "1", Title: "Changed"})
	s.Dispatch(PostAdded{Post: model.Post{ID: "2"}})

	p, ok := snapshot.Posts.ByID("1")
	require.True(t, ok)
	assert.Equal(t, "First", p.Title)
	assert.Equal(t, 1, snapshot.Posts.Len())
}

func TestConcurrentDispatchesAreSerialized(t *testing.T) {
	s := newTestStore(t)
	s.Dispatch(PostAdded{Post: model.Post{ID: "1"}})

	const workers, perWorker = 8, 50
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perWorker; j++ {
				s.Dispatch(ReactionAdded{PostID: "1", Reaction: model.ReactionHeart})
			}
		}()
	}
	wg.Wait()

	p, _ := SelectPostByID(s.GetState(), "1")
	assert.Equal(t, workers*perWorker, p.Reactions.Heart)
}

func TestSelectRunsOnLiveState(t *testing.T) {
	s := newTestStore(t)
	s.Dispatch(PostAdded{Post: model.Post{ID: "1", User: "u1"}})
	s.Dispatch(PostAdded{Post: model.Post{ID: "2", User: "u2"}})

	posts := Select(s, func(st State) []model.Post { return SelectPostsByUser(st, "u2") })

	require.Len(t, posts, 1)
	assert.Equal(t, "2", posts[0].ID)
}

func TestViewSeesLiveStateAndFinalStateAfterClose(t *testing.T) {
	s := New(nil)
	s.Dispatch(FetchNotificationsFulfilled{Notifications: []model.Notification{
		{ID: "n1", Date: "2024-01-01T00:00:00.000Z"},
		{ID: "n2", Date: "2024-01-02T00:00:00.000Z"},
	}})

	var latest string
	s.View(func(st State) { latest = SelectLatestNotificationDate(st) })
	assert.Equal(t, "2024-01-02T00:00:00.000Z", latest)

	s.Close()
	var unread int
	s.View(func(st State) { unread = SelectUnreadNotificationCount(st) })
	assert.Equal(t, 2, unread)
}

func TestClosedStoreDropsActionsAndKeepsFinalState(t *testing.T) {
	s := New(nil)
	s.Dispatch(PostAdded{Post: model.Post{ID: "1"}})
	s.Close()
	s.Close()

	s.Dispatch(PostAdded{Post: model.Post{ID: "2"}})

	assert.Equal(t, []string{"1"}, s.GetState().Posts.IDs())
	assert.Equal(t, 1, Select(s, func(st State) int { return st.Posts.Len() }))
}

func TestUnknownActionLeavesStateUntouched(t *testing.T) {
	s := newTestStore(t)
	s.Dispatch(PostAdded{Post: model.Post{ID: "1"}})
	before := viewOf(s.GetState())

	s.Dispatch(unknownAction{})

	assert.Equal(t, before, viewOf(s.GetState()))
}

type unknownAction struct{}

func (unknownAction) Type() string { return "test/unknown" }
