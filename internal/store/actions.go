package store

import (
	"time"

	"blog-essentials/internal/model"

	"github.com/google/uuid"
)

// Action is a state transition queued through Store.Dispatch.
type Action interface {
	Type() string
}

// PostAdded inserts a locally created post.
type PostAdded struct {
	Post model.Post
}

// PostUpdated replaces the title and content of an existing post.
type PostUpdated struct {
	ID      string
	Title   string
	Content string
}

// ReactionAdded increments one reaction counter on a post.
type ReactionAdded struct {
	PostID   string
	Reaction string
}

type FetchPostsPending struct{}

type FetchPostsFulfilled struct {
	Posts []model.Post
}

type FetchPostsRejected struct {
	Error string
}

// AddNewPostFulfilled merges the server's copy of a newly created post.
type AddNewPostFulfilled struct {
	Post model.Post
}

type FetchUsersPending struct{}

type FetchUsersFulfilled struct {
	Users []model.User
}

type FetchUsersRejected struct {
	Error string
}

type FetchNotificationsPending struct{}

type FetchNotificationsFulfilled struct {
	Notifications []model.Notification
}

type FetchNotificationsRejected struct {
	Error string
}

// AllNotificationsRead marks every held notification as read.
type AllNotificationsRead struct{}

func (PostAdded) Type() string                   { return "posts/postAdded" }
func (PostUpdated) Type() string                 { return "posts/postUpdated" }
func (ReactionAdded) Type() string               { return "posts/reactionAdded" }
func (FetchPostsPending) Type() string           { return "posts/fetchPosts/pending" }
func (FetchPostsFulfilled) Type() string         { return "posts/fetchPosts/fulfilled" }
func (FetchPostsRejected) Type() string          { return "posts/fetchPosts/rejected" }
func (AddNewPostFulfilled) Type() string         { return "posts/addNewPost/fulfilled" }
func (FetchUsersPending) Type() string           { return "users/fetchUsers/pending" }
func (FetchUsersFulfilled) Type() string         { return "users/fetchUsers/fulfilled" }
func (FetchUsersRejected) Type() string          { return "users/fetchUsers/rejected" }
func (FetchNotificationsPending) Type() string   { return "notifications/fetchNotifications/pending" }
func (FetchNotificationsFulfilled) Type() string { return "notifications/fetchNotifications/fulfilled" }
func (FetchNotificationsRejected) Type() string  { return "notifications/fetchNotifications/rejected" }
func (AllNotificationsRead) Type() string        { return "notifications/allNotificationsRead" }

// isoTimestamp matches the millisecond UTC layout the API uses for dates.
const isoTimestamp = "2006-01-02T15:04:05.000Z"

// NewPostAdded prepares a PostAdded with a fresh id, the current time and
// zeroed reactions.
func NewPostAdded(title, content, userID string) PostAdded {
	return PostAdded{Post: model.Post{
		ID:      uuid.NewString(),
		Title:   title,
		Content: content,
		User:    userID,
		Date:    time.Now().UTC().Format(isoTimestamp),
	}}
}

func reduce(state *State, action Action) {
	reducePosts(&state.Posts, action)
	reduceUsers(&state.Users, action)
	reduceNotifications(&state.Notifications, action)
}
