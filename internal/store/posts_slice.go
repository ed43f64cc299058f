package store

import (
	"strings"
	"sync"
	"sync/atomic"

	"blog-essentials/internal/entity"
	"blog-essentials/internal/model"
)

// PostsState holds posts newest first plus the status of the last fetch.
type PostsState struct {
	entity.Collection[model.Post]
	Status model.RequestStatus
	Error  string

	// generation identifies the store a PostsState belongs to and revision
	// changes on every posts write within it. Memoized selectors key on both.
	generation uint64
	revision   uint64
}

var postsGenerations atomic.Uint64

func nextPostsGeneration() uint64 { return postsGenerations.Add(1) }

func postID(p model.Post) string { return p.ID }

func postsNewestFirst(a, b model.Post) int { return strings.Compare(b.Date, a.Date) }

func newPostsState() PostsState {
	return PostsState{
		Collection: entity.New(postID, postsNewestFirst),
		Status:     model.StatusIdle,
		generation: nextPostsGeneration(),
	}
}

func (s PostsState) clone() PostsState {
	s.Collection = s.Collection.Clone()
	return s
}

func reducePosts(s *PostsState, action Action) {
	changed := false
	switch a := action.(type) {
	case PostAdded:
		_, exists := s.ByID(a.Post.ID)
		s.AddOne(a.Post)
		changed = !exists
	case PostUpdated:
		changed = s.UpdateOne(a.ID, func(p *model.Post) {
			p.Title = a.Title
			p.Content = a.Content
		})
	case ReactionAdded:
		s.UpdateOne(a.PostID, func(p *model.Post) {
			changed = p.Reactions.Increment(a.Reaction)
		})
	case FetchPostsPending:
		s.Status = model.StatusLoading
	case FetchPostsFulfilled:
		s.Status = model.StatusSucceeded
		s.UpsertMany(a.Posts)
		changed = true
	case FetchPostsRejected:
		s.Status = model.StatusFailed
		s.Error = a.Error
	case AddNewPostFulfilled:
		s.UpsertOne(a.Post)
		changed = true
	}
	if changed {
		s.revision++
	}
}

// SelectAllPosts returns every post, newest first.
func SelectAllPosts(state State) []model.Post {
	return state.Posts.All()
}

// SelectPostIDs returns post ids, newest first.
func SelectPostIDs(state State) []string {
	return state.Posts.IDs()
}

func SelectPostByID(state State, id string) (model.Post, bool) {
	return state.Posts.ByID(id)
}

// SelectPostsByUser scans every post for those written by userID.
func SelectPostsByUser(state State, userID string) []model.Post {
	out := []model.Post{}
	for _, p := range state.Posts.All() {
		if p.User == userID {
			out = append(out, p)
		}
	}
	return out
}

func SelectPostsStatus(state State) (model.RequestStatus, string) {
	return state.Posts.Status, state.Posts.Error
}

// NewPostsByUserSelector returns a SelectPostsByUser that reuses its last
// result while neither the posts nor the user id have changed. Results from
// different stores are never mixed up. The returned
// slice is shared between calls and must not be modified.
func NewPostsByUserSelector() func(State, string) []model.Post {
	var (
		mu         sync.Mutex
		primed     bool
		generation uint64
		revision   uint64
		userID     string
		result     []model.Post
	)
	return func(state State, id string) []model.Post {
		mu.Lock()
		defer mu.Unlock()
		posts := state.Posts
		if primed && generation == posts.generation && revision == posts.revision && userID == id {
			return result
		}
		result = SelectPostsByUser(state, id)
		primed, generation, revision, userID = true, posts.generation, posts.revision, id
		return result
	}
}
