package service

import (
	"context"

	"blog-essentials/internal/client"
	"blog-essentials/internal/errors"
	"blog-essentials/internal/model"
	"blog-essentials/internal/store"
	"blog-essentials/internal/util"

	"github.com/go-playground/validator/v10"
)

// PostService runs the posts operations against the store and the API.
type PostService struct {
	store    StateStore
	client   client.Client
	validate *validator.Validate
}

func NewPostService(st StateStore, c client.Client) *PostService {
	return &PostService{
		store:    st,
		client:   c,
		validate: util.NewValidator(),
	}
}

// FetchPosts loads every post and merges them into the store. A failure is
// recorded as the posts error and also returned.
func (s *PostService) FetchPosts(ctx context.Context) error {
	s.store.Dispatch(store.FetchPostsPending{})

	posts, err := fetchList[model.Post](ctx, s.client, client.PostsPath)
	if err != nil {
		util.Logger.Error("fetch posts failed", util.Error(err))
		s.store.Dispatch(store.FetchPostsRejected{Error: err.Error()})
		return err
	}

	util.Logger.Info("posts fetched", util.Int("count", len(posts)))
	s.store.Dispatch(store.FetchPostsFulfilled{Posts: posts})
	return nil
}

// FetchPostsIfIdle fetches only when the posts status is still idle, and
// reports whether a fetch ran. The check and the pending dispatch are
// separate store calls, so concurrent callers may both see idle and both
// fetch; overlapping fetches resolve last-wins like any other.
func (s *PostService) FetchPostsIfIdle(ctx context.Context) (bool, error) {
	var status model.RequestStatus
	s.store.View(func(st store.State) { status = st.Posts.Status })
	if status != model.StatusIdle {
		return false, nil
	}
	return true, s.FetchPosts(ctx)
}

// AddNewPost sends a new post to the API and stores the server's copy.
func (s *PostService) AddNewPost(ctx context.Context, in model.NewPost) (model.Post, error) {
	if err := s.validate.Struct(in); err != nil {
		return model.Post{}, errors.Wrap(errors.ErrValidation, "invalid post", err)
	}

	resp, err := s.client.Post(ctx, client.PostsPath, in)
	if err != nil {
		util.Logger.Error("add new post failed", util.Error(err))
		return model.Post{}, err
	}
	var created model.Post
	if err := resp.Decode(&created); err != nil {
		return model.Post{}, err
	}

	s.store.Dispatch(store.AddNewPostFulfilled{Post: created})
	return created, nil
}

// AddPost stores a locally created post without contacting the API.
func (s *PostService) AddPost(title, content, userID string) model.Post {
	action := store.NewPostAdded(title, content, userID)
	s.store.Dispatch(action)
	return action.Post
}

func (s *PostService) UpdatePost(id, title, content string) {
	s.store.Dispatch(store.PostUpdated{ID: id, Title: title, Content: content})
}

func (s *PostService) AddReaction(postID, reaction string) {
	s.store.Dispatch(store.ReactionAdded{PostID: postID, Reaction: reaction})
}
