package cli

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"blog-essentials/internal/errors"
	"blog-essentials/internal/model"
	"blog-essentials/internal/store"

	"github.com/spf13/cobra"
)

var (
	postsUser   string
	postsFilter string

	newTitle   string
	newContent string
	newUser    string
)

var postsCmd = &cobra.Command{
	Use:   "posts",
	Short: "Work with posts",
}

var postsListCmd = &cobra.Command{
	Use:   "list",
	Short: "Fetch and print posts, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		var filter *store.PostFilter
		if postsFilter != "" {
			f, err := store.CompilePostFilter(postsFilter)
			if err != nil {
				return err
			}
			filter = f
		}

		a := newApp()
		defer a.Close()

		// posts and authors load concurrently; both land on the same store
		var wg sync.WaitGroup
		var postsErr, usersErr error
		wg.Add(2)
		go func() {
			defer wg.Done()
			postsErr = a.posts.FetchPosts(cmd.Context())
		}()
		go func() {
			defer wg.Done()
			usersErr = a.users.FetchUsers(cmd.Context())
		}()
		wg.Wait()
		if postsErr != nil {
			return postsErr
		}
		if usersErr != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v\n", usersErr)
		}

		state := a.store.GetState()
		var posts []model.Post
		switch {
		case filter != nil:
			var err error
			posts, err = store.SelectPostsMatching(state, filter)
			if err != nil {
				return err
			}
			if postsUser != "" {
				posts = byUser(posts, postsUser)
			}
		case postsUser != "":
			posts = store.SelectPostsByUser(state, postsUser)
		default:
			posts = store.SelectAllPosts(state)
		}

		for _, p := range posts {
			printPost(cmd.OutOrStdout(), state, p)
		}
		return nil
	},
}

var postsAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a post on the API",
	RunE: func(cmd *cobra.Command, args []string) error {
		a := newApp()
		defer a.Close()

		post, err := a.posts.AddNewPost(cmd.Context(), model.NewPost{
			Title:   newTitle,
			Content: newContent,
			User:    newUser,
		})
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "created post %s at %s\n", post.ID, post.Date)
		return nil
	},
}

var postsReactCmd = &cobra.Command{
	Use:   "react <post-id> <reaction>",
	Short: "Add a reaction to a fetched post and print its counters",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a := newApp()
		defer a.Close()

		if err := a.posts.FetchPosts(cmd.Context()); err != nil {
			return err
		}
		a.posts.AddReaction(args[0], args[1])

		post, ok := store.SelectPostByID(a.store.GetState(), args[0])
		if !ok {
			return errors.New(errors.ErrResourceNotFound, fmt.Sprintf("post %s not found", args[0]))
		}
		fmt.Fprintln(cmd.OutOrStdout(), formatReactions(post.Reactions))
		return nil
	},
}

func byUser(posts []model.Post, userID string) []model.Post {
	out := []model.Post{}
	for _, p := range posts {
		if p.User == userID {
			out = append(out, p)
		}
	}
	return out
}

func printPost(w io.Writer, state store.State, p model.Post) {
	author := "Unknown author"
	if u, ok := store.SelectUserByID(state, p.User); ok {
		author = u.Name
	}
	fmt.Fprintf(w, "%s  %s  %q by %s  [%s]\n", p.ID, p.Date, p.Title, author, formatReactions(p.Reactions))
}

func formatReactions(r model.Reactions) string {
	parts := make([]string, 0, len(model.ReactionNames))
	for _, name := range model.ReactionNames {
		parts = append(parts, fmt.Sprintf("%s=%d", name, r.Count(name)))
	}
	return strings.Join(parts, " ")
}

func init() {
	postsListCmd.Flags().StringVar(&postsUser, "user", "", "only posts by this user id")
	postsListCmd.Flags().StringVar(&postsFilter, "filter", "", `filter expression, e.g. 'Reactions.ThumbsUp > 0'`)

	postsAddCmd.Flags().StringVar(&newTitle, "title", "", "post title")
	postsAddCmd.Flags().StringVar(&newContent, "content", "", "post content")
	postsAddCmd.Flags().StringVar(&newUser, "user", "", "author user id")
	postsAddCmd.MarkFlagRequired("title")
	postsAddCmd.MarkFlagRequired("content")
	postsAddCmd.MarkFlagRequired("user")

	postsCmd.AddCommand(postsListCmd, postsAddCmd, postsReactCmd)
	rootCmd.AddCommand(postsCmd)
}
