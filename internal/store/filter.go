package store

import (
	"blog-essentials/internal/errors"
	"blog-essentials/internal/model"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// PostFilter is a compiled boolean expression evaluated against a post's
// fields, e.g. `User == "1" && Reactions.ThumbsUp > 0`.
type PostFilter struct {
	source  string
	program *vm.Program
}

// CompilePostFilter compiles source once so it can be reused across states.
func CompilePostFilter(source string) (*PostFilter, error) {
	program, err := expr.Compile(source, expr.Env(model.Post{}), expr.AsBool())
	if err != nil {
		return nil, errors.Wrap(errors.ErrValidation, "invalid post filter", err)
	}
	return &PostFilter{source: source, program: program}, nil
}

func (f *PostFilter) String() string {
	return f.source
}

// Match reports whether p satisfies the filter.
func (f *PostFilter) Match(p model.Post) (bool, error) {
	out, err := expr.Run(f.program, p)
	if err != nil {
		return false, errors.Wrap(errors.ErrInternal, "evaluate post filter", err)
	}
	matched, _ := out.(bool)
	return matched, nil
}

// SelectPostsMatching returns the posts, newest first, that satisfy f.
func SelectPostsMatching(state State, f *PostFilter) ([]model.Post, error) {
	out := []model.Post{}
	for _, p := range state.Posts.All() {
		ok, err := f.Match(p)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, p)
		}
	}
	return out, nil
}
