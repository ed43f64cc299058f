package model

// Reaction names understood by Reactions.Increment
const (
	ReactionThumbsUp = "thumbsUp"
	ReactionHooray   = "hooray"
	ReactionHeart    = "heart"
	ReactionRocket   = "rocket"
	ReactionEyes     = "eyes"
)

// ReactionNames lists every reaction counter in display order.
var ReactionNames = []string{
	ReactionThumbsUp,
	ReactionHooray,
	ReactionHeart,
	ReactionRocket,
	ReactionEyes,
}

// Post is a blog post as served by /fakeApi/posts.
// Date is an ISO-8601 string and doubles as the sort key.
type Post struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	User      string    `json:"user"`
	Date      string    `json:"date"`
	Reactions Reactions `json:"reactions"`
}

// Reactions holds the fixed set of per-post reaction counters.
type Reactions struct {
	ThumbsUp int `json:"thumbsUp"`
	Hooray   int `json:"hooray"`
	Heart    int `json:"heart"`
	Rocket   int `json:"rocket"`
	Eyes     int `json:"eyes"`
}

// Increment bumps the named counter by one. Unknown names report false.
func (r *Reactions) Increment(name string) bool {
	switch name {
	case ReactionThumbsUp:
		r.ThumbsUp++
	case ReactionHooray:
		r.Hooray++
	case ReactionHeart:
		r.Heart++
	case ReactionRocket:
		r.Rocket++
	case ReactionEyes:
		r.Eyes++
	default:
		return false
	}
	return true
}

// Count returns the named counter, or zero for an unknown name.
func (r Reactions) Count(name string) int {
	switch name {
	case ReactionThumbsUp:
		return r.ThumbsUp
	case ReactionHooray:
		return r.Hooray
	case ReactionHeart:
		return r.Heart
	case ReactionRocket:
		return r.Rocket
	case ReactionEyes:
		return r.Eyes
	}
	return 0
}

// NewPost is the partial post sent to POST /fakeApi/posts.
type NewPost struct {
	Title   string `json:"title" validate:"notblank"`
	Content string `json:"content" validate:"notblank"`
	User    string `json:"user" validate:"notblank"`
}
