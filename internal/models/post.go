package models

type Post struct {
	ID         int      `json:"id"`
	Title      string   `json:"title"`
	Categories []string `json:"categories"`
	Content    string   `json:"content"`
}

// NewPostPayload is the body accepted by POST /posts.
type NewPostPayload struct {
	Title      string   `json:"title"`
	Categories []string `json:"categories"`
	Content    string   `json:"content"`
}

// IsValid reports whether the payload has a title and at least one category.
func (p NewPostPayload) IsValid() bool {
	return p.Title != "" && len(p.Categories) > 0
}
