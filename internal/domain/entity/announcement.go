package entity

import "time"

// Announcement is a community post. After creation it only changes by
// appending comments.
type Announcement struct {
	ID        string     // Document id generated by the store.
	Title     string     // Headline, at most 100 characters.
	Content   string     // Body text.
	Author    string     // Display name resolved when the post was created.
	Timestamp time.Time  // Creation time, used for feed ordering.
	Comments  []*Comment // Append-only, oldest first.
}

// Comment is embedded in an announcement. Author fields are a snapshot taken
// when the comment was written.
type Comment struct {
	Text      string
	Author    string
	AuthorPic string
	Timestamp time.Time
}

// CommentCount returns the number of comments on the announcement.
func (a *Announcement) CommentCount() int {
	return len(a.Comments)
}
