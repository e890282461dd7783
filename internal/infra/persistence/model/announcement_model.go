package model

import (
	"time"
)

// AnnouncementsCollection is the Firestore collection holding announcements.
const AnnouncementsCollection = "announcements"

// Field paths used in queries and updates.
const (
	AnnouncementFieldTimestamp = "timestamp"
	AnnouncementFieldComments  = "comments"
)

// AnnouncementModel mirrors a document in the 'announcements' collection.
type AnnouncementModel struct {
	ID        string         `firestore:"-"`
	Title     string         `firestore:"title"`
	Content   string         `firestore:"content"`
	Author    string         `firestore:"author"`
	Timestamp time.Time      `firestore:"timestamp"`
	Comments  []CommentModel `firestore:"comments"`
}

// CommentModel mirrors one element of an announcement's 'comments' array.
type CommentModel struct {
	Text      string    `firestore:"text"`
	Author    string    `firestore:"author"`
	AuthorPic string    `firestore:"author_pic"`
	Timestamp time.Time `firestore:"timestamp"`
}
