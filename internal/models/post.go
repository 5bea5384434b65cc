package models

import "time"

// Post is authored content with denormalized engagement counters. Content is
// immutable once created; the counters are maintained by the engagement layer.
type Post struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	UserID        uint      `json:"user_id" gorm:"index;not null"`
	Content       string    `json:"content" gorm:"not null"`
	ImageURL      string    `json:"image_url"`
	LikesCount    int       `json:"likes_count" gorm:"not null;default:0"`
	CommentsCount int       `json:"comments_count" gorm:"not null;default:0"`
	CreatedAt     time.Time `json:"created_at"`
}

// CreatePostRequest defines the request body for creating a new post
type CreatePostRequest struct {
	Content  string `json:"content" validate:"required"`
	ImageURL string `json:"image_url,omitempty" validate:"omitempty,url"`
}

// FeedPost is a post enriched with its author and the viewer's like flag.
type FeedPost struct {
	Post
	Author  UserCompact `json:"author"`
	IsLiked bool        `json:"is_liked"`
}
