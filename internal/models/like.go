package models

import "time"

// Like records that a user liked a post. The composite unique index keeps at
// most one row per (user, post) pair, which the toggle path relies on.
type Like struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"uniqueIndex:idx_user_post;not null"`
	PostID    uint      `json:"post_id" gorm:"uniqueIndex:idx_user_post;index;not null"`
	CreatedAt time.Time `json:"created_at"`
}

// LikeWithUser is a like joined with the liker's public profile.
type LikeWithUser struct {
	Like
	User UserCompact `json:"user"`
}

// ToggleLikeResult is the outcome of a like toggle.
type ToggleLikeResult struct {
	IsLiked    bool `json:"is_liked"`
	LikesCount int  `json:"likes_count"`
	Post       Post `json:"post"`
}
