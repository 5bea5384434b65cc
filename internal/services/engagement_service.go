package services

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"gorm.io/gorm"

	"github.com/linkfield/backend/internal/apperrors"
	"github.com/linkfield/backend/internal/metrics"
	"github.com/linkfield/backend/internal/models"
	"github.com/linkfield/backend/internal/repositories"
)

// MaxCommentLength bounds comment content after trimming.
const MaxCommentLength = 2000

// EngagementService maintains likes and comments on posts along with the
// posts' denormalized counters.
type EngagementService struct {
	likes    repositories.LikeRepository
	comments repositories.CommentRepository
	posts    repositories.PostRepository
	users    repositories.UserRepository
}

// NewEngagementService creates a new EngagementService
func NewEngagementService(
	likeRepo repositories.LikeRepository,
	commentRepo repositories.CommentRepository,
	postRepo repositories.PostRepository,
	userRepo repositories.UserRepository,
) *EngagementService {
	return &EngagementService{
		likes:    likeRepo,
		comments: commentRepo,
		posts:    postRepo,
		users:    userRepo,
	}
}

// ToggleLike flips userID's like on postID and returns the new state with
// the refreshed post. Each call flips; callers own the even/odd semantics.
func (s *EngagementService) ToggleLike(userID, postID uint) (*models.ToggleLikeResult, error) {
	if _, err := s.getPost(postID); err != nil {
		return nil, err
	}

	liked, err := s.likes.ToggleLike(userID, postID)
	if err != nil {
		return nil, apperrors.Internal(err)
	}

	post, err := s.getPost(postID)
	if err != nil {
		return nil, err
	}

	metrics.LikesToggled.Inc()
	return &models.ToggleLikeResult{
		IsLiked:    liked,
		LikesCount: post.LikesCount,
		Post:       *post,
	}, nil
}

// AddComment appends a comment to the post and returns it joined with the
// commenting user's public profile.
func (s *EngagementService) AddComment(userID, postID uint, content string) (*models.CommentWithUser, error) {
	if _, err := s.getPost(postID); err != nil {
		return nil, err
	}

	trimmed, err := validateContent(content, MaxCommentLength)
	if err != nil {
		return nil, err
	}

	user, err := s.users.GetUserByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound(apperrors.CodeUserNotFound, "User not found")
		}
		return nil, apperrors.Internal(err)
	}

	comment := &models.Comment{UserID: userID, PostID: postID, Content: trimmed}
	if err := s.comments.CreateComment(comment); err != nil {
		return nil, apperrors.Internal(err)
	}

	metrics.CommentsCreated.Inc()
	return &models.CommentWithUser{Comment: *comment, User: user.ToCompact()}, nil
}

// ListComments returns the post's comments oldest first, each joined with
// its author's public profile.
func (s *EngagementService) ListComments(postID uint) ([]models.CommentWithUser, error) {
	if _, err := s.getPost(postID); err != nil {
		return nil, err
	}

	comments, err := s.comments.GetCommentsByPostID(postID)
	if err != nil {
		return nil, apperrors.Internal(err)
	}

	authorIDs := make([]uint, 0, len(comments))
	for _, c := range comments {
		authorIDs = append(authorIDs, c.UserID)
	}
	userMap, err := s.users.GetUsersByIDs(authorIDs)
	if err != nil {
		return nil, apperrors.Internal(err)
	}

	result := make([]models.CommentWithUser, 0, len(comments))
	for _, c := range comments {
		author := userMap[c.UserID]
		result = append(result, models.CommentWithUser{Comment: c, User: author.ToCompact()})
	}
	return result, nil
}

// ListLikes returns the post's likes newest first, each joined with the
// liker's public profile.
func (s *EngagementService) ListLikes(postID uint) ([]models.LikeWithUser, error) {
	if _, err := s.getPost(postID); err != nil {
		return nil, err
	}

	likes, err := s.likes.GetLikesByPostID(postID)
	if err != nil {
		return nil, apperrors.Internal(err)
	}

	likerIDs := make([]uint, 0, len(likes))
	for _, l := range likes {
		likerIDs = append(likerIDs, l.UserID)
	}
	userMap, err := s.users.GetUsersByIDs(likerIDs)
	if err != nil {
		return nil, apperrors.Internal(err)
	}

	result := make([]models.LikeWithUser, 0, len(likes))
	for _, l := range likes {
		liker := userMap[l.UserID]
		result = append(result, models.LikeWithUser{Like: l, User: liker.ToCompact()})
	}
	return result, nil
}

func (s *EngagementService) getPost(postID uint) (*models.Post, error) {
	post, err := s.posts.GetPostByID(postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound(apperrors.CodePostNotFound, "Post not found")
		}
		return nil, apperrors.Internal(err)
	}
	return post, nil
}

// validateContent trims the input and enforces a non-empty result within
// maxLen characters.
func validateContent(content string, maxLen int) (string, error) {
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return "", apperrors.Validation(apperrors.CodeEmptyContent, "Content must not be empty")
	}
	if utf8.RuneCountInString(trimmed) > maxLen {
		return "", apperrors.Validation(apperrors.CodeContentTooLong,
			fmt.Sprintf("Content must not exceed %d characters", maxLen))
	}
	return trimmed, nil
}
