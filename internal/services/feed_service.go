package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/linkfield/backend/internal/apperrors"
	"github.com/linkfield/backend/internal/metrics"
	"github.com/linkfield/backend/internal/models"
	"github.com/linkfield/backend/internal/repositories"
)

// MaxPostLength bounds post content after trimming.
const MaxPostLength = 5000

// AnonymousViewer marks an unauthenticated caller; is_liked stays false for
// every post.
const AnonymousViewer uint = 0

// FeedService creates posts and assembles the feed: posts joined with their
// authors and, for an authenticated viewer, the per-post like flag.
type FeedService struct {
	posts repositories.PostRepository
	users repositories.UserRepository
	likes repositories.LikeRepository
}

// NewFeedService creates a new FeedService
func NewFeedService(postRepo repositories.PostRepository, userRepo repositories.UserRepository, likeRepo repositories.LikeRepository) *FeedService {
	return &FeedService{posts: postRepo, users: userRepo, likes: likeRepo}
}

// CreatePost validates and stores a new post with zeroed counters, returning
// it joined with the author's public profile.
func (s *FeedService) CreatePost(userID uint, req models.CreatePostRequest) (*models.FeedPost, error) {
	trimmed, err := validateContent(req.Content, MaxPostLength)
	if err != nil {
		return nil, err
	}

	author, err := s.users.GetUserByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound(apperrors.CodeUserNotFound, "User not found")
		}
		return nil, apperrors.Internal(err)
	}

	post := &models.Post{
		UserID:   userID,
		Content:  trimmed,
		ImageURL: req.ImageURL,
	}
	if err := s.posts.CreatePost(post); err != nil {
		return nil, apperrors.Internal(err)
	}

	metrics.PostsCreated.Inc()
	return &models.FeedPost{Post: *post, Author: author.ToCompact()}, nil
}

// ListFeed returns every post newest first, enriched with author profiles
// and the viewer's like flags. Pass AnonymousViewer for unauthenticated
// callers.
func (s *FeedService) ListFeed(viewerID uint) ([]models.FeedPost, error) {
	posts, err := s.posts.GetAllPosts()
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return s.enrich(posts, viewerID)
}

// ListUserPosts returns targetID's posts newest first with the same
// enrichment as the feed.
func (s *FeedService) ListUserPosts(targetID, viewerID uint) ([]models.FeedPost, error) {
	if _, err := s.users.GetUserByID(targetID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound(apperrors.CodeUserNotFound, "User not found")
		}
		return nil, apperrors.Internal(err)
	}

	posts, err := s.posts.GetPostsByUserID(targetID)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return s.enrich(posts, viewerID)
}

// enrich joins authors and like flags onto posts. Authors are batch-fetched
// once and the viewer's liked set is collected in a single query rather than
// one lookup per post.
func (s *FeedService) enrich(posts []models.Post, viewerID uint) ([]models.FeedPost, error) {
	authorIDs := make([]uint, 0, len(posts))
	postIDs := make([]uint, 0, len(posts))
	for _, p := range posts {
		authorIDs = append(authorIDs, p.UserID)
		postIDs = append(postIDs, p.ID)
	}

	userMap, err := s.users.GetUsersByIDs(authorIDs)
	if err != nil {
		return nil, apperrors.Internal(err)
	}

	likedSet := map[uint]bool{}
	if viewerID != AnonymousViewer {
		likedSet, err = s.likes.GetLikedPostIDSet(viewerID, postIDs)
		if err != nil {
			return nil, apperrors.Internal(err)
		}
	}

	feed := make([]models.FeedPost, 0, len(posts))
	for _, p := range posts {
		author := userMap[p.UserID]
		feed = append(feed, models.FeedPost{
			Post:    p,
			Author:  author.ToCompact(),
			IsLiked: likedSet[p.ID],
		})
	}
	return feed, nil
}
