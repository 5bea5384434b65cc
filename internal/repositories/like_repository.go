package repositories

import (
	"errors"

	"github.com/linkfield/backend/internal/models"
	"gorm.io/gorm"
)

// LikeRepository defines the interface for like data operations
type LikeRepository interface {
	ToggleLike(userID, postID uint) (bool, error)
	HasUserLikedPost(userID, postID uint) (bool, error)
	GetLikesByPostID(postID uint) ([]models.Like, error)
	GetLikedPostIDSet(userID uint, postIDs []uint) (map[uint]bool, error)
}

// GormLikeRepository implements LikeRepository on the relational store
type GormLikeRepository struct {
	db *gorm.DB
}

// NewGormLikeRepository creates a new GormLikeRepository
func NewGormLikeRepository(db *gorm.DB) *GormLikeRepository {
	return &GormLikeRepository{db: db}
}

// ToggleLike flips the like state for (userID, postID) and moves the post's
// likes_count with it. The existence check, the row mutation and the counter
// update run in one transaction; the unique index on (user_id, post_id)
// turns a racing duplicate insert into a constraint failure instead of
// counter drift. Returns the resulting liked state.
func (r *GormLikeRepository) ToggleLike(userID, postID uint) (bool, error) {
	var liked bool
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var like models.Like
		findErr := tx.Where("user_id = ? AND post_id = ?", userID, postID).First(&like).Error

		if findErr == nil {
			if err := tx.Delete(&models.Like{}, like.ID).Error; err != nil {
				return err
			}
			if err := tx.Model(&models.Post{}).Where("id = ?", postID).
				UpdateColumn("likes_count", gorm.Expr("likes_count - ?", 1)).Error; err != nil {
				return err
			}
			liked = false
			return nil
		}

		if !errors.Is(findErr, gorm.ErrRecordNotFound) {
			return findErr
		}

		if err := tx.Create(&models.Like{UserID: userID, PostID: postID}).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Post{}).Where("id = ?", postID).
			UpdateColumn("likes_count", gorm.Expr("likes_count + ?", 1)).Error; err != nil {
			return err
		}
		liked = true
		return nil
	})
	return liked, err
}

// HasUserLikedPost checks if a user has liked a specific post
func (r *GormLikeRepository) HasUserLikedPost(userID, postID uint) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Like{}).Where("user_id = ? AND post_id = ?", userID, postID).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// GetLikesByPostID retrieves all likes for a post, newest first
func (r *GormLikeRepository) GetLikesByPostID(postID uint) ([]models.Like, error) {
	var likes []models.Like
	if err := r.db.Where("post_id = ?", postID).Order("created_at DESC").Find(&likes).Error; err != nil {
		return nil, err
	}
	return likes, nil
}

// GetLikedPostIDSet returns which of the given posts the user has liked,
// collected in a single query so feed enrichment stays one pass.
func (r *GormLikeRepository) GetLikedPostIDSet(userID uint, postIDs []uint) (map[uint]bool, error) {
	result := make(map[uint]bool, len(postIDs))
	if len(postIDs) == 0 {
		return result, nil
	}

	var likes []models.Like
	if err := r.db.Where("user_id = ? AND post_id IN ?", userID, postIDs).Find(&likes).Error; err != nil {
		return nil, err
	}
	for _, l := range likes {
		result[l.PostID] = true
	}
	return result, nil
}
