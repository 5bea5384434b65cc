package repositories_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/linkfield/backend/internal/models"
	"github.com/linkfield/backend/internal/repositories"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Post{},
		&models.Like{},
		&models.Comment{},
		&models.Connection{},
	))
	return db
}

func seedUserAndPost(t *testing.T, db *gorm.DB) (*models.User, *models.Post) {
	t.Helper()

	user := &models.User{Name: "Alice", Email: "alice@example.com", PasswordHash: "x"}
	require.NoError(t, db.Create(user).Error)
	post := &models.Post{UserID: user.ID, Content: "hello"}
	require.NoError(t, db.Create(post).Error)
	return user, post
}

func TestToggleLikeKeepsCounterConsistent(t *testing.T) {
	db := setupTestDB(t)
	repo := repositories.NewGormLikeRepository(db)
	user, post := seedUserAndPost(t, db)

	liked, err := repo.ToggleLike(user.ID, post.ID)
	require.NoError(t, err)
	assert.True(t, liked)

	var fresh models.Post
	require.NoError(t, db.First(&fresh, post.ID).Error)
	assert.Equal(t, 1, fresh.LikesCount)

	liked, err = repo.ToggleLike(user.ID, post.ID)
	require.NoError(t, err)
	assert.False(t, liked)

	require.NoError(t, db.First(&fresh, post.ID).Error)
	assert.Equal(t, 0, fresh.LikesCount)

	var rows int64
	db.Model(&models.Like{}).Count(&rows)
	assert.Equal(t, int64(0), rows)
}

func TestLikeUniqueIndexRejectsDuplicate(t *testing.T) {
	db := setupTestDB(t)
	user, post := seedUserAndPost(t, db)

	require.NoError(t, db.Create(&models.Like{UserID: user.ID, PostID: post.ID}).Error)
	err := db.Create(&models.Like{UserID: user.ID, PostID: post.ID}).Error
	assert.Error(t, err)
}

func TestGetLikedPostIDSet(t *testing.T) {
	db := setupTestDB(t)
	repo := repositories.NewGormLikeRepository(db)
	user, post := seedUserAndPost(t, db)

	other := &models.Post{UserID: user.ID, Content: "second"}
	require.NoError(t, db.Create(other).Error)
	require.NoError(t, db.Create(&models.Like{UserID: user.ID, PostID: post.ID}).Error)

	set, err := repo.GetLikedPostIDSet(user.ID, []uint{post.ID, other.ID})
	require.NoError(t, err)
	assert.True(t, set[post.ID])
	assert.False(t, set[other.ID])

	set, err = repo.GetLikedPostIDSet(user.ID, nil)
	require.NoError(t, err)
	assert.Empty(t, set)
}

func TestHasUserLikedPost(t *testing.T) {
	db := setupTestDB(t)
	repo := repositories.NewGormLikeRepository(db)
	user, post := seedUserAndPost(t, db)

	liked, err := repo.HasUserLikedPost(user.ID, post.ID)
	require.NoError(t, err)
	assert.False(t, liked)

	require.NoError(t, db.Create(&models.Like{UserID: user.ID, PostID: post.ID}).Error)

	liked, err = repo.HasUserLikedPost(user.ID, post.ID)
	require.NoError(t, err)
	assert.True(t, liked)
}
