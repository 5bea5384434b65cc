package services_test

import (
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/linkfield/backend/internal/models"
	"github.com/linkfield/backend/internal/repositories"
	"github.com/linkfield/backend/internal/services"
)

// setup in-memory DB
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		NowFunc: func() time.Time { return time.Now().UTC().Truncate(time.Millisecond) },
	})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&models.User{},
		&models.Post{},
		&models.Like{},
		&models.Comment{},
		&models.Connection{},
	); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

type fixture struct {
	db          *gorm.DB
	connections *services.ConnectionService
	engagement  *services.EngagementService
	feed        *services.FeedService
	profile     *services.ProfileService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := setupTestDB(t)

	userRepo := repositories.NewGormUserRepository(db)
	postRepo := repositories.NewGormPostRepository(db)
	likeRepo := repositories.NewGormLikeRepository(db)
	commentRepo := repositories.NewGormCommentRepository(db)
	connectionRepo := repositories.NewGormConnectionRepository(db)

	connectionService := services.NewConnectionService(connectionRepo, userRepo)
	return &fixture{
		db:          db,
		connections: connectionService,
		engagement:  services.NewEngagementService(likeRepo, commentRepo, postRepo, userRepo),
		feed:        services.NewFeedService(postRepo, userRepo, likeRepo),
		profile:     services.NewProfileService(userRepo, connectionService),
	}
}

func (f *fixture) createUser(t *testing.T, name, email string) *models.User {
	t.Helper()
	user := &models.User{Name: name, Email: email, PasswordHash: "x"}
	if err := f.db.Create(user).Error; err != nil {
		t.Fatalf("failed to create user %s: %v", email, err)
	}
	return user
}

// createPostAt pins created_at so ordering assertions don't depend on
// sub-millisecond clock resolution.
func (f *fixture) createPostAt(t *testing.T, userID uint, content string, createdAt time.Time) *models.Post {
	t.Helper()
	post := &models.Post{UserID: userID, Content: content, CreatedAt: createdAt}
	if err := f.db.Create(post).Error; err != nil {
		t.Fatalf("failed to create post: %v", err)
	}
	return post
}

func (f *fixture) createPost(t *testing.T, userID uint, content string) *models.Post {
	return f.createPostAt(t, userID, content, time.Now().UTC().Truncate(time.Millisecond))
}
