// Command seed fills the database with demo users, posts, connections,
// likes and comments for local development.
package main

import (
	"fmt"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/linkfield/backend/internal/models"
	"github.com/linkfield/backend/internal/repositories"
	"github.com/linkfield/backend/internal/services"
	"github.com/linkfield/backend/pkg/config"
)

const seedPassword = "password123"

func main() {
	cfg := config.Load()

	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer config.CloseDB(db)

	if err := db.AutoMigrate(
		&models.User{},
		&models.Post{},
		&models.Like{},
		&models.Comment{},
		&models.Connection{},
	); err != nil {
		log.Fatalf("Failed to auto migrate models: %v", err)
	}

	if err := seed(db); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}
	log.Println("Seeding complete. All demo accounts use password:", seedPassword)
}

func seed(db *gorm.DB) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(seedPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	users := []models.User{
		{Name: "Ana Kovac", Email: "ana@example.com", Headline: "Backend Engineer", Location: "Berlin", Company: "Railbird", Position: "Senior Engineer"},
		{Name: "Ben Osei", Email: "ben@example.com", Headline: "Product Designer", Location: "London", Company: "Northloop", Position: "Design Lead"},
		{Name: "Carla Diaz", Email: "carla@example.com", Headline: "Data Scientist", Location: "Madrid", Company: "Quanta", Position: "ML Engineer"},
		{Name: "Dev Sharma", Email: "dev@example.com", Headline: "SRE", Location: "Bangalore", Company: "Railbird", Position: "Staff Engineer"},
	}
	for i := range users {
		users[i].PasswordHash = string(hash)
		if err := db.Where("email = ?", users[i].Email).FirstOrCreate(&users[i]).Error; err != nil {
			return err
		}
	}

	posts := []models.Post{
		{UserID: users[0].ID, Content: "Shipped our new ingestion pipeline today. Ask me anything about backpressure."},
		{UserID: users[1].ID, Content: "Hot take: most dashboards have too many numbers and not enough questions."},
		{UserID: users[2].ID, Content: "Reproducibility is a feature. Treat your training runs like releases."},
		{UserID: users[0].ID, Content: "Reminder: a retry without a budget is just a slower outage."},
	}
	for i := range posts {
		if err := db.Where("user_id = ? AND content = ?", posts[i].UserID, posts[i].Content).
			FirstOrCreate(&posts[i]).Error; err != nil {
			return err
		}
	}

	// Connection graph: Ana<->Ben accepted, Carla->Ana pending, Dev->Ben rejected.
	connections := []models.Connection{
		{UserID: users[0].ID, ConnectedUserID: users[1].ID, Status: models.ConnectionAccepted},
		{UserID: users[2].ID, ConnectedUserID: users[0].ID, Status: models.ConnectionPending},
		{UserID: users[3].ID, ConnectedUserID: users[1].ID, Status: models.ConnectionRejected},
	}
	for i := range connections {
		if err := db.Where("user_id = ? AND connected_user_id = ?",
			connections[i].UserID, connections[i].ConnectedUserID).
			FirstOrCreate(&connections[i]).Error; err != nil {
			return err
		}
	}

	// Engagement goes through the services so the denormalized counters and
	// the unique like constraint stay consistent.
	userRepo := repositories.NewGormUserRepository(db)
	postRepo := repositories.NewGormPostRepository(db)
	likeRepo := repositories.NewGormLikeRepository(db)
	commentRepo := repositories.NewGormCommentRepository(db)
	engagement := services.NewEngagementService(likeRepo, commentRepo, postRepo, userRepo)

	likePairs := [][2]uint{
		{users[1].ID, posts[0].ID},
		{users[2].ID, posts[0].ID},
		{users[0].ID, posts[1].ID},
		{users[3].ID, posts[2].ID},
	}
	for _, pair := range likePairs {
		liked, err := likeRepo.HasUserLikedPost(pair[0], pair[1])
		if err != nil {
			return err
		}
		if liked {
			continue
		}
		if _, err := engagement.ToggleLike(pair[0], pair[1]); err != nil {
			return fmt.Errorf("seeding like (%d, %d): %w", pair[0], pair[1], err)
		}
	}

	var commentCount int64
	if err := db.Model(&models.Comment{}).Count(&commentCount).Error; err != nil {
		return err
	}
	if commentCount == 0 {
		comments := []struct {
			userID, postID uint
			content        string
		}{
			{users[1].ID, posts[0].ID, "Congrats on the launch!"},
			{users[3].ID, posts[0].ID, "How are you handling consumer lag spikes?"},
			{users[2].ID, posts[1].ID, "Strong agree. Questions first, charts second."},
		}
		for _, cm := range comments {
			if _, err := engagement.AddComment(cm.userID, cm.postID, cm.content); err != nil {
				return fmt.Errorf("seeding comment on post %d: %w", cm.postID, err)
			}
		}
	}

	return nil
}
