package models

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// User is the account record plus the public profile fields shown on
// posts, comments and connection listings.
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Name         string    `json:"name" gorm:"not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null"` // Ensure email is unique across all users
	PasswordHash string    `json:"-" gorm:"not null"`                 // Store bcrypt hash, ignore for JSON serialization
	Headline     string    `json:"headline"`
	Bio          string    `json:"bio"`
	Avatar       string    `json:"avatar"`
	Location     string    `json:"location"`
	Company      string    `json:"company"`
	Position     string    `json:"position"`
	CreatedAt    time.Time `json:"created_at"`
}

// UserCompact is the public projection of a user joined onto other entities.
type UserCompact struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Headline string `json:"headline"`
	Avatar   string `json:"avatar"`
	Location string `json:"location"`
	Company  string `json:"company"`
	Position string `json:"position"`
}

// ToCompact strips the user down to its public fields.
func (u *User) ToCompact() UserCompact {
	return UserCompact{
		ID:       u.ID,
		Name:     u.Name,
		Headline: u.Headline,
		Avatar:   u.Avatar,
		Location: u.Location,
		Company:  u.Company,
		Position: u.Position,
	}
}

// PublicProfile is the view of another user's profile, optionally annotated
// with the viewer's connection status towards them.
type PublicProfile struct {
	UserCompact
	Bio              string             `json:"bio"`
	CreatedAt        time.Time          `json:"created_at"`
	ConnectionStatus ConnectionRelation `json:"connection_status,omitempty"`
}

// SignupRequest defines the request body for local registration
type SignupRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// SignInRequest defines the request body for local authentication
type SignInRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UpdateProfileRequest carries a partial profile edit. Pointer fields
// distinguish "field absent" from "field set to empty".
type UpdateProfileRequest struct {
	Name     *string `json:"name,omitempty"`
	Headline *string `json:"headline,omitempty"`
	Bio      *string `json:"bio,omitempty"`
	Avatar   *string `json:"avatar,omitempty"`
	Location *string `json:"location,omitempty"`
	Company  *string `json:"company,omitempty"`
	Position *string `json:"position,omitempty"`
}

// JwtCustomClaims are custom claims extending standard jwt.RegisteredClaims
type JwtCustomClaims struct {
	UserID uint   `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}
