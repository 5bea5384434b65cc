package services

import (
	"errors"
	"net/url"
	"strings"
	"unicode/utf8"

	"gorm.io/gorm"

	"github.com/linkfield/backend/internal/apperrors"
	"github.com/linkfield/backend/internal/models"
	"github.com/linkfield/backend/internal/repositories"
)

// Profile field length limits.
const (
	MaxHeadlineLength = 120
	MaxBioLength      = 2000
	MaxShortFieldLen  = 100
)

// ProfileService reads public profiles and applies partial profile edits.
type ProfileService struct {
	users       repositories.UserRepository
	connections *ConnectionService
}

// NewProfileService creates a new ProfileService
func NewProfileService(userRepo repositories.UserRepository, connectionService *ConnectionService) *ProfileService {
	return &ProfileService{users: userRepo, connections: connectionService}
}

// GetPublicProfile returns the target's public profile. When a viewer is
// present their connection status towards the target is included; the viewer
// looking at themselves gets "self".
func (s *ProfileService) GetPublicProfile(targetID, viewerID uint) (*models.PublicProfile, error) {
	user, err := s.users.GetUserByID(targetID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound(apperrors.CodeUserNotFound, "User not found")
		}
		return nil, apperrors.Internal(err)
	}

	profile := &models.PublicProfile{
		UserCompact: user.ToCompact(),
		Bio:         user.Bio,
		CreatedAt:   user.CreatedAt,
	}

	if viewerID != AnonymousViewer {
		status, err := s.connections.ConnectionStatus(viewerID, targetID)
		if err != nil {
			return nil, err
		}
		profile.ConnectionStatus = status
	}
	return profile, nil
}

// UpdateOwnProfile validates every provided field, then applies them in one
// update. The first violation aborts the call with a field-specific code and
// nothing is written.
func (s *ProfileService) UpdateOwnProfile(userID uint, req models.UpdateProfileRequest) (*models.User, error) {
	updates := map[string]interface{}{}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, apperrors.Validation(apperrors.CodeInvalidName, "Name must be at least 1 character")
		}
		updates["name"] = name
	}
	if req.Headline != nil {
		headline := strings.TrimSpace(*req.Headline)
		if utf8.RuneCountInString(headline) > MaxHeadlineLength {
			return nil, apperrors.Validation(apperrors.CodeInvalidHeadline, "Headline must not exceed 120 characters")
		}
		updates["headline"] = headline
	}
	if req.Bio != nil {
		bio := strings.TrimSpace(*req.Bio)
		if utf8.RuneCountInString(bio) > MaxBioLength {
			return nil, apperrors.Validation(apperrors.CodeInvalidBio, "Bio must not exceed 2000 characters")
		}
		updates["bio"] = bio
	}
	if req.Avatar != nil {
		avatar := strings.TrimSpace(*req.Avatar)
		if avatar != "" && !isWellFormedURL(avatar) {
			return nil, apperrors.Validation(apperrors.CodeInvalidAvatarURL, "Avatar must be a valid URL")
		}
		updates["avatar"] = avatar
	}
	if req.Location != nil {
		location := strings.TrimSpace(*req.Location)
		if utf8.RuneCountInString(location) > MaxShortFieldLen {
			return nil, apperrors.Validation(apperrors.CodeInvalidLocation, "Location must not exceed 100 characters")
		}
		updates["location"] = location
	}
	if req.Company != nil {
		company := strings.TrimSpace(*req.Company)
		if utf8.RuneCountInString(company) > MaxShortFieldLen {
			return nil, apperrors.Validation(apperrors.CodeInvalidCompany, "Company must not exceed 100 characters")
		}
		updates["company"] = company
	}
	if req.Position != nil {
		position := strings.TrimSpace(*req.Position)
		if utf8.RuneCountInString(position) > MaxShortFieldLen {
			return nil, apperrors.Validation(apperrors.CodeInvalidPosition, "Position must not exceed 100 characters")
		}
		updates["position"] = position
	}

	if len(updates) == 0 {
		return nil, apperrors.Validation(apperrors.CodeNoFieldsProvided, "At least one field must be provided for update")
	}

	if err := s.users.UpdateUserFields(userID, updates); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound(apperrors.CodeUserNotFound, "User not found")
		}
		return nil, apperrors.Internal(err)
	}

	user, err := s.users.GetUserByID(userID)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return user, nil
}

// SearchUsers finds users by a case-insensitive name or email match.
func (s *ProfileService) SearchUsers(query string) ([]models.UserCompact, error) {
	users, err := s.users.SearchUsers(query)
	if err != nil {
		return nil, apperrors.Internal(err)
	}

	result := make([]models.UserCompact, 0, len(users))
	for i := range users {
		result = append(result, users[i].ToCompact())
	}
	return result, nil
}

func isWellFormedURL(raw string) bool {
	u, err := url.Parse(raw)
	return err == nil && u.Scheme != "" && u.Host != ""
}
