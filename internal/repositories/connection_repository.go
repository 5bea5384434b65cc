package repositories

import (
	"github.com/linkfield/backend/internal/models"
	"gorm.io/gorm"
)

// ConnectionRepository defines the interface for connection data operations
type ConnectionRepository interface {
	CreateConnection(conn *models.Connection) error
	GetConnectionByID(id uint) (*models.Connection, error)
	FindBetweenUsers(userA, userB uint) (*models.Connection, error)
	GetPendingRequestsForUser(userID uint) ([]models.Connection, error)
	GetAcceptedConnectionsForUser(userID uint) ([]models.Connection, error)
	UpdateConnectionStatus(id uint, status models.ConnectionStatus) error
}

// GormConnectionRepository implements ConnectionRepository on the relational store
type GormConnectionRepository struct {
	db *gorm.DB
}

// NewGormConnectionRepository creates a new GormConnectionRepository
func NewGormConnectionRepository(db *gorm.DB) *GormConnectionRepository {
	return &GormConnectionRepository{db: db}
}

// CreateConnection inserts a new connection row
func (r *GormConnectionRepository) CreateConnection(conn *models.Connection) error {
	return r.db.Create(conn).Error
}

// GetConnectionByID retrieves a connection by ID
func (r *GormConnectionRepository) GetConnectionByID(id uint) (*models.Connection, error) {
	var conn models.Connection
	if err := r.db.First(&conn, id).Error; err != nil {
		return nil, err
	}
	return &conn, nil
}

// FindBetweenUsers returns the non-rejected connection between two users,
// whichever direction it was requested in. Rejected rows are invisible here
// so a fresh request after a rejection is allowed. The query over both
// orderings lives only in this method.
func (r *GormConnectionRepository) FindBetweenUsers(userA, userB uint) (*models.Connection, error) {
	var conn models.Connection
	err := r.db.Where(
		"((user_id = ? AND connected_user_id = ?) OR (user_id = ? AND connected_user_id = ?)) AND status <> ?",
		userA, userB, userB, userA, models.ConnectionRejected,
	).First(&conn).Error
	if err != nil {
		return nil, err
	}
	return &conn, nil
}

// GetPendingRequestsForUser retrieves pending requests received by the user,
// newest first
func (r *GormConnectionRepository) GetPendingRequestsForUser(userID uint) ([]models.Connection, error) {
	var conns []models.Connection
	err := r.db.Where("connected_user_id = ? AND status = ?", userID, models.ConnectionPending).
		Order("created_at DESC").Find(&conns).Error
	if err != nil {
		return nil, err
	}
	return conns, nil
}

// GetAcceptedConnectionsForUser retrieves accepted connections with the user
// on either side, newest first
func (r *GormConnectionRepository) GetAcceptedConnectionsForUser(userID uint) ([]models.Connection, error) {
	var conns []models.Connection
	err := r.db.Where("status = ? AND (user_id = ? OR connected_user_id = ?)",
		models.ConnectionAccepted, userID, userID).
		Order("created_at DESC").Find(&conns).Error
	if err != nil {
		return nil, err
	}
	return conns, nil
}

// UpdateConnectionStatus moves only the status column; created_at is fixed
// at request time.
func (r *GormConnectionRepository) UpdateConnectionStatus(id uint, status models.ConnectionStatus) error {
	return r.db.Model(&models.Connection{}).Where("id = ?", id).
		UpdateColumn("status", status).Error
}
