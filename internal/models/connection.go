package models

import "time"

// ConnectionStatus is the lifecycle state of a connection request.
type ConnectionStatus string

const (
	ConnectionPending  ConnectionStatus = "pending"
	ConnectionAccepted ConnectionStatus = "accepted"
	ConnectionRejected ConnectionStatus = "rejected"
)

// ConnectionRelation describes a viewer's standing towards another user.
type ConnectionRelation string

const (
	RelationSelf            ConnectionRelation = "self"
	RelationConnected       ConnectionRelation = "connected"
	RelationPendingSent     ConnectionRelation = "pending_sent"
	RelationPendingReceived ConnectionRelation = "pending_received"
	RelationNone            ConnectionRelation = "none"
)

// Connection is a directed edge recording a request from UserID to
// ConnectedUserID. CreatedAt is fixed at request time and never updated;
// accept/reject only move Status.
type Connection struct {
	ID              uint             `json:"id" gorm:"primaryKey"`
	UserID          uint             `json:"user_id" gorm:"index;not null"`
	ConnectedUserID uint             `json:"connected_user_id" gorm:"index;not null"`
	Status          ConnectionStatus `json:"status" gorm:"type:varchar(20);default:'pending'"`
	CreatedAt       time.Time        `json:"created_at"`
}

// CreateConnectionRequest defines the request body for sending a connection request
type CreateConnectionRequest struct {
	ConnectedUserID uint `json:"connected_user_id" validate:"required"`
}

// ResolveConnectionRequest defines the request body for accepting or
// rejecting a pending connection request.
type ResolveConnectionRequest struct {
	ConnectionID uint `json:"connection_id" validate:"required"`
}

// PendingRequest is a pending connection joined with the requester's profile.
type PendingRequest struct {
	Connection
	Requester UserCompact `json:"requester"`
}

// ConnectionWithUser is an accepted connection joined with the profile of
// whichever party is not the listing user.
type ConnectionWithUser struct {
	Connection
	ConnectedUser UserCompact `json:"connected_user"`
}
