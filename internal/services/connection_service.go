// Package services holds the domain managers. Each operation validates its
// input and the current-state precondition, mutates the store through the
// repositories and resolves to either a result or one typed apperrors.Error.
package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/linkfield/backend/internal/apperrors"
	"github.com/linkfield/backend/internal/metrics"
	"github.com/linkfield/backend/internal/models"
	"github.com/linkfield/backend/internal/repositories"
)

// ConnectionService governs the connection-request lifecycle:
// none -> pending -> accepted | rejected, with a fresh request allowed
// after a rejection.
type ConnectionService struct {
	connections repositories.ConnectionRepository
	users       repositories.UserRepository
}

// NewConnectionService creates a new ConnectionService
func NewConnectionService(connectionRepo repositories.ConnectionRepository, userRepo repositories.UserRepository) *ConnectionService {
	return &ConnectionService{connections: connectionRepo, users: userRepo}
}

// RequestConnection creates a pending request from requesterID to targetID.
// A pending or accepted row between the pair, in either direction, blocks
// the request; a rejected row does not.
func (s *ConnectionService) RequestConnection(requesterID, targetID uint) (*models.Connection, error) {
	if requesterID == targetID {
		return nil, apperrors.Validation(apperrors.CodeSelfConnection, "Cannot send connection request to yourself")
	}

	if _, err := s.users.GetUserByID(targetID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound(apperrors.CodeUserNotFound, "Target user not found")
		}
		return nil, apperrors.Internal(err)
	}

	existing, err := s.connections.FindBetweenUsers(requesterID, targetID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.Internal(err)
	}
	if existing != nil {
		switch existing.Status {
		case models.ConnectionPending:
			return nil, apperrors.Conflict(apperrors.CodeConnectionPending, "Connection request already pending")
		case models.ConnectionAccepted:
			return nil, apperrors.Conflict(apperrors.CodeAlreadyConnected, "Already connected")
		}
	}

	conn := &models.Connection{
		UserID:          requesterID,
		ConnectedUserID: targetID,
		Status:          models.ConnectionPending,
	}
	if err := s.connections.CreateConnection(conn); err != nil {
		return nil, apperrors.Internal(err)
	}

	metrics.ConnectionRequests.Inc()
	return conn, nil
}

// AcceptConnection moves a pending request to accepted. Only the receiver
// may accept, and only while the request is still pending.
func (s *ConnectionService) AcceptConnection(callerID, connectionID uint) (*models.Connection, error) {
	return s.resolve(callerID, connectionID, models.ConnectionAccepted)
}

// RejectConnection moves a pending request to rejected under the same
// preconditions as AcceptConnection.
func (s *ConnectionService) RejectConnection(callerID, connectionID uint) (*models.Connection, error) {
	return s.resolve(callerID, connectionID, models.ConnectionRejected)
}

func (s *ConnectionService) resolve(callerID, connectionID uint, status models.ConnectionStatus) (*models.Connection, error) {
	conn, err := s.connections.GetConnectionByID(connectionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound(apperrors.CodeConnectionNotFound, "Connection not found")
		}
		return nil, apperrors.Internal(err)
	}

	if conn.ConnectedUserID != callerID {
		return nil, apperrors.Authorization(apperrors.CodeNotAuthorized, "Only the receiver may resolve this connection request")
	}
	if conn.Status != models.ConnectionPending {
		return nil, apperrors.Conflict(apperrors.CodeConnectionNotPending, "Connection request is not pending")
	}

	if err := s.connections.UpdateConnectionStatus(conn.ID, status); err != nil {
		return nil, apperrors.Internal(err)
	}
	conn.Status = status
	return conn, nil
}

// ListPendingRequests returns the pending requests received by userID,
// newest first, each joined with the requester's public profile.
func (s *ConnectionService) ListPendingRequests(userID uint) ([]models.PendingRequest, error) {
	conns, err := s.connections.GetPendingRequestsForUser(userID)
	if err != nil {
		return nil, apperrors.Internal(err)
	}

	requesterIDs := make([]uint, 0, len(conns))
	for _, c := range conns {
		requesterIDs = append(requesterIDs, c.UserID)
	}
	userMap, err := s.users.GetUsersByIDs(requesterIDs)
	if err != nil {
		return nil, apperrors.Internal(err)
	}

	requests := make([]models.PendingRequest, 0, len(conns))
	for _, c := range conns {
		requester, ok := userMap[c.UserID]
		if !ok {
			continue // dangling requester reference
		}
		requests = append(requests, models.PendingRequest{Connection: c, Requester: requester.ToCompact()})
	}
	return requests, nil
}

// ListConnections returns userID's accepted connections, newest first, each
// enriched with the other party's public profile. Rows whose other party no
// longer resolves are silently dropped.
func (s *ConnectionService) ListConnections(userID uint) ([]models.ConnectionWithUser, error) {
	conns, err := s.connections.GetAcceptedConnectionsForUser(userID)
	if err != nil {
		return nil, apperrors.Internal(err)
	}

	otherIDs := make([]uint, 0, len(conns))
	for _, c := range conns {
		otherIDs = append(otherIDs, otherParty(c, userID))
	}
	userMap, err := s.users.GetUsersByIDs(otherIDs)
	if err != nil {
		return nil, apperrors.Internal(err)
	}

	result := make([]models.ConnectionWithUser, 0, len(conns))
	for _, c := range conns {
		other, ok := userMap[otherParty(c, userID)]
		if !ok {
			continue
		}
		result = append(result, models.ConnectionWithUser{Connection: c, ConnectedUser: other.ToCompact()})
	}
	return result, nil
}

// ConnectionStatus reports the viewer's standing towards targetID.
func (s *ConnectionService) ConnectionStatus(viewerID, targetID uint) (models.ConnectionRelation, error) {
	if viewerID == targetID {
		return models.RelationSelf, nil
	}

	conn, err := s.connections.FindBetweenUsers(viewerID, targetID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.RelationNone, nil
		}
		return "", apperrors.Internal(err)
	}

	if conn.Status == models.ConnectionAccepted {
		return models.RelationConnected, nil
	}
	if conn.UserID == viewerID {
		return models.RelationPendingSent, nil
	}
	return models.RelationPendingReceived, nil
}

func otherParty(c models.Connection, userID uint) uint {
	if c.UserID == userID {
		return c.ConnectedUserID
	}
	return c.UserID
}
