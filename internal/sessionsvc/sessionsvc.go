// Package sessionsvc implements the Sessions gRPC service: owner-scoped
// session lifecycle. Create is the one method with a side effect outside
// the store — it opens a live SSH connection via sessionmgr.
package sessionsvc

import (
	"context"
	"log/slog"

	"github.com/alexmakeev/hive-server/internal/apperr"
	"github.com/alexmakeev/hive-server/internal/domain"
	"github.com/alexmakeev/hive-server/internal/identity"
	"github.com/alexmakeev/hive-server/internal/pb"
	"github.com/alexmakeev/hive-server/internal/sessionmgr"
	"github.com/alexmakeev/hive-server/internal/store"
	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const timeLayout = "2006-01-02T15:04:05Z07:00"

// Service implements pb.SessionsServer.
type Service struct {
	pb.UnimplementedSessionsServer
	repo    store.Repository
	manager *sessionmgr.Manager
}

// New returns a Service backed by repo and manager.
func New(repo store.Repository, manager *sessionmgr.Manager) *Service {
	return &Service{repo: repo, manager: manager}
}

func (s *Service) sessionToProto(ctx context.Context, sess *domain.Session) (*pb.Session, error) {
	conn, err := s.repo.FindConnectionByID(ctx, sess.ConnectionID)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "database error: %v", err)
	}
	var connName string
	if conn != nil {
		connName = conn.Name
	}

	return &pb.Session{
		Id:             sess.ID.String(),
		ConnectionId:   sess.ConnectionID.String(),
		ConnectionName: connName,
		Status:         string(sess.Status),
		CreatedAt:      sess.CreatedAt.Format(timeLayout),
		LastActivity:   sess.LastActivity.Format(timeLayout),
	}, nil
}

func (s *Service) List(ctx context.Context, _ *pb.Empty) (*pb.SessionListResponse, error) {
	userID := identity.UserIDFromContext(ctx)

	sessions, err := s.repo.ListSessionsForUser(ctx, userID)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "database error: %v", err)
	}

	out := make([]*pb.Session, 0, len(sessions))
	for _, sess := range sessions {
		p, err := s.sessionToProto(ctx, sess)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}

	slog.Info("sessionsvc: listed sessions", "user_id", userID, "count", len(out))
	return &pb.SessionListResponse{Sessions: out}, nil
}

func (s *Service) Create(ctx context.Context, req *pb.CreateSessionRequest) (*pb.Session, error) {
	userID := identity.UserIDFromContext(ctx)

	connectionID, err := uuid.Parse(req.GetConnectionId())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "invalid connection id")
	}

	conn, err := s.repo.FindConnectionByID(ctx, connectionID)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "database error: %v", err)
	}
	if conn == nil {
		return nil, status.Error(codes.NotFound, "connection not found")
	}
	if conn.UserID != userID {
		return nil, status.Error(codes.PermissionDenied, "not authorized to use this connection")
	}

	cols, rows := int(req.GetCols()), int(req.GetRows())
	if cols <= 0 {
		cols = 80
	}
	if rows <= 0 {
		rows = 24
	}

	active, err := s.manager.CreateSession(ctx, userID, connectionID, cols, rows, req.GetPassword())
	if err != nil {
		return nil, apperr.ToStatus(err)
	}

	sess, err := s.repo.FindSessionByID(ctx, active.ID)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "database error: %v", err)
	}
	if sess == nil {
		return nil, status.Error(codes.Internal, "session not found after creation")
	}

	slog.Info("sessionsvc: created session", "session_id", sess.ID, "connection_id", connectionID, "user_id", userID)
	return s.sessionToProto(ctx, sess)
}

func (s *Service) Close(ctx context.Context, req *pb.CloseSessionRequest) (*pb.Empty, error) {
	userID := identity.UserIDFromContext(ctx)

	id, err := uuid.Parse(req.GetId())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "invalid session id")
	}

	if err := s.manager.CloseSession(ctx, id, userID); err != nil {
		return nil, apperr.ToStatus(err)
	}

	slog.Info("sessionsvc: closed session", "session_id", id, "user_id", userID)
	return &pb.Empty{}, nil
}
