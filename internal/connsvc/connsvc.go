// Package connsvc implements the Connections gRPC service: owner-scoped
// CRUD over saved SSH destinations.
package connsvc

import (
	"context"
	"log/slog"

	"github.com/alexmakeev/hive-server/internal/domain"
	"github.com/alexmakeev/hive-server/internal/identity"
	"github.com/alexmakeev/hive-server/internal/pb"
	"github.com/alexmakeev/hive-server/internal/store"
	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Service implements pb.ConnectionsServer.
type Service struct {
	pb.UnimplementedConnectionsServer
	repo store.Repository
}

// New returns a Service backed by repo.
func New(repo store.Repository) *Service {
	return &Service{repo: repo}
}

func toProto(c *domain.Connection) *pb.Connection {
	p := &pb.Connection{
		Id:        c.ID.String(),
		Name:      c.Name,
		Host:      c.Host,
		Port:      c.Port,
		Username:  c.Username,
		CreatedAt: c.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
	if c.SSHKeyID != nil {
		p.SshKeyId = c.SSHKeyID.String()
	}
	if c.StartupCommand != nil {
		p.StartupCommand = *c.StartupCommand
	}
	return p
}

func (s *Service) List(ctx context.Context, _ *pb.Empty) (*pb.ConnectionListResponse, error) {
	userID := identity.UserIDFromContext(ctx)

	conns, err := s.repo.ListConnectionsForUser(ctx, userID)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "database error: %v", err)
	}

	out := make([]*pb.Connection, len(conns))
	for i, c := range conns {
		out[i] = toProto(c)
	}

	slog.Info("connsvc: listed connections", "user_id", userID, "count", len(out))
	return &pb.ConnectionListResponse{Connections: out}, nil
}

func (s *Service) Create(ctx context.Context, req *pb.CreateConnectionRequest) (*pb.Connection, error) {
	userID := identity.UserIDFromContext(ctx)

	var sshKeyID *uuid.UUID
	if req.GetSshKeyId() != "" {
		id, err := uuid.Parse(req.GetSshKeyId())
		if err != nil {
			return nil, status.Error(codes.InvalidArgument, "invalid ssh key id")
		}
		sshKeyID = &id
	}

	var startupCommand *string
	if req.GetStartupCommand() != "" {
		cmd := req.GetStartupCommand()
		startupCommand = &cmd
	}

	conn := &domain.Connection{
		UserID:         userID,
		Name:           req.GetName(),
		Host:           req.GetHost(),
		Port:           req.GetPort(),
		Username:       req.GetUsername(),
		SSHKeyID:       sshKeyID,
		StartupCommand: startupCommand,
	}

	created, err := s.repo.CreateConnection(ctx, conn)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "failed to create connection: %v", err)
	}

	slog.Info("connsvc: created connection", "connection_id", created.ID, "user_id", userID)
	return toProto(created), nil
}

func (s *Service) Update(ctx context.Context, req *pb.UpdateConnectionRequest) (*pb.Connection, error) {
	userID := identity.UserIDFromContext(ctx)

	id, err := uuid.Parse(req.GetId())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "invalid connection id")
	}

	existing, err := s.repo.FindConnectionByID(ctx, id)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "database error: %v", err)
	}
	if existing == nil {
		return nil, status.Error(codes.NotFound, "connection not found")
	}
	if existing.UserID != userID {
		return nil, status.Error(codes.PermissionDenied, "not authorized to update this connection")
	}

	existing.Name = req.GetName()
	existing.Host = req.GetHost()
	existing.Port = req.GetPort()
	existing.Username = req.GetUsername()
	existing.SSHKeyID = nil
	if req.GetSshKeyId() != "" {
		keyID, err := uuid.Parse(req.GetSshKeyId())
		if err != nil {
			return nil, status.Error(codes.InvalidArgument, "invalid ssh key id")
		}
		existing.SSHKeyID = &keyID
	}
	existing.StartupCommand = nil
	if req.GetStartupCommand() != "" {
		cmd := req.GetStartupCommand()
		existing.StartupCommand = &cmd
	}

	updated, err := s.repo.UpdateConnection(ctx, existing)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "failed to update connection: %v", err)
	}
	if updated == nil {
		return nil, status.Error(codes.NotFound, "connection not found")
	}

	slog.Info("connsvc: updated connection", "connection_id", id, "user_id", userID)
	return toProto(updated), nil
}

func (s *Service) Delete(ctx context.Context, req *pb.DeleteConnectionRequest) (*pb.Empty, error) {
	userID := identity.UserIDFromContext(ctx)

	id, err := uuid.Parse(req.GetId())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "invalid connection id")
	}

	existing, err := s.repo.FindConnectionByID(ctx, id)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "database error: %v", err)
	}
	if existing == nil {
		return nil, status.Error(codes.NotFound, "connection not found")
	}
	if existing.UserID != userID {
		return nil, status.Error(codes.PermissionDenied, "not authorized to delete this connection")
	}

	if _, err := s.repo.DeleteConnection(ctx, id); err != nil {
		return nil, status.Errorf(codes.Internal, "failed to delete connection: %v", err)
	}

	slog.Info("connsvc: deleted connection", "connection_id", id, "user_id", userID)
	return &pb.Empty{}, nil
}
