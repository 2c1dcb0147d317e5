// Package rpcbridge implements the Terminal gRPC service: it bridges a
// bidirectional stream to an ActiveSession, the way terminal.websocket.go
// bridged a WebSocket connection to a container exec stream, generalized
// from a single HTTP upgrade to a gRPC Attach stream.
package rpcbridge

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/alexmakeev/hive-server/internal/apperr"
	"github.com/alexmakeev/hive-server/internal/broadcast"
	"github.com/alexmakeev/hive-server/internal/identity"
	"github.com/alexmakeev/hive-server/internal/pb"
	"github.com/alexmakeev/hive-server/internal/sessionmgr"
	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Service implements pb.TerminalServer.
type Service struct {
	pb.UnimplementedTerminalServer
	manager *sessionmgr.Manager
}

// New returns a Service backed by manager.
func New(manager *sessionmgr.Manager) *Service {
	return &Service{manager: manager}
}

// Attach reads the first inbound message to learn the target session_id,
// then bridges live SSH output to the stream and stream input to the SSH
// session until either side closes.
func (s *Service) Attach(stream pb.Terminal_AttachServer) error {
	ctx := stream.Context()
	userID := identity.UserIDFromContext(ctx)

	first, err := stream.Recv()
	if err != nil {
		return status.Errorf(codes.InvalidArgument, "no initial message received: %v", err)
	}

	sessionID, err := uuid.Parse(first.GetSessionId())
	if err != nil {
		return status.Error(codes.InvalidArgument, "invalid session id")
	}

	slog.Info("rpcbridge: attaching", "user_id", userID, "session_id", sessionID)

	var lastSeenOffset *int64
	if offset, ok := first.GetLastSeenOffset(); ok {
		lastSeenOffset = &offset
	}

	active, history, sub, err := s.attach(ctx, sessionID, userID, lastSeenOffset)
	if err != nil {
		return err
	}
	defer sub.Unsubscribe()

	if len(history) > 0 {
		if err := stream.Send(&pb.TerminalOutput{Payload: &pb.TerminalOutput_Data{Data: history}}); err != nil {
			return err
		}
	}

	if p := first.GetPayload(); p != nil {
		dispatch(active, p)
	}

	// stream.Recv() does not honor a context argument the way a websocket
	// read does, so the input side can only unblock by the client sending,
	// disconnecting, or this RPC returning (which tears down the stream).
	// We wait for the output side alone and let the input goroutine exit
	// on its own once that teardown happens.
	outputDone := make(chan struct{})
	go func() {
		defer close(outputDone)
		forwardOutput(ctx, stream, sub)
	}()
	go forwardInput(stream, active, sessionID)

	<-outputDone
	slog.Info("rpcbridge: stream ended", "session_id", sessionID, "user_id", userID)
	return nil
}

func (s *Service) attach(ctx context.Context, sessionID, userID uuid.UUID, lastSeenOffset *int64) (*sessionmgr.ActiveSession, []byte, *broadcast.Subscription, error) {
	history, sub, err := s.manager.AttachWithRecovery(ctx, sessionID, userID, lastSeenOffset)
	if err != nil {
		return nil, nil, nil, statusFromAttachError(err)
	}
	active := s.manager.GetSession(sessionID)
	if active == nil {
		sub.Unsubscribe()
		return nil, nil, nil, status.Error(codes.NotFound, "session not found")
	}
	return active, history, sub, nil
}

func dispatch(active *sessionmgr.ActiveSession, payload pb.TerminalInput_Payload) {
	switch p := payload.(type) {
	case *pb.TerminalInput_Data:
		if _, err := active.Write(p.Data); err != nil {
			slog.Warn("rpcbridge: failed to write initial input", "error", err)
		}
	case *pb.TerminalInput_Resize:
		if err := active.Resize(int(p.Resize.GetCols()), int(p.Resize.GetRows())); err != nil {
			slog.Warn("rpcbridge: failed to apply initial resize", "error", err)
		}
	case *pb.TerminalInput_File:
		slog.Info("rpcbridge: file upload received, dropping (unsupported)", "filename", p.File.GetFilename(), "bytes", len(p.File.GetData()))
	}
}

func forwardOutput(ctx context.Context, stream pb.Terminal_AttachServer, sub *broadcast.Subscription) {
	for {
		select {
		case <-ctx.Done():
			return
		case chunk, ok := <-sub.C():
			if !ok {
				return
			}
			if err := stream.Send(&pb.TerminalOutput{Payload: &pb.TerminalOutput_Data{Data: chunk}}); err != nil {
				slog.Debug("rpcbridge: output send failed, closing", "error", err)
				return
			}
		}
	}
}

func forwardInput(stream pb.Terminal_AttachServer, active *sessionmgr.ActiveSession, sessionID uuid.UUID) {
	for {
		in, err := stream.Recv()
		if err != nil {
			if !errors.Is(err, io.EOF) {
				slog.Debug("rpcbridge: input stream error", "session_id", sessionID, "error", err)
			}
			return
		}

		switch p := in.GetPayload().(type) {
		case *pb.TerminalInput_Data:
			if _, err := active.Write(p.Data); err != nil {
				slog.Warn("rpcbridge: ssh write failed", "session_id", sessionID, "error", err)
				sendErr := stream.Send(&pb.TerminalOutput{
					Payload: &pb.TerminalOutput_Error{Error: &pb.Error{Code: "SSH_ERROR", Message: "failed to send input: " + err.Error()}},
				})
				if sendErr != nil {
					slog.Debug("rpcbridge: failed to deliver ssh error output", "error", sendErr)
				}
				return
			}
		case *pb.TerminalInput_Resize:
			if err := active.Resize(int(p.Resize.GetCols()), int(p.Resize.GetRows())); err != nil {
				slog.Warn("rpcbridge: resize failed", "session_id", sessionID, "error", err)
			}
		case *pb.TerminalInput_File:
			// File payload delivery is not implemented; the remote shell has
			// no destination path negotiated for it yet.
			slog.Info("rpcbridge: dropping file upload", "session_id", sessionID, "filename", p.File.GetFilename())
		case nil:
			// no payload on this message; nothing to do
		}
	}
}

func statusFromAttachError(err error) error {
	return apperr.ToStatus(err)
}
