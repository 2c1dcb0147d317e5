package main

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alexmakeev/hive-server/internal/authsvc"
	"github.com/alexmakeev/hive-server/internal/config"
	"github.com/alexmakeev/hive-server/internal/connsvc"
	"github.com/alexmakeev/hive-server/internal/healthsvc"
	"github.com/alexmakeev/hive-server/internal/identity"
	"github.com/alexmakeev/hive-server/internal/pb"
	"github.com/alexmakeev/hive-server/internal/reconcile"
	"github.com/alexmakeev/hive-server/internal/rpcbridge"
	"github.com/alexmakeev/hive-server/internal/sessionmgr"
	"github.com/alexmakeev/hive-server/internal/sessionsvc"
	"github.com/alexmakeev/hive-server/internal/sshtransport"
	"github.com/alexmakeev/hive-server/internal/store"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"
	"google.golang.org/grpc"
)

func newServeCommand(databaseURL, listen *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the gRPC server",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Only an explicit --listen overrides HIVE_LISTEN; the flag's
			// default must not mask the environment.
			listenAddr := ""
			if cmd.Flags().Changed("listen") {
				listenAddr = *listen
			}
			return runServe(*databaseURL, listenAddr)
		},
	}
}

func runServe(databaseURL, listen string) error {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if databaseURL != "" {
		cfg.DatabaseURL = databaseURL
	}
	if listen != "" {
		cfg.ListenAddr = listen
	}

	repo, err := store.NewSQLite(cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := repo.Close(); closeErr != nil {
			slog.Error("failed to close repository", "error", closeErr)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := repo.Ping(ctx); err != nil {
		return err
	}
	slog.Info("database connected", "database_url", cfg.DatabaseURL)

	if err := reconcile.Orphans(ctx, repo); err != nil {
		slog.Error("failed to reconcile orphaned sessions", "error", err)
	}

	sshCfg := sshtransport.Config{
		DialTimeout:       cfg.SSH.DialTimeout,
		InactivityTimeout: cfg.SSH.InactivityTimeout,
		KeepaliveInterval: cfg.SSH.KeepaliveInterval,
		KeepaliveMax:      cfg.SSH.KeepaliveMax,
	}
	manager := sessionmgr.New(repo, sshCfg, cfg.Broadcast.BufferCapacity)

	grpcServer := grpc.NewServer(
		grpc.ChainUnaryInterceptor(identity.UnaryServerInterceptor),
		grpc.ChainStreamInterceptor(identity.StreamServerInterceptor),
	)

	pb.RegisterAuthServer(grpcServer, authsvc.New(repo))
	pb.RegisterConnectionsServer(grpcServer, connsvc.New(repo))
	pb.RegisterSessionsServer(grpcServer, sessionsvc.New(repo, manager))
	pb.RegisterTerminalServer(grpcServer, rpcbridge.New(manager))

	lis, err := net.Listen("tcp", cfg.ListenAddr)
	if err != nil {
		return err
	}

	go func() {
		slog.Info("gRPC server listening", "addr", cfg.ListenAddr)
		if err := grpcServer.Serve(lis); err != nil {
			slog.Error("gRPC server stopped", "error", err)
		}
	}()

	r := chi.NewRouter()
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.Recoverer)
	healthsvc.New(repo).Register(r)

	healthSrv := &http.Server{
		Addr:              cfg.HealthAddr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		slog.Info("health server listening", "addr", cfg.HealthAddr)
		if err := healthSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("health server stopped", "error", err)
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down gracefully")

	grpcServer.GracefulStop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := healthSrv.Shutdown(shutdownCtx); err != nil {
		slog.Error("health server forced to shutdown", "error", err)
	}

	slog.Info("server stopped successfully")
	return nil
}
