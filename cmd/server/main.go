package main

import (
	"context"
	"log"
	"net"
	"os"
	"os/signal"
	"syscall"

	grpclib "google.golang.org/grpc"
	"google.golang.org/grpc/reflection"

	"github.com/rafaelcoutinho/finpilot-backend/internal/adapter/audit"
	grpcadapter "github.com/rafaelcoutinho/finpilot-backend/internal/adapter/grpc"
	finpilotv1 "github.com/rafaelcoutinho/finpilot-backend/internal/adapter/grpc/finpilot/v1"
	"github.com/rafaelcoutinho/finpilot-backend/internal/adapter/repository/postgres"
	"github.com/rafaelcoutinho/finpilot-backend/internal/config"
	"github.com/rafaelcoutinho/finpilot-backend/internal/scheduler"
	"github.com/rafaelcoutinho/finpilot-backend/internal/usecase/contextbuilder"
	"github.com/rafaelcoutinho/finpilot-backend/internal/usecase/conversation"
	"github.com/rafaelcoutinho/finpilot-backend/internal/usecase/executor"
	"github.com/rafaelcoutinho/finpilot-backend/internal/usecase/seeder"
)

const defaultConfigPath = "config.yaml"

func main() {
	configPath := os.Getenv("FINPILOT_CONFIG")
	if configPath == "" {
		configPath = defaultConfigPath
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	// 1. Setup Database
	db, err := postgres.NewDB(cfg.Database.ConnectionString)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// 2. Initialize Repositories (Postgres)
	accountRepo := postgres.NewAccountRepository(db)
	categoryRepo := postgres.NewCategoryRepository(db)
	transactionRepo := postgres.NewTransactionRepository(db)
	goalRepo := postgres.NewGoalRepository(db)
	budgetRepo := postgres.NewBudgetRepository(db)

	// 3. Initialize audit trail (SQLite, falls back to noop)
	var auditor audit.Recorder
	if cfg.Audit.SQLitePath != "" {
		auditor, err = audit.NewSQLiteRecorder(cfg.Audit.SQLitePath)
		if err != nil {
			log.Printf("[WARN] audit recorder unavailable, operations will not be audited: %v", err)
			auditor = audit.NewNoopRecorder()
		}
	} else {
		auditor = audit.NewNoopRecorder()
	}
	defer auditor.Close()

	// 4. Initialize Services (Use Cases)
	conversationLog := conversation.NewLog(conversation.DefaultLimit)

	contextService := contextbuilder.NewService(
		accountRepo, categoryRepo, transactionRepo, goalRepo, budgetRepo,
		conversationLog,
		contextbuilder.Options{
			TTL:                  cfg.Context.TTL.Std(),
			FanoutTimeout:        cfg.Context.FanoutTimeout.Std(),
			RecentLimit:          cfg.Context.RecentLimit,
			HistoryMonths:        cfg.Context.HistoryMonths,
			ScheduledHorizonDays: cfg.Context.ScheduledHorizonDays,
		},
	)

	executorService := executor.NewService(
		categoryRepo, transactionRepo, goalRepo, budgetRepo,
		contextService, auditor, conversationLog,
	)

	// Initialize System Seeder and run it
	systemSeeder := seeder.NewSystemSeeder(categoryRepo)
	if err := systemSeeder.Seed(context.Background()); err != nil {
		log.Fatalf("Failed to seed system categories: %v", err)
	}
	log.Println("System categories seeded successfully")

	// 5. Start maintenance janitor
	janitor := scheduler.NewJanitor(contextService, executorService, cfg.Ledger.MaxAge.Std())
	if err := janitor.RegisterAll(cfg.Janitor.SweepCron, cfg.Janitor.EvictionCron); err != nil {
		log.Fatalf("Failed to register janitor tasks: %v", err)
	}
	janitor.Start()
	defer janitor.Stop()

	// 6. Start gRPC Server
	grpcServer := grpclib.NewServer(
		grpclib.ChainUnaryInterceptor(
			grpcadapter.LoggingInterceptor(),
			grpcadapter.AuthInterceptor(cfg.Server.APIToken),
		),
	)

	grpcAdapter := grpcadapter.NewServer(contextService, executorService)
	finpilotv1.RegisterFinPilotServiceServer(grpcServer, grpcAdapter)

	reflection.Register(grpcServer)

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		log.Fatalf("Failed to listen on %s: %v", cfg.Server.GRPCAddr, err)
	}

	// Start server in a goroutine
	go func() {
		log.Printf("gRPC server listening on %s", cfg.Server.GRPCAddr)
		if err := grpcServer.Serve(lis); err != nil {
			log.Fatalf("Failed to serve gRPC server: %v", err)
		}
	}()

	// Graceful shutdown
	waitForShutdown(grpcServer)
}

// waitForShutdown waits for SIGTERM or SIGINT and gracefully shuts down the server
func waitForShutdown(grpcServer *grpclib.Server) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	sig := <-sigChan
	log.Printf("Received signal: %v. Shutting down gracefully...", sig)

	grpcServer.GracefulStop()
	log.Println("gRPC server stopped")
}
