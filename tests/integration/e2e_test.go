//go:build integration

package integration

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	finpilotv1 "github.com/rafaelcoutinho/finpilot-backend/internal/adapter/grpc/finpilot/v1"
	"github.com/rafaelcoutinho/finpilot-backend/internal/adapter/repository/postgres"
)

var (
	db         *postgres.DB
	grpcClient finpilotv1.FinPilotServiceClient
	grpcConn   *grpc.ClientConn

	testUserID   uuid.UUID
	testAccounts map[string]uuid.UUID // Maps account name to ID
)

// TestMain sets up the test environment
func TestMain(m *testing.M) {
	ctx := context.Background()

	// 1. Connect to Database
	dbConnStr := getDBConnectionString()
	var err error
	db, err = postgres.NewDB(dbConnStr)
	if err != nil {
		panic(fmt.Sprintf("Failed to connect to database: %v", err))
	}
	defer db.Close()

	// 2. Connect to gRPC Server
	grpcAddr := getGRPCAddress()
	grpcConn, err = grpc.NewClient(grpcAddr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		panic(fmt.Sprintf("Failed to connect to gRPC server: %v", err))
	}
	defer grpcConn.Close()

	grpcClient = finpilotv1.NewFinPilotServiceClient(grpcConn)

	// 3. Self-Healing Setup: create the test user's accounts if they don't exist
	testUserID = uuid.MustParse("11111111-1111-1111-1111-111111111111")
	testAccounts = make(map[string]uuid.UUID)
	if err := setupTestAccounts(ctx, db); err != nil {
		panic(fmt.Sprintf("Failed to setup test accounts: %v", err))
	}

	// Run tests
	code := m.Run()

	os.Exit(code)
}

// setupTestAccounts creates the required test accounts if they don't exist
func setupTestAccounts(ctx context.Context, db *postgres.DB) error {
	accounts := []struct {
		name        string
		accountType string
		balance     string
		isDefault   bool
	}{
		{"Conta Corrente", "CORRENTE", "5000.00", true},
		{"Poupança", "POUPANCA", "10000.00", false},
	}

	for _, a := range accounts {
		var existingID uuid.UUID
		query := `SELECT id FROM accounts WHERE user_id = $1 AND name = $2`
		err := db.QueryRowContext(ctx, query, testUserID, a.name).Scan(&existingID)
		if err == nil {
			testAccounts[a.name] = existingID
			continue
		}
		if err != sql.ErrNoRows {
			return fmt.Errorf("failed to check account existence: %w", err)
		}

		id := uuid.New()
		insertQuery := `
			INSERT INTO accounts (id, user_id, name, type, balance, is_default)
			VALUES ($1, $2, $3, $4, $5, $6)
		`
		if _, err := db.ExecContext(ctx, insertQuery, id, testUserID, a.name, a.accountType, a.balance, a.isDefault); err != nil {
			return fmt.Errorf("failed to create account %s: %w", a.name, err)
		}
		testAccounts[a.name] = id
	}

	return nil
}

// getAuthContext returns a context with authorization metadata
func getAuthContext() context.Context {
	md := metadata.New(map[string]string{
		"authorization": "dev-token",
	})
	return metadata.NewOutgoingContext(context.Background(), md)
}

// getDBConnectionString returns the database connection string from environment or defaults
func getDBConnectionString() string {
	connStr := os.Getenv("DB_CONN_STR")
	if connStr != "" {
		return connStr
	}

	host := os.Getenv("DB_HOST")
	if host == "" {
		host = "localhost"
	}

	port := os.Getenv("DB_PORT")
	if port == "" {
		port = "5432"
	}

	user := os.Getenv("DB_USER")
	if user == "" {
		user = "postgres"
	}

	password := os.Getenv("DB_PASSWORD")
	if password == "" {
		password = "postgres"
	}

	dbname := os.Getenv("DB_NAME")
	if dbname == "" {
		dbname = "finpilot"
	}

	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		host, port, user, password, dbname)
}

// getGRPCAddress returns the gRPC server address from environment or defaults
func getGRPCAddress() string {
	addr := os.Getenv("GRPC_ADDRESS")
	if addr == "" {
		addr = "localhost:50051"
	}
	return addr
}

// TestEndToEndCommandFlow tests the complete flow: context build, expense
// registration, context refresh, rollback
func TestEndToEndCommandFlow(t *testing.T) {
	ctx := getAuthContext()

	// Step A: build the initial context
	ctxResp, err := grpcClient.BuildContext(ctx, &finpilotv1.BuildContextRequest{
		UserId: testUserID.String(),
	})
	require.NoError(t, err, "BuildContext should succeed")
	require.NotNil(t, ctxResp.Context, "Context should not be nil")
	assert.Equal(t, testUserID.String(), ctxResp.Context.UserId)
	require.NotEmpty(t, ctxResp.Context.Patrimony.Accounts, "Test user should have accounts")

	// Step B: register an expense through the copilot
	execResp, err := grpcClient.ExecuteCommand(ctx, &finpilotv1.ExecuteCommandRequest{
		UserId:       testUserID.String(),
		Intent:       "criar_despesa",
		OriginalText: "gastei 80 no mercado",
		Entities: &finpilotv1.CommandEntities{
			Valor:     "80.00",
			Categoria: "mercado",
			Descricao: "mercado",
		},
	})
	require.NoError(t, err, "ExecuteCommand should succeed at the transport level")
	assert.Equal(t, "operation_success", execResp.Status)
	assert.NotEmpty(t, execResp.OperationId, "Mutation should return an operation id")
	assert.Contains(t, execResp.Message, "R$80,00")

	// Step C: verify the transaction landed in the store
	var txID uuid.UUID
	var amountStr string
	query := `
		SELECT id, amount FROM transactions
		WHERE user_id = $1 AND type = 'DESPESA'
		ORDER BY created_at DESC LIMIT 1
	`
	err = db.QueryRowContext(ctx, query, testUserID).Scan(&txID, &amountStr)
	require.NoError(t, err, "Expense should exist in the store")
	amount, err := decimal.NewFromString(amountStr)
	require.NoError(t, err)
	assert.True(t, amount.Equal(decimal.RequireFromString("80.00")), "Stored amount should match")

	// Step D: a fresh context reflects the new transaction (the mutation
	// invalidated the cached snapshot)
	refreshed, err := grpcClient.BuildContext(ctx, &finpilotv1.BuildContextRequest{
		UserId: testUserID.String(),
	})
	require.NoError(t, err)
	var found bool
	for _, tx := range refreshed.Context.History.RecentTransactions {
		if tx.Id == txID.String() {
			found = true
			break
		}
	}
	assert.True(t, found, "Fresh context should include the new expense")

	// Step E: rollback removes the record
	_, err = grpcClient.Rollback(ctx, &finpilotv1.RollbackRequest{OperationId: execResp.OperationId})
	require.NoError(t, err, "Rollback should succeed")

	var count int
	err = db.QueryRowContext(ctx, `SELECT COUNT(*) FROM transactions WHERE id = $1`, txID).Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 0, count, "Rolled-back transaction should be gone")

	// Step F: a second rollback of the same operation reports NotFound
	_, err = grpcClient.Rollback(ctx, &finpilotv1.RollbackRequest{OperationId: execResp.OperationId})
	require.Error(t, err, "Second rollback should fail")
	assert.Equal(t, codes.NotFound, status.Code(err))
}

// TestInstallmentFlow verifies the atomic series write and its rollback
func TestInstallmentFlow(t *testing.T) {
	ctx := getAuthContext()

	execResp, err := grpcClient.ExecuteCommand(ctx, &finpilotv1.ExecuteCommandRequest{
		UserId:       testUserID.String(),
		Intent:       "criar_parcelado",
		OriginalText: "comprei uma TV de 1200 em 6 vezes",
		Entities: &finpilotv1.CommandEntities{
			Valor:     "1200.00",
			Parcelas:  6,
			Descricao: "TV",
		},
	})
	require.NoError(t, err)
	require.Equal(t, "operation_success", execResp.Status)
	assert.Contains(t, execResp.Message, "6x de R$200,00")

	// The six linked records must sum exactly to the total
	var seriesID uuid.UUID
	err = db.QueryRowContext(ctx, `
		SELECT id FROM installment_series
		WHERE user_id = $1 ORDER BY created_at DESC LIMIT 1
	`, testUserID).Scan(&seriesID)
	require.NoError(t, err, "Series header should exist")

	var count int
	var sumStr string
	err = db.QueryRowContext(ctx, `
		SELECT COUNT(*), COALESCE(SUM(amount), '0') FROM transactions WHERE series_id = $1
	`, seriesID).Scan(&count, &sumStr)
	require.NoError(t, err)
	assert.Equal(t, 6, count, "Series should have six linked records")
	sum, err := decimal.NewFromString(sumStr)
	require.NoError(t, err)
	assert.True(t, sum.Equal(decimal.RequireFromString("1200.00")),
		"Installments should sum exactly to the total: got %s", sumStr)

	// Rollback removes the series and every linked record
	_, err = grpcClient.Rollback(ctx, &finpilotv1.RollbackRequest{OperationId: execResp.OperationId})
	require.NoError(t, err)

	err = db.QueryRowContext(ctx, `SELECT COUNT(*) FROM transactions WHERE series_id = $1`, seriesID).Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 0, count, "Linked records should be gone after rollback")
}

// TestClarificationFlow verifies that incomplete commands come back as
// clarification outcomes, not transport errors
func TestClarificationFlow(t *testing.T) {
	ctx := getAuthContext()

	execResp, err := grpcClient.ExecuteCommand(ctx, &finpilotv1.ExecuteCommandRequest{
		UserId:       testUserID.String(),
		Intent:       "criar_despesa",
		OriginalText: "gastei no mercado",
	})
	require.NoError(t, err, "Incomplete command is still a valid RPC")
	assert.Equal(t, "clarification_needed", execResp.Status)
	assert.Empty(t, execResp.OperationId, "No ledger entry for a clarification")
	assert.NotEmpty(t, execResp.Suggestions)
}

// TestNegativeScenarios tests error handling for invalid inputs
func TestNegativeScenarios(t *testing.T) {
	ctx := getAuthContext()

	t.Run("MalformedUserID", func(t *testing.T) {
		_, err := grpcClient.BuildContext(ctx, &finpilotv1.BuildContextRequest{
			UserId: "not-a-uuid",
		})
		require.Error(t, err)
		assert.Equal(t, codes.InvalidArgument, status.Code(err))
	})

	t.Run("MalformedAmount", func(t *testing.T) {
		_, err := grpcClient.ExecuteCommand(ctx, &finpilotv1.ExecuteCommandRequest{
			UserId: testUserID.String(),
			Intent: "criar_despesa",
			Entities: &finpilotv1.CommandEntities{
				Valor: "eighty",
			},
		})
		require.Error(t, err)
		assert.Equal(t, codes.InvalidArgument, status.Code(err))
	})

	t.Run("UnknownRollback", func(t *testing.T) {
		_, err := grpcClient.Rollback(ctx, &finpilotv1.RollbackRequest{
			OperationId: uuid.NewString(),
		})
		require.Error(t, err)
		assert.Equal(t, codes.NotFound, status.Code(err))
	})

	t.Run("MissingToken", func(t *testing.T) {
		_, err := grpcClient.BuildContext(context.Background(), &finpilotv1.BuildContextRequest{
			UserId: testUserID.String(),
		})
		require.Error(t, err)
		assert.Equal(t, codes.Unauthenticated, status.Code(err))
	})
}

// TestSearchRelevant tests the free-text lookup RPC
func TestSearchRelevant(t *testing.T) {
	ctx := getAuthContext()

	resp, err := grpcClient.SearchRelevant(ctx, &finpilotv1.SearchRelevantRequest{
		UserId: testUserID.String(),
		Query:  "poupança",
	})
	require.NoError(t, err, "SearchRelevant should succeed")

	var found bool
	for _, account := range resp.Accounts {
		if account.Name == "Poupança" {
			found = true
		}
	}
	assert.True(t, found, "Search should find the savings account by name")
}
