//go:build integration

package e2e

import (
	"database/sql"
	"net/http/httptest"
	"testing"

	"github.com/stastashpulatov/clinic-bot/internal/config"
	httpserver "github.com/stastashpulatov/clinic-bot/internal/http"
	"github.com/stastashpulatov/clinic-bot/internal/schedule"
	"github.com/stastashpulatov/clinic-bot/internal/testutil"
)

// TestAPIKey is the shared secret the e2e server accepts
const TestAPIKey = "e2e-test-key"

// TestServer represents a complete E2E test environment
type TestServer struct {
	Server        *httptest.Server
	DB            *sql.DB
	MockPublisher *testutil.MockPublisher
}

// SetupE2ETest creates a complete test environment for E2E testing
// This includes:
// - Real PostgreSQL database with the plugin tables
// - Real HTTP server with all routes
// - Mock RabbitMQ publisher (in-memory only)
func SetupE2ETest(t *testing.T) *TestServer {
	t.Helper()

	db := testutil.SetupTestDB(t)

	mockPublisher := testutil.NewMockPublisher()

	cfg := config.Config{
		APIKey:      TestAPIKey,
		TablePrefix: testutil.TestTablePrefix,
	}

	router := httpserver.SetupRouter(db, cfg, schedule.Default(), mockPublisher, nil)

	server := httptest.NewServer(router)

	return &TestServer{
		Server:        server,
		DB:            db,
		MockPublisher: mockPublisher,
	}
}

// Cleanup cleans up all test resources
func (ts *TestServer) Cleanup(t *testing.T) {
	t.Helper()

	ts.Server.Close()

	testutil.CleanupTestDB(t, ts.DB)
	ts.DB.Close()
}

// NewClient creates a new HTTP test client for this server
func (ts *TestServer) NewClient() *testutil.HTTPTestClient {
	return testutil.NewHTTPTestClient(ts.Server.URL, TestAPIKey)
}
