package db

import (
	"os"
	"testing"
)

// TestConnectPostgres exercises the connection path against a real database
// when one is available.
func TestConnectPostgres(t *testing.T) {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		t.Skip("DATABASE_URL not set, skipping integration test")
	}

	pool := ConnectPostgres(dsn)
	defer pool.Close()
}
