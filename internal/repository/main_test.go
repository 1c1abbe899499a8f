package repository

import (
	"log"
	"os"
	"testing"

	"github.com/jmoiron/sqlx"

	"clinicdesk/internal/testutil"
)

var testDB *sqlx.DB

func TestMain(m *testing.M) {
	db, err := testutil.SetupTestDB("../../.env.test", "../../migrations")
	if err != nil {
		log.Printf("[TestMain] database tests disabled: %v", err)
	} else {
		testDB = db
	}

	code := m.Run()

	if testDB != nil {
		testDB.Close()
	}
	os.Exit(code)
}

func strPtr(s string) *string {
	return &s
}
