package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clinicdesk/internal/domain"
	"clinicdesk/internal/testutil"
)

func TestStatsRepository_CountEntities(t *testing.T) {
	testutil.RequireDB(t, testDB)
	testutil.ResetTables(t, testDB)

	ctx := context.Background()
	createTestCustomer(t, "Ivy")
	createTestCustomer(t, "Jon")
	require.NoError(t, NewFAQRepository(testDB).Create(ctx, &domain.FAQ{Question: "q", Answer: "a", IsActive: true}))

	counts, err := NewStatsRepository(testDB).CountEntities(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{
		"customer":         2,
		"faq":              1,
		"message_template": 0,
		"appointment":      0,
	}, counts)
}
