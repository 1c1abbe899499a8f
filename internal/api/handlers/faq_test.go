package handlers

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clinicdesk/internal/domain"
	"clinicdesk/internal/testutil"
)

func TestFAQHandler_Validation(t *testing.T) {
	handler := NewFAQHandler(nil, nil, nil)
	e := newTestEcho()

	rec := postJSON(t, e, handler.CreateFAQ, `{"question":"Open on Sunday?"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "answer is required", errorMessage(t, rec))

	rec = postJSON(t, e, handler.UpdateFAQ, `{"question":"Open on Sunday?"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "id is required", errorMessage(t, rec))
}

func TestFAQHandler_CreateAndUpdate(t *testing.T) {
	testutil.RequireDB(t, testDB)
	testutil.ResetTables(t, testDB)

	handler := NewFAQHandler(testDB, nil, nil)
	e := newTestEcho()

	rec := postJSON(t, e, handler.CreateFAQ, `{"question":"Do you accept walk-ins?","answer":"Yes","category":"visits"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var created domain.FAQ
	decode(t, rec, &created)
	assert.True(t, created.IsActive)
	assert.Equal(t, "visits", *created.Category)

	rec = postJSON(t, e, handler.UpdateFAQ, fmt.Sprintf(`{"id":%d,"is_active":false,"category":null}`, created.ID))
	require.Equal(t, http.StatusOK, rec.Code)

	var updated domain.FAQ
	decode(t, rec, &updated)
	assert.False(t, updated.IsActive)
	assert.Nil(t, updated.Category)
	assert.Equal(t, "Yes", updated.Answer)

	rec = getQuery(t, e, handler.GetFAQs, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var faqs []domain.FAQ
	decode(t, rec, &faqs)
	assert.Len(t, faqs, 1)
}
