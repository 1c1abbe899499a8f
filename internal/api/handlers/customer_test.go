package handlers

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clinicdesk/internal/domain"
	"clinicdesk/internal/testutil"
)

func TestCustomerHandler_Validation(t *testing.T) {
	handler := NewCustomerHandler(nil, nil, nil)
	e := newTestEcho()

	t.Run("create without name", func(t *testing.T) {
		rec := postJSON(t, e, handler.CreateCustomer, `{"phone":"+1234567890"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "name is required", errorMessage(t, rec))
	})

	t.Run("create with bad email", func(t *testing.T) {
		rec := postJSON(t, e, handler.CreateCustomer, `{"name":"John","phone":"1","email":"nope"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "email must be a valid email address", errorMessage(t, rec))
	})

	t.Run("malformed json", func(t *testing.T) {
		rec := postJSON(t, e, handler.CreateCustomer, `{"name":`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.True(t, strings.HasPrefix(errorMessage(t, rec), "invalid request"))
	})

	t.Run("update without id", func(t *testing.T) {
		rec := postJSON(t, e, handler.UpdateCustomer, `{"name":"John"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "id is required", errorMessage(t, rec))
	})

	t.Run("non-numeric id", func(t *testing.T) {
		rec := getQuery(t, e, handler.GetCustomerByID, url.Values{"id": {"abc"}})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.True(t, strings.HasPrefix(errorMessage(t, rec), "invalid request"))
	})

	t.Run("update with empty name", func(t *testing.T) {
		rec := postJSON(t, e, handler.UpdateCustomer, `{"id":1,"name":""}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "name must not be empty", errorMessage(t, rec))
	})
}

func TestCustomerHandler_Lifecycle(t *testing.T) {
	testutil.RequireDB(t, testDB)
	testutil.ResetTables(t, testDB)

	handler := NewCustomerHandler(testDB, nil, nil)
	e := newTestEcho()

	rec := postJSON(t, e, handler.CreateCustomer, `{"name":"John Doe","phone":"+1234567890","email":"john@example.com"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var created domain.Customer
	decode(t, rec, &created)
	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, "john@example.com", *created.Email)
	assert.Nil(t, created.Address)
	assert.False(t, created.CreatedAt.IsZero())

	t.Run("list", func(t *testing.T) {
		rec := getQuery(t, e, handler.GetCustomers, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var customers []domain.Customer
		decode(t, rec, &customers)
		require.Len(t, customers, 1)
		assert.Equal(t, "John Doe", customers[0].Name)
	})

	t.Run("get by id", func(t *testing.T) {
		rec := getQuery(t, e, handler.GetCustomerByID, url.Values{"id": {fmt.Sprint(created.ID)}})
		require.Equal(t, http.StatusOK, rec.Code)

		var got domain.Customer
		decode(t, rec, &got)
		assert.Equal(t, created.ID, got.ID)
	})

	t.Run("get by id missing answers null", func(t *testing.T) {
		rec := getQuery(t, e, handler.GetCustomerByID, url.Values{"id": {"999"}})
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "null", strings.TrimSpace(rec.Body.String()))
	})

	t.Run("ids with no row answer null or false", func(t *testing.T) {
		for _, params := range []url.Values{nil, {"id": {"0"}}, {"id": {"-4"}}} {
			rec := getQuery(t, e, handler.GetCustomerByID, params)
			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, "null", strings.TrimSpace(rec.Body.String()))
		}

		for _, body := range []string{`{}`, `{"id":0}`, `{"id":-4}`} {
			rec := postJSON(t, e, handler.DeleteCustomer, body)
			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, "false", strings.TrimSpace(rec.Body.String()))
		}

		rec := postJSON(t, e, handler.UpdateCustomer, `{"id":0,"name":"Ghost"}`)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "customer with id 0 not found", errorMessage(t, rec))
	})

	t.Run("update clears email", func(t *testing.T) {
		rec := postJSON(t, e, handler.UpdateCustomer, fmt.Sprintf(`{"id":%d,"email":null,"notes":"VIP"}`, created.ID))
		require.Equal(t, http.StatusOK, rec.Code)

		var updated domain.Customer
		decode(t, rec, &updated)
		assert.Nil(t, updated.Email)
		assert.Equal(t, "VIP", *updated.Notes)
		assert.Equal(t, "John Doe", updated.Name)
		assert.True(t, updated.UpdatedAt.After(created.UpdatedAt))
	})

	t.Run("update missing answers 404", func(t *testing.T) {
		rec := postJSON(t, e, handler.UpdateCustomer, `{"id":999,"name":"Ghost"}`)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "customer with id 999 not found", errorMessage(t, rec))
	})

	t.Run("delete", func(t *testing.T) {
		rec := postJSON(t, e, handler.DeleteCustomer, fmt.Sprintf(`{"id":%d}`, created.ID))
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "true", strings.TrimSpace(rec.Body.String()))

		rec = postJSON(t, e, handler.DeleteCustomer, fmt.Sprintf(`{"id":%d}`, created.ID))
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "false", strings.TrimSpace(rec.Body.String()))
	})
}
