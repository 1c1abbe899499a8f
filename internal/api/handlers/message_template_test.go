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

func TestMessageTemplateHandler_Validation(t *testing.T) {
	handler := NewMessageTemplateHandler(nil, nil, nil)
	e := newTestEcho()

	rec := postJSON(t, e, handler.CreateMessageTemplate, `{"name":"Promo","content":"Hi","template_type":"promo"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "template_type must be one of: confirmation, reminder, follow_up, general", errorMessage(t, rec))

	rec = postJSON(t, e, handler.UpdateMessageTemplate, `{"id":1,"template_type":"promo"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMessageTemplateHandler_Lifecycle(t *testing.T) {
	testutil.RequireDB(t, testDB)
	testutil.ResetTables(t, testDB)

	handler := NewMessageTemplateHandler(testDB, nil, nil)
	e := newTestEcho()

	rec := postJSON(t, e, handler.CreateMessageTemplate,
		`{"name":"Reminder","content":"See you at {appointment_time}","template_type":"reminder"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var created domain.MessageTemplate
	decode(t, rec, &created)
	assert.Equal(t, domain.TemplateTypeReminder, created.TemplateType)
	assert.True(t, created.IsActive)

	rec = postJSON(t, e, handler.UpdateMessageTemplate, fmt.Sprintf(`{"id":%d,"template_type":"follow_up"}`, created.ID))
	require.Equal(t, http.StatusOK, rec.Code)

	var updated domain.MessageTemplate
	decode(t, rec, &updated)
	assert.Equal(t, domain.TemplateTypeFollowUp, updated.TemplateType)
	assert.Equal(t, created.Content, updated.Content)

	rec = getQuery(t, e, handler.GetMessageTemplateByID, url.Values{"id": {"999"}})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "null", strings.TrimSpace(rec.Body.String()))

	rec = postJSON(t, e, handler.DeleteMessageTemplate, fmt.Sprintf(`{"id":%d}`, created.ID))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `true`, rec.Body.String())

	rec = getQuery(t, e, handler.GetMessageTemplates, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}
