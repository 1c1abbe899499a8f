package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clinicdesk/internal/domain"
	"clinicdesk/internal/testutil"
)

func TestMessageTemplateRepository_Lifecycle(t *testing.T) {
	testutil.RequireDB(t, testDB)
	testutil.ResetTables(t, testDB)

	ctx := context.Background()
	repo := NewMessageTemplateRepository(testDB)

	template := &domain.MessageTemplate{
		Name:         "24h reminder",
		Content:      "See you tomorrow at {{time}}",
		TemplateType: domain.TemplateTypeReminder,
		IsActive:     true,
	}
	require.NoError(t, repo.Create(ctx, template))

	found, err := repo.FindByID(ctx, template.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.TemplateTypeReminder, found.TemplateType)

	updated, err := repo.Update(ctx, template.ID, domain.MessageTemplatePatch{
		TemplateType: domain.Some(domain.TemplateTypeFollowUp),
	})
	require.NoError(t, err)
	assert.Equal(t, domain.TemplateTypeFollowUp, updated.TemplateType)
	assert.Equal(t, "24h reminder", updated.Name)

	_, err = repo.Update(ctx, template.ID+100, domain.MessageTemplatePatch{})
	assert.ErrorIs(t, err, ErrMessageTemplateNotFound)

	deleted, err := repo.Delete(ctx, template.ID+100)
	require.NoError(t, err)
	assert.False(t, deleted)
}
