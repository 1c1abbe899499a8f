package repository

import (
	"context"
	"database/sql"
	"errors"

	"clinicdesk/internal/domain"
)

const messageTemplateColumns = `id, created_at, updated_at, name, content, template_type, is_active`

type MessageTemplateRepository struct {
	db ExtHandle
}

func NewMessageTemplateRepository(db ExtHandle) *MessageTemplateRepository {
	return &MessageTemplateRepository{db: db}
}

func (r *MessageTemplateRepository) Create(ctx context.Context, template *domain.MessageTemplate) error {
	query := `
		INSERT INTO message_templates (name, content, template_type, is_active)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + messageTemplateColumns

	return r.db.GetContext(ctx, template, query,
		template.Name, template.Content, template.TemplateType, template.IsActive,
	)
}

func (r *MessageTemplateRepository) FindAll(ctx context.Context) ([]*domain.MessageTemplate, error) {
	query := `SELECT ` + messageTemplateColumns + ` FROM message_templates ORDER BY id`

	templates := []*domain.MessageTemplate{}
	if err := r.db.SelectContext(ctx, &templates, query); err != nil {
		return nil, err
	}
	return templates, nil
}

func (r *MessageTemplateRepository) FindByID(ctx context.Context, id int64) (*domain.MessageTemplate, error) {
	query := `SELECT ` + messageTemplateColumns + ` FROM message_templates WHERE id = $1`

	template := &domain.MessageTemplate{}
	err := r.db.GetContext(ctx, template, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, NotFound(ErrMessageTemplateNotFound, "message template", id)
		}
		return nil, err
	}
	return template, nil
}

func (r *MessageTemplateRepository) Update(ctx context.Context, id int64, patch domain.MessageTemplatePatch) (*domain.MessageTemplate, error) {
	var u updateSet
	setOptional(&u, "name", patch.Name)
	setOptional(&u, "content", patch.Content)
	setOptional(&u, "template_type", patch.TemplateType)
	setOptional(&u, "is_active", patch.IsActive)
	query, args := u.query("message_templates", id, messageTemplateColumns)

	template := &domain.MessageTemplate{}
	err := r.db.GetContext(ctx, template, query, args...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, NotFound(ErrMessageTemplateNotFound, "message template", id)
		}
		return nil, err
	}
	return template, nil
}

func (r *MessageTemplateRepository) Delete(ctx context.Context, id int64) (bool, error) {
	return deleteByID(ctx, r.db, "message_templates", id)
}
