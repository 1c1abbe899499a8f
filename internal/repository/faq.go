package repository

import (
	"context"
	"database/sql"
	"errors"

	"clinicdesk/internal/domain"
)

const faqColumns = `id, created_at, updated_at, question, answer, category, is_active`

type FAQRepository struct {
	db ExtHandle
}

func NewFAQRepository(db ExtHandle) *FAQRepository {
	return &FAQRepository{db: db}
}

func (r *FAQRepository) Create(ctx context.Context, faq *domain.FAQ) error {
	query := `
		INSERT INTO faqs (question, answer, category, is_active)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + faqColumns

	return r.db.GetContext(ctx, faq, query, faq.Question, faq.Answer, faq.Category, faq.IsActive)
}

func (r *FAQRepository) FindAll(ctx context.Context) ([]*domain.FAQ, error) {
	query := `SELECT ` + faqColumns + ` FROM faqs ORDER BY id`

	faqs := []*domain.FAQ{}
	if err := r.db.SelectContext(ctx, &faqs, query); err != nil {
		return nil, err
	}
	return faqs, nil
}

func (r *FAQRepository) FindByID(ctx context.Context, id int64) (*domain.FAQ, error) {
	query := `SELECT ` + faqColumns + ` FROM faqs WHERE id = $1`

	faq := &domain.FAQ{}
	err := r.db.GetContext(ctx, faq, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, NotFound(ErrFAQNotFound, "faq", id)
		}
		return nil, err
	}
	return faq, nil
}

func (r *FAQRepository) Update(ctx context.Context, id int64, patch domain.FAQPatch) (*domain.FAQ, error) {
	var u updateSet
	setOptional(&u, "question", patch.Question)
	setOptional(&u, "answer", patch.Answer)
	setNullable(&u, "category", patch.Category)
	setOptional(&u, "is_active", patch.IsActive)
	query, args := u.query("faqs", id, faqColumns)

	faq := &domain.FAQ{}
	err := r.db.GetContext(ctx, faq, query, args...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, NotFound(ErrFAQNotFound, "faq", id)
		}
		return nil, err
	}
	return faq, nil
}

func (r *FAQRepository) Delete(ctx context.Context, id int64) (bool, error) {
	return deleteByID(ctx, r.db, "faqs", id)
}
