package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/asaskevich/govalidator"

	"clinicdesk/internal/domain"
	"clinicdesk/internal/logging"
	"clinicdesk/internal/repository"
)

const entityFAQ = "faq"

type FAQStore interface {
	Create(ctx context.Context, faq *domain.FAQ) error
	FindAll(ctx context.Context) ([]*domain.FAQ, error)
	FindByID(ctx context.Context, id int64) (*domain.FAQ, error)
	Update(ctx context.Context, id int64, patch domain.FAQPatch) (*domain.FAQ, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// CreateFAQInput.IsActive defaults to true when nil.
type CreateFAQInput struct {
	Question string `valid:"required"`
	Answer   string `valid:"required"`
	Category *string
	IsActive *bool
}

type FAQService struct {
	repo      FAQStore
	publisher Publisher
	logger    *slog.Logger
}

func NewFAQService(repo FAQStore, publisher Publisher, logger *slog.Logger) *FAQService {
	return &FAQService{
		repo:      repo,
		publisher: publisherOrNoop(publisher),
		logger:    logging.OrDefault(logger),
	}
}

func (s *FAQService) Create(ctx context.Context, input CreateFAQInput) (*domain.FAQ, error) {
	type faqValidator CreateFAQInput

	if _, err := govalidator.ValidateStruct(faqValidator(input)); err != nil {
		return nil, ErrInvalidInput
	}

	faq := &domain.FAQ{
		Question: input.Question,
		Answer:   input.Answer,
		Category: input.Category,
		IsActive: true,
	}
	if input.IsActive != nil {
		faq.IsActive = *input.IsActive
	}

	if err := s.repo.Create(ctx, faq); err != nil {
		return nil, storeFailure(ctx, s.logger, entityFAQ, "create", 0, err)
	}

	logMutation(ctx, s.logger, entityFAQ, "create", faq.ID)
	s.publisher.Publish(eventType(entityFAQ, EventCreated), faq)
	return faq, nil
}

func (s *FAQService) List(ctx context.Context) ([]*domain.FAQ, error) {
	faqs, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, storeFailure(ctx, s.logger, entityFAQ, "list", 0, err)
	}
	return faqs, nil
}

func (s *FAQService) GetByID(ctx context.Context, id int64) (*domain.FAQ, error) {
	faq, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrFAQNotFound) {
			return nil, nil
		}
		return nil, storeFailure(ctx, s.logger, entityFAQ, "get", id, err)
	}
	return faq, nil
}

func (s *FAQService) Update(ctx context.Context, id int64, patch domain.FAQPatch) (*domain.FAQ, error) {
	if question, ok := patch.Question.Get(); ok && question == "" {
		return nil, ErrInvalidInput
	}
	if answer, ok := patch.Answer.Get(); ok && answer == "" {
		return nil, ErrInvalidInput
	}

	faq, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return nil, storeFailure(ctx, s.logger, entityFAQ, "update", id, err)
	}

	logMutation(ctx, s.logger, entityFAQ, "update", id)
	s.publisher.Publish(eventType(entityFAQ, EventUpdated), faq)
	return faq, nil
}

func (s *FAQService) Delete(ctx context.Context, id int64) (bool, error) {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return false, storeFailure(ctx, s.logger, entityFAQ, "delete", id, err)
	}

	if deleted {
		logMutation(ctx, s.logger, entityFAQ, "delete", id)
		s.publisher.Publish(eventType(entityFAQ, EventDeleted), DeletedEvent{ID: id})
	}
	return deleted, nil
}
