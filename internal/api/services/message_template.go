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

const entityMessageTemplate = "message_template"

type MessageTemplateStore interface {
	Create(ctx context.Context, template *domain.MessageTemplate) error
	FindAll(ctx context.Context) ([]*domain.MessageTemplate, error)
	FindByID(ctx context.Context, id int64) (*domain.MessageTemplate, error)
	Update(ctx context.Context, id int64, patch domain.MessageTemplatePatch) (*domain.MessageTemplate, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

type CreateMessageTemplateInput struct {
	Name         string              `valid:"required"`
	Content      string              `valid:"required"`
	TemplateType domain.TemplateType `valid:"required,in(confirmation|reminder|follow_up|general)"`
	IsActive     *bool
}

type MessageTemplateService struct {
	repo      MessageTemplateStore
	publisher Publisher
	logger    *slog.Logger
}

func NewMessageTemplateService(repo MessageTemplateStore, publisher Publisher, logger *slog.Logger) *MessageTemplateService {
	return &MessageTemplateService{
		repo:      repo,
		publisher: publisherOrNoop(publisher),
		logger:    logging.OrDefault(logger),
	}
}

func (s *MessageTemplateService) Create(ctx context.Context, input CreateMessageTemplateInput) (*domain.MessageTemplate, error) {
	type messageTemplateValidator CreateMessageTemplateInput

	if _, err := govalidator.ValidateStruct(messageTemplateValidator(input)); err != nil {
		return nil, ErrInvalidInput
	}

	template := &domain.MessageTemplate{
		Name:         input.Name,
		Content:      input.Content,
		TemplateType: input.TemplateType,
		IsActive:     true,
	}
	if input.IsActive != nil {
		template.IsActive = *input.IsActive
	}

	if err := s.repo.Create(ctx, template); err != nil {
		return nil, storeFailure(ctx, s.logger, entityMessageTemplate, "create", 0, err)
	}

	logMutation(ctx, s.logger, entityMessageTemplate, "create", template.ID)
	s.publisher.Publish(eventType(entityMessageTemplate, EventCreated), template)
	return template, nil
}

func (s *MessageTemplateService) List(ctx context.Context) ([]*domain.MessageTemplate, error) {
	templates, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, storeFailure(ctx, s.logger, entityMessageTemplate, "list", 0, err)
	}
	return templates, nil
}

func (s *MessageTemplateService) GetByID(ctx context.Context, id int64) (*domain.MessageTemplate, error) {
	template, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrMessageTemplateNotFound) {
			return nil, nil
		}
		return nil, storeFailure(ctx, s.logger, entityMessageTemplate, "get", id, err)
	}
	return template, nil
}

func (s *MessageTemplateService) Update(ctx context.Context, id int64, patch domain.MessageTemplatePatch) (*domain.MessageTemplate, error) {
	if name, ok := patch.Name.Get(); ok && name == "" {
		return nil, ErrInvalidInput
	}
	if content, ok := patch.Content.Get(); ok && content == "" {
		return nil, ErrInvalidInput
	}
	if templateType, ok := patch.TemplateType.Get(); ok && !templateType.Valid() {
		return nil, ErrInvalidInput
	}

	template, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return nil, storeFailure(ctx, s.logger, entityMessageTemplate, "update", id, err)
	}

	logMutation(ctx, s.logger, entityMessageTemplate, "update", id)
	s.publisher.Publish(eventType(entityMessageTemplate, EventUpdated), template)
	return template, nil
}

func (s *MessageTemplateService) Delete(ctx context.Context, id int64) (bool, error) {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return false, storeFailure(ctx, s.logger, entityMessageTemplate, "delete", id, err)
	}

	if deleted {
		logMutation(ctx, s.logger, entityMessageTemplate, "delete", id)
		s.publisher.Publish(eventType(entityMessageTemplate, EventDeleted), DeletedEvent{ID: id})
	}
	return deleted, nil
}
