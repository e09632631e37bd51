package service

import (
	"context"
	"fmt"

	"skarchitects/internal/model"
	"skarchitects/internal/repository"
)

// ContactService handles contact-form lead intake.
type ContactService interface {
	Submit(ctx context.Context, lead *model.ContactLead) error
	List(ctx context.Context) ([]model.ContactLead, error)
}

type contactService struct {
	repo repository.ContactRepository
}

// NewContactService creates a new contact service.
func NewContactService(repo repository.ContactRepository) ContactService {
	return &contactService{repo: repo}
}

// Submit appends a lead. Leads are never updated or deleted afterwards.
func (s *contactService) Submit(ctx context.Context, lead *model.ContactLead) error {
	if err := s.repo.Create(ctx, lead); err != nil {
		return fmt.Errorf("save lead: %w", err)
	}
	return nil
}

// List returns all leads, newest first.
func (s *contactService) List(ctx context.Context) ([]model.ContactLead, error) {
	return s.repo.List(ctx)
}
