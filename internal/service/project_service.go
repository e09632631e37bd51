package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"skarchitects/internal/cache"
	apperrors "skarchitects/internal/errors"
	"skarchitects/internal/model"
	"skarchitects/internal/repository"
)

const (
	projectListCacheKey = "projects:all"
	projectListCacheTTL = time.Minute
)

// ProjectService handles portfolio project operations.
type ProjectService interface {
	List(ctx context.Context) ([]model.Project, error)
	Create(ctx context.Context, project *model.Project) error
	Update(ctx context.Context, id uuid.UUID, fields *model.Project) (*model.Project, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type projectService struct {
	repo  repository.ProjectRepository
	cache *cache.Client
}

// NewProjectService creates a new project service.
func NewProjectService(repo repository.ProjectRepository, cache *cache.Client) ProjectService {
	return &projectService{
		repo:  repo,
		cache: cache,
	}
}

// List returns all projects newest first, served cache-aside: the public
// portfolio page is by far the hottest endpoint and its data changes only
// through the admin dashboard.
func (s *projectService) List(ctx context.Context) ([]model.Project, error) {
	if data, _ := s.cache.Get(ctx, projectListCacheKey); data != nil {
		var cached []model.Project
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	projects, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}

	if payload, err := json.Marshal(projects); err == nil {
		_ = s.cache.Set(ctx, projectListCacheKey, payload, projectListCacheTTL)
	}

	return projects, nil
}

// Create persists a new project and invalidates the list cache.
func (s *projectService) Create(ctx context.Context, project *model.Project) error {
	if err := s.repo.Create(ctx, project); err != nil {
		return fmt.Errorf("create project: %w", err)
	}
	_ = s.cache.Delete(ctx, projectListCacheKey)
	return nil
}

// Update replaces the stored document's fields with the submitted ones.
func (s *projectService) Update(ctx context.Context, id uuid.UUID, fields *model.Project) (*model.Project, error) {
	project, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, fmt.Errorf("find project: %w", err)
	}

	project.Title = fields.Title
	project.Category = fields.Category
	project.Image = fields.Image
	project.Location = fields.Location
	project.Year = fields.Year
	project.Description = fields.Description
	project.Details = fields.Details
	project.Sustainable = fields.Sustainable

	if err := s.repo.Update(ctx, project); err != nil {
		return nil, fmt.Errorf("update project: %w", err)
	}
	_ = s.cache.Delete(ctx, projectListCacheKey)

	return project, nil
}

// Delete removes a project unconditionally; deleting an absent id still
// succeeds.
func (s *projectService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	_ = s.cache.Delete(ctx, projectListCacheKey)
	return nil
}
