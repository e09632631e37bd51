package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"skarchitects/internal/cache"
	apperrors "skarchitects/internal/errors"
	"skarchitects/internal/model"
)

// MockProjectRepository is a mock implementation of ProjectRepository.
type MockProjectRepository struct {
	mock.Mock
}

func (m *MockProjectRepository) Create(ctx context.Context, project *model.Project) error {
	args := m.Called(ctx, project)
	return args.Error(0)
}

func (m *MockProjectRepository) Update(ctx context.Context, project *model.Project) error {
	args := m.Called(ctx, project)
	return args.Error(0)
}

func (m *MockProjectRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Project, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Project), args.Error(1)
}

func (m *MockProjectRepository) List(ctx context.Context) ([]model.Project, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Project), args.Error(1)
}

func (m *MockProjectRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// noCache is a zero-value cache.Client: every operation is a no-op miss.
func noCache() *cache.Client {
	return &cache.Client{}
}

func TestProjectService_List(t *testing.T) {
	mockRepo := new(MockProjectRepository)
	mockRepo.On("List", mock.Anything).Return([]model.Project{
		{Title: "Newest"},
		{Title: "Oldest"},
	}, nil)

	service := NewProjectService(mockRepo, noCache())
	projects, err := service.List(context.Background())

	assert.NoError(t, err)
	assert.Len(t, projects, 2)
	assert.Equal(t, "Newest", projects[0].Title)
	mockRepo.AssertExpectations(t)
}

func TestProjectService_Create(t *testing.T) {
	mockRepo := new(MockProjectRepository)
	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Project")).Return(nil)

	service := NewProjectService(mockRepo, noCache())
	project := &model.Project{Title: "New Build", Category: "Residential", Image: "https://img.example/p.jpg"}

	assert.NoError(t, service.Create(context.Background(), project))
	mockRepo.AssertExpectations(t)
}

func TestProjectService_Update(t *testing.T) {
	id := uuid.New()

	t.Run("replaces all editable fields", func(t *testing.T) {
		mockRepo := new(MockProjectRepository)
		mockRepo.On("FindByID", mock.Anything, id).Return(&model.Project{
			ID:       id,
			Title:    "Old Title",
			Category: "Residential",
			Image:    "https://img.example/old.jpg",
			Location: "Somewhere",
		}, nil)
		mockRepo.On("Update", mock.Anything, mock.AnythingOfType("*model.Project")).Return(nil)

		service := NewProjectService(mockRepo, noCache())
		updated, err := service.Update(context.Background(), id, &model.Project{
			Title:       "New Title",
			Category:    "Commercial",
			Image:       "https://img.example/new.jpg",
			Sustainable: true,
		})

		assert.NoError(t, err)
		assert.Equal(t, id, updated.ID)
		assert.Equal(t, "New Title", updated.Title)
		assert.Equal(t, "Commercial", updated.Category)
		assert.True(t, updated.Sustainable)
		// full-document replace: unsubmitted optional fields are cleared
		assert.Empty(t, updated.Location)
		mockRepo.AssertExpectations(t)
	})

	t.Run("unknown id", func(t *testing.T) {
		mockRepo := new(MockProjectRepository)
		mockRepo.On("FindByID", mock.Anything, id).Return(nil, gorm.ErrRecordNotFound)

		service := NewProjectService(mockRepo, noCache())
		updated, err := service.Update(context.Background(), id, &model.Project{Title: "X"})

		assert.Nil(t, updated)
		assert.Equal(t, apperrors.ErrProjectNotFound, err)
		mockRepo.AssertExpectations(t)
	})
}

func TestProjectService_DeleteAbsentIDSucceeds(t *testing.T) {
	id := uuid.New()
	mockRepo := new(MockProjectRepository)
	// Repository reports no error for a missing row; delete is unconditional.
	mockRepo.On("Delete", mock.Anything, id).Return(nil)

	service := NewProjectService(mockRepo, noCache())
	assert.NoError(t, service.Delete(context.Background(), id))
	mockRepo.AssertExpectations(t)
}
