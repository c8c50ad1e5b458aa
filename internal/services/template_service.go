package services

import (
	"errors"

	"github.com/google/uuid"
	"github.com/mkarpovich/liftlog/internal/models"
)

var ErrTemplateNameEmpty = errors.New("template name is empty")

type TemplateStore interface {
	Create(template *models.WorkoutTemplate) error
	Update(template *models.WorkoutTemplate) error
	GetWithExercises(templateID string) (models.WorkoutTemplate, error)
	ListForUser(userID string) ([]models.WorkoutTemplate, error)
	Delete(templateID string) error
}

type TemplateService struct {
	store TemplateStore
}

func NewTemplateService(store TemplateStore) *TemplateService {
	return &TemplateService{store: store}
}

// CreateTemplate assigns ids to the template and its exercises and
// persists the whole tree in one store call.
func (service *TemplateService) CreateTemplate(userID string, template models.WorkoutTemplate) (models.WorkoutTemplate, error) {
	if template.Name == "" {
		return models.WorkoutTemplate{}, ErrTemplateNameEmpty
	}

	template.ID = uuid.NewString()
	template.UserID = userID
	for index := range template.Exercises {
		template.Exercises[index].ID = uuid.NewString()
		template.Exercises[index].WorkoutTemplateID = template.ID
		template.Exercises[index].OrderIndex = index
	}
	if err := service.store.Create(&template); err != nil {
		return models.WorkoutTemplate{}, err
	}
	return template, nil
}

func (service *TemplateService) GetTemplate(templateID string) (models.WorkoutTemplate, error) {
	return service.store.GetWithExercises(templateID)
}

func (service *TemplateService) ListForUser(userID string) ([]models.WorkoutTemplate, error) {
	return service.store.ListForUser(userID)
}

func (service *TemplateService) UpdateTemplate(template models.WorkoutTemplate) error {
	if template.Name == "" {
		return ErrTemplateNameEmpty
	}
	return service.store.Update(&template)
}

// DeleteTemplate relies on cascading delete for the template's
// exercises; the store queues the matching remote deletions.
func (service *TemplateService) DeleteTemplate(templateID string) error {
	return service.store.Delete(templateID)
}
