package db

import (
	"errors"

	"github.com/mkarpovich/liftlog/internal/models"
	"gorm.io/gorm"
)

var (
	ErrTemplateNotFound = errors.New("workout template not found")
	ErrProgramNotFound  = errors.New("program not found")
)

type TemplateRepository struct {
	database *gorm.DB
}

func NewTemplateRepository(database *gorm.DB) *TemplateRepository {
	return &TemplateRepository{database: database}
}

// Create persists the template together with its exercises and queues
// one sync operation per inserted row, all in one transaction.
func (repo *TemplateRepository) Create(template *models.WorkoutTemplate) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(template).Error; err != nil {
			return err
		}
		if err := appendSyncOperation(tx, models.SyncOpInsert, "workout_templates", template.ID, template); err != nil {
			return err
		}
		for index := range template.Exercises {
			child := template.Exercises[index]
			if err := appendSyncOperation(tx, models.SyncOpInsert, "workout_template_exercises", child.ID, child); err != nil {
				return err
			}
		}
		return nil
	})
}

func (repo *TemplateRepository) Update(template *models.WorkoutTemplate) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Exercises").Save(template).Error; err != nil {
			return err
		}
		return appendSyncOperation(tx, models.SyncOpUpdate, "workout_templates", template.ID, template)
	})
}

// GetWithExercises loads the template and its exercises in order.
func (repo *TemplateRepository) GetWithExercises(templateID string) (models.WorkoutTemplate, error) {
	var template models.WorkoutTemplate
	err := repo.database.
		Preload("Exercises", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("order_index ASC")
		}).
		First(&template, "id = ?", templateID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.WorkoutTemplate{}, ErrTemplateNotFound
		}
		return models.WorkoutTemplate{}, err
	}
	return template, nil
}

func (repo *TemplateRepository) ListForUser(userID string) ([]models.WorkoutTemplate, error) {
	templates := make([]models.WorkoutTemplate, 0)
	if err := repo.database.
		Preload("Exercises", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("order_index ASC")
		}).
		Where("user_id = ?", userID).
		Order("order_index ASC, name ASC").
		Find(&templates).Error; err != nil {
		return nil, err
	}
	return templates, nil
}

// Delete removes the template, relying on the ON DELETE CASCADE
// relationship for its exercises. Child deletions are queued first so
// the remote side never holds orphaned template-exercise rows.
func (repo *TemplateRepository) Delete(templateID string) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		children := make([]models.WorkoutTemplateExercise, 0)
		if err := tx.Where("workout_template_id = ?", templateID).Find(&children).Error; err != nil {
			return err
		}

		result := tx.Delete(&models.WorkoutTemplate{}, "id = ?", templateID)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrTemplateNotFound
		}

		for _, child := range children {
			if err := appendSyncOperation(tx, models.SyncOpDelete, "workout_template_exercises", child.ID, map[string]string{"id": child.ID}); err != nil {
				return err
			}
		}
		return appendSyncOperation(tx, models.SyncOpDelete, "workout_templates", templateID, map[string]string{"id": templateID})
	})
}

type ProgramRepository struct {
	database *gorm.DB
}

func NewProgramRepository(database *gorm.DB) *ProgramRepository {
	return &ProgramRepository{database: database}
}

func (repo *ProgramRepository) Create(program *models.Program) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(program).Error; err != nil {
			return err
		}
		return appendSyncOperation(tx, models.SyncOpInsert, "programs", program.ID, program)
	})
}

func (repo *ProgramRepository) FindByID(programID string) (models.Program, error) {
	var program models.Program
	if err := repo.database.First(&program, "id = ?", programID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Program{}, ErrProgramNotFound
		}
		return models.Program{}, err
	}
	return program, nil
}

func (repo *ProgramRepository) ListForUser(userID string) ([]models.Program, error) {
	programs := make([]models.Program, 0)
	if err := repo.database.Where("user_id = ?", userID).Order("created_at DESC").Find(&programs).Error; err != nil {
		return nil, err
	}
	return programs, nil
}

// Delete cascades to the program's templates and their exercises.
func (repo *ProgramRepository) Delete(programID string) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		templates := make([]models.WorkoutTemplate, 0)
		if err := tx.Where("program_id = ?", programID).Find(&templates).Error; err != nil {
			return err
		}

		templateIDs := make([]string, 0, len(templates))
		for _, template := range templates {
			templateIDs = append(templateIDs, template.ID)
		}

		children := make([]models.WorkoutTemplateExercise, 0)
		if len(templateIDs) > 0 {
			if err := tx.Where("workout_template_id IN ?", templateIDs).Find(&children).Error; err != nil {
				return err
			}
		}

		result := tx.Delete(&models.Program{}, "id = ?", programID)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrProgramNotFound
		}

		for _, child := range children {
			if err := appendSyncOperation(tx, models.SyncOpDelete, "workout_template_exercises", child.ID, map[string]string{"id": child.ID}); err != nil {
				return err
			}
		}
		for _, templateID := range templateIDs {
			if err := appendSyncOperation(tx, models.SyncOpDelete, "workout_templates", templateID, map[string]string{"id": templateID}); err != nil {
				return err
			}
		}
		return appendSyncOperation(tx, models.SyncOpDelete, "programs", programID, map[string]string{"id": programID})
	})
}
