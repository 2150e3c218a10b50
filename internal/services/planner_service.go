package services

import (
	"errors"
	"math"
	"time"

	"github.com/pixperk/pocketmind-server/internal/models"

	"gorm.io/gorm"
)

type PlannerService struct {
	db *gorm.DB

	// now is swappable so recurrence math can be tested against a fixed clock.
	now func() time.Time
}

func NewPlannerService(db *gorm.DB) *PlannerService {
	return &PlannerService{db: db, now: time.Now}
}

// ResolveDueDate derives the task due date. A complete recurrence pair takes
// precedence over an explicit due date; days and weeks advance by a fixed
// number of days, months and years advance on the calendar.
func (s *PlannerService) ResolveDueDate(req *models.TaskRequest) (time.Time, error) {
	if req.RecurrencePattern != nil && req.RecurrenceInterval != nil {
		now := s.now()
		interval := *req.RecurrenceInterval
		switch *req.RecurrencePattern {
		case models.RecurrenceDays:
			return now.AddDate(0, 0, interval), nil
		case models.RecurrenceWeeks:
			return now.AddDate(0, 0, interval*7), nil
		case models.RecurrenceMonths:
			return now.AddDate(0, interval, 0), nil
		case models.RecurrenceYears:
			return now.AddDate(interval, 0, 0), nil
		}
	}

	if req.DueDate != nil {
		return *req.DueDate, nil
	}

	return time.Time{}, ErrDueDateRequired
}

func (s *PlannerService) CreateTask(userID string, req *models.TaskRequest) (*models.Task, error) {
	dueDate, err := s.ResolveDueDate(req)
	if err != nil {
		return nil, err
	}

	task := models.Task{
		UserID:             userID,
		Title:              req.Title,
		Description:        req.Description,
		DueDate:            dueDate,
		RecurrencePattern:  req.RecurrencePattern,
		RecurrenceInterval: req.RecurrenceInterval,
		Priority:           req.Priority,
		Status:             req.Status,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		tags, err := upsertTags(tx, req.Tags)
		if err != nil {
			return err
		}

		if err := tx.Create(&task).Error; err != nil {
			return err
		}

		if len(tags) > 0 {
			if err := tx.Model(&task).Association("Tags").Append(tags); err != nil {
				return err
			}
		}

		return s.linkNotes(tx, &task, req.NoteIDs)
	})
	if err != nil {
		return nil, err
	}

	return s.getTask(task.ID)
}

// UpdateTask updates by id only; ownership is not checked, matching the
// existing API behavior (see DESIGN.md).
func (s *PlannerService) UpdateTask(taskID string, req *models.TaskRequest) (*models.Task, error) {
	dueDate, err := s.ResolveDueDate(req)
	if err != nil {
		return nil, err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		var task models.Task
		if err := tx.First(&task, "id = ?", taskID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		tags, err := upsertTags(tx, req.Tags)
		if err != nil {
			return err
		}

		updates := map[string]interface{}{
			"title":               req.Title,
			"description":         req.Description,
			"due_date":            dueDate,
			"recurrence_pattern":  req.RecurrencePattern,
			"recurrence_interval": req.RecurrenceInterval,
			"priority":            req.Priority,
			"status":              req.Status,
		}
		if err := tx.Model(&task).Updates(updates).Error; err != nil {
			return err
		}

		if err := tx.Model(&task).Association("Tags").Clear(); err != nil {
			return err
		}
		if len(tags) > 0 {
			if err := tx.Model(&task).Association("Tags").Append(tags); err != nil {
				return err
			}
		}

		if err := tx.Model(&task).Association("Notes").Clear(); err != nil {
			return err
		}
		return s.linkNotes(tx, &task, req.NoteIDs)
	})
	if err != nil {
		return nil, err
	}

	return s.getTask(taskID)
}

func (s *PlannerService) GetTasks(userID string, page, pageSize int) ([]models.Task, *models.Pagination, error) {
	var tasks []models.Task
	var total int64

	query := s.db.Model(&models.Task{}).Where("user_id = ?", userID)

	if err := query.Count(&total).Error; err != nil {
		return nil, nil, err
	}

	offset := (page - 1) * pageSize

	if err := query.Preload("Tags").Preload("Notes").
		Order("created_at DESC").
		Limit(pageSize).Offset(offset).
		Find(&tasks).Error; err != nil {
		return nil, nil, err
	}

	pagination := &models.Pagination{
		Total:       total,
		TotalPages:  int(math.Ceil(float64(total) / float64(pageSize))),
		CurrentPage: page,
		PageSize:    pageSize,
	}

	return tasks, pagination, nil
}

// DeleteTask deletes by id without an ownership predicate, matching the
// existing API behavior (see DESIGN.md).
func (s *PlannerService) DeleteTask(taskID string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var task models.Task
		if err := tx.First(&task, "id = ?", taskID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		if err := tx.Model(&task).Association("Tags").Clear(); err != nil {
			return err
		}
		if err := tx.Model(&task).Association("Notes").Clear(); err != nil {
			return err
		}

		return tx.Delete(&task).Error
	})
}

func (s *PlannerService) linkNotes(tx *gorm.DB, task *models.Task, noteIDs []string) error {
	if len(noteIDs) == 0 {
		return nil
	}

	var notes []models.Note
	if err := tx.Where("id IN ?", noteIDs).Find(&notes).Error; err != nil {
		return err
	}
	return tx.Model(task).Association("Notes").Append(notes)
}

func (s *PlannerService) getTask(taskID string) (*models.Task, error) {
	var task models.Task
	if err := s.db.Preload("Tags").Preload("Notes").First(&task, "id = ?", taskID).Error; err != nil {
		return nil, err
	}
	return &task, nil
}
