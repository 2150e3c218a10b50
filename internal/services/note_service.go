package services

import (
	"errors"
	"math"

	"github.com/pixperk/pocketmind-server/internal/models"

	"gorm.io/gorm"
)

type NoteService struct {
	db *gorm.DB
}

func NewNoteService(db *gorm.DB) *NoteService {
	return &NoteService{db: db}
}

// CreateNote upserts every referenced tag and writes the note in one
// transaction; either all of it commits or none of it does.
func (s *NoteService) CreateNote(userID string, req *models.NoteCreateRequest) (*models.Note, error) {
	note := models.Note{
		UserID:  userID,
		Title:   req.Title,
		Content: req.Content,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		tags, err := upsertTags(tx, req.Tags)
		if err != nil {
			return err
		}

		if err := tx.Create(&note).Error; err != nil {
			return err
		}

		if len(tags) > 0 {
			if err := tx.Model(&note).Association("Tags").Append(tags); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := s.db.Preload("Tags").First(&note, "id = ?", note.ID).Error; err != nil {
		return nil, err
	}

	return &note, nil
}

func (s *NoteService) GetNotes(userID string, page, limit int) ([]models.Note, *models.Pagination, error) {
	var notes []models.Note
	var total int64

	query := s.db.Model(&models.Note{}).Where("user_id = ?", userID)

	if err := query.Count(&total).Error; err != nil {
		return nil, nil, err
	}

	offset := (page - 1) * limit

	if err := query.Preload("Tags").
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&notes).Error; err != nil {
		return nil, nil, err
	}

	pagination := &models.Pagination{
		Total:       total,
		TotalPages:  int(math.Ceil(float64(total) / float64(limit))),
		CurrentPage: page,
		PageSize:    limit,
	}

	return notes, pagination, nil
}

// SeedNotes inserts three fixed sample notes for the caller and returns how
// many rows were written.
func (s *NoteService) SeedNotes(userID string) (int64, error) {
	notes := []models.Note{
		{UserID: userID, Title: "Note 1", Content: "This is the content of note 1"},
		{UserID: userID, Title: "Note 2", Content: "This is the content of note 2"},
		{UserID: userID, Title: "Note 3", Content: "This is the content of note 3"},
	}

	result := s.db.Create(&notes)
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// LinkNote points the target note at the source note. There is no ownership
// check and no self-reference or cycle guard; both match the existing API
// behavior (see DESIGN.md).
func (s *NoteService) LinkNote(toNoteID, fromNoteID string) (*models.Note, error) {
	result := s.db.Model(&models.Note{}).
		Where("id = ?", toNoteID).
		Update("linked_note_id", fromNoteID)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrNotFound
	}

	var note models.Note
	if err := s.db.Preload("Tags").First(&note, "id = ?", toNoteID).Error; err != nil {
		return nil, err
	}
	return &note, nil
}

// DeleteNote deletes by id without an ownership predicate, matching the
// existing API behavior (see DESIGN.md).
func (s *NoteService) DeleteNote(noteID string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var note models.Note
		if err := tx.First(&note, "id = ?", noteID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		if err := tx.Model(&note).Association("Tags").Clear(); err != nil {
			return err
		}

		return tx.Delete(&note).Error
	})
}
