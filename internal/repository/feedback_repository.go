package repository

import (
	"errors"
	"strings"
	"time"

	"github.com/revufeed/api/internal/apperr"
	"github.com/revufeed/api/internal/model"
	"gorm.io/gorm"
)

// FeedbackRepository is the persistence surface for feedback comments. All
// substring matches are case-insensitive. Batch mutations run in a single
// transaction each.
type FeedbackRepository interface {
	Create(fb *model.Feedback) error
	FindByID(id uint) (*model.Feedback, error)
	List(sectionFilter, sortOrder string, page, perPage int) ([]model.Feedback, int64, error)
	Count() (int64, error)
	Update(fb *model.Feedback) error
	Delete(id uint) error
	BulkCreate(fbs []model.Feedback) error
	CountBySectionSubstring(substring string) (int64, error)
	SearchByDescription(phrase string) ([]model.Feedback, error)
	FindByMaxDescriptionLength(maxLength int) ([]model.Feedback, error)
	UpdateCategoryByIDs(ids []uint, newCategory string) error
	DeleteByCategory(category string) error
	AverageDescriptionLength() (*float64, error)
	FindOlderThan(t time.Time) ([]model.Feedback, error)
}

type feedbackRepository struct {
	db *gorm.DB
}

func NewFeedbackRepository(db *gorm.DB) FeedbackRepository {
	return &feedbackRepository{db: db}
}

// containsPattern builds a LOWER(...) LIKE pattern. LOWER on both sides keeps
// the match case-insensitive on Postgres and sqlite alike.
func containsPattern(s string) string {
	return "%" + strings.ToLower(s) + "%"
}

func (r *feedbackRepository) Create(fb *model.Feedback) error {
	now := time.Now().UTC()
	if fb.CreatedDate.IsZero() {
		fb.CreatedDate = now
	}
	if fb.LastUpdatedDate.IsZero() {
		fb.LastUpdatedDate = fb.CreatedDate
	}
	if err := r.db.Create(fb).Error; err != nil {
		return apperr.Store("create feedback", err)
	}
	return nil
}

func (r *feedbackRepository) FindByID(id uint) (*model.Feedback, error) {
	var fb model.Feedback
	if err := r.db.First(&fb, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, err
	}
	return &fb, nil
}

func (r *feedbackRepository) List(sectionFilter, sortOrder string, page, perPage int) ([]model.Feedback, int64, error) {
	pattern := containsPattern(sectionFilter)

	var total int64
	if err := r.db.Model(&model.Feedback{}).
		Where("LOWER(related_section) LIKE ?", pattern).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query := r.db.Where("LOWER(related_section) LIKE ?", pattern)

	// Invalid sort values fall back to ascending; this is an intentional,
	// observable contract, not a default of convenience.
	switch strings.ToLower(sortOrder) {
	case "desc":
		query = query.Order("created_date desc")
	case "asc":
		query = query.Order("created_date asc")
	default:
		query = query.Order("created_date asc")
	}

	if page < 1 {
		page = 1
	}
	var fbs []model.Feedback
	if err := query.Offset((page - 1) * perPage).Limit(perPage).Find(&fbs).Error; err != nil {
		return nil, 0, err
	}
	return fbs, total, nil
}

func (r *feedbackRepository) Count() (int64, error) {
	var total int64
	if err := r.db.Model(&model.Feedback{}).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

func (r *feedbackRepository) Update(fb *model.Feedback) error {
	// created_date is immutable; last_updated_date advances on every write.
	fb.LastUpdatedDate = time.Now().UTC()
	if err := r.db.Save(fb).Error; err != nil {
		return apperr.Store("update feedback", err)
	}
	return nil
}

func (r *feedbackRepository) Delete(id uint) error {
	res := r.db.Delete(&model.Feedback{}, id)
	if res.Error != nil {
		return apperr.Store("delete feedback", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.ErrNotFound
	}
	return nil
}

func (r *feedbackRepository) BulkCreate(fbs []model.Feedback) error {
	now := time.Now().UTC()
	for i := range fbs {
		fbs[i].CreatedDate = now
		fbs[i].LastUpdatedDate = now
	}
	err := r.db.Transaction(func(tx *gorm.DB) error {
		for i := range fbs {
			if err := tx.Create(&fbs[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return apperr.Store("bulk create feedback", err)
	}
	return nil
}

func (r *feedbackRepository) CountBySectionSubstring(substring string) (int64, error) {
	var count int64
	err := r.db.Model(&model.Feedback{}).
		Where("LOWER(related_section) LIKE ?", containsPattern(substring)).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (r *feedbackRepository) SearchByDescription(phrase string) ([]model.Feedback, error) {
	var fbs []model.Feedback
	err := r.db.
		Where("LOWER(description) LIKE ?", containsPattern(phrase)).
		Find(&fbs).Error
	if err != nil {
		return nil, err
	}
	return fbs, nil
}

func (r *feedbackRepository) FindByMaxDescriptionLength(maxLength int) ([]model.Feedback, error) {
	var fbs []model.Feedback
	err := r.db.
		Where("LENGTH(description) <= ?", maxLength).
		Find(&fbs).Error
	if err != nil {
		return nil, err
	}
	return fbs, nil
}

func (r *feedbackRepository) UpdateCategoryByIDs(ids []uint, newCategory string) error {
	// Unknown ids are skipped silently; zero matched rows is not an error.
	err := r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Model(&model.Feedback{}).
			Where("id IN ?", ids).
			Updates(map[string]interface{}{
				"category":          newCategory,
				"last_updated_date": time.Now().UTC(),
			}).Error
	})
	if err != nil {
		return apperr.Store("batch update category", err)
	}
	return nil
}

func (r *feedbackRepository) DeleteByCategory(category string) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Where("category = ?", category).Delete(&model.Feedback{}).Error
	})
	if err != nil {
		return apperr.Store("delete by category", err)
	}
	return nil
}

func (r *feedbackRepository) AverageDescriptionLength() (*float64, error) {
	var avg *float64
	err := r.db.Model(&model.Feedback{}).
		Select("AVG(LENGTH(description))").
		Scan(&avg).Error
	if err != nil {
		return nil, err
	}
	return avg, nil
}

func (r *feedbackRepository) FindOlderThan(t time.Time) ([]model.Feedback, error) {
	var fbs []model.Feedback
	// Strictly before: a record last updated exactly at t is kept live.
	err := r.db.
		Where("last_updated_date < ?", t).
		Find(&fbs).Error
	if err != nil {
		return nil, err
	}
	return fbs, nil
}
