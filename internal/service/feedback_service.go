package service

import (
	"strconv"
	"strings"

	"github.com/jinzhu/copier"
	"github.com/revufeed/api/internal/apperr"
	"github.com/revufeed/api/internal/dto"
	"github.com/revufeed/api/internal/model"
	"github.com/revufeed/api/internal/repository"
	"github.com/rs/zerolog/log"
)

// CommentsPerPage is the fixed page size of the list view.
const CommentsPerPage = 5

type FeedbackService interface {
	AddFeedback(req dto.FeedbackFormRequest) (*dto.FeedbackResponse, int, error)
	ListFeedback(q dto.ListQuery) (*dto.FeedbackPage, error)
	GetFeedback(id uint) (*dto.FeedbackResponse, error)
	EditFeedback(id uint, req dto.FeedbackFormRequest) (*dto.FeedbackResponse, error)
	DeleteFeedback(id uint) error
	BulkUpload(req dto.BulkUploadRequest) (int, error)
	SectionCounts() (*dto.SectionCounts, error)
	SearchByPhrase(phrase string) ([]dto.FeedbackResponse, error)
	FilterByMaxLength(rawMaxLength string) ([]dto.FeedbackResponse, error)
	UpdateCategories(req dto.UpdateCategoryRequest) error
	DeleteByCategory(category string) error
	SummaryStatistics() (*dto.SummaryStatistics, error)
}

type feedbackService struct {
	repo repository.FeedbackRepository
}

func NewFeedbackService(repo repository.FeedbackRepository) FeedbackService {
	return &feedbackService{repo: repo}
}

// AddFeedback persists a new comment and reports the list page that now
// contains it, so the caller can land the browser on the appended row.
func (s *feedbackService) AddFeedback(req dto.FeedbackFormRequest) (*dto.FeedbackResponse, int, error) {
	fb := model.Feedback{}
	copier.Copy(&fb, &req)

	if err := s.repo.Create(&fb); err != nil {
		log.Error().Err(err).Msg("AddFeedback: create failed")
		return nil, 0, err
	}

	total, err := s.repo.Count()
	if err != nil {
		// The record is already in; fall back to the first page.
		log.Warn().Err(err).Msg("AddFeedback: count failed after create")
		total = 0
	}
	lastPage := int(total) / CommentsPerPage
	if int(total)%CommentsPerPage != 0 {
		lastPage++
	}
	if lastPage < 1 {
		lastPage = 1
	}

	resp := dto.NewFeedbackResponse(fb)
	return &resp, lastPage, nil
}

func (s *feedbackService) ListFeedback(q dto.ListQuery) (*dto.FeedbackPage, error) {
	page := q.Page
	if page < 1 {
		page = 1
	}
	fbs, total, err := s.repo.List(strings.TrimSpace(q.RelatedSection), q.Sort, page, CommentsPerPage)
	if err != nil {
		return nil, err
	}
	totalPages := int(total) / CommentsPerPage
	if int(total)%CommentsPerPage != 0 {
		totalPages++
	}
	return &dto.FeedbackPage{
		Items:      dto.NewFeedbackResponses(fbs),
		Page:       page,
		PerPage:    CommentsPerPage,
		Total:      total,
		TotalPages: totalPages,
	}, nil
}

func (s *feedbackService) GetFeedback(id uint) (*dto.FeedbackResponse, error) {
	fb, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	resp := dto.NewFeedbackResponse(*fb)
	return &resp, nil
}

// EditFeedback replaces every form field on the record; the repository
// advances last_updated_date as part of the write.
func (s *feedbackService) EditFeedback(id uint, req dto.FeedbackFormRequest) (*dto.FeedbackResponse, error) {
	fb, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	copier.Copy(fb, &req)
	if err := s.repo.Update(fb); err != nil {
		log.Error().Err(err).Uint("id", id).Msg("EditFeedback: update failed")
		return nil, err
	}
	resp := dto.NewFeedbackResponse(*fb)
	return &resp, nil
}

func (s *feedbackService) DeleteFeedback(id uint) error {
	return s.repo.Delete(id)
}

// BulkUpload validates that every entry carries all six fields, then inserts
// the whole batch in one transaction. Any incomplete entry rejects the entire
// batch with nothing persisted.
func (s *feedbackService) BulkUpload(req dto.BulkUploadRequest) (int, error) {
	if len(req.Feedbacks) == 0 {
		return 0, apperr.Validation("No feedback entries provided in the request body.")
	}

	fbs := make([]model.Feedback, 0, len(req.Feedbacks))
	for _, entry := range req.Feedbacks {
		if entry.Category == nil || entry.Description == nil || entry.ResolvedStatus == nil ||
			entry.PriorityLevel == nil || entry.RelatedSection == nil || entry.AssignedTo == nil {
			return 0, apperr.Validation("Validation failed. Please ensure all required fields are provided for each feedback entry.")
		}
		fbs = append(fbs, model.Feedback{
			Category:       *entry.Category,
			Description:    *entry.Description,
			ResolvedStatus: *entry.ResolvedStatus,
			PriorityLevel:  *entry.PriorityLevel,
			RelatedSection: *entry.RelatedSection,
			AssignedTo:     *entry.AssignedTo,
		})
	}

	if err := s.repo.BulkCreate(fbs); err != nil {
		log.Error().Err(err).Int("count", len(fbs)).Msg("BulkUpload: bulk create failed")
		return 0, err
	}
	return len(fbs), nil
}

func (s *feedbackService) SectionCounts() (*dto.SectionCounts, error) {
	appendix, err := s.repo.CountBySectionSubstring("Appendix")
	if err != nil {
		return nil, err
	}
	abstract, err := s.repo.CountBySectionSubstring("Abstract")
	if err != nil {
		return nil, err
	}
	execSummary, err := s.repo.CountBySectionSubstring("Executive Summary")
	if err != nil {
		return nil, err
	}
	return &dto.SectionCounts{
		AppendixCount:         appendix,
		AbstractCount:         abstract,
		ExecutiveSummaryCount: execSummary,
	}, nil
}

func (s *feedbackService) SearchByPhrase(phrase string) ([]dto.FeedbackResponse, error) {
	fbs, err := s.repo.SearchByDescription(phrase)
	if err != nil {
		return nil, err
	}
	return dto.NewFeedbackResponses(fbs), nil
}

func (s *feedbackService) FilterByMaxLength(rawMaxLength string) ([]dto.FeedbackResponse, error) {
	maxLength, err := strconv.Atoi(rawMaxLength)
	if err != nil || maxLength < 0 {
		return nil, apperr.Validation("Invalid max length value. Please provide a valid integer.")
	}
	fbs, err := s.repo.FindByMaxDescriptionLength(maxLength)
	if err != nil {
		return nil, err
	}
	return dto.NewFeedbackResponses(fbs), nil
}

func (s *feedbackService) UpdateCategories(req dto.UpdateCategoryRequest) error {
	if len(req.FeedbackIDs) == 0 || req.NewCategory == "" {
		return apperr.Validation("Please provide both feedback IDs and a new category.")
	}
	return s.repo.UpdateCategoryByIDs(req.FeedbackIDs, req.NewCategory)
}

func (s *feedbackService) DeleteByCategory(category string) error {
	if category == "" {
		return apperr.Validation("Please provide a category to delete.")
	}
	return s.repo.DeleteByCategory(category)
}

func (s *feedbackService) SummaryStatistics() (*dto.SummaryStatistics, error) {
	avg, err := s.repo.AverageDescriptionLength()
	if err != nil {
		return nil, err
	}
	return &dto.SummaryStatistics{AverageCommentLength: avg}, nil
}
