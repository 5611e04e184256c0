package service

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/revufeed/api/internal/apperr"
	"github.com/revufeed/api/internal/dto"
	"github.com/revufeed/api/internal/model"
	"github.com/revufeed/api/internal/repository"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestService(t *testing.T) (FeedbackService, repository.FeedbackRepository) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(&model.Feedback{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	repo := repository.NewFeedbackRepository(db)
	return NewFeedbackService(repo), repo
}

func str(s string) *string { return &s }

func completeEntry(desc string) dto.BulkFeedbackEntry {
	return dto.BulkFeedbackEntry{
		Category:       str("Completeness"),
		Description:    str(desc),
		ResolvedStatus: str("No"),
		PriorityLevel:  str("High"),
		RelatedSection: str("Appendix"),
		AssignedTo:     str("Reviewer"),
	}
}

func TestAddFeedbackReportsLastPage(t *testing.T) {
	svc, _ := newTestService(t)

	form := dto.FeedbackFormRequest{
		Category:       "Clarity",
		Description:    "First comment.",
		ResolvedStatus: "No",
	}

	_, lastPage, err := svc.AddFeedback(form)
	if err != nil {
		t.Fatalf("AddFeedback: %v", err)
	}
	if lastPage != 1 {
		t.Errorf("1 record: last page = %d, want 1", lastPage)
	}

	// Fill up page one; the sixth record starts page two.
	for i := 0; i < 4; i++ {
		if _, _, err := svc.AddFeedback(form); err != nil {
			t.Fatalf("AddFeedback: %v", err)
		}
	}
	_, lastPage, err = svc.AddFeedback(form)
	if err != nil {
		t.Fatalf("AddFeedback: %v", err)
	}
	if lastPage != 2 {
		t.Errorf("6 records: last page = %d, want 2", lastPage)
	}
}

func TestEditFeedbackNotFound(t *testing.T) {
	svc, _ := newTestService(t)
	_, err := svc.EditFeedback(99, dto.FeedbackFormRequest{
		Category:       "Clarity",
		Description:    "x",
		ResolvedStatus: "No",
	})
	if !apperr.IsNotFound(err) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestBulkUploadRejectsIncompleteEntry(t *testing.T) {
	svc, repo := newTestService(t)

	incomplete := completeEntry("Missing priority.")
	incomplete.PriorityLevel = nil

	_, err := svc.BulkUpload(dto.BulkUploadRequest{
		Feedbacks: []dto.BulkFeedbackEntry{
			completeEntry("A valid one."),
			incomplete,
		},
	})
	if !apperr.IsValidation(err) {
		t.Fatalf("expected ValidationError, got %v", err)
	}

	// All-or-nothing: the valid entry must not have been persisted.
	total, _ := repo.Count()
	if total != 0 {
		t.Errorf("partial insert after rejected batch: count = %d", total)
	}
}

func TestBulkUploadEmpty(t *testing.T) {
	svc, _ := newTestService(t)
	if _, err := svc.BulkUpload(dto.BulkUploadRequest{}); !apperr.IsValidation(err) {
		t.Fatalf("expected ValidationError for empty batch, got %v", err)
	}
}

func TestBulkUploadSuccess(t *testing.T) {
	svc, repo := newTestService(t)

	count, err := svc.BulkUpload(dto.BulkUploadRequest{
		Feedbacks: []dto.BulkFeedbackEntry{
			completeEntry("First."),
			completeEntry("Second."),
			completeEntry("Third."),
		},
	})
	if err != nil {
		t.Fatalf("BulkUpload: %v", err)
	}
	if count != 3 {
		t.Errorf("count = %d, want 3", count)
	}
	total, _ := repo.Count()
	if total != 3 {
		t.Errorf("persisted count = %d, want 3", total)
	}
}

func TestFilterByMaxLengthValidation(t *testing.T) {
	svc, _ := newTestService(t)

	for _, raw := range []string{"", "abc", "-1", "2.5"} {
		if _, err := svc.FilterByMaxLength(raw); !apperr.IsValidation(err) {
			t.Errorf("max_length %q: expected ValidationError, got %v", raw, err)
		}
	}
}

func TestUpdateCategoriesValidation(t *testing.T) {
	svc, _ := newTestService(t)

	if err := svc.UpdateCategories(dto.UpdateCategoryRequest{NewCategory: "X"}); !apperr.IsValidation(err) {
		t.Errorf("empty ids: expected ValidationError, got %v", err)
	}
	if err := svc.UpdateCategories(dto.UpdateCategoryRequest{FeedbackIDs: []uint{1}}); !apperr.IsValidation(err) {
		t.Errorf("empty category: expected ValidationError, got %v", err)
	}
}

func TestDeleteByCategoryValidation(t *testing.T) {
	svc, _ := newTestService(t)
	if err := svc.DeleteByCategory(""); !apperr.IsValidation(err) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestSummaryStatisticsEmptyTable(t *testing.T) {
	svc, _ := newTestService(t)

	stats, err := svc.SummaryStatistics()
	if err != nil {
		t.Fatalf("SummaryStatistics: %v", err)
	}
	if stats.AverageCommentLength != nil {
		t.Errorf("expected null average on empty table, got %v", *stats.AverageCommentLength)
	}
}

func TestSectionCounts(t *testing.T) {
	svc, repo := newTestService(t)

	for _, section := range []string{"Appendix A", "appendix B", "Abstract", "Executive Summary", "Introduction"} {
		fb := model.Feedback{
			Category:       "Completeness",
			Description:    "d",
			ResolvedStatus: "No",
			RelatedSection: section,
		}
		if err := repo.Create(&fb); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	counts, err := svc.SectionCounts()
	if err != nil {
		t.Fatalf("SectionCounts: %v", err)
	}
	if counts.AppendixCount != 2 || counts.AbstractCount != 1 || counts.ExecutiveSummaryCount != 1 {
		t.Errorf("unexpected counts: %+v", counts)
	}
}
