package repository

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/revufeed/api/internal/apperr"
	"github.com/revufeed/api/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestRepo(t *testing.T) FeedbackRepository {
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
	return NewFeedbackRepository(db)
}

func sampleFeedback(section string, created time.Time) model.Feedback {
	return model.Feedback{
		Category:        "Completeness",
		Description:     "This is a test feedback.",
		ResolvedStatus:  "No",
		PriorityLevel:   "High",
		RelatedSection:  section,
		AssignedTo:      "Reviewer",
		CreatedDate:     created,
		LastUpdatedDate: created,
	}
}

func TestCreateAndFindByID(t *testing.T) {
	repo := newTestRepo(t)

	fb := model.Feedback{
		Category:       "Clarity",
		Description:    "Unclear wording in the abstract.",
		ResolvedStatus: "No",
		PriorityLevel:  "Medium",
		RelatedSection: "Abstract",
		AssignedTo:     "Alice",
	}
	if err := repo.Create(&fb); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if fb.ID == 0 {
		t.Fatal("expected an assigned id")
	}
	if !fb.CreatedDate.Equal(fb.LastUpdatedDate) {
		t.Errorf("created_date %v != last_updated_date %v on fresh record", fb.CreatedDate, fb.LastUpdatedDate)
	}

	got, err := repo.FindByID(fb.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if got.Category != fb.Category || got.Description != fb.Description ||
		got.ResolvedStatus != fb.ResolvedStatus || got.PriorityLevel != fb.PriorityLevel ||
		got.RelatedSection != fb.RelatedSection || got.AssignedTo != fb.AssignedTo {
		t.Errorf("roundtrip mismatch: got %+v want %+v", got, fb)
	}
}

func TestFindByIDNotFound(t *testing.T) {
	repo := newTestRepo(t)
	if _, err := repo.FindByID(42); !apperr.IsNotFound(err) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUpdateAdvancesLastUpdatedDate(t *testing.T) {
	repo := newTestRepo(t)

	created := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	fb := sampleFeedback("Abstract", created)
	if err := repo.Create(&fb); err != nil {
		t.Fatalf("Create: %v", err)
	}

	fb.Description = "Reworded after review."
	if err := repo.Update(&fb); err != nil {
		t.Fatalf("Update: %v", err)
	}

	got, err := repo.FindByID(fb.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if got.Description != "Reworded after review." {
		t.Errorf("description not updated: %q", got.Description)
	}
	if !got.CreatedDate.Equal(created) {
		t.Errorf("created_date changed on update: %v", got.CreatedDate)
	}
	if got.LastUpdatedDate.Before(created) {
		t.Errorf("last_updated_date %v went backwards from %v", got.LastUpdatedDate, created)
	}
	if !got.LastUpdatedDate.After(created) {
		t.Errorf("last_updated_date %v not advanced past %v", got.LastUpdatedDate, created)
	}
}

func TestDeleteNotFound(t *testing.T) {
	repo := newTestRepo(t)
	if err := repo.Delete(7); !apperr.IsNotFound(err) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestListFilterIsCaseInsensitiveSubstring(t *testing.T) {
	repo := newTestRepo(t)

	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, section := range []string{"appendix A", "Appendix B", "Abstract", "Introduction"} {
		fb := sampleFeedback(section, base.Add(time.Duration(i)*time.Hour))
		if err := repo.Create(&fb); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	fbs, total, err := repo.List("Appendix", "asc", 1, 5)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if total != 2 || len(fbs) != 2 {
		t.Fatalf("expected 2 appendix records, got total=%d len=%d", total, len(fbs))
	}
	for _, fb := range fbs {
		if fb.RelatedSection != "appendix A" && fb.RelatedSection != "Appendix B" {
			t.Errorf("unexpected record in filter result: %q", fb.RelatedSection)
		}
	}

	// Empty filter matches everything.
	_, total, err = repo.List("", "asc", 1, 5)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if total != 4 {
		t.Errorf("empty filter: expected 4, got %d", total)
	}
}

func TestListSortOrder(t *testing.T) {
	repo := newTestRepo(t)

	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 4; i++ {
		fb := sampleFeedback("Abstract", base.Add(time.Duration(i)*time.Hour))
		if err := repo.Create(&fb); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	asc, _, err := repo.List("", "asc", 1, 10)
	if err != nil {
		t.Fatalf("List asc: %v", err)
	}
	desc, _, err := repo.List("", "desc", 1, 10)
	if err != nil {
		t.Fatalf("List desc: %v", err)
	}
	if len(asc) != 4 || len(desc) != 4 {
		t.Fatalf("expected 4 records each, got %d and %d", len(asc), len(desc))
	}
	for i := range asc {
		if asc[i].ID != desc[len(desc)-1-i].ID {
			t.Fatalf("desc is not the exact reverse of asc: %v vs %v", asc[i].ID, desc[len(desc)-1-i].ID)
		}
	}

	// Anything other than asc/desc falls back to ascending.
	fallback, _, err := repo.List("", "newest", 1, 10)
	if err != nil {
		t.Fatalf("List fallback: %v", err)
	}
	for i := range asc {
		if fallback[i].ID != asc[i].ID {
			t.Fatalf("invalid sort value did not fall back to ascending")
		}
	}
}

func TestListPagination(t *testing.T) {
	repo := newTestRepo(t)

	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 11; i++ {
		fb := sampleFeedback("Abstract", base.Add(time.Duration(i)*time.Minute))
		if err := repo.Create(&fb); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	for page, want := range map[int]int{1: 5, 2: 5, 3: 1, 4: 0} {
		fbs, total, err := repo.List("", "asc", page, 5)
		if err != nil {
			t.Fatalf("List page %d: %v", page, err)
		}
		if total != 11 {
			t.Errorf("page %d: total = %d, want 11", page, total)
		}
		if len(fbs) != want {
			t.Errorf("page %d: got %d records, want %d", page, len(fbs), want)
		}
	}
}

func TestSearchByDescription(t *testing.T) {
	repo := newTestRepo(t)

	fb := sampleFeedback("Abstract", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	fb.Description = "Find this feedback."
	if err := repo.Create(&fb); err != nil {
		t.Fatalf("Create: %v", err)
	}

	found, err := repo.SearchByDescription("Find")
	if err != nil {
		t.Fatalf("SearchByDescription: %v", err)
	}
	if len(found) != 1 || found[0].ID != fb.ID {
		t.Fatalf("expected the one matching record, got %d", len(found))
	}

	// Case-insensitive.
	found, err = repo.SearchByDescription("find THIS")
	if err != nil {
		t.Fatalf("SearchByDescription: %v", err)
	}
	if len(found) != 1 {
		t.Fatalf("case-insensitive search failed, got %d records", len(found))
	}

	none, err := repo.SearchByDescription("nowhere")
	if err != nil {
		t.Fatalf("SearchByDescription: %v", err)
	}
	if len(none) != 0 {
		t.Fatalf("expected empty result, got %d", len(none))
	}
}

func TestFindByMaxDescriptionLength(t *testing.T) {
	repo := newTestRepo(t)

	short := sampleFeedback("Abstract", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	short.Description = "Twenty chars exactly"
	long := sampleFeedback("Abstract", time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC))
	long.Description = "This one is definitely longer than twenty characters."
	for _, fb := range []*model.Feedback{&short, &long} {
		if err := repo.Create(fb); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	fbs, err := repo.FindByMaxDescriptionLength(20)
	if err != nil {
		t.Fatalf("FindByMaxDescriptionLength: %v", err)
	}
	if len(fbs) != 1 || fbs[0].ID != short.ID {
		t.Fatalf("expected only the 20-char record, got %d records", len(fbs))
	}
}

func TestUpdateCategoryByIDsSkipsUnknown(t *testing.T) {
	repo := newTestRepo(t)

	a := sampleFeedback("Abstract", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	b := sampleFeedback("Appendix", time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC))
	for _, fb := range []*model.Feedback{&a, &b} {
		if err := repo.Create(fb); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	// One known id, one unknown; the unknown is silently skipped.
	if err := repo.UpdateCategoryByIDs([]uint{a.ID, 9999}, "Spelling"); err != nil {
		t.Fatalf("UpdateCategoryByIDs: %v", err)
	}

	gotA, _ := repo.FindByID(a.ID)
	gotB, _ := repo.FindByID(b.ID)
	if gotA.Category != "Spelling" {
		t.Errorf("category not updated: %q", gotA.Category)
	}
	if gotB.Category == "Spelling" {
		t.Error("record outside the id set was updated")
	}
	if !gotA.LastUpdatedDate.After(a.CreatedDate) {
		t.Error("batch category update did not touch last_updated_date")
	}
}

func TestDeleteByCategoryZeroMatches(t *testing.T) {
	repo := newTestRepo(t)

	fb := sampleFeedback("Abstract", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	if err := repo.Create(&fb); err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := repo.DeleteByCategory("Nonexistent"); err != nil {
		t.Fatalf("DeleteByCategory with zero matches should succeed, got %v", err)
	}
	total, _ := repo.Count()
	if total != 1 {
		t.Errorf("table changed by a zero-match delete: count = %d", total)
	}

	if err := repo.DeleteByCategory("Completeness"); err != nil {
		t.Fatalf("DeleteByCategory: %v", err)
	}
	total, _ = repo.Count()
	if total != 0 {
		t.Errorf("exact-match delete left %d records", total)
	}
}

func TestAverageDescriptionLength(t *testing.T) {
	repo := newTestRepo(t)

	avg, err := repo.AverageDescriptionLength()
	if err != nil {
		t.Fatalf("AverageDescriptionLength: %v", err)
	}
	if avg != nil {
		t.Fatalf("expected nil average on empty table, got %v", *avg)
	}

	a := sampleFeedback("Abstract", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	a.Description = "abcd" // 4
	b := sampleFeedback("Abstract", time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC))
	b.Description = "abcdef" // 6
	for _, fb := range []*model.Feedback{&a, &b} {
		if err := repo.Create(fb); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	avg, err = repo.AverageDescriptionLength()
	if err != nil {
		t.Fatalf("AverageDescriptionLength: %v", err)
	}
	if avg == nil || *avg != 5 {
		t.Fatalf("expected average 5, got %v", avg)
	}
}

func TestFindOlderThanIsStrict(t *testing.T) {
	repo := newTestRepo(t)

	threshold := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)

	older := sampleFeedback("Abstract", time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC))
	boundary := sampleFeedback("Abstract", threshold)
	newer := sampleFeedback("Abstract", time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC))
	for _, fb := range []*model.Feedback{&older, &boundary, &newer} {
		if err := repo.Create(fb); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	fbs, err := repo.FindOlderThan(threshold)
	if err != nil {
		t.Fatalf("FindOlderThan: %v", err)
	}
	if len(fbs) != 1 || fbs[0].ID != older.ID {
		t.Fatalf("expected only the strictly older record, got %d records", len(fbs))
	}
}
