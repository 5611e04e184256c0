package service

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"strconv"
	"time"

	"github.com/revufeed/api/config"
	"github.com/revufeed/api/internal/apperr"
	"github.com/revufeed/api/internal/model"
	"github.com/revufeed/api/internal/repository"
	"github.com/rs/zerolog/log"
)

const archiveTimestampLayout = "2006-01-02 15:04:05"

// ArchiveService exports aged feedback comments to flat files. The export is
// a snapshot: archived records stay in the live store, and the file appends
// are not transactional with the database read that precedes them.
type ArchiveService interface {
	// Archive exports every record last updated strictly before the
	// threshold date (YYYY-MM-DD, interpreted at midnight) and returns the
	// number of records written. Zero matches writes nothing.
	Archive(dateThreshold string) (int, error)
}

type archiveService struct {
	repo     repository.FeedbackRepository
	jsonPath string
	csvPath  string
}

func NewArchiveService(repo repository.FeedbackRepository, cfg *config.Config) ArchiveService {
	return &archiveService{
		repo:     repo,
		jsonPath: cfg.Archive.JSONPath,
		csvPath:  cfg.Archive.CSVPath,
	}
}

// archivedRecord is the flat-file rendering of a feedback record; timestamps
// are stringified rather than serialized as time values.
type archivedRecord struct {
	ID              uint   `json:"id"`
	Category        string `json:"category"`
	Description     string `json:"description"`
	ResolvedStatus  string `json:"resolved_status"`
	PriorityLevel   string `json:"priority_level"`
	RelatedSection  string `json:"related_section"`
	AssignedTo      string `json:"assigned_to"`
	CreatedDate     string `json:"created_date"`
	LastUpdatedDate string `json:"last_updated_date"`
}

func newArchivedRecord(f model.Feedback) archivedRecord {
	return archivedRecord{
		ID:              f.ID,
		Category:        f.Category,
		Description:     f.Description,
		ResolvedStatus:  f.ResolvedStatus,
		PriorityLevel:   f.PriorityLevel,
		RelatedSection:  f.RelatedSection,
		AssignedTo:      f.AssignedTo,
		CreatedDate:     f.CreatedDate.Format(archiveTimestampLayout),
		LastUpdatedDate: f.LastUpdatedDate.Format(archiveTimestampLayout),
	}
}

func (s *archiveService) Archive(dateThreshold string) (int, error) {
	threshold, err := time.Parse("2006-01-02", dateThreshold)
	if err != nil {
		return 0, apperr.Validation("Invalid date format. Use YYYY-MM-DD for the date")
	}

	oldFeedbacks, err := s.repo.FindOlderThan(threshold)
	if err != nil {
		return 0, err
	}
	if len(oldFeedbacks) == 0 {
		return 0, nil
	}

	records := make([]archivedRecord, 0, len(oldFeedbacks))
	for _, fb := range oldFeedbacks {
		records = append(records, newArchivedRecord(fb))
	}

	if err := s.appendJSON(records); err != nil {
		log.Error().Err(err).Str("path", s.jsonPath).Msg("Archive: JSON export failed")
		return 0, err
	}
	if err := s.appendCSV(records); err != nil {
		// The JSON file already carries this batch; the two exports are
		// allowed to diverge on partial failure.
		log.Error().Err(err).Str("path", s.csvPath).Msg("Archive: CSV export failed")
		return 0, err
	}

	log.Info().Int("count", len(records)).Str("threshold", dateThreshold).Msg("Archived old feedback comments")
	return len(records), nil
}

// appendJSON appends one indented JSON array per call, newline-terminated so
// successive batches stay visually separated in the file.
func (s *archiveService) appendJSON(records []archivedRecord) error {
	f, err := os.OpenFile(s.jsonPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return apperr.Store("Error writing to JSON file", err)
	}
	defer f.Close()

	data, err := json.MarshalIndent(records, "", "    ")
	if err != nil {
		return apperr.Store("Error writing to JSON file", err)
	}
	if _, err := f.Write(append(data, '\n')); err != nil {
		return apperr.Store("Error writing to JSON file", err)
	}
	return nil
}

func (s *archiveService) appendCSV(records []archivedRecord) error {
	f, err := os.OpenFile(s.csvPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return apperr.Store("Error writing to CSV file", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return apperr.Store("Error writing to CSV file", err)
	}

	writer := csv.NewWriter(f)
	if info.Size() == 0 {
		writer.Write([]string{"ID", "Category", "Description", "Resolved Status", "Priority Level", "Related Section", "Assigned To", "Created Date", "Last Updated Date"})
	}
	for _, r := range records {
		writer.Write([]string{
			strconv.FormatUint(uint64(r.ID), 10),
			r.Category,
			r.Description,
			r.ResolvedStatus,
			r.PriorityLevel,
			r.RelatedSection,
			r.AssignedTo,
			r.CreatedDate,
			r.LastUpdatedDate,
		})
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return apperr.Store("Error writing to CSV file", err)
	}
	return nil
}
