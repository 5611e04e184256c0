package dto

import (
	"github.com/revufeed/api/internal/model"
)

const dateLayout = "02/01/2006"

// FeedbackResponse is the JSON dict shape of a feedback record. Dates are
// rendered DD/MM/YYYY.
type FeedbackResponse struct {
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

func NewFeedbackResponse(f model.Feedback) FeedbackResponse {
	return FeedbackResponse{
		ID:              f.ID,
		Category:        f.Category,
		Description:     f.Description,
		ResolvedStatus:  f.ResolvedStatus,
		PriorityLevel:   f.PriorityLevel,
		RelatedSection:  f.RelatedSection,
		AssignedTo:      f.AssignedTo,
		CreatedDate:     f.CreatedDate.Format(dateLayout),
		LastUpdatedDate: f.LastUpdatedDate.Format(dateLayout),
	}
}

func NewFeedbackResponses(fs []model.Feedback) []FeedbackResponse {
	resp := make([]FeedbackResponse, 0, len(fs))
	for _, f := range fs {
		resp = append(resp, NewFeedbackResponse(f))
	}
	return resp
}

// FeedbackPage is the paginated list view payload.
type FeedbackPage struct {
	Items      []FeedbackResponse `json:"items"`
	Page       int                `json:"page"`
	PerPage    int                `json:"per_page"`
	Total      int64              `json:"total"`
	TotalPages int                `json:"total_pages"`
}

func (p FeedbackPage) HasPrev() bool { return p.Page > 1 }
func (p FeedbackPage) HasNext() bool { return p.Page < p.TotalPages }
func (p FeedbackPage) PrevPage() int { return p.Page - 1 }
func (p FeedbackPage) NextPage() int { return p.Page + 1 }

// SectionCounts backs the counts page.
type SectionCounts struct {
	AppendixCount         int64 `json:"appendix_count"`
	AbstractCount         int64 `json:"abstract_count"`
	ExecutiveSummaryCount int64 `json:"executive_summary_count"`
}

// SummaryStatistics carries the aggregate description-length stats.
// AverageCommentLength is null when the table is empty.
type SummaryStatistics struct {
	AverageCommentLength *float64 `json:"average_comment_length"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
