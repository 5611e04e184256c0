package dto

// FeedbackFormRequest carries the add/edit form fields. The three required
// columns are enforced at the binding boundary; the rest may be empty.
type FeedbackFormRequest struct {
	Category       string `form:"category" json:"category" binding:"required"`
	Description    string `form:"description" json:"description" binding:"required"`
	ResolvedStatus string `form:"resolved_status" json:"resolved_status" binding:"required"` // "Yes" or "No"
	PriorityLevel  string `form:"priority_level" json:"priority_level"`
	RelatedSection string `form:"related_section" json:"related_section"`
	AssignedTo     string `form:"assigned_to" json:"assigned_to"`
}

// BulkFeedbackEntry uses pointer fields so that an absent or null field is
// distinguishable from an empty string; bulk upload requires all six.
type BulkFeedbackEntry struct {
	Category       *string `json:"category"`
	Description    *string `json:"description"`
	ResolvedStatus *string `json:"resolved_status"`
	PriorityLevel  *string `json:"priority_level"`
	RelatedSection *string `json:"related_section"`
	AssignedTo     *string `json:"assigned_to"`
}

type BulkUploadRequest struct {
	Feedbacks []BulkFeedbackEntry `json:"feedbacks"`
}

type UpdateCategoryRequest struct {
	FeedbackIDs []uint `json:"feedback_ids"`
	NewCategory string `json:"new_category"`
}

type ArchiveRequest struct {
	DateThreshold string `json:"date_threshold"` // YYYY-MM-DD
}

// ListQuery holds the query parameters of the list view.
type ListQuery struct {
	RelatedSection   string `form:"related_section"`
	Sort             string `form:"sort"`
	Page             int    `form:"page,default=1"`
	EditedFeedbackID string `form:"edited_feedback_id"`
}
