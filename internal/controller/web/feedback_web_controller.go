package web

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/revufeed/api/internal/apperr"
	"github.com/revufeed/api/internal/dto"
	"github.com/revufeed/api/internal/service"
	"github.com/rs/zerolog/log"
)

// FeedbackWebController serves the browser-facing pages: add, list, counts,
// edit and delete, all rendered server-side with redirects after mutation.
type FeedbackWebController struct {
	feedbackService service.FeedbackService
}

func NewFeedbackWebController(feedbackService service.FeedbackService) *FeedbackWebController {
	return &FeedbackWebController{feedbackService: feedbackService}
}

func (c *FeedbackWebController) Home(ctx *gin.Context) {
	ctx.HTML(http.StatusOK, "base.html", gin.H{})
}

func (c *FeedbackWebController) AddFeedbackForm(ctx *gin.Context) {
	ctx.HTML(http.StatusOK, "add_feedback.html", gin.H{})
}

// AddFeedback creates a comment from the submitted form and redirects to the
// list page that now contains it (records append at the end of the
// created_date ordering).
func (c *FeedbackWebController) AddFeedback(ctx *gin.Context) {
	var req dto.FeedbackFormRequest
	if err := ctx.ShouldBind(&req); err != nil {
		log.Warn().Err(err).Msg("AddFeedback: invalid form submission")
		ctx.HTML(http.StatusBadRequest, "add_feedback.html", gin.H{
			"Error": "Category, description and resolved status are required.",
		})
		return
	}

	_, lastPage, err := c.feedbackService.AddFeedback(req)
	if err != nil {
		log.Error().Err(err).Msg("AddFeedback: service error")
		ctx.HTML(http.StatusInternalServerError, "add_feedback.html", gin.H{
			"Error": "Failed to add the comment.",
		})
		return
	}

	ctx.Redirect(http.StatusFound, fmt.Sprintf("/feedback/?page=%d", lastPage))
}

// ViewFeedback renders the filtered, sorted, paginated list.
func (c *FeedbackWebController) ViewFeedback(ctx *gin.Context) {
	var q dto.ListQuery
	if err := ctx.ShouldBindQuery(&q); err != nil {
		q = dto.ListQuery{Page: 1}
	}

	page, err := c.feedbackService.ListFeedback(q)
	if err != nil {
		log.Error().Err(err).Msg("ViewFeedback: list failed")
		ctx.String(http.StatusInternalServerError, "Failed to load feedback comments.")
		return
	}

	ctx.HTML(http.StatusOK, "view_feedback.html", gin.H{
		"Feedbacks":            page,
		"RelatedSectionFilter": q.RelatedSection,
		"SortOrder":            q.Sort,
		"EditedFeedbackID":     q.EditedFeedbackID,
	})
}

// Counts renders the per-section totals for the three tracked sections.
func (c *FeedbackWebController) Counts(ctx *gin.Context) {
	counts, err := c.feedbackService.SectionCounts()
	if err != nil {
		log.Error().Err(err).Msg("Counts: count queries failed")
		ctx.String(http.StatusInternalServerError, "Failed to load section counts.")
		return
	}
	ctx.HTML(http.StatusOK, "counts.html", gin.H{
		"AppendixCount":         counts.AppendixCount,
		"AbstractCount":         counts.AbstractCount,
		"ExecutiveSummaryCount": counts.ExecutiveSummaryCount,
	})
}

func (c *FeedbackWebController) EditFeedbackForm(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}
	page := pageParam(ctx)

	fb, err := c.feedbackService.GetFeedback(id)
	if err != nil {
		if apperr.IsNotFound(err) {
			ctx.String(http.StatusNotFound, "Feedback not found.")
			return
		}
		ctx.String(http.StatusInternalServerError, "Failed to load the comment.")
		return
	}

	ctx.HTML(http.StatusOK, "edit_feedback.html", gin.H{
		"Feedback": fb,
		"Page":     page,
	})
}

// EditFeedback replaces every field on the record and redirects back to the
// page the user was on, flagging the edited row for highlighting.
func (c *FeedbackWebController) EditFeedback(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}
	page := pageParam(ctx)

	var req dto.FeedbackFormRequest
	if err := ctx.ShouldBind(&req); err != nil {
		log.Warn().Err(err).Uint("id", id).Msg("EditFeedback: invalid form submission")
		ctx.String(http.StatusBadRequest, "Category, description and resolved status are required.")
		return
	}

	if _, err := c.feedbackService.EditFeedback(id, req); err != nil {
		if apperr.IsNotFound(err) {
			ctx.String(http.StatusNotFound, "Feedback not found.")
			return
		}
		log.Error().Err(err).Uint("id", id).Msg("EditFeedback: service error")
		ctx.String(http.StatusInternalServerError, "Failed to edit the comment.")
		return
	}

	ctx.Redirect(http.StatusFound, fmt.Sprintf("/feedback/?page=%d&edited_feedback_id=%d", page, id))
}

func (c *FeedbackWebController) DeleteFeedback(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	if err := c.feedbackService.DeleteFeedback(id); err != nil {
		if apperr.IsNotFound(err) {
			ctx.String(http.StatusNotFound, "Feedback not found.")
			return
		}
		log.Error().Err(err).Uint("id", id).Msg("DeleteFeedback: service error")
		ctx.String(http.StatusInternalServerError, "Failed to delete the comment.")
		return
	}

	ctx.Redirect(http.StatusFound, "/feedback/")
}

func parseID(ctx *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		ctx.String(http.StatusNotFound, "Feedback not found.")
		return 0, false
	}
	return uint(id), true
}

func pageParam(ctx *gin.Context) int {
	page, err := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}
