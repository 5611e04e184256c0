package api

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/revufeed/api/internal/apperr"
	"github.com/revufeed/api/internal/dto"
	"github.com/revufeed/api/internal/middleware"
	"github.com/revufeed/api/internal/service"
	"github.com/rs/zerolog/log"
)

// FeedbackAPIController serves the programmatic JSON endpoints.
type FeedbackAPIController struct {
	feedbackService service.FeedbackService
	archiveService  service.ArchiveService
}

func NewFeedbackAPIController(feedbackService service.FeedbackService, archiveService service.ArchiveService) *FeedbackAPIController {
	return &FeedbackAPIController{
		feedbackService: feedbackService,
		archiveService:  archiveService,
	}
}

// BulkUpload godoc
// @Summary Bulk upload feedback comments
// @Description Creates multiple feedback comments in one transaction. Every entry must carry all six fields; one incomplete entry rejects the whole batch.
// @Tags Feedback API
// @Accept json
// @Produce json
// @Param payload body dto.BulkUploadRequest true "Feedback entries"
// @Success 201 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /feedback/bulk-upload [post]
func (c *FeedbackAPIController) BulkUpload(ctx *gin.Context) {
	var req dto.BulkUploadRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "No feedback entries provided in the request body."})
		return
	}

	count, err := c.feedbackService.BulkUpload(req)
	if err != nil {
		if apperr.IsValidation(err) {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: fmt.Sprintf("Failed to upload feedback comments: %v", err)})
		return
	}

	log.Info().Int("count", count).Msg("Bulk upload completed")
	ctx.JSON(http.StatusCreated, dto.MessageResponse{Message: "Feedback comments uploaded successfully"})
}

// Search godoc
// @Summary Search feedback by description phrase
// @Tags Feedback API
// @Produce json
// @Param phrase query string false "Substring to look for in descriptions (case-insensitive)"
// @Success 200 {array} dto.FeedbackResponse
// @Failure 404 {object} dto.MessageResponse
// @Router /feedback/search [get]
func (c *FeedbackAPIController) Search(ctx *gin.Context) {
	phrase := strings.TrimSpace(ctx.Query("phrase"))

	feedbacks, err := c.feedbackService.SearchByPhrase(phrase)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: fmt.Sprintf("Failed to search feedback comments: %v", err)})
		return
	}
	if len(feedbacks) == 0 {
		ctx.JSON(http.StatusNotFound, dto.MessageResponse{Message: "No feedback comments found."})
		return
	}

	ctx.JSON(http.StatusOK, feedbacks)
}

// ByMaxLength godoc
// @Summary List feedback whose description is at most max_length characters
// @Tags Feedback API
// @Produce json
// @Param max_length query int true "Maximum description length (non-negative)"
// @Success 200 {array} dto.FeedbackResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.MessageResponse
// @Router /feedback/by-max-length [get]
func (c *FeedbackAPIController) ByMaxLength(ctx *gin.Context) {
	feedbacks, err := c.feedbackService.FilterByMaxLength(ctx.Query("max_length"))
	if err != nil {
		if apperr.IsValidation(err) {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: fmt.Sprintf("Failed to filter feedback comments: %v", err)})
		return
	}
	if len(feedbacks) == 0 {
		ctx.JSON(http.StatusNotFound, dto.MessageResponse{Message: "Sorry, no comments meet this criteria."})
		return
	}

	ctx.JSON(http.StatusOK, feedbacks)
}

// UpdateCategory godoc
// @Summary Batch update the category of multiple feedback comments
// @Description Sets the category on every listed id; unknown ids are skipped. The update runs in one transaction.
// @Tags Feedback API
// @Accept json
// @Produce json
// @Param payload body dto.UpdateCategoryRequest true "Feedback ids and the new category"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /feedback/update-category [put]
func (c *FeedbackAPIController) UpdateCategory(ctx *gin.Context) {
	var req dto.UpdateCategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Please provide both feedback IDs and a new category."})
		return
	}

	if err := c.feedbackService.UpdateCategories(req); err != nil {
		if apperr.IsValidation(err) {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: fmt.Sprintf("Failed to update feedback comments: %v", err)})
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Feedback comments updated successfully."})
}

// DeleteByCategory godoc
// @Summary Delete every feedback comment with an exact category match
// @Description Zero matching records is still a success.
// @Tags Feedback API
// @Produce json
// @Param category query string true "Category to delete"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /feedback/delete-by-category [delete]
func (c *FeedbackAPIController) DeleteByCategory(ctx *gin.Context) {
	category := ctx.Query("category")

	if err := c.feedbackService.DeleteByCategory(category); err != nil {
		if apperr.IsValidation(err) {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: fmt.Sprintf("Failed to delete feedback comments: %v", err)})
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: fmt.Sprintf("All feedback comments in category '%s' deleted successfully.", category)})
}

// SummaryStatistics godoc
// @Summary Average description length across all feedback comments
// @Description average_comment_length is null when no comments exist.
// @Tags Feedback API
// @Produce json
// @Success 200 {object} dto.SummaryStatistics
// @Failure 500 {object} dto.ErrorResponse
// @Router /feedback/summary-statistics [get]
func (c *FeedbackAPIController) SummaryStatistics(ctx *gin.Context) {
	stats, err := c.feedbackService.SummaryStatistics()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: fmt.Sprintf("Failed to retrieve average comment length: %v", err)})
		return
	}
	ctx.JSON(http.StatusOK, stats)
}

// Archive godoc
// @Summary Export feedback comments older than a date to flat files
// @Description Appends a JSON array and CSV rows for every record last updated strictly before the threshold. Records are not removed from the store.
// @Tags Feedback API
// @Accept json
// @Produce json
// @Param payload body dto.ArchiveRequest true "Threshold date, YYYY-MM-DD"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /feedback/archive [post]
func (c *FeedbackAPIController) Archive(ctx *gin.Context) {
	var req dto.ArchiveRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid date format. Use YYYY-MM-DD for the date"})
		return
	}

	count, err := c.archiveService.Archive(req.DateThreshold)
	if err != nil {
		if apperr.IsValidation(err) {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
		return
	}
	if count == 0 {
		ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "No feedback comments older than the specified date."})
		return
	}

	middleware.RecordArchived(count)
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Old feedback comments archived successfully."})
}
