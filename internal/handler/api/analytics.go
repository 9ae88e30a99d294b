package api

import (
	"net/http"

	resdto "hotel-backoffice/internal/handler/dto/response"
	"hotel-backoffice/internal/pkg/errs"
	"hotel-backoffice/internal/usecase/commands"
	"hotel-backoffice/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AnalyticsHandler struct {
	analyticsCommands commands.AnalyticsCommands
	analyticsQueries  queries.AnalyticsQueries
}

func NewAnalyticsHandler(analyticsCommands commands.AnalyticsCommands, analyticsQueries queries.AnalyticsQueries) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsCommands: analyticsCommands,
		analyticsQueries:  analyticsQueries,
	}
}

// @Summary Get analytics snapshot
// @Description Compute and store the rollup for a day, defaulting to today
// @Tags analytics
// @Produce json
// @Security BearerAuth
// @Param date query string false "Day to roll up (YYYY-MM-DD)"
// @Success 200 {object} resdto.SnapshotResponse
// @Failure 400 {object} map[string]string
// @Router /analytics [get]
func (h *AnalyticsHandler) GetSnapshot(c *gin.Context) {
	view, err := h.analyticsCommands.ComputeForDate(c.Request.Context(), c.Query("date"))
	if err != nil {
		if errs.Is(err, commands.ErrInvalidDate) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid date, expected YYYY-MM-DD",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromSnapshotView(view))
}

// @Summary Snapshot history
// @Description List stored daily snapshots newest first, optionally bounded
// @Tags analytics
// @Produce json
// @Security BearerAuth
// @Param from query string false "Earliest day (YYYY-MM-DD)"
// @Param to query string false "Latest day (YYYY-MM-DD)"
// @Success 200 {array} resdto.SnapshotResponse
// @Failure 400 {object} map[string]string
// @Router /analytics/history [get]
func (h *AnalyticsHandler) History(c *gin.Context) {
	views, err := h.analyticsQueries.History(c.Request.Context(), c.Query("from"), c.Query("to"))
	if err != nil {
		if errs.Is(err, queries.ErrInvalidDateRange) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid date, expected YYYY-MM-DD",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromSnapshotViews(views))
}
