package api

import (
	"net/http"

	"hotel-backoffice/internal/domain/menu"
	reqdto "hotel-backoffice/internal/handler/dto/request"
	resdto "hotel-backoffice/internal/handler/dto/response"
	"hotel-backoffice/internal/pkg/errs"
	"hotel-backoffice/internal/usecase/commands"
	"hotel-backoffice/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type WeeklyMenuHandler struct {
	menuCommands commands.WeeklyMenuCommands
	menuQueries  queries.WeeklyMenuQueries
}

func NewWeeklyMenuHandler(menuCommands commands.WeeklyMenuCommands, menuQueries queries.WeeklyMenuQueries) *WeeklyMenuHandler {
	return &WeeklyMenuHandler{
		menuCommands: menuCommands,
		menuQueries:  menuQueries,
	}
}

// @Summary Get weekly menu
// @Description Get all seven days with their assigned slots and extras
// @Tags weekly-menu
// @Produce json
// @Success 200 {array} resdto.DayMenuResponse
// @Router /weekly-menu [get]
func (h *WeeklyMenuHandler) GetWeek(c *gin.Context) {
	views, err := h.menuQueries.GetWeek(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromDayMenuViews(views))
}

// @Summary Get day menu
// @Description Get one weekday's slots and extras
// @Tags weekly-menu
// @Produce json
// @Param day path string true "Weekday" Enums(monday, tuesday, wednesday, thursday, friday, saturday, sunday)
// @Success 200 {object} resdto.DayMenuResponse
// @Failure 400 {object} map[string]string
// @Router /weekly-menu/{day} [get]
func (h *WeeklyMenuHandler) GetDay(c *gin.Context) {
	view, err := h.menuQueries.GetDay(c.Request.Context(), c.Param("day"))
	if err != nil {
		if errs.Is(err, menu.ErrInvalidWeekday) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid weekday",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromDayMenuView(view))
}

// @Summary Assign slot
// @Description Set or clear the soup, menu1 or menu2 slot for a weekday
// @Tags weekly-menu
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param day path string true "Weekday"
// @Param request body reqdto.AssignSlotRequest true "Slot assignment"
// @Success 200 {object} resdto.DayMenuResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /weekly-menu/{day} [put]
func (h *WeeklyMenuHandler) AssignSlot(c *gin.Context) {
	var req reqdto.AssignSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.menuCommands.AssignSlot(c.Request.Context(), c.Param("day"), req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromDayMenuView(view))
}

// @Summary Add extra meal
// @Description Append a meal to a weekday's extras
// @Tags weekly-menu
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param day path string true "Weekday"
// @Param request body reqdto.AddExtraMealRequest true "Extra meal"
// @Success 200 {object} resdto.DayMenuResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /weekly-menu/{day}/meals [post]
func (h *WeeklyMenuHandler) AddExtra(c *gin.Context) {
	var req reqdto.AddExtraMealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.menuCommands.AddExtra(c.Request.Context(), c.Param("day"), req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromDayMenuView(view))
}

// @Summary Remove extra meal
// @Description Remove one meal from a weekday's extras
// @Tags weekly-menu
// @Produce json
// @Security BearerAuth
// @Param day path string true "Weekday"
// @Param mealId path string true "Meal ID"
// @Success 200 {object} resdto.DayMenuResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /weekly-menu/{day}/meals/{mealId} [delete]
func (h *WeeklyMenuHandler) RemoveExtra(c *gin.Context) {
	mealID, err := uuid.Parse(c.Param("mealId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid meal ID format",
		})
		return
	}

	view, err := h.menuCommands.RemoveExtra(c.Request.Context(), c.Param("day"), mealID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromDayMenuView(view))
}

// @Summary Clear day
// @Description Empty a weekday's slots and extras
// @Tags weekly-menu
// @Security BearerAuth
// @Param day path string true "Weekday"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Router /weekly-menu/{day} [delete]
func (h *WeeklyMenuHandler) ClearDay(c *gin.Context) {
	if err := h.menuCommands.ClearDay(c.Request.Context(), c.Param("day")); err != nil {
		h.writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *WeeklyMenuHandler) writeError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, commands.ErrInvalidWeekday):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid weekday",
		})
	case errs.Is(err, commands.ErrMealNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Meal not found",
		})
	case errs.Is(err, commands.ErrDomainValidation):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request data",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
