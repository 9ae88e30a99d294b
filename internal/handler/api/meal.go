package api

import (
	"net/http"

	reqdto "hotel-backoffice/internal/handler/dto/request"
	resdto "hotel-backoffice/internal/handler/dto/response"
	"hotel-backoffice/internal/infra"
	"hotel-backoffice/internal/pkg/errs"
	"hotel-backoffice/internal/usecase/commands"
	"hotel-backoffice/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type MealHandler struct {
	mealCommands commands.MealCommands
	mealQueries  queries.MealQueries
}

func NewMealHandler(mealCommands commands.MealCommands, mealQueries queries.MealQueries) *MealHandler {
	return &MealHandler{
		mealCommands: mealCommands,
		mealQueries:  mealQueries,
	}
}

// @Summary List meals
// @Description List meals, optionally filtered by category or recommended flag
// @Tags meals
// @Produce json
// @Param category query string false "Category filter"
// @Param recommended query bool false "Recommended filter"
// @Success 200 {array} resdto.MealResponse
// @Failure 400 {object} map[string]string
// @Router /meals [get]
func (h *MealHandler) ListMeals(c *gin.Context) {
	var filter queries.MealFilter
	if raw, ok := c.GetQuery("category"); ok {
		filter.Category = &raw
	}
	if raw, ok := c.GetQuery("recommended"); ok {
		recommended := raw == "true"
		if !recommended && raw != "false" {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "recommended must be true or false",
			})
			return
		}
		filter.Recommended = &recommended
	}

	views, err := h.mealQueries.List(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromMealViews(views))
}

// @Summary Get meal
// @Description Get meal by ID
// @Tags meals
// @Produce json
// @Param id path string true "Meal ID"
// @Success 200 {object} resdto.MealResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /meals/{id} [get]
func (h *MealHandler) GetMeal(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid meal ID format",
		})
		return
	}

	view, err := h.mealQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Meal not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromMealView(view))
}

// @Summary Create meal
// @Description Create a meal; a title or both localized names must be set
// @Tags meals
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param title formData string false "Meal title"
// @Param name_de formData string false "German name"
// @Param name_en formData string false "English name"
// @Param price_cents formData int true "Price in cents"
// @Param category formData string true "Category"
// @Param image formData file false "Meal image"
// @Success 201 {object} resdto.MealResponse
// @Failure 400 {object} map[string]string
// @Router /meals [post]
func (h *MealHandler) CreateMeal(c *gin.Context) {
	var req reqdto.CreateMealRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	image, err := formUpload(c, "image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid file upload",
		})
		return
	}

	view, err := h.mealCommands.Create(c.Request.Context(), req, image)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromMealView(view))
}

// @Summary Update meal
// @Description Update meal fields and optionally replace the image
// @Tags meals
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param id path string true "Meal ID"
// @Success 200 {object} resdto.MealResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /meals/{id} [patch]
func (h *MealHandler) UpdateMeal(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid meal ID format",
		})
		return
	}

	var req reqdto.UpdateMealRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	image, err := formUpload(c, "image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid file upload",
		})
		return
	}

	view, err := h.mealCommands.Update(c.Request.Context(), id, req, image)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromMealView(view))
}

// @Summary Toggle recommended flag
// @Description Flip the recommended flag on a meal
// @Tags meals
// @Produce json
// @Security BearerAuth
// @Param id path string true "Meal ID"
// @Success 200 {object} resdto.MealResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /meals/{id}/toggle-recommended [patch]
func (h *MealHandler) ToggleRecommended(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid meal ID format",
		})
		return
	}

	view, err := h.mealCommands.ToggleRecommended(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromMealView(view))
}

// @Summary Delete meal
// @Description Delete a meal; weekly menu rows referencing it go with it
// @Tags meals
// @Security BearerAuth
// @Param id path string true "Meal ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /meals/{id} [delete]
func (h *MealHandler) DeleteMeal(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid meal ID format",
		})
		return
	}

	if err := h.mealCommands.Delete(c.Request.Context(), id); err != nil {
		h.writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *MealHandler) writeError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, commands.ErrMealNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Meal not found",
		})
	case errs.Is(err, commands.ErrDomainValidation):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "A title or both localized names are required",
		})
	case errs.Is(err, commands.ErrUploadFailed):
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "Image upload failed",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
