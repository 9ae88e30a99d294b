package api

import (
	"net/http"

	reqdto "hotel-backoffice/internal/handler/dto/request"
	resdto "hotel-backoffice/internal/handler/dto/response"
	"hotel-backoffice/internal/pkg/errs"
	"hotel-backoffice/internal/usecase/commands"
	"hotel-backoffice/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type MediaHandler struct {
	galleryCommands  commands.GalleryCommands
	mainMenuCommands commands.MainMenuCommands
	mediaQueries     queries.MediaQueries
}

func NewMediaHandler(
	galleryCommands commands.GalleryCommands,
	mainMenuCommands commands.MainMenuCommands,
	mediaQueries queries.MediaQueries,
) *MediaHandler {
	return &MediaHandler{
		galleryCommands:  galleryCommands,
		mainMenuCommands: mainMenuCommands,
		mediaQueries:     mediaQueries,
	}
}

// @Summary List gallery images
// @Description List gallery images ordered by position
// @Tags media
// @Produce json
// @Success 200 {array} resdto.GalleryImageResponse
// @Router /gallery [get]
func (h *MediaHandler) ListGallery(c *gin.Context) {
	views, err := h.mediaQueries.ListGallery(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromGalleryImageViews(views))
}

// @Summary Upload gallery image
// @Description Upload an image into the public gallery
// @Tags media
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param image formData file true "Image file"
// @Param caption formData string false "Caption"
// @Param position formData int false "Sort position"
// @Success 201 {object} resdto.GalleryImageResponse
// @Failure 400 {object} map[string]string
// @Router /gallery [post]
func (h *MediaHandler) CreateGalleryImage(c *gin.Context) {
	var req reqdto.CreateGalleryImageRequest
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

	view, err := h.galleryCommands.Create(c.Request.Context(), req, image)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromGalleryImageView(view))
}

// @Summary Delete gallery image
// @Description Remove a gallery image and its stored asset
// @Tags media
// @Security BearerAuth
// @Param id path string true "Image ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /gallery/{id} [delete]
func (h *MediaHandler) DeleteGalleryImage(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid image ID format",
		})
		return
	}

	if err := h.galleryCommands.Delete(c.Request.Context(), id); err != nil {
		h.writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary List main menus
// @Description List uploaded restaurant menu PDFs
// @Tags media
// @Produce json
// @Success 200 {array} resdto.MainMenuResponse
// @Router /main-menus [get]
func (h *MediaHandler) ListMainMenus(c *gin.Context) {
	views, err := h.mediaQueries.ListMainMenus(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromMainMenuViews(views))
}

// @Summary Upload main menu
// @Description Upload a restaurant menu PDF
// @Tags media
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param file formData file true "PDF file"
// @Param title formData string true "Menu title"
// @Param page_count formData int false "Page count override"
// @Success 201 {object} resdto.MainMenuResponse
// @Failure 400 {object} map[string]string
// @Router /main-menus [post]
func (h *MediaHandler) CreateMainMenu(c *gin.Context) {
	var req reqdto.CreateMainMenuRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	pdf, err := formUpload(c, "file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid file upload",
		})
		return
	}

	view, err := h.mainMenuCommands.Create(c.Request.Context(), req, pdf)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromMainMenuView(view))
}

// @Summary Activate main menu
// @Description Mark one menu PDF as the active one; the rest deactivate
// @Tags media
// @Security BearerAuth
// @Param id path string true "Menu ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /main-menus/{id}/activate [patch]
func (h *MediaHandler) ActivateMainMenu(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid menu ID format",
		})
		return
	}

	if err := h.mainMenuCommands.Activate(c.Request.Context(), id); err != nil {
		h.writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Delete main menu
// @Description Remove a menu PDF and its stored asset
// @Tags media
// @Security BearerAuth
// @Param id path string true "Menu ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /main-menus/{id} [delete]
func (h *MediaHandler) DeleteMainMenu(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid menu ID format",
		})
		return
	}

	if err := h.mainMenuCommands.Delete(c.Request.Context(), id); err != nil {
		h.writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *MediaHandler) writeError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, commands.ErrMissingFile):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "A file part is required",
		})
	case errs.Is(err, commands.ErrGalleryImageNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Gallery image not found",
		})
	case errs.Is(err, commands.ErrMainMenuNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Main menu not found",
		})
	case errs.Is(err, commands.ErrUploadFailed):
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "File upload failed",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
