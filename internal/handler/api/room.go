package api

import (
	"net/http"

	"hotel-backoffice/internal/domain/room"
	reqdto "hotel-backoffice/internal/handler/dto/request"
	resdto "hotel-backoffice/internal/handler/dto/response"
	"hotel-backoffice/internal/infra"
	"hotel-backoffice/internal/pkg/errs"
	"hotel-backoffice/internal/usecase/commands"
	"hotel-backoffice/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type RoomHandler struct {
	roomCommands commands.RoomCommands
	roomQueries  queries.RoomQueries
}

func NewRoomHandler(roomCommands commands.RoomCommands, roomQueries queries.RoomQueries) *RoomHandler {
	return &RoomHandler{
		roomCommands: roomCommands,
		roomQueries:  roomQueries,
	}
}

// @Summary List rooms
// @Description List rooms, optionally filtered by room type
// @Tags rooms
// @Produce json
// @Param room_type query string false "Room type filter" Enums(Single, Double, Triple)
// @Success 200 {array} resdto.RoomResponse
// @Failure 400 {object} map[string]string
// @Router /rooms [get]
func (h *RoomHandler) ListRooms(c *gin.Context) {
	var roomType *string
	if raw, ok := c.GetQuery("room_type"); ok {
		roomType = &raw
	}

	views, err := h.roomQueries.List(c.Request.Context(), roomType)
	if err != nil {
		if errs.Is(err, room.ErrInvalidType) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid room type",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromRoomViews(views))
}

// @Summary Get room
// @Description Get room by ID
// @Tags rooms
// @Produce json
// @Param id path string true "Room ID"
// @Success 200 {object} resdto.RoomResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /rooms/{id} [get]
func (h *RoomHandler) GetRoom(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid room ID format",
		})
		return
	}

	view, err := h.roomQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Room not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromRoomView(view))
}

// @Summary Create room
// @Description Create a room from a multipart form with optional images
// @Tags rooms
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param title formData string true "Room title"
// @Param nightly_cents formData int true "Nightly price in cents"
// @Param room_type formData string true "Room type" Enums(Single, Double, Triple)
// @Param cover formData file false "Cover image"
// @Param thumbnail formData file false "Thumbnail image"
// @Param gallery formData file false "Gallery images"
// @Success 201 {object} resdto.RoomResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /rooms [post]
func (h *RoomHandler) CreateRoom(c *gin.Context) {
	var req reqdto.CreateRoomRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	images, ok := h.bindImages(c)
	if !ok {
		return
	}

	view, err := h.roomCommands.Create(c.Request.Context(), req, images)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromRoomView(view))
}

// @Summary Update room
// @Description Update room fields and optionally replace images
// @Tags rooms
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param id path string true "Room ID"
// @Success 200 {object} resdto.RoomResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /rooms/{id} [patch]
func (h *RoomHandler) UpdateRoom(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid room ID format",
		})
		return
	}

	var req reqdto.UpdateRoomRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	images, ok := h.bindImages(c)
	if !ok {
		return
	}

	view, err := h.roomCommands.Update(c.Request.Context(), id, req, images)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromRoomView(view))
}

// @Summary Delete room
// @Description Delete a room that has no reservations
// @Tags rooms
// @Security BearerAuth
// @Param id path string true "Room ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /rooms/{id} [delete]
func (h *RoomHandler) DeleteRoom(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid room ID format",
		})
		return
	}

	if err := h.roomCommands.Delete(c.Request.Context(), id); err != nil {
		h.writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *RoomHandler) bindImages(c *gin.Context) (commands.RoomImages, bool) {
	var images commands.RoomImages
	var err error

	if images.Cover, err = formUpload(c, "cover"); err == nil {
		if images.Thumbnail, err = formUpload(c, "thumbnail"); err == nil {
			images.Gallery, err = formUploads(c, "gallery")
		}
	}
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid file upload",
		})
		return commands.RoomImages{}, false
	}
	return images, true
}

func (h *RoomHandler) writeError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, commands.ErrRoomNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Room not found",
		})
	case errs.Is(err, commands.ErrRoomHasReservations):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Room still has reservations",
		})
	case errs.Is(err, commands.ErrDomainValidation):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request data",
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
