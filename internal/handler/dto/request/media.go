package request

// Gallery and main-menu uploads are multipart forms; the file part is read
// separately by the handler.
type CreateGalleryImageRequest struct {
	Caption  string `form:"caption"`
	Position int    `form:"position" binding:"min=0"`
}

type CreateMainMenuRequest struct {
	Title     string `form:"title" binding:"required"`
	PageCount int    `form:"page_count" binding:"omitempty,min=1"`
}
