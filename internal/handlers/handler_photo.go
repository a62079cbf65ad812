package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/traveljournal/tj_backend/internal/core/ports/services"
	"github.com/traveljournal/tj_backend/internal/dto"
	"github.com/traveljournal/tj_backend/internal/middleware"
	"github.com/traveljournal/tj_backend/internal/platform/storage"
)

// photoHandler handles multipart photo uploads stored on local disk.
type photoHandler struct {
	photoService portssvc.PhotoSvcFacade
	entryService portssvc.EntryReaderSvc
	store        *storage.PhotoStore
}

func newPhotoHandler(ps portssvc.PhotoSvcFacade, es portssvc.EntryReaderSvc, store *storage.PhotoStore) *photoHandler {
	return &photoHandler{photoService: ps, entryService: es, store: store}
}

// registerPhotoRoutes registers photo routes nested under the owning entry.
func registerPhotoRoutes(rg *gin.RouterGroup, photoService portssvc.PhotoSvcFacade, entryService portssvc.EntryReaderSvc, store *storage.PhotoStore) {
	h := newPhotoHandler(photoService, entryService, store)

	rg.GET("/entries/:entryID/photos", h.listPhotos)
	rg.POST("/entries/:entryID/photos", h.uploadPhoto)
	rg.DELETE("/photos/:photoID", h.deletePhoto)
}

func (h *photoHandler) ownedEntry(c *gin.Context) (entryID int64, callerID int64, ok bool) {
	entryID, ok = parseIDParam(c, "entryID")
	if !ok {
		return 0, 0, false
	}
	callerID, ok = mustUserID(c)
	if !ok {
		return 0, 0, false
	}
	if _, err := h.entryService.GetByIDForUser(c.Request.Context(), entryID, callerID); err != nil {
		respondServiceError(c, err)
		return 0, 0, false
	}
	return entryID, callerID, true
}

// listPhotos godoc
// @Summary List an entry's photos
// @Tags photos
// @Produce json
// @Param entryID path int true "Entry ID"
// @Success 200 {object} dto.ListPhotosResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /entries/{entryID}/photos [get]
func (h *photoHandler) listPhotos(c *gin.Context) {
	entryID, _, ok := h.ownedEntry(c)
	if !ok {
		return
	}

	photos, err := h.photoService.GetByEntry(c.Request.Context(), entryID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToListPhotosResponse(photos))
}

// uploadPhoto godoc
// @Summary Upload a photo to an entry
// @Description Accepts a multipart image (jpg/jpeg/png/webp, size-capped) and
// @Description stores it on disk. Requires a plan that unlocks photo upload.
// @Tags photos
// @Accept multipart/form-data
// @Produce json
// @Param entryID path int true "Entry ID"
// @Param photo formData file true "Image file"
// @Success 201 {object} dto.PhotoResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse "Plan does not allow photo upload"
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /entries/{entryID}/photos [post]
func (h *photoHandler) uploadPhoto(c *gin.Context) {
	entryID, callerID, ok := h.ownedEntry(c)
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("photo")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Missing photo file in form field 'photo'"})
		return
	}

	filePath, err := h.store.Save(fileHeader)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	photo, err := h.photoService.Upload(c.Request.Context(), filePath, entryID, callerID)
	if err != nil {
		// The record failed, so the stored file must not stay behind.
		if cleanupErr := h.store.Delete(filePath); cleanupErr != nil {
			logger := middleware.GetLoggerFromCtx(c.Request.Context())
			logger.Warn("Failed to clean up stored photo file", slog.String("file", filePath), slog.String("error", cleanupErr.Error()))
		}
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToPhotoResponse(photo))
}

// deletePhoto godoc
// @Summary Delete a photo
// @Description Removes the photo record and its stored file. Photos on other
// @Description users' entries are reported as not found.
// @Tags photos
// @Param photoID path int true "Photo ID"
// @Success 204 "No Content"
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /photos/{photoID} [delete]
func (h *photoHandler) deletePhoto(c *gin.Context) {
	photoID, ok := parseIDParam(c, "photoID")
	if !ok {
		return
	}
	callerID, ok := mustUserID(c)
	if !ok {
		return
	}

	if err := h.photoService.Delete(c.Request.Context(), photoID, callerID); err != nil {
		respondServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
