package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/traveljournal/tj_backend/internal/core/ports/services"
	"github.com/traveljournal/tj_backend/internal/dto"
)

// mediaHandler handles HTTP requests for externally-hosted media attachments.
type mediaHandler struct {
	mediaService portssvc.MediaSvcFacade
	entryService portssvc.EntryReaderSvc
}

func newMediaHandler(ms portssvc.MediaSvcFacade, es portssvc.EntryReaderSvc) *mediaHandler {
	return &mediaHandler{mediaService: ms, entryService: es}
}

// registerMediaRoutes registers media routes nested under the owning entry.
func registerMediaRoutes(rg *gin.RouterGroup, mediaService portssvc.MediaSvcFacade, entryService portssvc.EntryReaderSvc) {
	h := newMediaHandler(mediaService, entryService)

	rg.GET("/entries/:entryID/media", h.listMedia)
	rg.POST("/entries/:entryID/media", h.createMedia)
	rg.DELETE("/media/:mediaID", h.deleteMedia)
}

// ownedEntry checks that the caller owns the entry in the route.
func (h *mediaHandler) ownedEntry(c *gin.Context) (entryID int64, callerID int64, ok bool) {
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

// listMedia godoc
// @Summary List an entry's media
// @Tags media
// @Produce json
// @Param entryID path int true "Entry ID"
// @Success 200 {object} dto.ListMediaResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /entries/{entryID}/media [get]
func (h *mediaHandler) listMedia(c *gin.Context) {
	entryID, _, ok := h.ownedEntry(c)
	if !ok {
		return
	}

	media, err := h.mediaService.GetByEntry(c.Request.Context(), entryID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToListMediaResponse(media))
}

// createMedia godoc
// @Summary Attach media to an entry
// @Description Records a media attachment's metadata. Requires a plan that
// @Description unlocks media upload.
// @Tags media
// @Accept json
// @Produce json
// @Param entryID path int true "Entry ID"
// @Param media body dto.CreateMediaRequest true "Media metadata"
// @Success 201 {object} dto.MediaResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse "Plan does not allow media upload"
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /entries/{entryID}/media [post]
func (h *mediaHandler) createMedia(c *gin.Context) {
	entryID, callerID, ok := h.ownedEntry(c)
	if !ok {
		return
	}

	var req dto.CreateMediaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	media, err := h.mediaService.Upload(c.Request.Context(), req, entryID, callerID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToMediaResponse(media))
}

// deleteMedia godoc
// @Summary Delete a media record
// @Tags media
// @Param mediaID path int true "Media ID"
// @Success 204 "No Content"
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /media/{mediaID} [delete]
func (h *mediaHandler) deleteMedia(c *gin.Context) {
	mediaID, ok := parseIDParam(c, "mediaID")
	if !ok {
		return
	}
	if _, ok := mustUserID(c); !ok {
		return
	}

	if err := h.mediaService.Delete(c.Request.Context(), mediaID); err != nil {
		respondServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
