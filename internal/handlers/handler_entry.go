package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/traveljournal/tj_backend/internal/core/ports/services"
	"github.com/traveljournal/tj_backend/internal/dto"
)

// entryHandler handles HTTP requests for journal entries.
type entryHandler struct {
	entryService   portssvc.EntrySvcFacade
	journalService portssvc.JournalReaderSvc
}

func newEntryHandler(es portssvc.EntrySvcFacade, js portssvc.JournalReaderSvc) *entryHandler {
	return &entryHandler{entryService: es, journalService: js}
}

// registerEntryRoutes registers entry routes: listing and creation nested
// under the owning journal, everything else addressed by entry ID.
func registerEntryRoutes(rg *gin.RouterGroup, entryService portssvc.EntrySvcFacade, journalService portssvc.JournalReaderSvc) {
	h := newEntryHandler(entryService, journalService)

	journals := rg.Group("/journals/:journalID/entries")
	{
		journals.GET("", h.listEntries)
		journals.POST("", h.createEntry)
	}

	entries := rg.Group("/entries")
	{
		entries.GET("/:entryID", h.getEntry)
		entries.PUT("/:entryID", h.updateEntry)
		entries.DELETE("/:entryID", h.deleteEntry)
		entries.POST("/:entryID/restore", h.restoreEntry)
	}
}

// ownedJournal checks that the caller owns the journal in the route. It writes
// the error response itself when the check fails.
func (h *entryHandler) ownedJournal(c *gin.Context) (journalID int64, callerID int64, ok bool) {
	journalID, ok = parseIDParam(c, "journalID")
	if !ok {
		return 0, 0, false
	}
	callerID, ok = mustUserID(c)
	if !ok {
		return 0, 0, false
	}
	if _, err := h.journalService.GetByIDForUser(c.Request.Context(), journalID, callerID); err != nil {
		respondServiceError(c, err)
		return 0, 0, false
	}
	return journalID, callerID, true
}

// listEntries godoc
// @Summary List a journal's entries
// @Description Lists the journal's active entries. Soft-deleted entries are excluded.
// @Tags entries
// @Produce json
// @Param journalID path int true "Journal ID"
// @Success 200 {object} dto.ListEntriesResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /journals/{journalID}/entries [get]
func (h *entryHandler) listEntries(c *gin.Context) {
	journalID, _, ok := h.ownedJournal(c)
	if !ok {
		return
	}

	entries, err := h.entryService.GetByJournal(c.Request.Context(), journalID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToListEntriesResponse(entries))
}

// createEntry godoc
// @Summary Create an entry
// @Description Adds an entry to one of the caller's journals, subject to the
// @Description plan's entry limit.
// @Tags entries
// @Accept json
// @Produce json
// @Param journalID path int true "Journal ID"
// @Param entry body dto.CreateEntryRequest true "Entry details"
// @Success 201 {object} dto.EntryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse "Entry limit reached"
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /journals/{journalID}/entries [post]
func (h *entryHandler) createEntry(c *gin.Context) {
	journalID, callerID, ok := h.ownedJournal(c)
	if !ok {
		return
	}

	var req dto.CreateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	entry, err := h.entryService.Create(c.Request.Context(), req, journalID, callerID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToEntryResponse(entry))
}

// getEntry godoc
// @Summary Get an entry by ID
// @Description Retrieves one of the caller's entries. Foreign or soft-deleted
// @Description entries are reported as not found.
// @Tags entries
// @Produce json
// @Param entryID path int true "Entry ID"
// @Success 200 {object} dto.EntryResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /entries/{entryID} [get]
func (h *entryHandler) getEntry(c *gin.Context) {
	entryID, ok := parseIDParam(c, "entryID")
	if !ok {
		return
	}
	callerID, ok := mustUserID(c)
	if !ok {
		return
	}

	entry, err := h.entryService.GetByIDForUser(c.Request.Context(), entryID, callerID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEntryResponse(entry))
}

// updateEntry godoc
// @Summary Update an entry
// @Tags entries
// @Accept json
// @Produce json
// @Param entryID path int true "Entry ID"
// @Param entry body dto.UpdateEntryRequest true "Fields to update"
// @Success 200 {object} dto.EntryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /entries/{entryID} [put]
func (h *entryHandler) updateEntry(c *gin.Context) {
	entryID, ok := parseIDParam(c, "entryID")
	if !ok {
		return
	}
	callerID, ok := mustUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	entry, err := h.entryService.Update(c.Request.Context(), entryID, req, callerID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEntryResponse(entry))
}

// deleteEntry godoc
// @Summary Soft-delete an entry
// @Description Marks the entry as deleted. It disappears from listings but can
// @Description be restored.
// @Tags entries
// @Param entryID path int true "Entry ID"
// @Success 204 "No Content"
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /entries/{entryID} [delete]
func (h *entryHandler) deleteEntry(c *gin.Context) {
	entryID, ok := parseIDParam(c, "entryID")
	if !ok {
		return
	}
	callerID, ok := mustUserID(c)
	if !ok {
		return
	}

	// Ownership check before the soft delete; hides foreign entries.
	if _, err := h.entryService.GetByIDForUser(c.Request.Context(), entryID, callerID); err != nil {
		respondServiceError(c, err)
		return
	}

	if err := h.entryService.Delete(c.Request.Context(), entryID); err != nil {
		respondServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// restoreEntry godoc
// @Summary Restore a soft-deleted entry
// @Tags entries
// @Param entryID path int true "Entry ID"
// @Success 204 "No Content"
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /entries/{entryID}/restore [post]
func (h *entryHandler) restoreEntry(c *gin.Context) {
	entryID, ok := parseIDParam(c, "entryID")
	if !ok {
		return
	}
	callerID, ok := mustUserID(c)
	if !ok {
		return
	}

	// A deleted entry is invisible to GetByIDForUser, so check ownership on
	// the raw record instead.
	entry, err := h.entryService.GetByID(c.Request.Context(), entryID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if entry.UserID != callerID {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Resource not found"})
		return
	}

	if err := h.entryService.Restore(c.Request.Context(), entryID); err != nil {
		respondServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
