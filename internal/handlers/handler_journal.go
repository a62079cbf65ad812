package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/traveljournal/tj_backend/internal/core/ports/services"
	"github.com/traveljournal/tj_backend/internal/dto"
)

// journalHandler handles HTTP requests for journals and their PDF export.
type journalHandler struct {
	journalService portssvc.JournalSvcFacade
	exportService  portssvc.ExportSvcFacade
}

func newJournalHandler(js portssvc.JournalSvcFacade, es portssvc.ExportSvcFacade) *journalHandler {
	return &journalHandler{journalService: js, exportService: es}
}

// registerJournalRoutes registers all journal-related routes.
func registerJournalRoutes(rg *gin.RouterGroup, journalService portssvc.JournalSvcFacade, exportService portssvc.ExportSvcFacade) {
	h := newJournalHandler(journalService, exportService)

	journals := rg.Group("/journals")
	{
		journals.GET("", h.listJournals)
		journals.POST("", h.createJournal)
		journals.GET("/:journalID", h.getJournal)
		journals.PUT("/:journalID", h.updateJournal)
		journals.DELETE("/:journalID", h.deleteJournal)
		journals.GET("/:journalID/export/pdf", h.exportJournalPDF)
	}
}

// listJournals godoc
// @Summary List the caller's journals
// @Tags journals
// @Produce json
// @Success 200 {object} dto.ListJournalsResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /journals [get]
func (h *journalHandler) listJournals(c *gin.Context) {
	callerID, ok := mustUserID(c)
	if !ok {
		return
	}

	journals, err := h.journalService.GetByUser(c.Request.Context(), callerID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToListJournalsResponse(journals))
}

// createJournal godoc
// @Summary Create a journal
// @Tags journals
// @Accept json
// @Produce json
// @Param journal body dto.CreateJournalRequest true "Journal details"
// @Success 201 {object} dto.JournalResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /journals [post]
func (h *journalHandler) createJournal(c *gin.Context) {
	callerID, ok := mustUserID(c)
	if !ok {
		return
	}

	var req dto.CreateJournalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	journal, err := h.journalService.Create(c.Request.Context(), req, callerID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToJournalResponse(journal))
}

// getJournal godoc
// @Summary Get a journal by ID
// @Description Retrieves one of the caller's journals. Journals owned by other
// @Description users are reported as not found.
// @Tags journals
// @Produce json
// @Param journalID path int true "Journal ID"
// @Success 200 {object} dto.JournalResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /journals/{journalID} [get]
func (h *journalHandler) getJournal(c *gin.Context) {
	journalID, ok := parseIDParam(c, "journalID")
	if !ok {
		return
	}
	callerID, ok := mustUserID(c)
	if !ok {
		return
	}

	journal, err := h.journalService.GetByIDForUser(c.Request.Context(), journalID, callerID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToJournalResponse(journal))
}

// updateJournal godoc
// @Summary Update a journal
// @Tags journals
// @Accept json
// @Produce json
// @Param journalID path int true "Journal ID"
// @Param journal body dto.UpdateJournalRequest true "Fields to update"
// @Success 200 {object} dto.JournalResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /journals/{journalID} [put]
func (h *journalHandler) updateJournal(c *gin.Context) {
	journalID, ok := parseIDParam(c, "journalID")
	if !ok {
		return
	}
	callerID, ok := mustUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateJournalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	journal, err := h.journalService.Update(c.Request.Context(), journalID, req, callerID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToJournalResponse(journal))
}

// deleteJournal godoc
// @Summary Delete a journal
// @Description Permanently removes the journal together with its entries,
// @Description media and photos.
// @Tags journals
// @Param journalID path int true "Journal ID"
// @Success 204 "No Content"
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /journals/{journalID} [delete]
func (h *journalHandler) deleteJournal(c *gin.Context) {
	journalID, ok := parseIDParam(c, "journalID")
	if !ok {
		return
	}
	callerID, ok := mustUserID(c)
	if !ok {
		return
	}

	if err := h.journalService.Delete(c.Request.Context(), journalID, callerID); err != nil {
		respondServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// exportJournalPDF godoc
// @Summary Export a journal as PDF
// @Description Renders the journal's active entries as a PDF. Requires a plan
// @Description that unlocks export.
// @Tags journals
// @Produce application/pdf
// @Param journalID path int true "Journal ID"
// @Success 200 {file} binary
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse "Plan does not allow export"
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /journals/{journalID}/export/pdf [get]
func (h *journalHandler) exportJournalPDF(c *gin.Context) {
	journalID, ok := parseIDParam(c, "journalID")
	if !ok {
		return
	}
	callerID, ok := mustUserID(c)
	if !ok {
		return
	}

	pdfBytes, err := h.exportService.JournalPDF(c.Request.Context(), journalID, callerID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="journal_%d.pdf"`, journalID))
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}
