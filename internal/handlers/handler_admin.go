package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	portssvc "github.com/traveljournal/tj_backend/internal/core/ports/services"
	"github.com/traveljournal/tj_backend/internal/dto"
)

// adminHandler handles the admin-only routes: global listings, the trash view
// and restores that bypass ownership.
type adminHandler struct {
	journalService portssvc.JournalSvcFacade
	entryService   portssvc.EntrySvcFacade
	userService    portssvc.UserSvcFacade
}

func newAdminHandler(js portssvc.JournalSvcFacade, es portssvc.EntrySvcFacade, us portssvc.UserSvcFacade) *adminHandler {
	return &adminHandler{journalService: js, entryService: es, userService: us}
}

// registerAdminRoutes registers the admin group routes. The group itself
// carries the admin role middleware.
func registerAdminRoutes(rg *gin.RouterGroup, journalService portssvc.JournalSvcFacade, entryService portssvc.EntrySvcFacade, userService portssvc.UserSvcFacade) {
	h := newAdminHandler(journalService, entryService, userService)

	rg.GET("/journals", h.listAllJournals)
	rg.GET("/journals/:journalID/entries/deleted", h.listDeletedEntries)
	rg.POST("/entries/:entryID/restore", h.restoreEntry)
	rg.GET("/users", h.listUsers)
}

// listAllJournals godoc
// @Summary List every journal (admin)
// @Tags admin
// @Produce json
// @Param includeEntries query bool false "Eager-load each journal's entries"
// @Success 200 {object} dto.ListJournalsResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/journals [get]
func (h *adminHandler) listAllJournals(c *gin.Context) {
	includeEntries, _ := strconv.ParseBool(c.DefaultQuery("includeEntries", "false"))

	journals, err := h.journalService.GetAll(c.Request.Context(), includeEntries)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToListJournalsResponse(journals))
}

// listDeletedEntries godoc
// @Summary List a journal's soft-deleted entries (admin)
// @Tags admin
// @Produce json
// @Param journalID path int true "Journal ID"
// @Success 200 {object} dto.ListEntriesResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/journals/{journalID}/entries/deleted [get]
func (h *adminHandler) listDeletedEntries(c *gin.Context) {
	journalID, ok := parseIDParam(c, "journalID")
	if !ok {
		return
	}

	entries, err := h.entryService.GetDeletedByJournal(c.Request.Context(), journalID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToListEntriesResponse(entries))
}

// restoreEntry godoc
// @Summary Restore any soft-deleted entry (admin)
// @Tags admin
// @Param entryID path int true "Entry ID"
// @Success 204 "No Content"
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/entries/{entryID}/restore [post]
func (h *adminHandler) restoreEntry(c *gin.Context) {
	entryID, ok := parseIDParam(c, "entryID")
	if !ok {
		return
	}

	if err := h.entryService.Restore(c.Request.Context(), entryID); err != nil {
		respondServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// listUsers godoc
// @Summary List users (admin)
// @Tags admin
// @Produce json
// @Param limit query int false "Limit number of results" default(20)
// @Param offset query int false "Offset for pagination" default(0)
// @Success 200 {object} dto.ListUsersResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/users [get]
func (h *adminHandler) listUsers(c *gin.Context) {
	var params dto.ListUsersParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	users, err := h.userService.ListUsers(c.Request.Context(), params.Limit, params.Offset)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToListUsersResponse(users))
}
