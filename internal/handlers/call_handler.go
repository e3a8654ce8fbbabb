package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domain "github.com/andreamorim18/helpdesk/internal/domain/call"
	"github.com/andreamorim18/helpdesk/internal/httperr"
	"github.com/andreamorim18/helpdesk/internal/httpresp"
	"github.com/andreamorim18/helpdesk/internal/middleware"
	ucCall "github.com/andreamorim18/helpdesk/internal/usecase/call"
)

// ======================================================
// HANDLER
// ======================================================

type CallHandler struct {
	createUC *ucCall.CreateCall
	listUC   *ucCall.ListCalls
	getUC    *ucCall.GetCall
	updateUC *ucCall.UpdateCall
	deleteUC *ucCall.DeleteCall
}

func NewCallHandler(
	createUC *ucCall.CreateCall,
	listUC *ucCall.ListCalls,
	getUC *ucCall.GetCall,
	updateUC *ucCall.UpdateCall,
	deleteUC *ucCall.DeleteCall,
) *CallHandler {
	return &CallHandler{
		createUC: createUC,
		listUC:   listUC,
		getUC:    getUC,
		updateUC: updateUC,
		deleteUC: deleteUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateCallRequest struct {
	Title        string `json:"title" binding:"required"`
	Description  string `json:"description"`
	TechnicianID uint   `json:"technician_id" binding:"required"`
	ServiceIDs   []uint `json:"service_ids" binding:"required,min=1"`
}

type UpdateCallRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Status      *string `json:"status,omitempty"`
	ServiceIDs  []uint  `json:"service_ids,omitempty"`
}

// ======================================================
// HANDLERS
// ======================================================

func (h *CallHandler) Create(c *gin.Context) {
	requesterID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateCallRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	created, err := h.createUC.Execute(c.Request.Context(), ucCall.CreateCallInput{
		RequesterID:  requesterID,
		Title:        req.Title,
		Description:  req.Description,
		TechnicianID: req.TechnicianID,
		ServiceIDs:   req.ServiceIDs,
	})
	if err != nil {
		writeCallError(c, err)
		return
	}

	httpresp.Created(c, created)
}

func (h *CallHandler) List(c *gin.Context) {
	requesterID := c.MustGet(middleware.ContextUserID).(uint)
	requesterRole := c.MustGet(middleware.ContextUserRole).(string)

	calls, err := h.listUC.Execute(
		c.Request.Context(),
		requesterID,
		requesterRole,
		c.Query("status"),
	)
	if err != nil {
		httperr.Internal(c, "failed_to_list_calls", "Erro ao listar chamados.")
		return
	}

	httpresp.List(c, calls)
}

func (h *CallHandler) Get(c *gin.Context) {
	requesterID := c.MustGet(middleware.ContextUserID).(uint)
	requesterRole := c.MustGet(middleware.ContextUserRole).(string)

	callID, ok := paramID(c)
	if !ok {
		return
	}

	found, err := h.getUC.Execute(c.Request.Context(), requesterID, requesterRole, callID)
	if err != nil {
		writeCallError(c, err)
		return
	}

	httpresp.OK(c, found)
}

func (h *CallHandler) Update(c *gin.Context) {
	requesterID := c.MustGet(middleware.ContextUserID).(uint)
	requesterRole := c.MustGet(middleware.ContextUserRole).(string)

	callID, ok := paramID(c)
	if !ok {
		return
	}

	var req UpdateCallRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	updated, err := h.updateUC.Execute(c.Request.Context(), ucCall.UpdateCallInput{
		RequesterID:   requesterID,
		RequesterRole: requesterRole,
		CallID:        callID,
		Title:         req.Title,
		Description:   req.Description,
		Status:        req.Status,
		ServiceIDs:    req.ServiceIDs,
	})
	if err != nil {
		writeCallError(c, err)
		return
	}

	httpresp.OK(c, updated)
}

func (h *CallHandler) Delete(c *gin.Context) {
	requesterID := c.MustGet(middleware.ContextUserID).(uint)
	requesterRole := c.MustGet(middleware.ContextUserRole).(string)

	callID, ok := paramID(c)
	if !ok {
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), requesterID, requesterRole, callID); err != nil {
		writeCallError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ======================================================
// HELPERS
// ======================================================

func paramID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return 0, false
	}
	return uint(id), true
}

// writeCallError maps the call engine's business codes to HTTP statuses.
func writeCallError(c *gin.Context, err error) {
	switch httperr.BusinessCode(err) {
	case domain.CodeInvalidTechnician:
		httperr.BadRequest(c, domain.CodeInvalidTechnician, "Técnico inválido.")
	case domain.CodeInvalidServices:
		httperr.BadRequest(c, domain.CodeInvalidServices, "Um ou mais serviços são inválidos ou estão inativos.")
	case domain.CodeInvalidStatus:
		httperr.BadRequest(c, domain.CodeInvalidStatus, "Status inválido.")
	case domain.CodeNotFound:
		httperr.NotFound(c, domain.CodeNotFound, "Chamado não encontrado.")
	case domain.CodeAccessDenied:
		httperr.Forbidden(c, domain.CodeAccessDenied, "Acesso negado.")
	default:
		httperr.Internal(c, "internal_error", "Erro interno.")
	}
}
