package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vendra-inc/vendra/internal/application/client/dto"
	"github.com/vendra-inc/vendra/internal/application/client/usecases"
	"github.com/vendra-inc/vendra/internal/shared/constants"
	"github.com/vendra-inc/vendra/internal/shared/id"
	"github.com/vendra-inc/vendra/internal/shared/logger"
	"github.com/vendra-inc/vendra/internal/shared/utils"
)

type ClientHandler struct {
	createClientUC       *usecases.CreateClientUseCase
	updateClientUC       *usecases.UpdateClientUseCase
	toggleClientStatusUC *usecases.ToggleClientStatusUseCase
	deleteClientUC       *usecases.DeleteClientUseCase
	deleteExternalUC     *usecases.DeleteExternalClientUseCase
	listClientsUC        *usecases.ListClientsUseCase
	listExternalUC       *usecases.ListExternalAccountsUseCase
	clientHistoryUC      *usecases.GetClientHistoryUseCase
	logger               logger.Interface
}

func NewClientHandler(
	createClientUC *usecases.CreateClientUseCase,
	updateClientUC *usecases.UpdateClientUseCase,
	toggleClientStatusUC *usecases.ToggleClientStatusUseCase,
	deleteClientUC *usecases.DeleteClientUseCase,
	deleteExternalUC *usecases.DeleteExternalClientUseCase,
	listClientsUC *usecases.ListClientsUseCase,
	listExternalUC *usecases.ListExternalAccountsUseCase,
	clientHistoryUC *usecases.GetClientHistoryUseCase,
) *ClientHandler {
	return &ClientHandler{
		createClientUC:       createClientUC,
		updateClientUC:       updateClientUC,
		toggleClientStatusUC: toggleClientStatusUC,
		deleteClientUC:       deleteClientUC,
		deleteExternalUC:     deleteExternalUC,
		listClientsUC:        listClientsUC,
		listExternalUC:       listExternalUC,
		clientHistoryUC:      clientHistoryUC,
		logger:               logger.NewLogger(),
	}
}

func (h *ClientHandler) Create(c *gin.Context) {
	var req dto.CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create client", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	createdBy, _ := c.Get(constants.ContextKeySubjectSID)
	creatorSID, _ := createdBy.(string)

	result, err := h.createClientUC.Execute(c.Request.Context(), req, creatorSID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Client created successfully")
}

func (h *ClientHandler) Update(c *gin.Context) {
	sid, err := utils.ParseSIDParam(c, "id", id.PrefixClient, "client")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req dto.UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update client", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.updateClientUC.Execute(c.Request.Context(), sid, req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Client updated successfully", result)
}

func (h *ClientHandler) ToggleStatus(c *gin.Context) {
	sid, err := utils.ParseSIDParam(c, "id", id.PrefixClient, "client")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.toggleClientStatusUC.Execute(c.Request.Context(), sid)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Client status updated", result)
}

func (h *ClientHandler) Delete(c *gin.Context) {
	sid, err := utils.ParseSIDParam(c, "id", id.PrefixClient, "client")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteClientUC.Execute(c.Request.Context(), sid); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Client deleted successfully", nil)
}

// DeleteExternal removes a registration that lives only on an external
// software instance. The client record itself may already be gone locally.
func (h *ClientHandler) DeleteExternal(c *gin.Context) {
	var req dto.DeleteExternalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for delete external client", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.deleteExternalUC.Execute(c.Request.Context(), req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "External client deleted successfully", nil)
}

func (h *ClientHandler) List(c *gin.Context) {
	var req dto.ListClientsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid query parameters")
		return
	}

	result, err := h.listClientsUC.Execute(c.Request.Context(), req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListExternal shows the remote account list of one software so the admin
// can spot accounts without a local row.
func (h *ClientHandler) ListExternal(c *gin.Context) {
	sid, err := utils.ParseSIDParam(c, "id", id.PrefixSoftware, "software")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	accounts, err := h.listExternalUC.Execute(c.Request.Context(), sid)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", accounts)
}

func (h *ClientHandler) History(c *gin.Context) {
	sid, err := utils.ParseSIDParam(c, "id", id.PrefixClient, "client")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	entries, err := h.clientHistoryUC.Execute(c.Request.Context(), sid)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", entries)
}
