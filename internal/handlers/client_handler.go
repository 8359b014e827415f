package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rantevou-app/gateway/internal/backend"
	"github.com/rantevou-app/gateway/internal/domain/client"
	"github.com/rantevou-app/gateway/internal/httperr"
	"github.com/rantevou-app/gateway/internal/httpresp"
)

type ClientHandler struct {
	api *backend.Client
}

func NewClientHandler(api *backend.Client) *ClientHandler {
	return &ClientHandler{api: api}
}

// ======================================================
// LIST / GET / SEARCH
// ======================================================

func (h *ClientHandler) List(c *gin.Context) {
	tok, ok := bearerToken(c)
	if !ok {
		return
	}
	page, size := pageParams(c, 10)

	resp, err := h.api.ListClients(c.Request.Context(), tok, page, size)
	if err != nil {
		writeBackendError(c, err, "clients_fetch_failed", "Αποτυχία φόρτωσης πελατών.")
		return
	}

	httpresp.OK(c, httpresp.Page[client.Client]{
		Content:       client.FromBackendList(resp.Content),
		TotalPages:    resp.TotalPages,
		TotalElements: resp.TotalElements,
		Size:          resp.Size,
		Number:        resp.Number,
	})
}

func (h *ClientHandler) Get(c *gin.Context) {
	tok, ok := bearerToken(c)
	if !ok {
		return
	}
	id, ok := idParam(c)
	if !ok {
		return
	}

	dto, err := h.api.GetClient(c.Request.Context(), tok, id)
	if err != nil {
		writeBackendError(c, err, "client", "Αποτυχία φόρτωσης πελάτη.")
		return
	}

	httpresp.OK(c, client.FromBackend(dto))
}

func (h *ClientHandler) Search(c *gin.Context) {
	tok, ok := bearerToken(c)
	if !ok {
		return
	}

	name := c.Query("name")
	if name == "" {
		httpresp.List(c, []client.SearchRow{})
		return
	}

	dtos, err := h.api.SearchClients(c.Request.Context(), tok, name)
	if err != nil {
		writeBackendError(c, err, "client_search_failed", "Αποτυχία αναζήτησης πελάτη.")
		return
	}

	httpresp.List(c, client.SearchRows(client.FromBackendList(dtos)))
}

// ======================================================
// CREATE / UPDATE / DELETE
// ======================================================

type SaveClientRequest struct {
	PersonalInfo client.PersonalInfo `json:"personalInfo" binding:"required"`
	VAT          string              `json:"vat"`
	Notes        string              `json:"notes"`
}

func (h *ClientHandler) Create(c *gin.Context) {
	tok, ok := bearerToken(c)
	if !ok {
		return
	}

	var req SaveClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Μη έγκυρα στοιχεία πελάτη.")
		return
	}

	dto, err := h.api.CreateClient(c.Request.Context(), tok, backend.SaveClientRequest{
		PersonalInfo: req.PersonalInfo,
		VAT:          req.VAT,
		Notes:        req.Notes,
	})
	if err != nil {
		writeBackendError(c, err, "client_create_failed", "Αποτυχία δημιουργίας πελάτη.")
		return
	}

	c.JSON(http.StatusCreated, client.FromBackend(dto))
}

func (h *ClientHandler) Update(c *gin.Context) {
	tok, ok := bearerToken(c)
	if !ok {
		return
	}
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req SaveClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Μη έγκυρα στοιχεία πελάτη.")
		return
	}

	dto, err := h.api.UpdateClient(c.Request.Context(), tok, id, backend.SaveClientRequest{
		PersonalInfo: req.PersonalInfo,
		VAT:          req.VAT,
		Notes:        req.Notes,
	})
	if err != nil {
		writeBackendError(c, err, "client_update_failed", "Λάθος στην ενημέρωση πελάτη.")
		return
	}

	httpresp.OK(c, client.FromBackend(dto))
}

func (h *ClientHandler) Delete(c *gin.Context) {
	tok, ok := bearerToken(c)
	if !ok {
		return
	}
	id, ok := idParam(c)
	if !ok {
		return
	}

	err := h.api.DeleteClient(c.Request.Context(), tok, id)
	if err != nil {
		// A constraint rejection is a business answer, not an auth
		// problem: the session stays up and the user gets told what to
		// delete first.
		if backend.IsConstraintViolation(err) {
			httperr.Conflict(c, "client_has_appointments",
				"Δεν μπορείς να διαγράψεις τον πελάτη επειδή έχει ενεργά ραντεβού. Διάγραψε πρώτα όλα τα ραντεβού του πελάτη.")
			return
		}
		writeBackendError(c, err, "client_delete_failed", "Αποτυχία διαγραφής πελάτη.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
