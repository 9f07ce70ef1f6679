package http

import (
	"net/http"

	"github.com/Spok95/supply-ledger/internal/domain/clients"
)

type clientDTO struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Code      string `json:"code"`
	Address   string `json:"address"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	IsActive  bool   `json:"is_active"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

func toClientDTO(c *clients.Client) clientDTO {
	return clientDTO{
		ID:        c.ID,
		Name:      c.Name,
		Code:      c.Code,
		Address:   c.Address,
		Phone:     c.Phone,
		Email:     c.Email,
		IsActive:  c.Active,
		CreatedAt: c.CreatedAt.Format(dateLayout),
		UpdatedAt: c.UpdatedAt.Format(dateLayout),
	}
}

type clientRequest struct {
	Name    string `json:"name"`
	Code    string `json:"code"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
}

func (a *API) listClients(w http.ResponseWriter, r *http.Request) {
	list, err := a.clients.List(r.Context())
	if err != nil {
		writeError(w, a.log, err)
		return
	}
	out := make([]clientDTO, 0, len(list))
	for i := range list {
		out = append(out, toClientDTO(&list[i]))
	}
	writeJSON(w, http.StatusOK, out)
}

func (a *API) getClient(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, a.log, err)
		return
	}
	c, err := a.clients.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, a.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toClientDTO(c))
}

func (a *API) createClient(w http.ResponseWriter, r *http.Request) {
	var req clientRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, a.log, err)
		return
	}
	c, err := a.clients.Create(r.Context(), req.Name, req.Code, req.Address, req.Phone, req.Email)
	if err != nil {
		writeError(w, a.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toClientDTO(c))
}

func (a *API) updateClient(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, a.log, err)
		return
	}
	var req clientRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, a.log, err)
		return
	}
	c, err := a.clients.Update(r.Context(), id, req.Name, req.Code, req.Address, req.Phone, req.Email)
	if err != nil {
		writeError(w, a.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toClientDTO(c))
}

func (a *API) deleteClient(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, a.log, err)
		return
	}
	if err := a.clients.SoftDelete(r.Context(), id); err != nil {
		writeError(w, a.log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Client deleted"})
}
