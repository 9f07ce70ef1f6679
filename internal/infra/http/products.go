package http

import (
	"net/http"

	"github.com/Spok95/supply-ledger/internal/domain/products"
)

type productDTO struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Code     string  `json:"code"`
	Unit     string  `json:"unit"`
	Price    float64 `json:"price"`
	IsActive bool    `json:"is_active"`
}

func toProductDTO(p *products.Product) productDTO {
	return productDTO{
		ID:       p.ID,
		Name:     p.Name,
		Code:     p.Code,
		Unit:     p.Unit,
		Price:    p.Price,
		IsActive: p.Active,
	}
}

type productRequest struct {
	Name         string   `json:"name"`
	Code         string   `json:"code"`
	Unit         string   `json:"unit"`
	GeneralPrice *float64 `json:"general_price"`
}

func (a *API) listProducts(w http.ResponseWriter, r *http.Request) {
	list, err := a.products.List(r.Context(), true)
	if err != nil {
		writeError(w, a.log, err)
		return
	}
	out := make([]productDTO, 0, len(list))
	for i := range list {
		out = append(out, toProductDTO(&list[i]))
	}
	writeJSON(w, http.StatusOK, out)
}

func (a *API) getProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, a.log, err)
		return
	}
	p, err := a.products.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, a.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toProductDTO(p))
}

func (a *API) createProduct(w http.ResponseWriter, r *http.Request) {
	var req productRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, a.log, err)
		return
	}
	price := 0.0
	if req.GeneralPrice != nil {
		price = *req.GeneralPrice
	}
	p, err := a.products.Create(r.Context(), req.Name, req.Code, req.Unit, price)
	if err != nil {
		writeError(w, a.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toProductDTO(p))
}

func (a *API) updateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, a.log, err)
		return
	}
	var req productRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, a.log, err)
		return
	}
	p, err := a.products.Update(r.Context(), id, req.Name, req.Code, req.Unit, req.GeneralPrice)
	if err != nil {
		writeError(w, a.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toProductDTO(p))
}

func (a *API) deleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, a.log, err)
		return
	}
	if err := a.products.SoftDelete(r.Context(), id); err != nil {
		writeError(w, a.log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Product deleted"})
}
