package http

import (
	"net/http"

	"github.com/Spok95/supply-ledger/internal/domain/pricing"
	"github.com/Spok95/supply-ledger/internal/infra/reports"
)

func (a *API) listCategories(w http.ResponseWriter, r *http.Request) {
	list, err := a.pricing.ListCategories(r.Context())
	if err != nil {
		writeError(w, a.log, err)
		return
	}
	type dto struct {
		ID          int64  `json:"id"`
		Name        string `json:"name"`
		Description string `json:"description"`
	}
	out := make([]dto, 0, len(list))
	for _, c := range list {
		out = append(out, dto{ID: c.ID, Name: c.Name, Description: c.Description})
	}
	writeJSON(w, http.StatusOK, out)
}

func (a *API) createCategory(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}
	if err := decodeBody(r, &req); err != nil {
		writeError(w, a.log, err)
		return
	}
	c, err := a.pricing.CreateCategory(r.Context(), req.Name, req.Description)
	if err != nil {
		writeError(w, a.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{
		"id":          c.ID,
		"name":        c.Name,
		"description": c.Description,
	})
}

func (a *API) updateCategory(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, a.log, err)
		return
	}
	var req struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}
	if err := decodeBody(r, &req); err != nil {
		writeError(w, a.log, err)
		return
	}
	c, err := a.pricing.UpdateCategory(r.Context(), id, req.Name, req.Description)
	if err != nil {
		writeError(w, a.log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"id":          c.ID,
		"name":        c.Name,
		"description": c.Description,
	})
}

func (a *API) listGeneralPrices(w http.ResponseWriter, r *http.Request) {
	list, err := a.pricing.ListGeneralPrices(r.Context())
	if err != nil {
		writeError(w, a.log, err)
		return
	}
	type dto struct {
		ProductID   int64   `json:"product_id"`
		ProductName string  `json:"product_name"`
		ProductCode string  `json:"product_code"`
		Price       float64 `json:"price"`
	}
	out := make([]dto, 0, len(list))
	for _, it := range list {
		out = append(out, dto{ProductID: it.ProductID, ProductName: it.ProductName, ProductCode: it.ProductCode, Price: it.Price})
	}
	writeJSON(w, http.StatusOK, out)
}

func (a *API) getGeneralPrice(w http.ResponseWriter, r *http.Request) {
	productID, err := pathID(r, "productId")
	if err != nil {
		writeError(w, a.log, err)
		return
	}
	price, err := a.pricing.GetGeneralPrice(r.Context(), productID)
	if err != nil {
		writeError(w, a.log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]float64{"price": price})
}

func (a *API) listCategoryPrices(w http.ResponseWriter, r *http.Request) {
	categoryID, err := pathID(r, "categoryId")
	if err != nil {
		writeError(w, a.log, err)
		return
	}
	list, err := a.pricing.ListCategoryPrices(r.Context(), categoryID)
	if err != nil {
		writeError(w, a.log, err)
		return
	}
	type dto struct {
		ProductID   int64   `json:"product_id"`
		ProductName string  `json:"product_name"`
		ProductCode string  `json:"product_code"`
		Price       float64 `json:"price"`
	}
	out := make([]dto, 0, len(list))
	for _, it := range list {
		out = append(out, dto{ProductID: it.ProductID, ProductName: it.ProductName, ProductCode: it.ProductCode, Price: it.Price})
	}
	writeJSON(w, http.StatusOK, out)
}

func (a *API) upsertCategoryPrice(w http.ResponseWriter, r *http.Request) {
	var req struct {
		CategoryID int64   `json:"category_id"`
		ProductID  int64   `json:"product_id"`
		Price      float64 `json:"price"`
	}
	if err := decodeBody(r, &req); err != nil {
		writeError(w, a.log, err)
		return
	}
	if err := a.pricing.UpsertCategoryPrice(r.Context(), req.CategoryID, req.ProductID, req.Price); err != nil {
		writeError(w, a.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"message": "Price updated"})
}

func (a *API) bulkSetCategoryPrices(w http.ResponseWriter, r *http.Request) {
	var req struct {
		CategoryID int64                  `json:"category_id"`
		Prices     []pricing.ProductPrice `json:"prices"`
	}
	if err := decodeBody(r, &req); err != nil {
		writeError(w, a.log, err)
		return
	}
	if err := a.pricing.BulkSetCategoryPrices(r.Context(), req.CategoryID, req.Prices); err != nil {
		writeError(w, a.log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Prices updated for category"})
}

func (a *API) exportCategoryPrices(w http.ResponseWriter, r *http.Request) {
	categoryID, err := pathID(r, "categoryId")
	if err != nil {
		writeError(w, a.log, err)
		return
	}
	list, err := a.pricing.ListCategoryPrices(r.Context(), categoryID)
	if err != nil {
		writeError(w, a.log, err)
		return
	}
	name := ""
	cats, err := a.pricing.ListCategories(r.Context())
	if err != nil {
		writeError(w, a.log, err)
		return
	}
	for _, c := range cats {
		if c.ID == categoryID {
			name = c.Name
			break
		}
	}
	data, err := reports.CategoryPriceListExcel(name, list)
	if err != nil {
		writeError(w, a.log, err)
		return
	}
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="price_list.xlsx"`)
	_, _ = w.Write(data)
}

func (a *API) listClientPrices(w http.ResponseWriter, r *http.Request) {
	clientID, err := pathID(r, "clientId")
	if err != nil {
		writeError(w, a.log, err)
		return
	}
	list, err := a.pricing.ListClientPrices(r.Context(), clientID)
	if err != nil {
		writeError(w, a.log, err)
		return
	}
	type dto struct {
		ProductID   int64   `json:"product_id"`
		ProductName string  `json:"product_name"`
		Price       float64 `json:"price"`
	}
	out := make([]dto, 0, len(list))
	for _, it := range list {
		out = append(out, dto{ProductID: it.ProductID, ProductName: it.ProductName, Price: it.Price})
	}
	writeJSON(w, http.StatusOK, out)
}

func (a *API) upsertClientPrice(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ClientID  int64   `json:"client_id"`
		ProductID int64   `json:"product_id"`
		Price     float64 `json:"price"`
	}
	if err := decodeBody(r, &req); err != nil {
		writeError(w, a.log, err)
		return
	}
	it, err := a.pricing.UpsertClientPrice(r.Context(), req.ClientID, req.ProductID, req.Price)
	if err != nil {
		writeError(w, a.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{
		"id":         it.ID,
		"client_id":  it.ClientID,
		"product_id": it.ProductID,
		"price":      it.Price,
	})
}

func (a *API) getAssignment(w http.ResponseWriter, r *http.Request) {
	clientID, err := pathID(r, "clientId")
	if err != nil {
		writeError(w, a.log, err)
		return
	}
	as, err := a.pricing.GetAssignment(r.Context(), clientID)
	if err != nil {
		writeError(w, a.log, err)
		return
	}
	if as == nil {
		writeJSON(w, http.StatusOK, nil)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"client_id":     as.ClientID,
		"category_id":   as.CategoryID,
		"category_name": as.CategoryName,
	})
}

func (a *API) setAssignment(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ClientID   int64 `json:"client_id"`
		CategoryID int64 `json:"category_id"`
	}
	if err := decodeBody(r, &req); err != nil {
		writeError(w, a.log, err)
		return
	}
	as, err := a.pricing.SetAssignment(r.Context(), req.ClientID, req.CategoryID)
	if err != nil {
		writeError(w, a.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{
		"client_id":   as.ClientID,
		"category_id": as.CategoryID,
	})
}

func (a *API) resolvePrice(w http.ResponseWriter, r *http.Request) {
	clientID, err := pathID(r, "clientId")
	if err != nil {
		writeError(w, a.log, err)
		return
	}
	productID, err := pathID(r, "productId")
	if err != nil {
		writeError(w, a.log, err)
		return
	}
	resolved, err := a.pricing.Resolve(r.Context(), clientID, productID)
	if err != nil {
		writeError(w, a.log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"price":  resolved.Price,
		"source": resolved.Source,
	})
}
