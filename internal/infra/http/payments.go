package http

import (
	"net/http"

	"github.com/Spok95/supply-ledger/internal/domain/payments"
)

func (a *API) listPaymentTypes(w http.ResponseWriter, r *http.Request) {
	list, err := a.payments.ListTypes(r.Context())
	if err != nil {
		writeError(w, a.log, err)
		return
	}
	type dto struct {
		ID   int64  `json:"id"`
		Name string `json:"name"`
	}
	out := make([]dto, 0, len(list))
	for _, t := range list {
		out = append(out, dto{ID: t.ID, Name: t.Name})
	}
	writeJSON(w, http.StatusOK, out)
}

func (a *API) recordPayment(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ClientID      int64   `json:"client_id"`
		PaymentDate   string  `json:"payment_date"`
		Amount        float64 `json:"amount"`
		PaymentTypeID int64   `json:"payment_type_id"`
		Currency      string  `json:"currency"`
		Notes         string  `json:"notes"`
	}
	if err := decodeBody(r, &req); err != nil {
		writeError(w, a.log, err)
		return
	}
	date, err := parseDate(req.PaymentDate, "payment_date")
	if err != nil {
		writeError(w, a.log, err)
		return
	}
	p, err := a.paysvc.Record(r.Context(), payments.RecordInput{
		ClientID:       req.ClientID,
		PaymentDate:    date,
		OriginalAmount: req.Amount,
		PaymentTypeID:  req.PaymentTypeID,
		Currency:       req.Currency,
		Notes:          req.Notes,
	})
	if err != nil {
		writeError(w, a.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{
		"id":              p.ID,
		"client_id":       p.ClientID,
		"payment_date":    p.PaymentDate.Format(dateLayout),
		"amount":          p.Amount,
		"original_amount": p.OriginalAmount,
		"payment_type":    p.PaymentType,
		"currency":        p.Currency,
		"notes":           p.Notes,
	})
}
