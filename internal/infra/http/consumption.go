package http

import (
	"net/http"
	"time"

	"github.com/Spok95/supply-ledger/internal/domain/consumption"
)

type entryDTO struct {
	ID             int64   `json:"id"`
	EntryDate      string  `json:"entry_date"`
	ClientID       int64   `json:"client_id"`
	ClientName     string  `json:"client_name,omitempty"`
	ProductID      int64   `json:"product_id"`
	ProductName    string  `json:"product_name,omitempty"`
	Unit           string  `json:"unit,omitempty"`
	Quantity       float64 `json:"quantity"`
	UnitPrice      float64 `json:"unit_price"`
	TotalAmount    float64 `json:"total_amount"`
	SequenceNumber string  `json:"sequence_number"`
	Notes          string  `json:"notes"`
}

func toEntryDTO(e *consumption.Entry) entryDTO {
	return entryDTO{
		ID:             e.ID,
		EntryDate:      e.EntryDate.Format(dateLayout),
		ClientID:       e.ClientID,
		ClientName:     e.ClientName,
		ProductID:      e.ProductID,
		ProductName:    e.ProductName,
		Unit:           e.Unit,
		Quantity:       e.Quantity,
		UnitPrice:      e.UnitPrice,
		TotalAmount:    e.TotalAmount,
		SequenceNumber: e.SequenceNumber,
		Notes:          e.Notes,
	}
}

func (a *API) listConsumption(w http.ResponseWriter, r *http.Request) {
	date, err := parseDate(r.PathValue("date"), "date")
	if err != nil {
		writeError(w, a.log, err)
		return
	}
	list, err := a.cons.ListByDate(r.Context(), date)
	if err != nil {
		writeError(w, a.log, err)
		return
	}
	out := make([]entryDTO, 0, len(list))
	for i := range list {
		out = append(out, toEntryDTO(&list[i]))
	}
	writeJSON(w, http.StatusOK, out)
}

func (a *API) recordConsumption(w http.ResponseWriter, r *http.Request) {
	var req struct {
		EntryDate      string   `json:"entry_date"`
		ClientID       int64    `json:"client_id"`
		ProductID      int64    `json:"product_id"`
		Quantity       float64  `json:"quantity"`
		SequenceNumber string   `json:"sequence_number"`
		Notes          string   `json:"notes"`
		UnitPrice      *float64 `json:"unit_price"`
		TotalAmount    *float64 `json:"total_amount"`
	}
	if err := decodeBody(r, &req); err != nil {
		writeError(w, a.log, err)
		return
	}
	date, err := parseDate(req.EntryDate, "entry_date")
	if err != nil {
		writeError(w, a.log, err)
		return
	}
	entry, err := a.recorder.Record(r.Context(), consumption.RecordInput{
		EntryDate:      date,
		ClientID:       req.ClientID,
		ProductID:      req.ProductID,
		Quantity:       req.Quantity,
		SequenceNumber: req.SequenceNumber,
		Notes:          req.Notes,
		UnitPrice:      req.UnitPrice,
		TotalAmount:    req.TotalAmount,
	})
	if err != nil {
		writeError(w, a.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toEntryDTO(entry))
}

func (a *API) deleteConsumption(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, a.log, err)
		return
	}
	if err := a.cons.SoftDelete(r.Context(), id); err != nil {
		writeError(w, a.log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Consumption entry deleted"})
}

func (a *API) nextSequence(w http.ResponseWriter, r *http.Request) {
	seq, err := a.cons.PeekSequence(r.Context(), time.Now().Year())
	if err != nil {
		writeError(w, a.log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"sequence_number": seq})
}
