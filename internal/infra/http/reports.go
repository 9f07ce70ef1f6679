package http

import (
	"net/http"
	"time"

	"github.com/Spok95/supply-ledger/internal/infra/reports"
)

type summaryDTO struct {
	TotalConsumption float64 `json:"total_consumption"`
	TotalPayments    float64 `json:"total_payments"`
	Balance          float64 `json:"balance"`
	Status           string  `json:"status"`
}

// clientReport — детальный или помесячный отчёт в зависимости от group_by.
func (a *API) clientReport(w http.ResponseWriter, r *http.Request) {
	clientID, err := pathID(r, "clientId")
	if err != nil {
		writeError(w, a.log, err)
		return
	}
	from, to, err := dateRange(r)
	if err != nil {
		writeError(w, a.log, err)
		return
	}

	if r.URL.Query().Get("group_by") == "month" {
		rows, err := a.ledger.MonthlyReport(r.Context(), clientID, from, to)
		if err != nil {
			writeError(w, a.log, err)
			return
		}
		type dto struct {
			Month         string  `json:"month"`
			ProductName   string  `json:"product_name"`
			Unit          string  `json:"unit"`
			TotalQuantity float64 `json:"total_quantity"`
			TotalAmount   float64 `json:"total_amount"`
		}
		out := make([]dto, 0, len(rows))
		for _, it := range rows {
			out = append(out, dto{
				Month:         it.Month.Format("2006-01"),
				ProductName:   it.ProductName,
				Unit:          it.Unit,
				TotalQuantity: it.TotalQuantity,
				TotalAmount:   it.TotalAmount,
			})
		}
		writeJSON(w, http.StatusOK, out)
		return
	}

	rows, err := a.ledger.DailyReport(r.Context(), clientID, from, to)
	if err != nil {
		writeError(w, a.log, err)
		return
	}
	type dto struct {
		EntryDate   string  `json:"entry_date"`
		ProductName string  `json:"product_name"`
		Unit        string  `json:"unit"`
		Quantity    float64 `json:"quantity"`
		UnitPrice   float64 `json:"unit_price"`
		TotalAmount float64 `json:"total_amount"`
		Notes       string  `json:"notes"`
	}
	out := make([]dto, 0, len(rows))
	for _, it := range rows {
		out = append(out, dto{
			EntryDate:   it.EntryDate.Format(dateLayout),
			ProductName: it.ProductName,
			Unit:        it.Unit,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			TotalAmount: it.TotalAmount,
			Notes:       it.Notes,
		})
	}
	writeJSON(w, http.StatusOK, out)
}

func (a *API) clientSummary(w http.ResponseWriter, r *http.Request) {
	clientID, err := pathID(r, "clientId")
	if err != nil {
		writeError(w, a.log, err)
		return
	}
	from, to, err := dateRange(r)
	if err != nil {
		writeError(w, a.log, err)
		return
	}
	s, err := a.ledger.ClientSummary(r.Context(), clientID, from, to)
	if err != nil {
		writeError(w, a.log, err)
		return
	}
	writeJSON(w, http.StatusOK, summaryDTO{
		TotalConsumption: s.TotalConsumption,
		TotalPayments:    s.TotalPayments,
		Balance:          s.Balance,
		Status:           s.Status,
	})
}

func (a *API) paymentsReport(w http.ResponseWriter, r *http.Request) {
	clientID, err := pathID(r, "clientId")
	if err != nil {
		writeError(w, a.log, err)
		return
	}
	from, to, err := dateRange(r)
	if err != nil {
		writeError(w, a.log, err)
		return
	}
	list, err := a.payments.ListByClient(r.Context(), clientID, from, to)
	if err != nil {
		writeError(w, a.log, err)
		return
	}
	type dto struct {
		ID             int64   `json:"id"`
		PaymentDate    string  `json:"payment_date"`
		Amount         float64 `json:"amount"`
		OriginalAmount float64 `json:"original_amount"`
		PaymentType    string  `json:"payment_type"`
		Currency       string  `json:"currency"`
		Notes          string  `json:"notes"`
	}
	out := make([]dto, 0, len(list))
	for _, p := range list {
		out = append(out, dto{
			ID:             p.ID,
			PaymentDate:    p.PaymentDate.Format(dateLayout),
			Amount:         p.Amount,
			OriginalAmount: p.OriginalAmount,
			PaymentType:    p.PaymentType,
			Currency:       p.Currency,
			Notes:          p.Notes,
		})
	}
	writeJSON(w, http.StatusOK, out)
}

func (a *API) exportClientReport(w http.ResponseWriter, r *http.Request) {
	clientID, err := pathID(r, "clientId")
	if err != nil {
		writeError(w, a.log, err)
		return
	}
	from, to, err := dateRange(r)
	if err != nil {
		writeError(w, a.log, err)
		return
	}
	rows, err := a.ledger.DailyReport(r.Context(), clientID, from, to)
	if err != nil {
		writeError(w, a.log, err)
		return
	}
	summary, err := a.ledger.ClientSummary(r.Context(), clientID, from, to)
	if err != nil {
		writeError(w, a.log, err)
		return
	}
	data, err := reports.ClientReportExcel(rows, summary)
	if err != nil {
		writeError(w, a.log, err)
		return
	}
	name := reports.ReportFileName("client", clientID, time.Now().Format("20060102"))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="`+name+`"`)
	_, _ = w.Write(data)
}
