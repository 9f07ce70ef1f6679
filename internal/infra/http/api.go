package http

import (
	"log/slog"
	"net/http"

	"github.com/Spok95/supply-ledger/internal/domain/clients"
	"github.com/Spok95/supply-ledger/internal/domain/consumption"
	"github.com/Spok95/supply-ledger/internal/domain/ledger"
	"github.com/Spok95/supply-ledger/internal/domain/payments"
	"github.com/Spok95/supply-ledger/internal/domain/pricing"
	"github.com/Spok95/supply-ledger/internal/domain/products"
)

// API — тонкая JSON-обвязка над доменными операциями.
type API struct {
	log      *slog.Logger
	clients  *clients.Repo
	products *products.Repo
	pricing  *pricing.Repo
	cons     *consumption.Repo
	recorder *consumption.Recorder
	payments *payments.Repo
	paysvc   *payments.Service
	ledger   *ledger.Repo
}

func NewAPI(
	log *slog.Logger,
	clientsRepo *clients.Repo,
	productsRepo *products.Repo,
	pricingRepo *pricing.Repo,
	consRepo *consumption.Repo,
	recorder *consumption.Recorder,
	paymentsRepo *payments.Repo,
	paymentsSvc *payments.Service,
	ledgerRepo *ledger.Repo,
) *API {
	return &API{
		log:      log,
		clients:  clientsRepo,
		products: productsRepo,
		pricing:  pricingRepo,
		cons:     consRepo,
		recorder: recorder,
		payments: paymentsRepo,
		paysvc:   paymentsSvc,
		ledger:   ledgerRepo,
	}
}

func (a *API) register(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/clients", a.listClients)
	mux.HandleFunc("POST /api/clients", a.createClient)
	mux.HandleFunc("GET /api/clients/{id}", a.getClient)
	mux.HandleFunc("PUT /api/clients/{id}", a.updateClient)
	mux.HandleFunc("DELETE /api/clients/{id}", a.deleteClient)

	mux.HandleFunc("GET /api/products", a.listProducts)
	mux.HandleFunc("POST /api/products", a.createProduct)
	mux.HandleFunc("GET /api/products/{id}", a.getProduct)
	mux.HandleFunc("PUT /api/products/{id}", a.updateProduct)
	mux.HandleFunc("DELETE /api/products/{id}", a.deleteProduct)

	mux.HandleFunc("GET /api/price-categories", a.listCategories)
	mux.HandleFunc("POST /api/price-categories", a.createCategory)
	mux.HandleFunc("PUT /api/price-categories/{id}", a.updateCategory)

	mux.HandleFunc("GET /api/general-prices", a.listGeneralPrices)
	mux.HandleFunc("GET /api/general-prices/product/{productId}", a.getGeneralPrice)

	mux.HandleFunc("GET /api/category-prices/{categoryId}", a.listCategoryPrices)
	mux.HandleFunc("POST /api/category-prices", a.upsertCategoryPrice)
	mux.HandleFunc("POST /api/prices", a.bulkSetCategoryPrices)
	mux.HandleFunc("GET /api/category-prices/{categoryId}/export", a.exportCategoryPrices)

	mux.HandleFunc("GET /api/client-prices/{clientId}", a.listClientPrices)
	mux.HandleFunc("POST /api/client-prices", a.upsertClientPrice)

	mux.HandleFunc("GET /api/client-price-assignment/{clientId}", a.getAssignment)
	mux.HandleFunc("POST /api/client-price-assignment", a.setAssignment)
	mux.HandleFunc("GET /api/client-product-price/{clientId}/{productId}", a.resolvePrice)

	mux.HandleFunc("GET /api/consumption/{date}", a.listConsumption)
	mux.HandleFunc("POST /api/consumption", a.recordConsumption)
	mux.HandleFunc("DELETE /api/consumption/{id}", a.deleteConsumption)
	mux.HandleFunc("GET /api/sequence/next", a.nextSequence)

	mux.HandleFunc("GET /api/payment-types", a.listPaymentTypes)
	mux.HandleFunc("POST /api/payments", a.recordPayment)

	mux.HandleFunc("GET /api/reports/client/{clientId}", a.clientReport)
	mux.HandleFunc("GET /api/reports/client-summary/{clientId}", a.clientSummary)
	mux.HandleFunc("GET /api/reports/payments/{clientId}", a.paymentsReport)
	mux.HandleFunc("GET /api/reports/client/{clientId}/export", a.exportClientReport)
}
