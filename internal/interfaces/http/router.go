package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/topcar/stock-api/internal/application/catalog"
	"github.com/topcar/stock-api/internal/application/ledger"
	"github.com/topcar/stock-api/internal/application/report"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CatalogUC *catalog.UseCase
	LedgerUC  *ledger.UseCase
	ReportUC  *report.UseCase
	AuthToken string
}

// Router registra las rutas de la API. Las lecturas de catálogo son
// públicas; toda mutación y los reportes por trabajo exigen el token.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	stockHandler := NewStockHandler(deps.CatalogUC)
	ledgerHandler := NewLedgerHandler(deps.LedgerUC)
	reportHandler := NewReportHandler(deps.ReportUC)

	// Stock (lecturas públicas)
	stock := api.Group("/stock")
	stock.Get("/", stockHandler.List)
	stock.Get("/reorder", stockHandler.Reorder)
	stock.Get("/:id", stockHandler.Get)

	// Rutas protegidas (requieren X-Auth-Token)
	auth := TokenAuthMiddleware(deps.AuthToken)
	stock.Post("/", auth, stockHandler.Create)

	ledgerGroup := api.Group("/ledger", auth)
	ledgerGroup.Post("/checkout", ledgerHandler.Checkout)
	ledgerGroup.Post("/receive", ledgerHandler.Receive)
	ledgerGroup.Post("/reverse", ledgerHandler.Reverse)

	jobs := api.Group("/jobs", auth)
	jobs.Get("/:job_no/usage", reportHandler.Usage)
	jobs.Get("/:job_no/report.pdf", reportHandler.PDF)
}
