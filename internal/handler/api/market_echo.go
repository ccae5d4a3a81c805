package api

import (
	"net/http"

	"FinQuote/internal/domain/models"
	drepo "FinQuote/internal/domain/repository"
	"FinQuote/internal/service/transactions"
	"FinQuote/internal/usecase"
	xhttp "FinQuote/pkg/http"
	xlogger "FinQuote/pkg/logger"

	"github.com/labstack/echo/v4"
)

// MarketEchoHandler implements Echo-based HTTP handlers for the stock
// resolution endpoints.
type MarketEchoHandler struct {
	logger   *xlogger.Logger
	resolver *usecase.MarketResolver
	tx       *transactions.Client
}

func NewMarketEchoHandler(logger *xlogger.Logger, resolver *usecase.MarketResolver, tx *transactions.Client) *MarketEchoHandler {
	return &MarketEchoHandler{logger: logger, resolver: resolver, tx: tx}
}

func (h *MarketEchoHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/", h.Root)
	e.GET("/transactions", h.Transactions)

	g := e.Group("/stock")
	g.POST("/quote", h.Quote)
	g.POST("/history", h.History)
	g.POST("/search", h.Search)
}

func (h *MarketEchoHandler) Root(c echo.Context) error {
	return xhttp.SuccessResponse(c, map[string]string{
		"message": "Financial quote API",
		"status":  "running",
	})
}

func (h *MarketEchoHandler) Quote(c echo.Context) error {
	req := &models.QuoteRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	quote, err := h.resolver.GetQuote(c.Request().Context(), req.Symbol)
	if err != nil {
		return h.resolutionError(c, "quote", err)
	}
	return xhttp.SuccessResponse(c, quote)
}

func (h *MarketEchoHandler) History(c echo.Context) error {
	req := &models.HistoryRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}
	period := drepo.NormalizePeriod(req.Period)

	series, err := h.resolver.GetHistory(c.Request().Context(), req.Symbol, period)
	if err != nil {
		return h.resolutionError(c, "history", err)
	}
	return xhttp.SuccessResponse(c, series)
}

func (h *MarketEchoHandler) Search(c echo.Context) error {
	req := &models.SearchRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	results, err := h.resolver.Search(c.Request().Context(), req.Query)
	if err != nil {
		return h.resolutionError(c, "search", err)
	}
	return xhttp.SuccessResponse(c, results)
}

// resolutionError maps a failed resolution to the error envelope. A
// chain only fails on caller cancellation or a terminal provider
// defect, so the payload stays generic.
func (h *MarketEchoHandler) resolutionError(c echo.Context, op string, err error) error {
	h.logger.Error(op+" resolution error", xlogger.Error(err))
	appErr := xhttp.NewAppError("ERR_RESOLUTION", op+" resolution failed", http.StatusInternalServerError).WithError(err)
	return xhttp.AppErrorResponse(c, appErr)
}

// Transactions proxies the backend transaction API. The client owns
// its fallbacks, so this handler never maps a transport error.
func (h *MarketEchoHandler) Transactions(c echo.Context) error {
	token := c.Request().Header.Get("X-User-Token")
	data := h.tx.GetTransactions(c.Request().Context(), token)
	return xhttp.SuccessResponse(c, data)
}
