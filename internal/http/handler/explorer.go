package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"go.uber.org/zap"

	"bscout/internal/filters"
	"bscout/internal/http/handler/middleware"
	"bscout/internal/http/payload"
	"bscout/internal/repository"
)

var (
	GetStats              = "GET /api/stats"
	GetTransactions       = "GET /api/transactions"
	GetFailedTransactions = "GET /api/transactions/failed"
	GetTransaction        = "GET /api/transactions/{hash}"
	GetLargeTransfers     = "GET /api/transfers/large"
	GetTokenTransfers     = "GET /api/transfers/tokens"
	GetChartBlocks        = "GET /api/chart/blocks"
	GetAddress            = "GET /api/address/{address}"
	GetHealth             = "GET /api/health"
)

type ExplorerHandler struct {
	logs          *zap.SugaredLogger
	store         ExplorerStore
	defiContracts []string
}

func NewExplorerHandler(logger *zap.SugaredLogger, store ExplorerStore, defiContracts []string) *ExplorerHandler {
	return &ExplorerHandler{
		logs:          logger,
		store:         store,
		defiContracts: defiContracts,
	}
}

func (h *ExplorerHandler) HandleGetStats(w http.ResponseWriter, r *http.Request) {
	requestID := requestID(r)

	stats, err := h.store.Stats(r.Context())
	if err != nil {
		h.respond(w, Response{Message: "Could not retrieve stats", Error: oopsErr}, http.StatusInternalServerError, requestID)
		h.logs.Errorw("failed to get stats", "error", err, "handler", GetStats, "request_id", requestID)
		return
	}

	h.respond(w, Response{Data: stats}, http.StatusOK, requestID)
}

func (h *ExplorerHandler) HandleGetTransactions(w http.ResponseWriter, r *http.Request) {
	requestID := requestID(r)

	values, err := parseQuery(r)
	if err != nil {
		h.badRequest(w, r, "Could not retrieve transactions", err, GetTransactions)
		return
	}

	query, err := payload.ParseTransactionsQuery(values)
	if err != nil {
		h.badRequest(w, r, "Could not retrieve transactions", err, GetTransactions)
		return
	}

	filter := repository.TransactionFilter{
		Search:     query.Search,
		FailedOnly: query.Failed,
	}
	if query.DeFi {
		filter.DeFiContracts = h.defiContracts
	}

	transactions, total, err := h.store.ListTransactions(r.Context(), filter, query.Limit, query.Offset())
	if err != nil {
		h.respond(w, Response{Message: "Could not retrieve transactions", Error: oopsErr}, http.StatusInternalServerError, requestID)
		h.logs.Errorw("failed to list transactions", "error", err, "handler", GetTransactions, "request_id", requestID)
		return
	}

	h.respond(w, Response{Data: Page{
		Items: transactions,
		Page:  query.Page,
		Limit: query.Limit,
		Total: total,
	}}, http.StatusOK, requestID)
}

func (h *ExplorerHandler) HandleGetTransaction(w http.ResponseWriter, r *http.Request) {
	requestID := requestID(r)

	hash := r.PathValue("hash")
	if err := payload.ValidateTxHash(hash); err != nil {
		h.badRequest(w, r, "Could not retrieve transaction", err, GetTransaction)
		return
	}

	transaction, transfers, err := h.store.GetTransactionWithTransfers(r.Context(), hash)
	if err != nil {
		if errors.Is(err, repository.ErrTransactionNotFound) {
			h.respond(w, Response{Message: "Transaction not found", Error: err.Error()}, http.StatusNotFound, requestID)
			return
		}
		h.respond(w, Response{Message: "Could not retrieve transaction", Error: oopsErr}, http.StatusInternalServerError, requestID)
		h.logs.Errorw("failed to get transaction", "error", err, "handler", GetTransaction, "request_id", requestID)
		return
	}

	h.respond(w, Response{Data: map[string]any{
		"transaction":    transaction,
		"tokenTransfers": transfers,
	}}, http.StatusOK, requestID)
}

func (h *ExplorerHandler) HandleGetLargeTransfers(w http.ResponseWriter, r *http.Request) {
	requestID := requestID(r)

	values, err := parseQuery(r)
	if err != nil {
		h.badRequest(w, r, "Could not retrieve large transfers", err, GetLargeTransfers)
		return
	}

	pagination, err := payload.ParsePagination(values)
	if err != nil {
		h.badRequest(w, r, "Could not retrieve large transfers", err, GetLargeTransfers)
		return
	}

	transfers, total, err := h.store.ListLargeTransfers(r.Context(), pagination.Limit, pagination.Offset())
	if err != nil {
		h.respond(w, Response{Message: "Could not retrieve large transfers", Error: oopsErr}, http.StatusInternalServerError, requestID)
		h.logs.Errorw("failed to list large transfers", "error", err, "handler", GetLargeTransfers, "request_id", requestID)
		return
	}

	h.respond(w, Response{Data: Page{
		Items: transfers,
		Page:  pagination.Page,
		Limit: pagination.Limit,
		Total: total,
	}}, http.StatusOK, requestID)
}

func (h *ExplorerHandler) HandleGetTokenTransfers(w http.ResponseWriter, r *http.Request) {
	requestID := requestID(r)

	values, err := parseQuery(r)
	if err != nil {
		h.badRequest(w, r, "Could not retrieve token transfers", err, GetTokenTransfers)
		return
	}

	query, err := payload.ParseTokenTransfersQuery(values)
	if err != nil {
		h.badRequest(w, r, "Could not retrieve token transfers", err, GetTokenTransfers)
		return
	}

	transfers, total, err := h.store.ListTokenTransfers(r.Context(), query.Token, query.Limit, query.Offset())
	if err != nil {
		h.respond(w, Response{Message: "Could not retrieve token transfers", Error: oopsErr}, http.StatusInternalServerError, requestID)
		h.logs.Errorw("failed to list token transfers", "error", err, "handler", GetTokenTransfers, "request_id", requestID)
		return
	}

	h.respond(w, Response{Data: Page{
		Items: transfers,
		Page:  query.Page,
		Limit: query.Limit,
		Total: total,
	}}, http.StatusOK, requestID)
}

func (h *ExplorerHandler) HandleGetFailedTransactions(w http.ResponseWriter, r *http.Request) {
	requestID := requestID(r)

	values, err := parseQuery(r)
	if err != nil {
		h.badRequest(w, r, "Could not retrieve failed transactions", err, GetFailedTransactions)
		return
	}

	pagination, err := payload.ParsePagination(values)
	if err != nil {
		h.badRequest(w, r, "Could not retrieve failed transactions", err, GetFailedTransactions)
		return
	}

	failed, total, err := h.store.ListFailedTransactions(r.Context(), pagination.Limit, pagination.Offset())
	if err != nil {
		h.respond(w, Response{Message: "Could not retrieve failed transactions", Error: oopsErr}, http.StatusInternalServerError, requestID)
		h.logs.Errorw("failed to list failed transactions", "error", err, "handler", GetFailedTransactions, "request_id", requestID)
		return
	}

	h.respond(w, Response{Data: Page{
		Items: failed,
		Page:  pagination.Page,
		Limit: pagination.Limit,
		Total: total,
	}}, http.StatusOK, requestID)
}

func (h *ExplorerHandler) HandleGetChartBlocks(w http.ResponseWriter, r *http.Request) {
	requestID := requestID(r)

	activity, err := h.store.BlockActivity(r.Context())
	if err != nil {
		h.respond(w, Response{Message: "Could not retrieve block activity", Error: oopsErr}, http.StatusInternalServerError, requestID)
		h.logs.Errorw("failed to get block activity", "error", err, "handler", GetChartBlocks, "request_id", requestID)
		return
	}

	h.respond(w, Response{Data: activity}, http.StatusOK, requestID)
}

func (h *ExplorerHandler) HandleGetAddress(w http.ResponseWriter, r *http.Request) {
	requestID := requestID(r)

	address := r.PathValue("address")
	if err := payload.ValidateAddress(address); err != nil {
		h.badRequest(w, r, "Could not retrieve address", err, GetAddress)
		return
	}

	profile, err := h.store.AddressProfile(r.Context(), address)
	if err != nil {
		h.respond(w, Response{Message: "Could not retrieve address", Error: oopsErr}, http.StatusInternalServerError, requestID)
		h.logs.Errorw("failed to get address profile", "error", err, "handler", GetAddress, "request_id", requestID)
		return
	}

	for i, balance := range profile.TokenBalances {
		profile.TokenBalances[i].Token = tokenLabel(balance.Token)
	}

	h.respond(w, Response{Data: profile}, http.StatusOK, requestID)
}

// tokenLabel renders a token contract address as its ticker symbol when
// known, otherwise as a truncated address.
func tokenLabel(address string) string {
	if symbol, ok := filters.TokenSymbol(address); ok {
		return symbol
	}
	if len(address) > 10 {
		return address[:10] + "..."
	}
	return address
}

func (h *ExplorerHandler) HandleGetHealth(w http.ResponseWriter, r *http.Request) {
	requestID := requestID(r)

	if err := h.store.Ping(r.Context()); err != nil {
		h.respond(w, Response{
			Message: "unhealthy",
			Data:    map[string]string{"database": "disconnected"},
		}, http.StatusInternalServerError, requestID)
		h.logs.Errorw("health check failed", "error", err, "handler", GetHealth, "request_id", requestID)
		return
	}

	h.respond(w, Response{
		Message: "ok",
		Data:    map[string]string{"database": "connected"},
	}, http.StatusOK, requestID)
}

func (h *ExplorerHandler) badRequest(w http.ResponseWriter, r *http.Request, message string, err error, handlerName string) {
	requestID := requestID(r)
	h.respond(w, Response{
		Message: message,
		Error:   fmt.Errorf("invalid request: %w", err).Error(),
	}, http.StatusBadRequest, requestID)
	h.logs.Errorw("failed to validate request",
		"error", err,
		"handler", handlerName,
		"request_id", requestID)
}

func (h *ExplorerHandler) respond(w http.ResponseWriter, response any, statusCode int, requestID string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(response); err != nil {
		h.logs.Errorw("failed to encode response", "error", err, "request_id", requestID)
	}
}

func requestID(r *http.Request) string {
	if value := r.Context().Value(middleware.RequestIDKey); value != nil {
		if id, ok := value.(string); ok {
			return id
		}
	}
	return ""
}

func parseQuery(r *http.Request) (url.Values, error) {
	values, err := url.ParseQuery(r.URL.RawQuery)
	if err != nil {
		return nil, fmt.Errorf("parse query parameters: %w", err)
	}
	return values, nil
}
