package cloudz

import (
	"net/http"
	"strconv"

	models "github.com/clouddistrictclub/cloud-district-app/internal/models"
	"github.com/google/uuid"
)

type StatusRequest struct {
	Status string `json:"status"`
}

type StatusResponse struct {
	Order models.Order       `json:"order"`
	Paid  *models.PaidResult `json:"loyalty,omitempty"`
}

type BalanceRequest struct {
	Balance *int64 `json:"balance"`
}

type BalanceResponse struct {
	UserID  uuid.UUID           `json:"userId"`
	Balance int64               `json:"balance"`
	Entry   *models.LedgerEntry `json:"entry"`
}

type StockRequest struct {
	Delta int64 `json:"delta"`
}

type ReconcileResponse struct {
	Drifted []models.Reconciliation `json:"drifted"`
}

// Смена статуса заказа, переход в Paid начисляет баллы
func (h *LoyaltyHandler) UpdateOrderStatusHandler(w http.ResponseWriter, req *http.Request) {
	id, ok := pathID(w, req)
	if !ok {
		return
	}
	in := StatusRequest{}
	if err := readJSON(req, &in); err != nil {
		writeError(w, http.StatusBadRequest, "Body is not correct")
		return
	}
	order, paid, err := h.serv.UpdateOrderStatus(req.Context(), id, in.Status)
	if err != nil {
		h.fail(w, "UpdateOrderStatusHandler", err)
		return
	}
	writeJSON(w, http.StatusOK, StatusResponse{order, paid})
}

func queryInt(req *http.Request, name string) (int64, error) {
	raw := req.URL.Query().Get(name)
	if raw == "" {
		return 0, nil
	}
	return strconv.ParseInt(raw, 10, 64)
}

// Журнал всех счетов
func (h *LoyaltyHandler) AdminLedgerHandler(w http.ResponseWriter, req *http.Request) {
	skip, err := queryInt(req, "skip")
	if err != nil || skip < 0 {
		writeError(w, http.StatusBadRequest, "skip must be a non-negative integer")
		return
	}
	limit, err := queryInt(req, "limit")
	if err != nil || limit < 0 {
		writeError(w, http.StatusBadRequest, "limit must be a non-negative integer")
		return
	}
	filter := models.LedgerFilter{
		Type:  models.LedgerType(req.URL.Query().Get("type")),
		Skip:  skip,
		Limit: limit,
	}
	if raw := req.URL.Query().Get("userId"); raw != "" {
		userId, err := uuid.Parse(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "userId is not correct")
			return
		}
		filter.UserID = &userId
	}

	page, err := h.serv.GetAdminLedger(req.Context(), filter)
	if err != nil {
		h.fail(w, "AdminLedgerHandler", err)
		return
	}
	writeJSON(w, http.StatusOK, page)
}

func (h *LoyaltyHandler) SetBalanceHandler(w http.ResponseWriter, req *http.Request) {
	id, ok := pathID(w, req)
	if !ok {
		return
	}
	in := BalanceRequest{}
	if err := readJSON(req, &in); err != nil || in.Balance == nil {
		writeError(w, http.StatusBadRequest, "balance is required")
		return
	}
	entry, err := h.serv.SetBalance(req.Context(), id, *in.Balance)
	if err != nil {
		h.fail(w, "SetBalanceHandler", err)
		return
	}
	writeJSON(w, http.StatusOK, BalanceResponse{id, *in.Balance, entry})
}

// Сверка: один счет (?userId=) или все
func (h *LoyaltyHandler) ReconcileHandler(w http.ResponseWriter, req *http.Request) {
	if raw := req.URL.Query().Get("userId"); raw != "" {
		userId, err := uuid.Parse(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "userId is not correct")
			return
		}
		result, err := h.serv.Reconcile(req.Context(), userId)
		if err != nil {
			h.fail(w, "ReconcileHandler", err)
			return
		}
		drifted := []models.Reconciliation{}
		if result.Drift != 0 {
			drifted = append(drifted, result)
		}
		writeJSON(w, http.StatusOK, ReconcileResponse{drifted})
		return
	}

	drifted, err := h.serv.ReconcileAll(req.Context(), h.workers)
	if err != nil {
		h.fail(w, "ReconcileHandler", err)
		return
	}
	if drifted == nil {
		drifted = []models.Reconciliation{}
	}
	writeJSON(w, http.StatusOK, ReconcileResponse{drifted})
}

func (h *LoyaltyHandler) CreateProductHandler(w http.ResponseWriter, req *http.Request) {
	in := models.Product{}
	if err := readJSON(req, &in); err != nil {
		writeError(w, http.StatusBadRequest, "Body is not correct")
		return
	}
	product, err := h.serv.CreateProduct(req.Context(), in)
	if err != nil {
		h.fail(w, "CreateProductHandler", err)
		return
	}
	writeJSON(w, http.StatusCreated, product)
}

func (h *LoyaltyHandler) AdjustStockHandler(w http.ResponseWriter, req *http.Request) {
	id, ok := pathID(w, req)
	if !ok {
		return
	}
	in := StockRequest{}
	if err := readJSON(req, &in); err != nil {
		writeError(w, http.StatusBadRequest, "Body is not correct")
		return
	}
	product, err := h.serv.AdjustStock(req.Context(), id, in.Delta)
	if err != nil {
		h.fail(w, "AdjustStockHandler", err)
		return
	}
	writeJSON(w, http.StatusOK, product)
}
