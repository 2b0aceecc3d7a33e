package cloudz

import (
	"net/http"

	models "github.com/clouddistrictclub/cloud-district-app/internal/models"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type RedeemRequest struct {
	TierID string `json:"tierId"`
}

func (h *LoyaltyHandler) account(w http.ResponseWriter, req *http.Request) (uuid.UUID, bool) {
	id, ok := AccountFromContext(req.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "not authenticated")
	}
	return id, ok
}

func pathID(w http.ResponseWriter, req *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(mux.Vars(req)["id"])
	if err != nil {
		writeError(w, http.StatusNotFound, "not found")
		return uuid.Nil, false
	}
	return id, true
}

// Регистрация счета, id берется из токена
func (h *LoyaltyHandler) RegisterHandler(w http.ResponseWriter, req *http.Request) {
	accountId, ok := h.account(w, req)
	if !ok {
		return
	}
	in := models.NewAccount{}
	if err := readJSON(req, &in); err != nil {
		writeError(w, http.StatusBadRequest, "Body is not correct")
		return
	}
	in.ID = &accountId
	account, err := h.serv.RegisterAccount(req.Context(), in)
	if err != nil {
		h.fail(w, "RegisterHandler", err)
		return
	}
	writeJSON(w, http.StatusCreated, account)
}

func (h *LoyaltyHandler) GetAccountHandler(w http.ResponseWriter, req *http.Request) {
	accountId, ok := h.account(w, req)
	if !ok {
		return
	}
	account, err := h.serv.GetAccount(req.Context(), accountId)
	if err != nil {
		h.fail(w, "GetAccountHandler", err)
		return
	}
	writeJSON(w, http.StatusOK, account)
}

// Каталог уровней
func (h *LoyaltyHandler) GetTiersHandler(w http.ResponseWriter, req *http.Request) {
	accountId, ok := h.account(w, req)
	if !ok {
		return
	}
	catalog, err := h.serv.GetTierCatalog(req.Context(), accountId)
	if err != nil {
		h.fail(w, "GetTiersHandler", err)
		return
	}
	writeJSON(w, http.StatusOK, catalog)
}

// Погашение уровня
func (h *LoyaltyHandler) RedeemHandler(w http.ResponseWriter, req *http.Request) {
	accountId, ok := h.account(w, req)
	if !ok {
		return
	}
	in := RedeemRequest{}
	if err := readJSON(req, &in); err != nil || in.TierID == "" {
		writeError(w, http.StatusBadRequest, "tierId is required")
		return
	}
	result, err := h.serv.RedeemTier(req.Context(), accountId, in.TierID)
	if err != nil {
		h.fail(w, "RedeemHandler", err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *LoyaltyHandler) GetRewardsHandler(w http.ResponseWriter, req *http.Request) {
	accountId, ok := h.account(w, req)
	if !ok {
		return
	}
	rewards, err := h.serv.ActiveRewards(req.Context(), accountId)
	if err != nil {
		h.fail(w, "GetRewardsHandler", err)
		return
	}
	writeJSON(w, http.StatusOK, rewards)
}

func (h *LoyaltyHandler) GetHistoryHandler(w http.ResponseWriter, req *http.Request) {
	accountId, ok := h.account(w, req)
	if !ok {
		return
	}
	history, err := h.serv.RedemptionHistory(req.Context(), accountId)
	if err != nil {
		h.fail(w, "GetHistoryHandler", err)
		return
	}
	writeJSON(w, http.StatusOK, history)
}

func (h *LoyaltyHandler) GetLedgerHandler(w http.ResponseWriter, req *http.Request) {
	accountId, ok := h.account(w, req)
	if !ok {
		return
	}
	entries, err := h.serv.GetLedger(req.Context(), accountId)
	if err != nil {
		h.fail(w, "GetLedgerHandler", err)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

func (h *LoyaltyHandler) GetStreakHandler(w http.ResponseWriter, req *http.Request) {
	accountId, ok := h.account(w, req)
	if !ok {
		return
	}
	streak, err := h.serv.GetStreak(req.Context(), accountId)
	if err != nil {
		h.fail(w, "GetStreakHandler", err)
		return
	}
	writeJSON(w, http.StatusOK, streak)
}

func (h *LoyaltyHandler) GetLeaderboardHandler(w http.ResponseWriter, req *http.Request) {
	accountId, ok := h.account(w, req)
	if !ok {
		return
	}
	board, err := h.serv.GetLeaderboard(req.Context(), accountId)
	if err != nil {
		h.fail(w, "GetLeaderboardHandler", err)
		return
	}
	writeJSON(w, http.StatusOK, board)
}

// Товары

func (h *LoyaltyHandler) ListProductsHandler(w http.ResponseWriter, req *http.Request) {
	products, err := h.serv.ListProducts(req.Context(), true)
	if err != nil {
		h.fail(w, "ListProductsHandler", err)
		return
	}
	writeJSON(w, http.StatusOK, products)
}

func (h *LoyaltyHandler) GetProductHandler(w http.ResponseWriter, req *http.Request) {
	id, ok := pathID(w, req)
	if !ok {
		return
	}
	product, err := h.serv.GetProduct(req.Context(), id)
	if err != nil {
		h.fail(w, "GetProductHandler", err)
		return
	}
	writeJSON(w, http.StatusOK, product)
}

// Заказы

func (h *LoyaltyHandler) CreateOrderHandler(w http.ResponseWriter, req *http.Request) {
	accountId, ok := h.account(w, req)
	if !ok {
		return
	}
	in := models.NewOrder{}
	if err := readJSON(req, &in); err != nil {
		writeError(w, http.StatusBadRequest, "Body is not correct")
		return
	}
	order, err := h.serv.CreateOrder(req.Context(), accountId, in)
	if err != nil {
		h.fail(w, "CreateOrderHandler", err)
		return
	}
	writeJSON(w, http.StatusCreated, order)
}

func (h *LoyaltyHandler) GetOrdersHandler(w http.ResponseWriter, req *http.Request) {
	accountId, ok := h.account(w, req)
	if !ok {
		return
	}
	orders, err := h.serv.GetOrders(req.Context(), accountId)
	if err != nil {
		h.fail(w, "GetOrdersHandler", err)
		return
	}
	writeJSON(w, http.StatusOK, orders)
}
