package cloudz

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	config "github.com/clouddistrictclub/cloud-district-app/internal/config"
	interf "github.com/clouddistrictclub/cloud-district-app/internal/interfaces"
	models "github.com/clouddistrictclub/cloud-district-app/internal/models"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

type LoyaltyHandler struct {
	router  *mux.Router
	serv    interf.LoyaltyAPI
	logger  *zap.Logger
	workers int
}

type ErrorResponse struct {
	Detail string `json:"detail"`
}

func NewHandler(serv interf.LoyaltyAPI, cfg config.Config, logger *zap.Logger) *LoyaltyHandler {
	router := mux.NewRouter()
	handler := &LoyaltyHandler{router, serv, logger, cfg.Workers.Reconcile}
	auth := NewAuthenticator(cfg.Server.JWTSecret, logger)
	limiter := NewRateLimiter(cfg.Server.RedeemRate, cfg.Server.RedeemBurst)

	router.Use(MiddlewareLog())
	router.HandleFunc("/health", handler.HealthHandler).Methods(http.MethodGet)
	router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	api := router.PathPrefix("/api").Subrouter()
	api.Use(auth.Middleware)
	api.HandleFunc("/accounts", handler.RegisterHandler).Methods(http.MethodPost)
	api.HandleFunc("/accounts/me", handler.GetAccountHandler).Methods(http.MethodGet)
	api.HandleFunc("/loyalty/tiers", handler.GetTiersHandler).Methods(http.MethodGet)
	api.Handle("/loyalty/redeem", limiter.Middleware(http.HandlerFunc(handler.RedeemHandler))).Methods(http.MethodPost)
	api.HandleFunc("/loyalty/rewards", handler.GetRewardsHandler).Methods(http.MethodGet)
	api.HandleFunc("/loyalty/history", handler.GetHistoryHandler).Methods(http.MethodGet)
	api.HandleFunc("/loyalty/ledger", handler.GetLedgerHandler).Methods(http.MethodGet)
	api.HandleFunc("/loyalty/streak", handler.GetStreakHandler).Methods(http.MethodGet)
	api.HandleFunc("/leaderboard", handler.GetLeaderboardHandler).Methods(http.MethodGet)
	api.HandleFunc("/products", handler.ListProductsHandler).Methods(http.MethodGet)
	api.HandleFunc("/products/{id}", handler.GetProductHandler).Methods(http.MethodGet)
	api.HandleFunc("/orders", handler.CreateOrderHandler).Methods(http.MethodPost)
	api.HandleFunc("/orders", handler.GetOrdersHandler).Methods(http.MethodGet)

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(RequireAdmin)
	admin.HandleFunc("/orders/{id}/status", handler.UpdateOrderStatusHandler).Methods(http.MethodPatch)
	admin.HandleFunc("/ledger", handler.AdminLedgerHandler).Methods(http.MethodGet)
	admin.HandleFunc("/accounts/{id}/balance", handler.SetBalanceHandler).Methods(http.MethodPut)
	admin.HandleFunc("/reconcile", handler.ReconcileHandler).Methods(http.MethodPost)
	admin.HandleFunc("/products", handler.CreateProductHandler).Methods(http.MethodPost)
	admin.HandleFunc("/products/{id}/stock", handler.AdjustStockHandler).Methods(http.MethodPatch)

	return handler
}

func (h *LoyaltyHandler) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	h.router.ServeHTTP(w, req)
}

func (h *LoyaltyHandler) Log(msg string, service string, err error) {
	h.logger.Error(msg,
		zap.String("service", service),
		zap.Error(err),
	)
}

func (h *LoyaltyHandler) HealthHandler(w http.ResponseWriter, req *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// код ответа по ошибке сервиса
func statusOf(err error) int {
	switch {
	case errors.Is(err, models.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, models.ErrDuplicateAccount):
		return http.StatusConflict
	case errors.Is(err, models.ErrInsufficientBalance),
		errors.Is(err, models.ErrDuplicateActiveReward),
		errors.Is(err, models.ErrInvalidReward),
		errors.Is(err, models.ErrInvalidReferralCode),
		errors.Is(err, models.ErrInsufficientStock),
		errors.Is(err, models.ErrInvalidAmount),
		errors.Is(err, models.ErrInvalidStatus),
		errors.Is(err, models.ErrInvalidOrder),
		errors.Is(err, models.ErrInvalidAccount),
		errors.Is(err, models.ErrInvalidProduct),
		errors.Is(err, models.ErrDuplicateLedgerKey):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func (h *LoyaltyHandler) fail(w http.ResponseWriter, service string, err error) {
	code := statusOf(err)
	if code == http.StatusInternalServerError {
		h.Log("Service error", service, err)
		writeJSON(w, code, ErrorResponse{"internal server error"})
		return
	}
	writeJSON(w, code, ErrorResponse{err.Error()})
}

func writeError(w http.ResponseWriter, code int, detail string) {
	writeJSON(w, code, ErrorResponse{detail})
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	j, err := json.Marshal(v)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(j)
}

func readJSON(req *http.Request, v any) error {
	body, err := io.ReadAll(req.Body)
	if err != nil {
		return err
	}
	defer req.Body.Close()
	return json.Unmarshal(body, v)
}
