package order

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/kasonde/distrohub-backend/internal/modules/pricing"
	"github.com/kasonde/distrohub-backend/internal/modules/stock"
)

// Handler exposes order HTTP endpoints.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Route("/api/v1/orders", func(r chi.Router) {
		r.Post("/", h.placeOrder)                     // POST   /api/v1/orders
		r.Get("/{id}", h.getOrder)                    // GET    /api/v1/orders/{id}
		r.Get("/number/{number}", h.getOrderByNumber) // GET    /api/v1/orders/number/{number}
		r.Patch("/{id}/status", h.updateStatus)       // PATCH  /api/v1/orders/{id}/status
		r.Delete("/{id}", h.cancelOrder)              // DELETE /api/v1/orders/{id}
		r.Get("/firm/{firm_id}", h.listFirmOrders)    // GET    /api/v1/orders/firm/{firm_id}?status=PENDING
	})
}

// errorBody is the structured error payload: kind and product id let the
// caller highlight the offending line instead of failing the whole form.
type errorBody struct {
	Error     string `json:"error"`
	Kind      string `json:"kind"`
	ProductID string `json:"product_id,omitempty"`
}

// errorKinds maps sentinel errors to a stable machine-readable kind and an
// HTTP status.
var errorKinds = []struct {
	err    error
	kind   string
	status int
}{
	{ErrEmptyOrder, "InvalidInput", http.StatusBadRequest},
	{ErrInvalidQuantity, "InvalidInput", http.StatusBadRequest},
	{ErrMissingAddress, "InvalidInput", http.StatusBadRequest},
	{ErrBuyerNotFound, "BuyerNotFound", http.StatusNotFound},
	{ErrBuyerInactive, "BuyerInactive", http.StatusUnprocessableEntity},
	{ErrProductNotFound, "ProductNotFound", http.StatusUnprocessableEntity},
	{ErrProductInactive, "ProductInactive", http.StatusUnprocessableEntity},
	{pricing.ErrInvalidBuyerClass, "InvalidBuyerClass", http.StatusUnprocessableEntity},
	{pricing.ErrPriceUnavailable, "PriceUnavailable", http.StatusUnprocessableEntity},
	{pricing.ErrInvalidDiscount, "InvalidDiscount", http.StatusUnprocessableEntity},
	{stock.ErrInsufficientStock, "InsufficientStock", http.StatusConflict},
	{ErrPersistenceFailure, "PersistenceFailure", http.StatusInternalServerError},
}

func (h *Handler) placeOrder(w http.ResponseWriter, r *http.Request) {
	var req PlaceOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, errorBody{Error: err.Error(), Kind: "InvalidInput"})
		return
	}
	o, err := h.service.PlaceOrder(r.Context(), req)
	if err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusCreated, o)
}

func respondError(w http.ResponseWriter, err error) {
	body := errorBody{Error: err.Error(), Kind: "Internal"}
	status := http.StatusInternalServerError

	for _, ek := range errorKinds {
		if errors.Is(err, ek.err) {
			body.Kind = ek.kind
			status = ek.status
			break
		}
	}
	if body.Kind == "Internal" && strings.Contains(err.Error(), "invalid") {
		body.Kind = "InvalidInput"
		status = http.StatusBadRequest
	}

	var lineErr *LineError
	if errors.As(err, &lineErr) {
		body.ProductID = lineErr.ProductID.String()
	}
	var insuff *stock.InsufficientStockError
	if errors.As(err, &insuff) {
		body.ProductID = insuff.ProductID.String()
	}
	respond(w, status, body)
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	o, err := h.service.GetOrder(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respond(w, http.StatusNotFound, errorBody{Error: err.Error(), Kind: "OrderNotFound"})
		return
	}
	respond(w, http.StatusOK, o)
}

func (h *Handler) getOrderByNumber(w http.ResponseWriter, r *http.Request) {
	o, err := h.service.GetOrderByNumber(r.Context(), chi.URLParam(r, "number"))
	if err != nil {
		respond(w, http.StatusNotFound, errorBody{Error: err.Error(), Kind: "OrderNotFound"})
		return
	}
	respond(w, http.StatusOK, o)
}

func (h *Handler) updateStatus(w http.ResponseWriter, r *http.Request) {
	var req UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, errorBody{Error: err.Error(), Kind: "InvalidInput"})
		return
	}
	o, err := h.service.UpdateStatus(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		code := http.StatusInternalServerError
		kind := "Internal"
		if strings.Contains(err.Error(), "cannot transition") {
			code = http.StatusUnprocessableEntity
			kind = "InvalidTransition"
		} else if strings.Contains(err.Error(), "not found") {
			code = http.StatusNotFound
			kind = "OrderNotFound"
		}
		respond(w, code, errorBody{Error: err.Error(), Kind: kind})
		return
	}
	respond(w, http.StatusOK, o)
}

func (h *Handler) cancelOrder(w http.ResponseWriter, r *http.Request) {
	if err := h.service.CancelOrder(r.Context(), chi.URLParam(r, "id")); err != nil {
		code := http.StatusInternalServerError
		kind := "Internal"
		if strings.Contains(err.Error(), "only PENDING") {
			code = http.StatusUnprocessableEntity
			kind = "InvalidTransition"
		} else if strings.Contains(err.Error(), "not found") {
			code = http.StatusNotFound
			kind = "OrderNotFound"
		}
		respond(w, code, errorBody{Error: err.Error(), Kind: kind})
		return
	}
	respond(w, http.StatusOK, map[string]string{"status": "order cancelled"})
}

func (h *Handler) listFirmOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.service.ListFirmOrders(r.Context(), chi.URLParam(r, "firm_id"), r.URL.Query().Get("status"))
	if err != nil {
		respond(w, http.StatusInternalServerError, errorBody{Error: err.Error(), Kind: "Internal"})
		return
	}
	respond(w, http.StatusOK, orders)
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
