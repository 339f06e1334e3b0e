package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"star-barista/internal/domain"
	"star-barista/internal/menu"
	"star-barista/internal/service"
	"star-barista/internal/storage"
	"star-barista/internal/trends"
)

type Handler struct {
	Chat     service.ChatServiceInterface
	Catalog  *menu.Catalog
	Trends   trends.StoreInterface
	Receipts service.ReceiptRepository
}

func NewHandler(chatSvc service.ChatServiceInterface, catalog *menu.Catalog, trendsStore trends.StoreInterface, receipts service.ReceiptRepository) *Handler {
	return &Handler{
		Chat:     chatSvc,
		Catalog:  catalog,
		Trends:   trendsStore,
		Receipts: receipts,
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/sessions", h.startSession).Methods("POST")
	r.HandleFunc("/api/sessions/{id}", h.getSession).Methods("GET")
	r.HandleFunc("/api/sessions/{id}", h.resetSession).Methods("DELETE")
	r.HandleFunc("/api/sessions/{id}/messages", h.postMessage).Methods("POST")

	r.HandleFunc("/api/menu", h.getMenu).Methods("GET")
	r.HandleFunc("/api/trends/today", h.getTrendsToday).Methods("GET")
	r.HandleFunc("/api/orders/{id}/qrcode", h.getOrderQRCode).Methods("GET")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":    "healthy",
		"service":   "star-barista",
		"timestamp": time.Now().Format(time.RFC3339),
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func (h *Handler) startSession(w http.ResponseWriter, r *http.Request) {
	sess, err := h.Chat.StartSession(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	greeting := ""
	if len(sess.Messages) > 0 {
		greeting = sess.Messages[len(sess.Messages)-1].Content
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]string{
		"session_id": sess.ID,
		"reply":      greeting,
	})
}

func (h *Handler) postMessage(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Text   string `json:"text"`
		Source string `json:"source"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	// A failed transcription arrives as empty text: no input this turn.
	if payload.Text == "" {
		http.Error(w, "text is required", http.StatusBadRequest)
		return
	}

	resp, err := h.Chat.HandleMessage(r.Context(), mux.Vars(r)["id"], payload.Text, payload.Source)
	if err != nil {
		if errors.Is(err, storage.ErrSessionNotFound) {
			http.Error(w, "Session not found", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

func (h *Handler) getSession(w http.ResponseWriter, r *http.Request) {
	sess, err := h.Chat.GetSession(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		if errors.Is(err, storage.ErrSessionNotFound) {
			http.Error(w, "Session not found", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(sess)
}

func (h *Handler) resetSession(w http.ResponseWriter, r *http.Request) {
	if err := h.Chat.ResetSession(r.Context(), mux.Vars(r)["id"]); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) getMenu(w http.ResponseWriter, r *http.Request) {
	type menuSection struct {
		Category string            `json:"category"`
		Items    []domain.MenuItem `json:"items"`
	}
	var out []menuSection
	for _, cat := range h.Catalog.Categories() {
		out = append(out, menuSection{Category: cat.Name, Items: cat.Items})
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(out)
}

func (h *Handler) getTrendsToday(w http.ResponseWriter, r *http.Request) {
	if h.Trends == nil {
		http.Error(w, "trends unavailable", http.StatusServiceUnavailable)
		return
	}
	top, err := h.Trends.TopToday(r.Context(), 10)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(top)
}

func (h *Handler) getOrderQRCode(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid order id", http.StatusBadRequest)
		return
	}
	qr, err := h.Receipts.GetQRCode(id)
	if err != nil || len(qr) == 0 {
		http.Error(w, "QR code not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Write(qr)
}
