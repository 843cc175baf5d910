package catalog

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/ipdledger/internal/catalog"
	"github.com/MrJamesThe3rd/ipdledger/internal/http/response"
)

type Handler struct {
	catalog *catalog.Catalog
}

func NewHandler(c *catalog.Catalog) *Handler {
	return &Handler{catalog: c}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Get("/price", h.price)
}

type itemResponse struct {
	Name      string `json:"name"`
	Category  string `json:"category"`
	UnitPrice int64  `json:"unit_price"`
}

func toResponse(it catalog.Item) itemResponse {
	return itemResponse{Name: it.Name, Category: it.Category, UnitPrice: it.UnitPrice}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	category := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("category")))

	items := h.catalog.List()
	resp := make([]itemResponse, 0, len(items))

	for _, it := range items {
		if category != "" && it.Category != category {
			continue
		}

		resp = append(resp, toResponse(it))
	}

	response.JSON(w, http.StatusOK, resp)
}

func (h *Handler) price(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if strings.TrimSpace(name) == "" {
		http.Error(w, "name is required", http.StatusBadRequest)
		return
	}

	it, err := h.catalog.Lookup(name)
	if err != nil {
		response.Error(w, err)
		return
	}

	response.JSON(w, http.StatusOK, toResponse(it))
}
