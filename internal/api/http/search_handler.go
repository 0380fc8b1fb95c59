package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/RupeshP0713/roomrent-backend/internal/service"
)

type SearchHandler struct {
	searchService service.SearchService
}

func NewSearchHandler(searchService service.SearchService) *SearchHandler {
	return &SearchHandler{searchService: searchService}
}

func (h *SearchHandler) SearchByNumber(w http.ResponseWriter, r *http.Request) {
	number := mux.Vars(r)["number"]

	result, err := h.searchService.SearchByNumber(r.Context(), number)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}
