package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/stylelab/fitting-lab/models"
	"github.com/stylelab/fitting-lab/utils"
)

// ArchiveResponse is the paginated archive listing.
type ArchiveResponse struct {
	Outfits     []models.SavedOutfit `json:"outfits"`
	Total       int                  `json:"total"`
	CurrentPage int                  `json:"current_page"`
	TotalPages  int                  `json:"total_pages"`
}

// ArchiveHandler lists saved outfits newest-first (GET) or commits the
// current session with its rendered image as a new entry (POST).
func (s *Server) ArchiveHandler(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.listArchive(w, r)
	case http.MethodPost:
		s.appendArchive(w, r)
	default:
		utils.RespondError(w, nil, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (s *Server) listArchive(w http.ResponseWriter, r *http.Request) {
	page := 1
	limit := 10
	if p, err := strconv.Atoi(r.URL.Query().Get("page")); err == nil && p > 0 {
		page = p
	}
	if l, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && l > 0 {
		limit = l
	}

	all := s.State.Archive()
	total := len(all)
	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	outfits := make([]models.SavedOutfit, 0, end-start)
	for _, o := range all[start:end] {
		o.Image = utils.ResolveImageRef(r.Context(), o.Image)
		outfits = append(outfits, o)
	}

	totalPages := 0
	if total > 0 {
		totalPages = (total + limit - 1) / limit
	}

	utils.RespondJSON(w, http.StatusOK, ArchiveResponse{
		Outfits:     outfits,
		Total:       total,
		CurrentPage: page,
		TotalPages:  totalPages,
	})
}

func (s *Server) appendArchive(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	defer func() {
		fmt.Println(logMessageBuilder.String())
	}()
	utils.AddToLogMessage(&logMessageBuilder, "[Archive Save API]")

	var req struct {
		Image string `json:"image"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Image == "" {
		utils.RespondError(w, &logMessageBuilder, "image is required", http.StatusBadRequest)
		return
	}

	outfit, err := s.State.AppendArchive(r.Context(), req.Image)
	if err != nil {
		utils.RespondError(w, &logMessageBuilder, fmt.Sprintf("Error saving outfit: %v", err), http.StatusInternalServerError)
		return
	}

	utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Outfit archived: %s", outfit.ID))
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Outfit saved to archive",
		"outfit":  outfit,
	})
}

// ArchiveItemHandler retrieves one archived outfit with its frozen
// selections, for re-entering the result view. Pure lookup.
func (s *Server) ArchiveItemHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		utils.RespondError(w, nil, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	id := r.URL.Query().Get("id")
	if id == "" {
		utils.RespondError(w, nil, "id query parameter is required", http.StatusBadRequest)
		return
	}

	outfit, ok := s.State.ArchiveItem(id)
	if !ok {
		utils.RespondError(w, nil, "Outfit not found", http.StatusNotFound)
		return
	}

	outfit.Image = utils.ResolveImageRef(r.Context(), outfit.Image)
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{"outfit": outfit})
}
