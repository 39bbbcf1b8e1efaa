package api

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/stylelab/fitting-lab/models"
	"github.com/stylelab/fitting-lab/utils"
)

// WardrobeHandler lists owned items (GET), registers a new upload (POST) or
// deletes one item by id (DELETE).
func (s *Server) WardrobeHandler(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.listWardrobe(w, r)
	case http.MethodPost:
		s.addWardrobeItem(w, r)
	case http.MethodDelete:
		s.deleteWardrobeItem(w, r)
	default:
		utils.RespondError(w, nil, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (s *Server) listWardrobe(w http.ResponseWriter, r *http.Request) {
	items := s.State.Wardrobe()
	if items == nil {
		items = []models.ExistingItem{}
	}
	resolved := make([]models.ExistingItem, len(items))
	for i, item := range items {
		item.Image = utils.ResolveImageRef(r.Context(), item.Image)
		resolved[i] = item
	}
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{"items": resolved})
}

func (s *Server) addWardrobeItem(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	defer func() {
		fmt.Println(logMessageBuilder.String())
	}()
	utils.AddToLogMessage(&logMessageBuilder, "[Add Wardrobe Item API]")

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		utils.RespondError(w, &logMessageBuilder, "Error parsing form data", http.StatusBadRequest)
		return
	}

	category := r.FormValue("category")
	if !models.ValidCategory(category) {
		utils.RespondError(w, &logMessageBuilder,
			fmt.Sprintf("category must be one of %s", strings.Join(models.WardrobeCategories(), "/")),
			http.StatusBadRequest)
		return
	}

	// An item without an image cannot participate in fitting; the UI disables
	// the save control, the API rejects outright.
	files := r.MultipartForm.File["image"]
	if len(files) == 0 {
		utils.RespondError(w, &logMessageBuilder, "An item image is required", http.StatusBadRequest)
		return
	}
	imageRef, err := s.Images.SaveUpload(r.Context(), files[0])
	if err != nil {
		utils.RespondError(w, &logMessageBuilder, fmt.Sprintf("Error saving item image: %v", err), http.StatusInternalServerError)
		return
	}

	item := models.ExistingItem{
		Name:        r.FormValue("name"),
		Category:    category,
		Description: r.FormValue("description"),
		Image:       imageRef,
	}

	saved, err := s.State.AddWardrobeItem(r.Context(), item)
	if err != nil {
		utils.RespondError(w, &logMessageBuilder, fmt.Sprintf("Error saving item: %v", err), http.StatusInternalServerError)
		return
	}

	utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Item added: %s (%s)", saved.ID, saved.Category))
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Item added to wardrobe",
		"item":    saved,
	})
}

func (s *Server) deleteWardrobeItem(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		utils.RespondError(w, nil, "id query parameter is required", http.StatusBadRequest)
		return
	}

	if err := s.State.DeleteWardrobeItem(r.Context(), id); err != nil {
		utils.RespondError(w, nil, fmt.Sprintf("Error deleting item: %v", err), http.StatusInternalServerError)
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]string{"message": "Item deleted"})
}
