package api

import (
	"net/http"
	"strings"

	"github.com/stylelab/fitting-lab/catalog"
	"github.com/stylelab/fitting-lab/utils"
)

// CatalogHandler serves the static reference tables. The path decides which
// catalog; style catalogs accept a ?filter= sub-category facet.
func (s *Server) CatalogHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		utils.RespondError(w, nil, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	name := strings.TrimPrefix(r.URL.Path, "/catalog/")
	facet := r.URL.Query().Get("filter")

	switch name {
	case "hairstyles":
		respondStyleCatalog(w, catalog.Hairstyles, facet)
	case "makeups":
		respondStyleCatalog(w, catalog.Makeups, facet)
	case "scenes":
		respondStyleCatalog(w, catalog.Scenes, facet)
	case "accessories":
		utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
			"options": catalog.AccessoryCategories,
		})
	case "preferences":
		utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
			"styles":   catalog.StyleOptions,
			"palettes": catalog.PaletteOptions,
			"budgets":  catalog.BudgetOptions,
			"stores":   catalog.DefaultStores,
		})
	default:
		utils.RespondError(w, nil, "Unknown catalog", http.StatusNotFound)
	}
}

func respondStyleCatalog(w http.ResponseWriter, options []catalog.StyleOption, facet string) {
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"options": catalog.Filter(options, facet),
		"facets":  catalog.SubCategories(options),
	})
}

// LookbookHandler serves the inspiration feed.
func (s *Server) LookbookHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		utils.RespondError(w, nil, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{"items": catalog.LookbookItems})
}
