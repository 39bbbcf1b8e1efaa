package api

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/stylelab/fitting-lab/fitting"
	"github.com/stylelab/fitting-lab/models"
	"github.com/stylelab/fitting-lab/recommend"
	"github.com/stylelab/fitting-lab/utils"
)

// FittingHandler runs one fitting for the current session: the advice call,
// the composite-image call and the synthesized recommendations. Nothing is
// persisted here; the result only reaches the archive when the user commits
// it explicitly.
func (s *Server) FittingHandler(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	defer func() {
		fmt.Println(logMessageBuilder.String())
	}()
	utils.AddToLogMessage(&logMessageBuilder, "[Fitting API]")

	if r.Method != http.MethodPost {
		utils.RespondError(w, &logMessageBuilder, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	session := s.State.Session()
	items := s.pickedItems(session)
	utils.AddToLogMessage(&logMessageBuilder,
		fmt.Sprintf("Fitting request: profile=%s, items=%d", session.ProfileID, len(items)))

	if userID, err := GetUserIDFromContext(r.Context()); err == nil {
		utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Requested by user %s", userID))
	}

	// The generative call is slow; give it its own generous deadline instead
	// of inheriting the request context.
	fittingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	result, err := s.fitter.Run(fittingCtx, session, items)
	if err != nil {
		utils.RespondError(w, &logMessageBuilder, err.Error(), http.StatusConflict)
		return
	}

	if result.Fallback {
		utils.AddToLogMessage(&logMessageBuilder, "Fitting settled with fallback content")
	} else {
		utils.AddToLogMessage(&logMessageBuilder, "Fitting generated successfully")
	}

	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"advice":          result.Advice,
		"image":           utils.ResolveImageRef(r.Context(), result.Image),
		"image_ref":       result.Image,
		"cached":          result.Cached,
		"fallback":        result.Fallback,
		"phase":           s.fitter.Phase().String(),
		"worn_items":      items,
		"recommendations": recommend.Synthesize(session),
	})
}

// RecommendationsHandler re-synthesizes the shopping list for the current
// session without touching the generative backend.
func (s *Server) RecommendationsHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		utils.RespondError(w, nil, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"recommendations": recommend.Synthesize(s.State.Session()),
	})
}

// pickedItems resolves the session's wardrobe picks to items, skipping ids
// whose item has since been deleted.
func (s *Server) pickedItems(session models.UserSelections) []models.ExistingItem {
	var items []models.ExistingItem
	for _, id := range session.OldClothes {
		if item, ok := s.State.WardrobeItem(id); ok {
			items = append(items, item)
		}
	}
	return items
}

// ensure the orchestrator interface stays satisfied by the utils image store
var _ fitting.ImageSink = utils.ImageStore{}
