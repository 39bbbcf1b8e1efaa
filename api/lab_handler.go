package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/stylelab/fitting-lab/catalog"
	"github.com/stylelab/fitting-lab/models"
	"github.com/stylelab/fitting-lab/utils"
	"github.com/stylelab/fitting-lab/wizard"
)

// labState is the wizard view returned by every lab endpoint: where the user
// is, what can be picked there, and the live session.
type labState struct {
	StepIndex int                   `json:"stepIndex"`
	StepCount int                   `json:"stepCount"`
	Step      string                `json:"step"`
	Facet     string                `json:"facet"`
	Facets    []string              `json:"facets"`
	Options   interface{}           `json:"options"`
	Session   models.UserSelections `json:"session"`
}

func (s *Server) currentLabState() labState {
	step := s.wizard.Step()

	// Multi-select steps have their own option sources: the user's wardrobe
	// or the fixed accessory category table.
	var options interface{} = s.wizard.FilteredOptions()
	switch step {
	case wizard.StepWardrobe:
		options = s.State.Wardrobe()
	case wizard.StepAccessories:
		options = catalog.AccessoryCategories
	}

	return labState{
		StepIndex: s.wizard.Index(),
		StepCount: wizard.StepCount(),
		Step:      step.String(),
		Facet:     s.wizard.Facet(),
		Facets:    s.wizard.Facets(),
		Options:   options,
		Session:   s.State.Session(),
	}
}

// LabStateHandler returns the current wizard position and options.
func (s *Server) LabStateHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		utils.RespondError(w, nil, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	s.wizardMu.Lock()
	state := s.currentLabState()
	s.wizardMu.Unlock()
	utils.RespondJSON(w, http.StatusOK, state)
}

// SelectOptionHandler records a selection on the active step. Single-select
// steps replace the previous choice; multi-select steps toggle with bounded
// eviction.
func (s *Server) SelectOptionHandler(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	defer func() {
		fmt.Println(logMessageBuilder.String())
	}()
	utils.AddToLogMessage(&logMessageBuilder, "[Lab Select API]")

	if r.Method != http.MethodPost {
		utils.RespondError(w, &logMessageBuilder, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req struct {
		OptionID string `json:"option_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.OptionID == "" {
		utils.RespondError(w, &logMessageBuilder, "option_id is required", http.StatusBadRequest)
		return
	}

	s.wizardMu.Lock()
	defer s.wizardMu.Unlock()

	// Ownership is resolved before entering the session mutation: the state
	// lock is not reentrant, so the mutation callback must not call back into
	// State accessors.
	owned := make(map[string]bool)
	for _, item := range s.State.Wardrobe() {
		owned[item.ID] = true
	}

	var applyErr error
	s.State.UpdateSession(r.Context(), func(sel *models.UserSelections) {
		applyErr = s.wizard.Apply(sel, req.OptionID, func(id string) bool {
			return owned[id]
		})
	})
	if applyErr != nil {
		utils.RespondError(w, &logMessageBuilder, applyErr.Error(), http.StatusBadRequest)
		return
	}

	utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Selected %s on step %s", req.OptionID, s.wizard.Step()))
	utils.RespondJSON(w, http.StatusOK, s.currentLabState())
}

// NavigateHandler moves the wizard: next, prev, or a direct jump to any step.
// Moving never discards selections made on other steps; it only resets the
// sub-category facet to show-all. "next" from the last step reports
// completion instead of moving.
func (s *Server) NavigateHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		utils.RespondError(w, nil, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req struct {
		Action string `json:"action"`
		Index  int    `json:"index"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, nil, "Invalid request body", http.StatusBadRequest)
		return
	}

	s.wizardMu.Lock()
	defer s.wizardMu.Unlock()

	done := false
	switch req.Action {
	case "next":
		done = s.wizard.Next()
	case "prev":
		s.wizard.Prev()
	case "jump":
		if err := s.wizard.Jump(req.Index); err != nil {
			utils.RespondError(w, nil, err.Error(), http.StatusBadRequest)
			return
		}
	default:
		utils.RespondError(w, nil, "action must be next, prev or jump", http.StatusBadRequest)
		return
	}

	state := s.currentLabState()
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"done": done,
		"lab":  state,
	})
}

// SetFacetHandler narrows the active catalog step to one sub-category.
func (s *Server) SetFacetHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		utils.RespondError(w, nil, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req struct {
		Facet string `json:"facet"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, nil, "Invalid request body", http.StatusBadRequest)
		return
	}

	s.wizardMu.Lock()
	s.wizard.SetFacet(req.Facet)
	state := s.currentLabState()
	s.wizardMu.Unlock()
	utils.RespondJSON(w, http.StatusOK, state)
}

// ClearWardrobePicksHandler empties the wardrobe multi-select.
func (s *Server) ClearWardrobePicksHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		utils.RespondError(w, nil, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	session := s.State.UpdateSession(r.Context(), func(sel *models.UserSelections) {
		sel.ClearWardrobePicks()
	})
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{"session": session})
}
