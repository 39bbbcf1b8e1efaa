// Package wizard drives the ordered five-step selection flow: hairstyle,
// makeup, wardrobe mixing, accessories, scene. Steps are a closed enum; each
// carries its own selection kind (single-select from a catalog, or bounded
// multi-select) and mutates only its own slice of the session.
package wizard

import (
	"fmt"

	"github.com/stylelab/fitting-lab/catalog"
	"github.com/stylelab/fitting-lab/models"
)

// Step identifies one wizard step.
type Step int

const (
	StepHairstyle Step = iota
	StepMakeup
	StepWardrobe
	StepAccessories
	StepScene

	stepCount
)

// Labels match the original step names.
var stepLabels = [stepCount]string{"发型", "妆容", "衣橱混搭", "配饰方案", "场景"}

func (s Step) String() string {
	if s < 0 || s >= stepCount {
		return "unknown"
	}
	return stepLabels[s]
}

// Kind is the selection behavior of a step.
type Kind int

const (
	// SingleSelect replaces the previous choice with the new one.
	SingleSelect Kind = iota
	// BoundedMultiSelect toggles entries, evicting the oldest past the cap.
	BoundedMultiSelect
)

// Kind returns the selection behavior of the step.
func (s Step) Kind() Kind {
	switch s {
	case StepWardrobe, StepAccessories:
		return BoundedMultiSelect
	default:
		return SingleSelect
	}
}

// Options returns the catalog backing a single-select step. Multi-select
// steps (wardrobe, accessories) have no style catalog and return nil.
func (s Step) Options() []catalog.StyleOption {
	switch s {
	case StepHairstyle:
		return catalog.Hairstyles
	case StepMakeup:
		return catalog.Makeups
	case StepScene:
		return catalog.Scenes
	default:
		return nil
	}
}

// Wizard tracks the current position and the active sub-category facet.
// Selections themselves live in the session; the wizard only decides which
// slice of it a select operation may touch.
type Wizard struct {
	index int
	facet string
}

// New starts at the first step with the show-all facet.
func New() *Wizard {
	return &Wizard{facet: catalog.FilterAll}
}

// Index returns the current step index.
func (w *Wizard) Index() int { return w.index }

// Step returns the current step.
func (w *Wizard) Step() Step { return Step(w.index) }

// Facet returns the active sub-category filter.
func (w *Wizard) Facet() string { return w.facet }

// SetFacet narrows the current catalog step to one sub-category.
func (w *Wizard) SetFacet(facet string) {
	if facet == "" {
		facet = catalog.FilterAll
	}
	w.facet = facet
}

// FilteredOptions returns the current step's catalog narrowed by the active
// facet.
func (w *Wizard) FilteredOptions() []catalog.StyleOption {
	return catalog.Filter(w.Step().Options(), w.facet)
}

// Facets lists the sub-category facets available on the current step.
func (w *Wizard) Facets() []string {
	opts := w.Step().Options()
	if opts == nil {
		return []string{catalog.FilterAll}
	}
	return catalog.SubCategories(opts)
}

// Next advances one step. From the last step it reports completion instead
// of moving. Any move resets the facet to show-all.
func (w *Wizard) Next() (done bool) {
	if w.index >= int(stepCount)-1 {
		return true
	}
	w.index++
	w.facet = catalog.FilterAll
	return false
}

// Prev steps backward, if possible. Resets the facet to show-all.
func (w *Wizard) Prev() {
	if w.index > 0 {
		w.index--
		w.facet = catalog.FilterAll
	}
}

// Jump moves directly to any step, breaking strict linearity the way the
// step indicator does. Resets the facet to show-all.
func (w *Wizard) Jump(index int) error {
	if index < 0 || index >= int(stepCount) {
		return fmt.Errorf("step index %d out of range", index)
	}
	w.index = index
	w.facet = catalog.FilterAll
	return nil
}

// Apply records a selection on the current step. ownsItem reports whether a
// wardrobe item id exists in the user's wardrobe; it is only consulted on the
// wardrobe step. Only the active step's slice of the session is mutated.
func (w *Wizard) Apply(sel *models.UserSelections, optionID string, ownsItem func(string) bool) error {
	switch w.Step() {
	case StepHairstyle:
		if catalog.HairstyleByID(optionID) == nil {
			return fmt.Errorf("unknown hairstyle %s", optionID)
		}
		sel.Hairstyle = optionID
	case StepMakeup:
		if catalog.MakeupByID(optionID) == nil {
			return fmt.Errorf("unknown makeup %s", optionID)
		}
		sel.Makeup = optionID
	case StepScene:
		if catalog.SceneByID(optionID) == nil {
			return fmt.Errorf("unknown scene %s", optionID)
		}
		sel.Scene = optionID
	case StepAccessories:
		if catalog.AccessoryCategoryByID(optionID) == nil {
			return fmt.Errorf("unknown accessory category %s", optionID)
		}
		sel.ToggleAccessoryCategory(optionID)
	case StepWardrobe:
		if ownsItem == nil || !ownsItem(optionID) {
			return fmt.Errorf("wardrobe item %s not found", optionID)
		}
		sel.ToggleWardrobeItem(optionID)
	default:
		return fmt.Errorf("invalid step %d", w.index)
	}
	return nil
}

// StepCount is the number of wizard steps.
func StepCount() int { return int(stepCount) }
