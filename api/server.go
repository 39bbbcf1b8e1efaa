package api

import (
	"sync"

	"github.com/stylelab/fitting-lab/fitting"
	"github.com/stylelab/fitting-lab/state"
	"github.com/stylelab/fitting-lab/utils"
	"github.com/stylelab/fitting-lab/wizard"
)

// Server bundles the application state with the wizard position and the
// fitting orchestrator. All handlers hang off it so there is exactly one
// owner of mutable state.
type Server struct {
	State  *state.State
	Images utils.ImageStore

	fitter *fitting.Orchestrator

	// The wizard has its own lock: its position is transient UI state, not
	// part of the persisted session.
	wizardMu sync.Mutex
	wizard   *wizard.Wizard
}

// NewServer starts the wizard at the first step.
func NewServer(st *state.State, generator fitting.Generator) *Server {
	images := utils.ImageStore{}
	return &Server{
		State:  st,
		Images: images,
		fitter: fitting.NewOrchestrator(generator, images, nil),
		wizard: wizard.New(),
	}
}
