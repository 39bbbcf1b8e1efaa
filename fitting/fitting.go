// Package fitting turns a frozen selection session into a rendered result:
// one text-advice call and one image-composition call against the generative
// backend, each with its own static fallback. The orchestrator is an explicit
// request state machine; re-entry is refused while a request is in flight or
// when the session already carries a cached result.
package fitting

import (
	"context"
	"fmt"
	"sync"

	"github.com/stylelab/fitting-lab/models"
)

// Generator is the outbound generative backend, treated as an opaque
// request/response service.
type Generator interface {
	// GenerateAdvice returns a short natural-language styling critique.
	GenerateAdvice(ctx context.Context, prompt string) (string, error)
	// GenerateImage returns the composite image bytes for a prompt plus
	// reference images (face first, then wardrobe items).
	GenerateImage(ctx context.Context, prompt string, references [][]byte) ([]byte, error)
}

// ImageSink stores generated image bytes and returns a serveable reference.
type ImageSink interface {
	SaveImage(ctx context.Context, data []byte, contentType string) (string, error)
}

// Loader resolves an image reference (data URL, http URL or stored key) to
// raw bytes.
type Loader func(ctx context.Context, ref string) ([]byte, error)

// Phase of the request state machine.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseInFlight
	PhaseSucceeded
	PhaseFallback
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseInFlight:
		return "in-flight"
	case PhaseSucceeded:
		return "succeeded"
	case PhaseFallback:
		return "fallback"
	default:
		return "unknown"
	}
}

// ErrInFlight is returned when a fitting request is refused because one is
// already outstanding.
var ErrInFlight = fmt.Errorf("a fitting request is already in flight")

// Result is the rendered outcome. Advice and Image are never both empty:
// every failure path substitutes a fixed fallback.
type Result struct {
	Advice   string `json:"advice"`
	Image    string `json:"image"`
	Cached   bool   `json:"cached"`
	Fallback bool   `json:"fallback"`
}

// Orchestrator serializes fitting requests and applies the failure policy.
type Orchestrator struct {
	mu    sync.Mutex
	phase Phase

	generator Generator
	sink      ImageSink
	load      Loader
}

// NewOrchestrator starts idle.
func NewOrchestrator(g Generator, sink ImageSink, load Loader) *Orchestrator {
	if load == nil {
		load = LoadImage
	}
	return &Orchestrator{generator: g, sink: sink, load: load}
}

// Phase reports the current state machine phase.
func (o *Orchestrator) Phase() Phase {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.phase
}

// Run executes one fitting for the given session and its picked wardrobe
// items. If the session already has a cached result image the cached value is
// returned without issuing a request; if a request is in flight ErrInFlight
// is returned. Run never persists anything.
func (o *Orchestrator) Run(ctx context.Context, sel models.UserSelections, items []models.ExistingItem) (Result, error) {
	if sel.SavedResultImage != "" {
		return Result{Advice: CachedAdvice, Image: sel.SavedResultImage, Cached: true}, nil
	}

	o.mu.Lock()
	if o.phase == PhaseInFlight {
		o.mu.Unlock()
		return Result{}, ErrInFlight
	}
	o.phase = PhaseInFlight
	o.mu.Unlock()

	result := o.execute(ctx, sel, items)

	o.mu.Lock()
	if result.Fallback {
		o.phase = PhaseFallback
	} else {
		o.phase = PhaseSucceeded
	}
	o.mu.Unlock()

	return result, nil
}

func (o *Orchestrator) execute(ctx context.Context, sel models.UserSelections, items []models.ExistingItem) Result {
	var result Result

	advice, err := o.generator.GenerateAdvice(ctx, BuildAdvicePrompt(sel, items))
	if err != nil || advice == "" {
		result.Advice = FallbackAdvice
		result.Fallback = true
	} else {
		result.Advice = advice
	}

	image, err := o.composeImage(ctx, sel, items)
	if err != nil {
		result.Image = PlaceholderImage
		result.Fallback = true
	} else {
		result.Image = image
	}

	return result
}

// composeImage gathers the reference images, calls the backend and stores the
// generated bytes. Unloadable references are skipped rather than failing the
// whole request.
func (o *Orchestrator) composeImage(ctx context.Context, sel models.UserSelections, items []models.ExistingItem) (string, error) {
	var references [][]byte
	if sel.FaceImage != "" {
		if data, err := o.load(ctx, sel.FaceImage); err == nil {
			references = append(references, data)
		}
	}
	for _, item := range items {
		if item.Image == "" {
			continue
		}
		if data, err := o.load(ctx, item.Image); err == nil {
			references = append(references, data)
		}
	}

	data, err := o.generator.GenerateImage(ctx, BuildImagePrompt(sel, items), references)
	if err != nil {
		return "", err
	}
	if len(data) == 0 {
		return "", fmt.Errorf("empty image response")
	}

	ref, err := o.sink.SaveImage(ctx, data, "image/png")
	if err != nil {
		return "", fmt.Errorf("failed to store generated image: %w", err)
	}
	return ref, nil
}
