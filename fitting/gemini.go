package fitting

import (
	"context"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/stylelab/fitting-lab/config"
)

// GeminiGenerator talks to the Gemini API. A client is created per call and
// closed when done; the heavy image call runs under whatever deadline the
// caller sets.
type GeminiGenerator struct{}

func (GeminiGenerator) newClient(ctx context.Context) (*genai.Client, error) {
	if config.GeminiAPIKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is not set")
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(config.GeminiAPIKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %v", err)
	}
	return client, nil
}

// GenerateAdvice runs the text model and returns the first text part.
func (g GeminiGenerator) GenerateAdvice(ctx context.Context, prompt string) (string, error) {
	client, err := g.newClient(ctx)
	if err != nil {
		return "", err
	}
	defer client.Close()

	model := client.GenerativeModel(config.AdviceModel)
	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("failed to generate advice: %v", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("no content generated")
	}
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			return string(text), nil
		}
	}
	return "", fmt.Errorf("no text part in response")
}

// GenerateImage runs the image model with the prompt plus reference images
// and returns the first inline image payload.
func (g GeminiGenerator) GenerateImage(ctx context.Context, prompt string, references [][]byte) ([]byte, error) {
	client, err := g.newClient(ctx)
	if err != nil {
		return nil, err
	}
	defer client.Close()

	parts := []genai.Part{genai.Text(prompt)}
	for _, ref := range references {
		parts = append(parts, genai.ImageData("jpeg", ref))
	}

	model := client.GenerativeModel(config.ImageModel)
	resp, err := model.GenerateContent(ctx, parts...)
	if err != nil {
		return nil, fmt.Errorf("failed to generate image: %v", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, fmt.Errorf("no content generated")
	}
	for _, part := range resp.Candidates[0].Content.Parts {
		if blob, ok := part.(genai.Blob); ok {
			return blob.Data, nil
		}
	}
	return nil, fmt.Errorf("no image part in response")
}
