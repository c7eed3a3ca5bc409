package gateway

import (
	"context"
	"fmt"
	"strings"

	"github.com/reusedev/scribe-hub/internal/modules/logs"
	"google.golang.org/genai"
)

// Client is the immutable handle to the generative model selected at
// startup. One synchronous call per request, no caller-side retry.
type Client struct {
	client *genai.Client
	model  string
}

// New builds the Gemini client and walks the candidate list, keeping the
// first model the API resolves. The caller treats an error as fatal.
func New(ctx context.Context, apiKey string, candidates []string) (*Client, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		Backend: genai.BackendGeminiAPI,
		APIKey:  apiKey,
	})
	if err != nil {
		return nil, err
	}
	logAvailableModels(ctx, client)
	for _, name := range candidates {
		if _, err := client.Models.Get(ctx, name, &genai.GetModelConfig{}); err != nil {
			logs.Logger.Debug().Err(err).Str("model", name).Msg("model candidate unavailable")
			continue
		}
		logs.Logger.Info().Str("model", name).Msg("selected model")
		return &Client{client: client, model: name}, nil
	}
	return nil, fmt.Errorf("no working model among candidates %s", strings.Join(candidates, ", "))
}

func (c *Client) Model() string {
	return c.model
}

// GenerateText runs a text-only prompt and returns the concatenated
// response text.
func (c *Client) GenerateText(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), nil)
	if err != nil {
		return "", err
	}
	return resp.Text(), nil
}

// GenerateVision runs a prompt plus one inline image.
func (c *Client) GenerateVision(ctx context.Context, prompt string, image []byte, mimeType string) (string, error) {
	content := genai.NewContentFromParts([]*genai.Part{
		genai.NewPartFromText(prompt),
		genai.NewPartFromBytes(image, mimeType),
	}, genai.RoleUser)
	resp, err := c.client.Models.GenerateContent(ctx, c.model, []*genai.Content{content}, nil)
	if err != nil {
		return "", err
	}
	return resp.Text(), nil
}

func logAvailableModels(ctx context.Context, client *genai.Client) {
	page, err := client.Models.List(ctx, &genai.ListModelsConfig{PageSize: 100})
	if err != nil {
		logs.Logger.Warn().Err(err).Msg("could not list models")
		return
	}
	for _, m := range page.Items {
		for _, action := range m.SupportedActions {
			if action == "generateContent" {
				logs.Logger.Debug().Str("model", m.Name).Msg("available model")
				break
			}
		}
	}
}
