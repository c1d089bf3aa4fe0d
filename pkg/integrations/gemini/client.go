package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/matzehuels/cardstudio/pkg/card"
	"github.com/matzehuels/cardstudio/pkg/errors"
)

// DefaultModel is the generation model used when none is configured.
const DefaultModel = "gemini-2.5-flash"

// Client talks to the Gemini API to generate card content from a free-text
// company description. Responses are schema-constrained JSON matching
// [card.GeneratedContent].
type Client struct {
	client *genai.Client
	model  string
}

// New creates a Client. The API key is required; without it no request is
// ever issued and the error carries [errors.ErrCodeMissingAPIKey]. An empty
// model falls back to [DefaultModel].
func New(ctx context.Context, apiKey, model string) (*Client, error) {
	if apiKey == "" {
		return nil, errors.New(errors.ErrCodeMissingAPIKey,
			"no Gemini API key configured (set GEMINI_API_KEY or gemini_api_key in the config file)")
	}
	if model == "" {
		model = DefaultModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeGenerationFailed, err, "create Gemini client")
	}
	return &Client{client: client, model: model}, nil
}

// responseSchema constrains the model output to the flat content payload.
// List sizes (6-8 services, 6-9 partners) are expectations stated in the
// descriptions, not enforced.
func responseSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"companyNameCN": {
				Type:        genai.TypeString,
				Description: "Company name in Chinese (short, 2-4 chars per line if stacked)",
			},
			"companyNameEN": {
				Type:        genai.TypeString,
				Description: "Company name in English (uppercase)",
			},
			"tagline": {
				Type:        genai.TypeString,
				Description: "A catchy, philosophical tagline in Chinese",
			},
			"services": {
				Type:        genai.TypeArray,
				Items:       &genai.Schema{Type: genai.TypeString},
				Description: "List of 6-8 core professional services offered",
			},
			"partners": {
				Type:        genai.TypeArray,
				Items:       &genai.Schema{Type: genai.TypeString},
				Description: "List of 6-9 reputable partner organization names",
			},
			"email": {
				Type:        genai.TypeString,
				Description: "Professional contact email",
			},
		},
		Required: []string{"companyNameCN", "companyNameEN", "tagline", "services", "partners", "email"},
	}
}

// Generate requests card content for the described company. It performs a
// single request: no retry, no caching. Any failure (network, quota,
// unparseable response) is returned as a coded error and the caller keeps
// its current card untouched.
func (c *Client) Generate(ctx context.Context, description string) (card.GeneratedContent, error) {
	prompt := fmt.Sprintf(`Generate business card content for a company described as: %q.
The tone should be professional, innovative, and concise.
Return JSON data matching the schema.`, description)

	resp, err := c.client.Models.GenerateContent(ctx, c.model,
		genai.Text(prompt),
		&genai.GenerateContentConfig{
			ResponseMIMEType: "application/json",
			ResponseSchema:   responseSchema(),
		},
	)
	if err != nil {
		return card.GeneratedContent{}, errors.Wrap(errors.ErrCodeGenerationFailed, err, "generate card content")
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return card.GeneratedContent{}, errors.New(errors.ErrCodeParseFailed, "empty response from model")
	}

	var content card.GeneratedContent
	if err := json.Unmarshal([]byte(text), &content); err != nil {
		return card.GeneratedContent{}, errors.Wrap(errors.ErrCodeParseFailed, err, "decode generated content")
	}
	return content, nil
}
