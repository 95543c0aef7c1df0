package imagegen

import (
	"context"
	"net/http"

	"google.golang.org/genai"

	"github.com/smartsdlc/blogimages/pkg/buildinfo"
	"github.com/smartsdlc/blogimages/pkg/errors"
)

// defaultMIMEType is assumed for inline data without a type.
const defaultMIMEType = "image/png"

// GeminiClient generates images through the Gemini API.
type GeminiClient struct {
	client *genai.Client
}

// NewGeminiClient creates a client for the Gemini developer API.
// Creating the client does not contact the API.
func NewGeminiClient(ctx context.Context, apiKey string) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, errors.New(errors.ErrCodeMissingCredential, "gemini client requires an API key")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
		HTTPOptions: genai.HTTPOptions{
			Headers: http.Header{"User-Agent": []string{buildinfo.UserAgent("blogimage")}},
		},
	})
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeNetwork, err, "create gemini client")
	}
	return &GeminiClient{client: client}, nil
}

// Generate sends req as one GenerateContent call.
func (g *GeminiClient) Generate(ctx context.Context, req Request) (*Response, error) {
	var parts []*genai.Part
	if req.Reference != nil {
		parts = append(parts, genai.NewPartFromBytes(req.Reference.Data, req.Reference.MIMEType))
	}
	parts = append(parts, genai.NewPartFromText(req.Prompt))

	contents := []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}
	config := &genai.GenerateContentConfig{
		ResponseModalities: []string{"TEXT", "IMAGE"},
		ImageConfig: &genai.ImageConfig{
			AspectRatio: req.AspectRatio,
			ImageSize:   string(req.Resolution),
		},
	}

	resp, err := g.client.Models.GenerateContent(ctx, req.Model, contents, config)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, errors.Wrap(errors.ErrCodeNetwork, err, "generate content with %s", req.Model)
	}
	return convertResponse(resp), nil
}

func convertResponse(resp *genai.GenerateContentResponse) *Response {
	out := &Response{}
	if resp == nil {
		return out
	}
	for _, cand := range resp.Candidates {
		if cand == nil || cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			switch {
			case part == nil:
			case part.InlineData != nil:
				mime := part.InlineData.MIMEType
				if mime == "" {
					mime = defaultMIMEType
				}
				out.Images = append(out.Images, Image{Data: part.InlineData.Data, MIMEType: mime})
			case part.Text != "":
				out.Texts = append(out.Texts, part.Text)
			}
		}
	}
	return out
}
