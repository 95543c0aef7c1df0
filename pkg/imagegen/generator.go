package imagegen

import "context"

// Image is an encoded image and its MIME type.
type Image struct {
	Data     []byte
	MIMEType string
}

// Request is a single generation call.
type Request struct {
	Model       string
	Prompt      string // full prompt, see BuildPrompt
	Reference   *Image // optional input image
	AspectRatio string
	Resolution  Resolution
}

// Response holds the parts returned by the model, in order.
type Response struct {
	Texts  []string
	Images []Image
}

// Generator sends one generation request and returns its parts.
type Generator interface {
	Generate(ctx context.Context, req Request) (*Response, error)
}
