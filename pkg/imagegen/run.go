package imagegen

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/smartsdlc/blogimages/pkg/errors"
)

// Job describes one image to generate.
type Job struct {
	Prompt      string
	Filename    string
	InputImage  string // optional reference image path
	Model       string
	Style       Style
	Resolution  Resolution
	AspectRatio string

	// Now stamps images saved without a file name. Zero means time.Now.
	Now time.Time
}

func (j *Job) setDefaults() {
	if j.Model == "" {
		j.Model = DefaultModel
	}
	if j.Style == "" {
		j.Style = DefaultStyle
	}
	if j.Resolution == "" {
		j.Resolution = DefaultResolution
	}
	if j.AspectRatio == "" {
		j.AspectRatio = DefaultAspectRatio
	}
	if j.Now.IsZero() {
		j.Now = time.Now()
	}
}

// Run generates the image described by job with g and saves it.
// Text parts of the response are logged. It returns the absolute path of the
// saved image, or a NO_IMAGE error if the response carried none.
func Run(ctx context.Context, g Generator, job Job, logger *log.Logger) (string, error) {
	job.setDefaults()
	if strings.TrimSpace(job.Prompt) == "" {
		return "", errors.New(errors.ErrCodeInvalidInput, "prompt cannot be empty")
	}

	if logger == nil {
		logger = log.Default()
	}
	logger = logger.With("request", uuid.NewString())

	req := Request{
		Model:       job.Model,
		Prompt:      BuildPrompt(job.Prompt, job.Style),
		AspectRatio: job.AspectRatio,
		Resolution:  job.Resolution,
	}
	if job.InputImage != "" {
		ref, err := LoadReference(job.InputImage)
		if err != nil {
			return "", err
		}
		req.Reference = ref
		logger.Debug("attached reference image", "path", job.InputImage, "bytes", len(ref.Data))
	}

	logger.Debug("generating image",
		"model", req.Model,
		"style", job.Style,
		"resolution", req.Resolution,
		"aspect_ratio", req.AspectRatio)

	start := time.Now()
	resp, err := g.Generate(ctx, req)
	if err != nil {
		return "", err
	}
	logger.Debug("model responded", "texts", len(resp.Texts), "images", len(resp.Images), "duration", time.Since(start))

	for _, text := range resp.Texts {
		logger.Info(text)
	}

	if len(resp.Images) == 0 {
		return "", errors.New(errors.ErrCodeNoImage, "no image was generated in the response")
	}
	img := resp.Images[0]
	return Save(img, OutputPath(job.Filename, img, job.Now))
}
