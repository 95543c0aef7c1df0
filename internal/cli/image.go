package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/smartsdlc/blogimages/pkg/config"
	"github.com/smartsdlc/blogimages/pkg/imagegen"
)

// imageOpts holds the command-line flags for blogimage.
type imageOpts struct {
	prompt      string
	filename    string
	inputImage  string
	resolution  string
	aspectRatio string
	style       string
	apiKey      string
	model       string
	configPath  string
}

// ImageCommand returns the root command of the blogimage tool.
func (c *CLI) ImageCommand() *cobra.Command {
	var opts imageOpts

	cmd := c.newRoot(
		"blogimage",
		"Generate blog images with the Gemini image model",
		`blogimage generates diagrams and cover images in the smartsdlc.dev design style.

The prompt is combined with the blog's design guidelines and a style preset,
then sent to Gemini in a single request. The API key comes from --api-key or
GEMINI_API_KEY (a .env file in the working directory is read first).

  blogimage --prompt "Layered architecture of a RAG service" --filename public/blog/images/rag.png --style architecture
  blogimage --prompt "Make the arrows teal" --input-image rag.png --filename rag-v2.png`,
	)
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(opts.configPath)
		if err != nil {
			return err
		}
		c.applyLogLevel(cfg.LogLevel)

		flags := cmd.Flags()
		if !flags.Changed("model") {
			opts.model = cfg.Model
		}
		if !flags.Changed("resolution") {
			opts.resolution = cfg.Resolution
		}
		if !flags.Changed("aspect-ratio") {
			opts.aspectRatio = cfg.AspectRatio
		}
		if !flags.Changed("style") {
			opts.style = cfg.Style
		}
		return c.runImage(cmd, opts, cfg.APIKey)
	}

	f := cmd.Flags()
	f.StringVar(&opts.prompt, "prompt", "", "image description or editing instructions")
	f.StringVar(&opts.filename, "filename", "", "output file (e.g. diagram-name.png) or directory for a timestamped name")
	f.StringVar(&opts.inputImage, "input-image", "", "reference image for editing mode")
	f.StringVar(&opts.resolution, "resolution", string(imagegen.DefaultResolution), "output resolution: 1K, 2K or 4K")
	f.StringVar(&opts.aspectRatio, "aspect-ratio", imagegen.DefaultAspectRatio, "aspect ratio of the generated image")
	f.StringVar(&opts.style, "style", string(imagegen.DefaultStyle), "style preset: diagram, cover, flowchart, architecture or custom")
	f.StringVar(&opts.apiKey, "api-key", "", "Gemini API key (or set "+imagegen.APIKeyEnv+")")
	f.StringVar(&opts.model, "model", imagegen.DefaultModel, "Gemini model")
	f.StringVar(&opts.configPath, "config", "", "config file (default "+config.DefaultFile+" if present)")

	_ = cmd.MarkFlagRequired("prompt")
	_ = cmd.MarkFlagRequired("filename")
	_ = cmd.MarkFlagFilename("input-image", "png", "jpg", "jpeg", "webp", "gif")

	return cmd
}

func (c *CLI) runImage(cmd *cobra.Command, opts imageOpts, envKey string) error {
	style, err := imagegen.ParseStyle(opts.style)
	if err != nil {
		return err
	}
	resolution, err := imagegen.ParseResolution(opts.resolution)
	if err != nil {
		return err
	}

	// Resolve the key before anything can reach the network.
	key, err := imagegen.ResolveAPIKey(opts.apiKey, envKey)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	gen, err := c.NewGenerator(ctx, key)
	if err != nil {
		return err
	}

	prog := newProgress(c.Logger)
	path, err := imagegen.Run(ctx, gen, imagegen.Job{
		Prompt:      opts.prompt,
		Filename:    opts.filename,
		InputImage:  opts.inputImage,
		Model:       opts.model,
		Style:       style,
		Resolution:  resolution,
		AspectRatio: opts.aspectRatio,
	}, c.Logger)
	if err != nil {
		return err
	}
	prog.done("Generated image")

	fmt.Fprintln(c.Out, "Image saved to:", path)
	return nil
}
