package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/smartsdlc/blogimages/pkg/config"
	"github.com/smartsdlc/blogimages/pkg/diagram/catalog"
	"github.com/smartsdlc/blogimages/pkg/pipeline"
)

// phaseOpts holds the command-line flags for phasediagram.
type phaseOpts struct {
	phase       string // catalog phase name or "all"
	output      string // single-phase output path
	outputDir   string // batch output directory
	catalogPath string // TOML catalog replacing the built-in one
	configPath  string // explicit config file
	measureText bool   // wrap by glyph width instead of characters
	png         bool   // also write a PNG next to each SVG
	list        bool   // print the catalog and exit
}

// PhaseCommand returns the root command of the phasediagram tool.
func (c *CLI) PhaseCommand() *cobra.Command {
	opts := phaseOpts{
		phase:     pipeline.DefaultPhase,
		outputDir: pipeline.DefaultOutputDir,
	}

	cmd := c.newRoot(
		"phasediagram",
		"Generate SDLC phase diagram SVGs",
		`phasediagram renders the AI-SDLC phase diagrams used on the blog: an AI framework block feeding one block per use case.

Render one phase to its default path, or every phase into a directory:

  phasediagram --phase design
  phasediagram --phase all --output-dir public/blog/images/ai-sdlc`,
	)
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(opts.configPath)
		if err != nil {
			return err
		}
		c.applyLogLevel(cfg.LogLevel)

		if !cmd.Flags().Changed("output-dir") && cfg.DiagramDir != "" {
			opts.outputDir = cfg.DiagramDir
		}
		if !cmd.Flags().Changed("catalog") {
			opts.catalogPath = cfg.Catalog
		}
		return c.runPhase(cmd, opts)
	}

	f := cmd.Flags()
	f.StringVar(&opts.phase, "phase", opts.phase, `phase to render, or "all"`)
	f.StringVarP(&opts.output, "output", "o", "", "output file path (single phase; default "+pipeline.DefaultPath("{phase}")+")")
	f.StringVar(&opts.outputDir, "output-dir", opts.outputDir, "output directory (all phases)")
	f.StringVar(&opts.catalogPath, "catalog", "", "TOML file replacing the built-in phase catalog")
	f.StringVar(&opts.configPath, "config", "", "config file (default "+config.DefaultFile+" if present)")
	f.BoolVar(&opts.measureText, "measure-text", false, "wrap descriptions by measured glyph width")
	f.BoolVar(&opts.png, "png", false, "also write a 2x PNG next to each SVG (requires rsvg-convert)")
	f.BoolVar(&opts.list, "list", false, "list catalog phases and exit")

	return cmd
}

func (c *CLI) runPhase(cmd *cobra.Command, opts phaseOpts) error {
	cat, err := c.loadCatalog(opts.catalogPath)
	if err != nil {
		return err
	}
	if opts.list {
		c.printCatalog(cat)
		return nil
	}

	popts := pipeline.Options{MeasureText: opts.measureText}
	if opts.png {
		popts.Formats = []string{pipeline.FormatSVG, pipeline.FormatPNG}
	}
	runner, err := pipeline.NewRunner(cat, popts, c.Logger)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	prog := newProgress(c.Logger)

	if opts.phase == catalog.All {
		if opts.output != "" {
			c.printWarning("--output is ignored with --phase all; writing to %s", opts.outputDir)
		}
		paths, err := runner.RenderAll(ctx, opts.outputDir)
		c.printGenerated(paths)
		if err != nil {
			return err
		}
		prog.done(fmt.Sprintf("Rendered %d phases", cat.Len()))
		return nil
	}

	path := opts.output
	if path == "" {
		path = pipeline.PhasePath(opts.outputDir, opts.phase)
	}
	paths, err := runner.RenderPhase(ctx, opts.phase, path)
	c.printGenerated(paths)
	if err != nil {
		return err
	}
	prog.done("Rendered " + opts.phase)
	return nil
}

func (c *CLI) loadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		return catalog.Default(), nil
	}
	cat, err := catalog.LoadTOML(path)
	if err != nil {
		return nil, err
	}
	c.Logger.Debug("loaded catalog", "path", path, "phases", cat.Len())
	return cat, nil
}

func (c *CLI) printGenerated(paths []string) {
	for _, p := range paths {
		c.printSuccess("Generated: %s", p)
	}
}

func (c *CLI) printCatalog(cat *catalog.Catalog) {
	c.printTitle("Phases")
	for _, p := range cat.Phases() {
		c.printKeyValue(p.Name, p.Filename())
		for _, uc := range p.UseCases {
			c.printDetail("%s (%s)", uc.Title, uc.Icon)
		}
	}
}
