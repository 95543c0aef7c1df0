// Package catalog defines the phases a phase diagram can be rendered for.
//
// A [Catalog] is an ordered list of [Phase] values. The built-in catalog
// returned by [Default] covers the six SDLC phases of the AI-SDLC article
// series; [LoadTOML] reads a replacement catalog with the same shape from
// disk.
//
// Catalogs are validated when constructed and are read-only afterwards.
package catalog

import (
	"fmt"
	"slices"

	"github.com/smartsdlc/blogimages/pkg/diagram/icons"
	"github.com/smartsdlc/blogimages/pkg/errors"
)

// All is the pseudo phase name that selects every phase in a catalog.
const All = "all"

// UseCase is one block in the bottom row of a diagram.
type UseCase struct {
	Title       string `toml:"title"`
	Description string `toml:"description"`
	Icon        string `toml:"icon"` // key into the icon library
}

// Phase is the content of a single diagram.
type Phase struct {
	Name string `toml:"name"`

	// Prefix orders batch output files, e.g. "21" for 21-specify-phase.svg.
	Prefix string `toml:"prefix"`

	// FrameworkSubtitle and ConnectionLabel use "\n" to separate lines.
	FrameworkSubtitle string `toml:"framework_subtitle"`
	ConnectionLabel   string `toml:"connection_label"`

	UseCases []UseCase `toml:"use_case"`
}

// Filename returns the batch output filename for p.
// Phases without a prefix get a bare "{name}-phase.svg".
func (p Phase) Filename() string {
	if p.Prefix == "" {
		return p.Name + "-phase.svg"
	}
	return fmt.Sprintf("%s-%s-phase.svg", p.Prefix, p.Name)
}

func (p Phase) clone() Phase {
	p.UseCases = slices.Clone(p.UseCases)
	return p
}

// Catalog is an ordered, validated set of phases.
type Catalog struct {
	phases []Phase
	byName map[string]int
}

// New validates phases and returns a catalog that keeps their order.
//
// Every phase needs a valid name, at least one use case and a unique name
// and prefix. Use cases need a title and an icon the library knows.
func New(phases []Phase) (*Catalog, error) {
	if len(phases) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidCatalog, "catalog has no phases")
	}

	c := &Catalog{
		phases: make([]Phase, 0, len(phases)),
		byName: make(map[string]int, len(phases)),
	}
	prefixes := make(map[string]string, len(phases))

	for i, p := range phases {
		if err := validatePhase(p); err != nil {
			return nil, errors.New(errors.GetCode(err), "phase %d (%s): %s", i+1, p.Name, errors.UserMessage(err))
		}
		if _, dup := c.byName[p.Name]; dup {
			return nil, errors.New(errors.ErrCodeInvalidCatalog, "duplicate phase name: %s", p.Name)
		}
		if p.Prefix != "" {
			if other, dup := prefixes[p.Prefix]; dup {
				return nil, errors.New(errors.ErrCodeInvalidCatalog,
					"phases %s and %s share prefix %s", other, p.Name, p.Prefix)
			}
			prefixes[p.Prefix] = p.Name
		}

		c.byName[p.Name] = len(c.phases)
		c.phases = append(c.phases, p.clone())
	}
	return c, nil
}

func validatePhase(p Phase) error {
	if err := errors.ValidatePhaseName(p.Name); err != nil {
		return err
	}
	if p.Name == All {
		return errors.New(errors.ErrCodeInvalidName, "phase name %q is reserved", All)
	}
	if p.Prefix != "" {
		if err := errors.ValidatePrefix(p.Prefix); err != nil {
			return err
		}
	}
	if len(p.UseCases) == 0 {
		return errors.New(errors.ErrCodeEmptyPhase, "no use cases")
	}
	for j, uc := range p.UseCases {
		if uc.Title == "" {
			return errors.New(errors.ErrCodeInvalidCatalog, "use case %d has no title", j+1)
		}
		if !icons.Has(uc.Icon) {
			return errors.New(errors.ErrCodeUnknownIcon, "use case %q: unknown icon %q", uc.Title, uc.Icon)
		}
	}
	return nil
}

// Lookup returns the phase called name.
func (c *Catalog) Lookup(name string) (Phase, error) {
	i, ok := c.byName[name]
	if !ok {
		return Phase{}, errors.New(errors.ErrCodeUnknownPhase, "unknown phase: %s (choose from %v or %s)", name, c.Names(), All)
	}
	return c.phases[i].clone(), nil
}

// Phases returns the phases in catalog order.
func (c *Catalog) Phases() []Phase {
	out := make([]Phase, len(c.phases))
	for i, p := range c.phases {
		out[i] = p.clone()
	}
	return out
}

// Names returns the phase names in catalog order.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.phases))
	for i, p := range c.phases {
		names[i] = p.Name
	}
	return names
}

// Len returns the number of phases.
func (c *Catalog) Len() int { return len(c.phases) }
