package catalog

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/smartsdlc/blogimages/pkg/errors"
)

// file is the on-disk catalog shape:
//
//	[[phase]]
//	name = "specify"
//	prefix = "21"
//	framework_subtitle = "Intelligent Methodology &\nPattern Recognition"
//	connection_label = "Provides Methodology\nTemplates & Patterns"
//
//	  [[phase.use_case]]
//	  title = "Task Writing"
//	  description = "Generates structured requirements..."
//	  icon = "task_writing"
type file struct {
	Phases []Phase `toml:"phase"`
}

// Parse decodes a TOML catalog and validates it with [New].
func Parse(data []byte) (*Catalog, error) {
	var f file
	md, err := toml.Decode(string(data), &f)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidCatalog, err, "parse catalog")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, errors.New(errors.ErrCodeInvalidCatalog, "unknown catalog key: %s", undecoded[0])
	}
	return New(f.Phases)
}

// LoadTOML reads and parses the catalog file at path.
func LoadTOML(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "catalog file %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeIO, err, "read catalog %s", path)
	}
	return Parse(data)
}
