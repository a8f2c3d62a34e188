package locale

import (
	"embed"
	"fmt"
	"io/fs"
	"maps"
	"slices"
	"sync"
)

//go:embed data/*.xml
var data embed.FS

// Catalog is a set of locales searched with the same fallback chain as
// Patterns.
type Catalog struct {
	locales map[string]*Locale
}

func NewCatalog() *Catalog {
	c := Catalog{
		locales: make(map[string]*Locale),
	}
	return &c
}

var (
	builtinOnce sync.Once
	builtin     *Catalog
	builtinErr  error
)

// Builtin returns the catalog of the locales shipped with the package: English
// and the locales defined in the embedded data directory.
func Builtin() (*Catalog, error) {
	builtinOnce.Do(func() {
		builtin, builtinErr = loadBuiltin()
	})
	return builtin, builtinErr
}

func loadBuiltin() (*Catalog, error) {
	c := NewCatalog()
	c.Add(Default())

	files, err := fs.Glob(data, "data/*.xml")
	if err != nil {
		return nil, err
	}
	for _, f := range files {
		r, err := data.Open(f)
		if err != nil {
			return nil, err
		}
		loc, err := Load(r)
		r.Close()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", f, err)
		}
		c.Add(loc)
	}
	return c, nil
}

func (c *Catalog) Add(loc *Locale) {
	c.locales[loc.Name] = loc
}

// Get returns a copy of the locale registered for tag or for the closest
// parent of tag. The English locale is returned when only the root matches.
func (c *Catalog) Get(tag string) (*Locale, error) {
	for _, key := range Candidates(tag) {
		if loc, ok := c.locales[key]; ok {
			return loc.Clone(), nil
		}
	}
	if loc, ok := c.locales[English]; ok {
		return loc.Clone(), nil
	}
	return nil, fmt.Errorf("%w: %s", ErrNotFound, tag)
}

func (c *Catalog) Names() []string {
	return slices.Sorted(maps.Keys(c.locales))
}
