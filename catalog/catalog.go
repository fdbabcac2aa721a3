package catalog

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"sync"
	"unicode"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/emirpasic/gods/utils"
	"github.com/npillmayer/charclass/internal/ucdparse"
	"github.com/npillmayer/charclass/rangeset"
)

// Pair is a closed range of code-points, the unit of catalog keys.
type Pair struct {
	Lo, Hi rune
}

func (p Pair) compare(q Pair) int {
	switch {
	case p.Lo != q.Lo:
		return utils.IntComparator(int(p.Lo), int(q.Lo))
	case p.Hi != q.Hi:
		return utils.IntComparator(int(p.Hi), int(q.Hi))
	}
	return 0
}

// Pairs converts the ranges of a set to a plain list of code-point pairs.
func Pairs(s rangeset.Set) []Pair {
	pairs := make([]Pair, s.Len())
	for i := range pairs {
		r := s.Range(i)
		pairs[i] = Pair{Lo: r.Min.Rune(), Hi: r.Max.Rune()}
	}
	return pairs
}

// comparePairLists orders keys first by the number of ranges, then by range
// content.
func comparePairLists(a, b interface{}) int {
	pa, pb := a.([]Pair), b.([]Pair)
	if len(pa) != len(pb) {
		return utils.IntComparator(len(pa), len(pb))
	}
	for i := range pa {
		if c := pa[i].compare(pb[i]); c != 0 {
			return c
		}
	}
	return 0
}

func equalPairs(a, b []Pair) bool {
	return comparePairLists(a, b) == 0
}

// Options select the Unicode tables a catalog is built from.
type Options struct {
	GeneralCategories bool // unicode.Categories, e.g. Lu, Nd, L
	Properties        bool // unicode.Properties, e.g. ASCII_Hex_Digit
	Scripts           bool // unicode.Scripts, e.g. Greek
}

// AllClasses selects every table; this is what the default catalog uses.
var AllClasses = Options{GeneralCategories: true, Properties: true, Scripts: true}

// ErrFrozen is returned when trying to add classes to a frozen catalog.
var ErrFrozen = errors.New("catalog is frozen")

// Catalog is a collection of named classes, keyed by exact range content.
//
// A catalog is not safe for concurrent modification. Once populated, it may
// be read concurrently.
type Catalog struct {
	classes *treemap.Map             // []Pair → name
	byName  map[string]rangeset.Set // name → set, for reverse lookup
	frozen  bool
}

// New creates a catalog from the compiled-in Unicode tables selected by opts.
// Tables are registered in the order general categories, properties, scripts,
// each sorted by name. If two classes share the same range list, the first
// one registered wins.
func New(opts Options) *Catalog {
	c := &Catalog{
		classes: treemap.NewWith(comparePairLists),
		byName:  make(map[string]rangeset.Set),
	}
	if opts.GeneralCategories {
		c.addTables(unicode.Categories)
	}
	if opts.Properties {
		c.addTables(unicode.Properties)
	}
	if opts.Scripts {
		c.addTables(unicode.Scripts)
	}
	T().Debugf("catalog built with %d classes", c.Len())
	return c
}

func (c *Catalog) addTables(tables map[string]*unicode.RangeTable) {
	names := make([]string, 0, len(tables))
	for name := range tables {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		_ = c.Add(name, rangeset.FromRangeTable(tables[name]))
	}
}

// Add registers a named class. Empty sets are ignored, as are sets whose
// range list is already registered under a different name. Add returns
// ErrFrozen for frozen catalogs.
func (c *Catalog) Add(name string, s rangeset.Set) error {
	if c.frozen {
		return ErrFrozen
	}
	if s.IsEmpty() {
		T().Debugf("catalog: class %s is empty", name)
		return nil
	}
	key := Pairs(s)
	if other, found := c.classes.Get(key); found {
		T().Debugf("catalog: class %s shadowed by %s", name, other)
		return nil
	}
	c.classes.Put(key, name)
	if _, exists := c.byName[name]; !exists {
		c.byName[name] = s
	}
	return nil
}

// LoadUCD adds classes from a UCD property file, such as PropList.txt or
// Scripts.txt. The first field of each data line names the class; all
// ranges for a name are collected before the class is registered.
// Surrogate code-points are dropped.
func (c *Catalog) LoadUCD(r io.Reader) error {
	if c.frozen {
		return ErrFrozen
	}
	tables := make(map[string]*unicode.RangeTable)
	var order []string
	err := ucdparse.Parse(r, func(token *ucdparse.Token) {
		name := token.Field(1)
		if name == "" {
			return
		}
		rt, ok := tables[name]
		if !ok {
			rt = &unicode.RangeTable{}
			tables[name] = rt
			order = append(order, name)
		}
		from, to := token.Range()
		rt.R32 = append(rt.R32, unicode.Range32{Lo: uint32(from), Hi: uint32(to), Stride: 1})
	})
	if err != nil {
		return fmt.Errorf("catalog: loading UCD file: %w", err)
	}
	for _, name := range order {
		if err = c.Add(name, rangeset.FromRangeTable(tables[name])); err != nil {
			return err
		}
	}
	T().Infof("catalog: loaded %d classes from UCD file", len(order))
	return nil
}

// Lookup finds the name of the class with exactly the given ranges.
func (c *Catalog) Lookup(pairs []Pair) (string, bool) {
	name, found := c.classes.Get(pairs)
	if !found {
		return "", false
	}
	return name.(string), true
}

// Class returns the set registered for name.
func (c *Catalog) Class(name string) (rangeset.Set, bool) {
	s, ok := c.byName[name]
	return s, ok
}

// Len returns the number of classes in the catalog.
func (c *Catalog) Len() int {
	return c.classes.Size()
}

// Freeze prevents further modification of c.
func (c *Catalog) Freeze() {
	c.frozen = true
}

var defaultCatalog *Catalog
var setupOnce sync.Once

// SetupCatalog is the top-level preparation function:
// Create the default catalog from all compiled-in Unicode tables.
// (Concurrency-safe).
func SetupCatalog() {
	setupOnce.Do(func() {
		defaultCatalog = New(AllClasses)
		defaultCatalog.Freeze()
		T().Infof("default catalog set up with %d classes", defaultCatalog.Len())
	})
}

// Default returns the frozen default catalog, setting it up if necessary.
func Default() *Catalog {
	SetupCatalog()
	return defaultCatalog
}
