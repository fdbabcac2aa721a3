package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/npillmayer/charclass/catalog"
	schuko "github.com/npillmayer/schuko/tracing"
)

// Config is the content of a configuration file, e.g.
//
//	trace = "info"
//
//	[catalog]
//	general-categories = true
//	properties = true
//	scripts = false
//	ucd-files = [ "ucd/DerivedCoreProperties.txt" ]
type Config struct {
	Trace   string        `toml:"trace"`
	Catalog CatalogConfig `toml:"catalog"`
}

// CatalogConfig selects the named classes available for rendering.
type CatalogConfig struct {
	GeneralCategories bool     `toml:"general-categories"`
	Properties        bool     `toml:"properties"`
	Scripts           bool     `toml:"scripts"`
	UCDFiles          []string `toml:"ucd-files"`
}

func defaultConfig() Config {
	return Config{
		Trace: "error",
		Catalog: CatalogConfig{
			GeneralCategories: true,
			Properties:        true,
			Scripts:           true,
		},
	}
}

// loadConfig reads a TOML configuration file. Settings missing from the
// file keep their default values.
func loadConfig(path string) (Config, error) {
	conf := defaultConfig()
	md, err := toml.DecodeFile(path, &conf)
	if err != nil {
		return conf, fmt.Errorf("config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return conf, fmt.Errorf("config %s: unknown key %q", path, undecoded[0].String())
	}
	if _, err = traceLevel(conf.Trace); err != nil {
		return conf, fmt.Errorf("config %s: %w", path, err)
	}
	return conf, nil
}

func traceLevel(name string) (schuko.TraceLevel, error) {
	switch strings.ToLower(name) {
	case "", "error":
		return schuko.LevelError, nil
	case "info":
		return schuko.LevelInfo, nil
	case "debug":
		return schuko.LevelDebug, nil
	}
	return schuko.LevelError, fmt.Errorf("unknown trace level %q", name)
}

// build creates the catalog. Without extra UCD files and with every table
// selected, this is the shared default catalog.
func (cc CatalogConfig) build() (*catalog.Catalog, error) {
	opts := catalog.Options{
		GeneralCategories: cc.GeneralCategories,
		Properties:        cc.Properties,
		Scripts:           cc.Scripts,
	}
	if opts == catalog.AllClasses && len(cc.UCDFiles) == 0 {
		return catalog.Default(), nil
	}
	c := catalog.New(opts)
	for _, path := range cc.UCDFiles {
		if err := loadUCDFile(c, path); err != nil {
			return nil, err
		}
	}
	c.Freeze()
	return c, nil
}

func loadUCDFile(c *catalog.Catalog, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if err = c.LoadUCD(f); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	T().Infof("loaded UCD file %s", path)
	return nil
}
