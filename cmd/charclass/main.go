/*
Command charclass prints the canonical regular expression character class
for a set of code-point ranges.

Usage:

	charclass [flags] RANGE...

Every RANGE is given in Unicode Character Database notation, either a single
code-point "0041" or a range "0030..0039". Multiple ranges are united.

	$ charclass 0030..0039 0041..0046 0061..0066
	\p{ASCII_Hex_Digit}
	$ charclass -count 0061..007A
	[a-z]
	26

Flags:

	-config file   read settings from a TOML file
	-ucd file      load additional named classes from a UCD property file
	-complement    render the complement of the set
	-count         print the number of scalar values as well
	-json          print the result as a JSON object
	-trace level   trace level (error, info, debug)
*/
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/npillmayer/charclass"
	"github.com/npillmayer/charclass/internal/tracing"
	"github.com/npillmayer/charclass/rangeset"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing/gologadapter"
)

// T traces to the global core tracer.
func T() tracing.Trace {
	return tracing.Core()
}

func main() {
	gtrace.CoreTracer = gologadapter.New()
	if err := run(os.Args[1:], os.Stdout); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintf(os.Stderr, "charclass: %v\n", err)
		}
		os.Exit(1)
	}
}

// result is what -json prints.
type result struct {
	Regex       string       `json:"regex"`
	Cardinality uint32       `json:"cardinality"`
	Ranges      rangeset.Set `json:"ranges"`
}

func run(args []string, out io.Writer) error {
	flags := flag.NewFlagSet("charclass", flag.ContinueOnError)
	configFile := flags.String("config", "", "read settings from a TOML `file`")
	ucdFile := flags.String("ucd", "", "load named classes from a UCD property `file`")
	complement := flags.Bool("complement", false, "render the complement of the set")
	count := flags.Bool("count", false, "print the number of scalar values")
	asJSON := flags.Bool("json", false, "print the result as a JSON object")
	trace := flags.String("trace", "", "trace `level` (error, info, debug)")
	if err := flags.Parse(args); err != nil {
		return err
	}
	if flags.NArg() == 0 {
		flags.Usage()
		return errors.New("no ranges given")
	}

	conf := defaultConfig()
	if *configFile != "" {
		var err error
		if conf, err = loadConfig(*configFile); err != nil {
			return err
		}
	}
	if *trace != "" {
		conf.Trace = *trace
	}
	level, err := traceLevel(conf.Trace)
	if err != nil {
		return err
	}
	T().SetTraceLevel(level)
	if *ucdFile != "" {
		conf.Catalog.UCDFiles = append(conf.Catalog.UCDFiles, *ucdFile)
	}

	set, err := rangeset.Parse(strings.Join(flags.Args(), " "))
	if err != nil {
		return err
	}
	if *complement {
		set = set.Complement()
	}
	T().Debugf("set = %s", set)
	c, err := conf.Catalog.build()
	if err != nil {
		return err
	}
	regex := charclass.NewRenderer(c).Render(set)

	if *asJSON {
		enc := json.NewEncoder(out)
		return enc.Encode(result{
			Regex:       regex,
			Cardinality: charclass.Cardinality(set),
			Ranges:      set,
		})
	}
	fmt.Fprintln(out, regex)
	if *count {
		fmt.Fprintln(out, charclass.Cardinality(set))
	}
	return nil
}
