package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"

	"gopkg.in/yaml.v3"

	edid "github.com/thyge/edidparse"
	"github.com/thyge/edidparse/pkg/batch"
	"github.com/thyge/edidparse/pkg/cvtgen"
	"github.com/thyge/edidparse/pkg/source"
)

var (
	edidfile   = flag.String("edidfile", "./edid.bin", "path to edid file (.bin, .txt, .hex, optionally .zst)")
	sysfs      = flag.String("sysfs", "", "decode every DRM connector under this sysfs root, e.g. /sys")
	batchDir   = flag.String("batch", "", "decode every file below this directory and print a summary")
	workers    = flag.Int("workers", 4, "concurrent decodes in batch mode")
	format     = flag.String("format", "json", "output format: json or yaml")
	strict     = flag.Bool("strict", false, "fail on out-of-spec data")
	configFile = flag.String("config", "", "optional YAML config file; explicit flags override it")
	verbose    = flag.Bool("v", false, "log debug diagnostics")
	dump       = flag.Bool("dump", false, "print the EDID bytes as hex before decoding")
	cvt        = flag.Bool("cvt", false, "add the timings generated for CVT 3 byte codes")
)

type config struct {
	Format  string `yaml:"format"`
	Strict  bool   `yaml:"strict"`
	Workers int    `yaml:"workers"`
	Verbose bool   `yaml:"verbose"`
}

// loadConfig applies the config file to every flag not set on the command line.
func loadConfig(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var c config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	set := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })
	if !set["format"] && c.Format != "" {
		*format = c.Format
	}
	if !set["strict"] && c.Strict {
		*strict = true
	}
	if !set["workers"] && c.Workers > 0 {
		*workers = c.Workers
	}
	if !set["v"] && c.Verbose {
		*verbose = true
	}
	return nil
}

type report struct {
	Source        string
	ChecksumValid bool
	Extensions    []edid.ExtensionType `json:",omitempty" yaml:",omitempty"`
	CVTTimings    []cvtgen.Generated   `json:",omitempty" yaml:",omitempty"`
	EDID          *edid.ParsedEdid
}

type failure struct {
	Path  string
	Error string
}

type summary struct {
	Passed     int
	Failed     int
	Unreadable int
	Panicked   int
	Skipped    int
	ByKind     map[edid.ErrorKind]int `json:",omitempty" yaml:",omitempty"`
	Failures   []failure              `json:",omitempty" yaml:",omitempty"`
}

func main() {
	flag.Parse()
	if *configFile != "" {
		if err := loadConfig(*configFile); err != nil {
			log.Fatal("Unable to read config ", err)
		}
	}
	if *format != "json" && *format != "yaml" {
		log.Fatalf("Unknown format %q", *format)
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	opts := edid.Options{Sink: edid.SlogSink{Logger: logger}, Strict: *strict}

	switch {
	case *batchDir != "":
		runBatch(opts)
	case *sysfs != "":
		runSysfs(opts, logger)
	default:
		edidBytes, err := source.ReadFile(*edidfile)
		if err != nil {
			log.Fatal("Unable to read file ", err)
		}
		r, err := decode(*edidfile, edidBytes, opts)
		if err != nil {
			log.Fatal("Unable to decode EDID ", err)
		}
		emit(os.Stdout, r)
	}
}

func decode(name string, b []byte, opts edid.Options) (*report, error) {
	if *dump {
		if err := source.Dump(os.Stderr, b); err != nil {
			return nil, err
		}
	}
	e, err := edid.DecodeWithOptions(b, opts)
	if err != nil {
		return nil, err
	}
	r := &report{
		Source:        name,
		ChecksumValid: e.ChecksumValid(),
		Extensions:    edid.ExtensionTags(b),
		EDID:          e,
	}
	if *cvt {
		r.CVTTimings = cvtgen.Expand(e)
	}
	return r, nil
}

func runSysfs(opts edid.Options, logger *slog.Logger) {
	conns, err := source.Sysfs(*sysfs)
	if err != nil {
		log.Fatal("Unable to read sysfs ", err)
	}
	reports := make([]*report, 0, len(conns))
	for _, c := range conns {
		r, err := decode(c.Name, c.EDID, opts)
		if err != nil {
			logger.Error("decode failed", slog.String("connector", c.Name), slog.Any("err", err))
			continue
		}
		reports = append(reports, r)
	}
	emit(os.Stdout, reports)
}

func runBatch(opts edid.Options) {
	paths, err := batch.Walk(*batchDir)
	if err != nil {
		log.Fatal("Unable to list files ", err)
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// per-file diagnostics would drown the summary
	opts.Sink = edid.Discard
	s := batch.Run(ctx, paths, *workers, opts)

	out := summary{
		Passed:     s.Passed,
		Failed:     s.Failed,
		Unreadable: s.Unreadable,
		Panicked:   s.Panicked,
		Skipped:    s.Skipped,
		ByKind:     s.ByKind,
	}
	for _, f := range s.Failures {
		out.Failures = append(out.Failures, failure{Path: f.Path, Error: f.Err.Error()})
	}
	emit(os.Stdout, out)
}

func emit(w io.Writer, v any) {
	if *format == "yaml" {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(4)
		if err := enc.Encode(v); err != nil {
			log.Fatal("Unable to encode yaml ", err)
		}
		_ = enc.Close()
		return
	}
	// pretty print json version of edid structure
	pretty, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		log.Fatal("Unable to encode json ", err)
	}
	fmt.Fprintln(w, string(pretty))
}
