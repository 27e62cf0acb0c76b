package main

import (
	"fmt"
	"log"
	"os"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/pflag"

	"github.com/ironsheep/couladj/internal/adjacency"
	"github.com/ironsheep/couladj/internal/imaging"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

type config struct {
	file            string
	fullAdjacencies bool
	count           bool
	jsonGraph       bool
	region          string
	scale           float64
	blurSigma       float64
	workers         int
	showVersion     bool
}

func main() {
	cfg := parseFlags()

	if cfg.showVersion {
		fmt.Printf("couladj %s\n", Version)
		fmt.Printf("  Build time: %s\n", BuildTime)
		fmt.Printf("  Git commit: %s\n", GitCommit)
		return
	}

	// Diagnostics go to stderr; stdout carries the result only.
	log.SetOutput(os.Stderr)
	log.SetFlags(0)

	if err := validateConfig(cfg); err != nil {
		log.Fatalf("Configuration error: %v", err)
	}
	if err := run(cfg); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

// parseFlags defines and parses command-line flags, returning them in
// a config struct.
func parseFlags() *config {
	cfg := &config{}

	pflag.StringVarP(&cfg.file, "file", "f", "", "The image file to analyze.")
	pflag.BoolVarP(&cfg.fullAdjacencies, "full-adjacencies", "a", false,
		"Compute adjacencies for all 8 directions rather than the 4 cardinal directions.")
	pflag.BoolVarP(&cfg.count, "count", "c", false,
		"Instead of a tsv, just output the number of unique pairs.")
	pflag.BoolVar(&cfg.jsonGraph, "json", false,
		"Output a JSON adjacency graph instead of a tsv.")
	pflag.StringVar(&cfg.region, "region", "",
		"Restrict analysis to a sub-rectangle, given as x1,y1,x2,y2.")
	pflag.Float64Var(&cfg.scale, "scale", 1.0,
		"Resize factor applied before analysis.")
	pflag.Float64Var(&cfg.blurSigma, "blur", 0,
		"Gaussian blur radius applied before analysis.")
	pflag.IntVarP(&cfg.workers, "workers", "w", runtime.NumCPU(),
		"Number of worker goroutines for the adjacency pass.")
	pflag.BoolVar(&cfg.showVersion, "version", false, "Print version information.")

	pflag.Parse()
	return cfg
}

// validateConfig checks if the provided configuration is valid.
func validateConfig(cfg *config) error {
	if cfg.file == "" {
		return fmt.Errorf("--file/-f flag is required")
	}
	if cfg.count && cfg.jsonGraph {
		return fmt.Errorf("--count and --json are mutually exclusive")
	}
	if cfg.scale <= 0 {
		return fmt.Errorf("--scale must be positive")
	}
	if cfg.blurSigma < 0 {
		return fmt.Errorf("--blur must not be negative")
	}
	if cfg.workers <= 0 {
		return fmt.Errorf("--workers must be a positive integer")
	}
	if cfg.region != "" {
		if _, err := parseRegion(cfg.region); err != nil {
			return err
		}
	}
	return nil
}

func run(cfg *config) error {
	log.Println("Loading image...")
	start := time.Now()

	img, err := imaging.Load(cfg.file)
	if err != nil {
		return err
	}

	opts := imaging.PreprocessOptions{Scale: cfg.scale, BlurSigma: cfg.blurSigma}
	if cfg.region != "" {
		region, err := parseRegion(cfg.region)
		if err != nil {
			return err
		}
		opts.Region = &region
	}
	img, err = imaging.Preprocess(img, opts)
	if err != nil {
		return err
	}

	buf, dims := imaging.Flatten(img)
	log.Printf("  %v", time.Since(start))

	conn := adjacency.Conn4
	if cfg.fullAdjacencies {
		conn = adjacency.Conn8
	}

	log.Println("Calculating adjacencies...")
	start = time.Now()
	set, err := adjacency.Aggregate(buf, dims, conn, cfg.workers)
	if err != nil {
		return err
	}
	adjacency.CloseSymmetric(set)
	log.Printf("  %v", time.Since(start))

	switch {
	case cfg.count:
		return adjacency.WriteCount(os.Stdout, set)
	case cfg.jsonGraph:
		return adjacency.WriteGraph(os.Stdout, adjacency.SortedPairs(set))
	default:
		return adjacency.WriteTable(os.Stdout, adjacency.SortedPairs(set))
	}
}

// parseRegion parses a crop rectangle given as "x1,y1,x2,y2".
func parseRegion(s string) (imaging.Region, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return imaging.Region{}, fmt.Errorf("invalid region %q: want x1,y1,x2,y2", s)
	}
	vals := make([]int, 4)
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return imaging.Region{}, fmt.Errorf("invalid region %q: %w", s, err)
		}
		vals[i] = v
	}
	return imaging.Region{X1: vals[0], Y1: vals[1], X2: vals[2], Y2: vals[3]}, nil
}
