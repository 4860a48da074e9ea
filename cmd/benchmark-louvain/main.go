package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/dd0wney/cluso-graphbench/pkg/backend"
	"github.com/dd0wney/cluso-graphbench/pkg/bench"
	"github.com/dd0wney/cluso-graphbench/pkg/config"
	"github.com/dd0wney/cluso-graphbench/pkg/dataset"
	"github.com/dd0wney/cluso-graphbench/pkg/logging"
)

func main() {
	configPath := flag.String("config", "", "Path to YAML config file (optional)")
	dataDir := flag.String("data", "", "Directory with edge-list files (overrides config)")
	backendsFlag := flag.String("backends", "", "Comma-separated backends to measure (overrides config)")
	datasetsFlag := flag.String("datasets", "", "Comma-separated dataset names to run (default: all)")
	resolution := flag.Float64("resolution", 0, "Modularity resolution parameter (overrides config)")
	seed := flag.Uint64("seed", 0, "Random seed for the gonum backend (overrides config)")
	flag.Parse()

	fmt.Printf("🔥 Cluso GraphBench - Louvain Community Detection Benchmark\n")
	fmt.Printf("==========================================================\n\n")

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		cfg = loaded
	}
	if *dataDir != "" {
		cfg.DataDir = *dataDir
	}
	if *backendsFlag != "" {
		cfg.Backends = splitList(*backendsFlag)
	}
	if *resolution != 0 {
		cfg.Resolution = *resolution
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	catalog := dataset.DefaultCatalog()
	if *datasetsFlag != "" {
		selected, err := selectDatasets(catalog, splitList(*datasetsFlag))
		if err != nil {
			log.Fatalf("Invalid dataset selection: %v", err)
		}
		catalog = selected
	}

	registry, err := backend.DefaultRegistry(backend.Options{
		Resolution:     cfg.Resolution,
		Seed:           cfg.Seed,
		MinQualityGain: cfg.MinQualityGain,
		MaxLevels:      cfg.MaxLevels,
	}).Select(cfg.Backends)
	if err != nil {
		log.Fatalf("Invalid backend selection: %v", err)
	}

	fmt.Printf("Configuration:\n")
	fmt.Printf("  Data directory: %s\n", cfg.DataDir)
	fmt.Printf("  Backends: %s\n", strings.Join(registry.Names(), ", "))
	fmt.Printf("  Datasets: %s\n", strings.Join(datasetNames(catalog), ", "))
	fmt.Printf("  Resolution: %g\n", cfg.Resolution)
	fmt.Printf("  Seed: %d\n\n", cfg.Seed)

	var metrics *bench.Metrics
	if cfg.Metrics {
		metrics = bench.NewMetrics()
	}

	runner := bench.NewRunner(bench.RunnerConfig{
		Catalog:  catalog,
		Registry: registry,
		DataDir:  cfg.DataDir,
		Logger:   logging.NewDefaultLogger(),
		Metrics:  metrics,
		Output:   os.Stdout,
	})

	fmt.Printf("📊 Running sweep (run %s)...\n\n", runner.RunID())
	results := runner.Run()

	expected := len(catalog) * len(registry.Backends())
	fmt.Printf("\n🎯 Summary\n")
	fmt.Printf("=========\n")
	for _, r := range results {
		fmt.Printf("  %-10s %-8s %10.3fs\n", r.Dataset, r.Backend, r.Seconds())
	}
	if len(results) < expected {
		fmt.Printf("\n⚠️  %d of %d measurements missing (see logs)\n", expected-len(results), expected)
		os.Exit(1)
	}
	fmt.Printf("\n✅ Benchmark complete!\n")
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func selectDatasets(catalog []dataset.Descriptor, names []string) ([]dataset.Descriptor, error) {
	byName := make(map[string]dataset.Descriptor, len(catalog))
	for _, d := range catalog {
		byName[d.Name] = d
	}
	// Catalog order is preserved regardless of flag order
	wanted := make(map[string]bool, len(names))
	for _, n := range names {
		if _, ok := byName[n]; !ok {
			return nil, errors.New("unknown dataset: " + n)
		}
		wanted[n] = true
	}
	selected := make([]dataset.Descriptor, 0, len(wanted))
	for _, d := range catalog {
		if wanted[d.Name] {
			selected = append(selected, d)
		}
	}
	return selected, nil
}

func datasetNames(catalog []dataset.Descriptor) []string {
	names := make([]string, len(catalog))
	for i, d := range catalog {
		names[i] = d.Name
	}
	return names
}
