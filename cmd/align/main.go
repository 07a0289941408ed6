// Command align standardizes the country column of several CSV datasets,
// keeps only the countries present in all of them, and writes the filtered
// datasets plus a JSON report of what was dropped from each.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/demopanel/countrystd/internal/align"
	"github.com/demopanel/countrystd/internal/config"
	"github.com/demopanel/countrystd/internal/countries"
	"github.com/demopanel/countrystd/internal/tabular"
)

// alignReport is the JSON document written next to the filtered datasets.
type alignReport struct {
	GeneratedAt time.Time           `json:"generated_at"`
	Column      string              `json:"column"`
	Inputs      []string            `json:"inputs"`
	CommonCount int                 `json:"common_count"`
	Common      []string            `json:"common"`
	Dropped     map[string][]string `json:"dropped"`
}

func main() {
	outputDir := flag.String("output-dir", "", "Directory for filtered CSVs (default from config)")
	column := flag.String("column", "", "Country column name (default from config)")
	configPath := flag.String("config", "", "Optional YAML config file")
	aliases := flag.String("aliases", "", "Optional YAML file of extra alias -> canonical pairs")
	report := flag.String("report", "", "Path for the JSON dropped-countries report (empty = alongside outputs)")

	flag.Parse()

	inputs := flag.Args()
	if len(inputs) == 0 {
		fmt.Fprintln(os.Stderr, "Error: at least one input CSV is required")
		flag.Usage()
		os.Exit(1)
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if *column != "" {
		cfg.Countries.Column = *column
	}
	if *aliases != "" {
		cfg.Countries.AliasFile = *aliases
	}
	if *outputDir == "" {
		*outputDir = cfg.Data.ProcessedDir
	}

	resolver, err := newResolver(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building resolver: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Country Set Aligner")
	fmt.Println(strings.Repeat("=", 40))
	fmt.Printf("Aligning %d datasets on column %q\n\n", len(inputs), cfg.Countries.Column)

	datasets := make([]*tabular.Dataset, 0, len(inputs))
	for _, path := range inputs {
		ds, err := tabular.ReadCSV(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading %s: %v\n", path, err)
			os.Exit(1)
		}
		datasets = append(datasets, ds)
	}

	result, err := align.KeepCommon(resolver, cfg.Countries.Column, datasets)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	printSummary(datasets, result)

	if err := writeOutputs(result, cfg.Countries.Column, inputs, *outputDir, *report); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing outputs: %v\n", err)
		os.Exit(1)
	}
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.Load(path)
	}
	return config.LoadFromEnv(), nil
}

func newResolver(cfg *config.Config) (*countries.Resolver, error) {
	if cfg.Countries.AliasFile != "" {
		return countries.NewWithAliasFile(cfg.Countries.AliasFile)
	}
	return countries.New(), nil
}

func printSummary(inputs []*tabular.Dataset, result *align.Result) {
	fmt.Printf("Common countries: %d\n\n", len(result.Common))

	for i, ds := range result.Datasets {
		dropped := result.Dropped[ds.Name]
		fmt.Printf("  %s: %d -> %d rows", ds.Name, len(inputs[i].Rows), len(ds.Rows))
		if len(dropped) > 0 {
			fmt.Printf(" (dropped: %s)", strings.Join(dropped, ", "))
		}
		fmt.Println()
	}
}

func writeOutputs(result *align.Result, column string, inputs []string, outputDir, reportPath string) error {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	for _, ds := range result.Datasets {
		path := filepath.Join(outputDir, ds.Name+".csv")
		if err := tabular.WriteCSV(ds, path); err != nil {
			return err
		}
		fmt.Printf("\nFiltered dataset written to: %s", path)
	}

	common := make([]string, 0, len(result.Common))
	for name := range result.Common {
		common = append(common, name)
	}
	sort.Strings(common)

	rep := alignReport{
		GeneratedAt: time.Now(),
		Column:      column,
		Inputs:      inputs,
		CommonCount: len(common),
		Common:      common,
		Dropped:     result.Dropped,
	}

	content, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}

	if reportPath == "" {
		reportPath = filepath.Join(outputDir, "align_report.json")
	}
	if err := os.WriteFile(reportPath, content, 0644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	fmt.Printf("\nReport written to: %s\n", reportPath)

	return nil
}
