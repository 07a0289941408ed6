// Command standardize canonicalizes the country column of a CSV dataset so
// that rows can be joined with other datasets, and reports names that still
// need manual curation.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/demopanel/countrystd/internal/config"
	"github.com/demopanel/countrystd/internal/countries"
	"github.com/demopanel/countrystd/internal/tabular"
)

func main() {
	input := flag.String("input", "", "Input CSV file (required)")
	output := flag.String("output", "", "Output CSV file (empty = report only, no file written)")
	column := flag.String("column", "", "Country column name (default from config)")
	configPath := flag.String("config", "", "Optional YAML config file")
	aliases := flag.String("aliases", "", "Optional YAML file of extra alias -> canonical pairs")
	verbose := flag.Bool("verbose", false, "Print every changed value")

	flag.Parse()

	if *input == "" {
		fmt.Fprintln(os.Stderr, "Error: -input is required")
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

	resolver, err := newResolver(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building resolver: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Country Name Standardizer")
	fmt.Println(strings.Repeat("=", 40))

	ds, err := tabular.ReadCSV(*input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading input: %v\n", err)
		os.Exit(1)
	}

	idx, ok := ds.ColumnIndex(cfg.Countries.Column)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: dataset %s: column %q not found\n", ds.Name, cfg.Countries.Column)
		os.Exit(1)
	}

	original, _ := ds.Column(cfg.Countries.Column)
	resolved := resolver.ResolveColumn(original)

	out := ds.Clone()
	changed := 0
	for i, row := range out.Rows {
		if row[idx] != nil && resolved[i] != nil && *row[idx] != *resolved[i] {
			changed++
			if *verbose {
				fmt.Printf("  %q -> %q\n", *row[idx], *resolved[i])
			}
		}
		row[idx] = resolved[i]
	}

	printSummary(resolver, ds.Name, original, changed)

	if *output != "" {
		if err := tabular.WriteCSV(out, *output); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("\nOutput written to: %s\n", *output)
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

func printSummary(resolver *countries.Resolver, name string, values []*string, changed int) {
	fmt.Printf("\nDataset: %s\n", name)
	fmt.Printf("Rows: %d, renamed: %d\n", len(values), changed)

	// Aggregate rows pass through untouched; list them so the caller can
	// decide whether to drop them before joining.
	seen := make(map[string]struct{})
	var aggregates []string
	for _, v := range values {
		if v == nil {
			continue
		}
		trimmed := strings.TrimSpace(*v)
		key := countries.Normalize(trimmed)
		if _, mapped := resolver.Lookup(key); mapped {
			continue
		}
		if category, ok := countries.AggregateCategory(key); ok {
			if _, dup := seen[trimmed]; !dup {
				seen[trimmed] = struct{}{}
				aggregates = append(aggregates, fmt.Sprintf("%s (%s)", trimmed, category))
			}
		}
	}
	if len(aggregates) > 0 {
		fmt.Printf("\nAggregate rows (passed through):\n")
		for _, a := range aggregates {
			fmt.Printf("  - %s\n", a)
		}
	}

	unmapped := resolver.Unmapped(values)
	if len(unmapped) > 0 {
		fmt.Printf("\nUnmapped names (candidates for the alias list):\n")
		for _, u := range unmapped {
			fmt.Printf("  - %s\n", u)
		}
	} else {
		fmt.Println("\nNo unmapped names.")
	}
}
