package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-json"

	"github.com/forgo/retreats/api/internal/config"
	"github.com/forgo/retreats/api/internal/repository"
	"github.com/forgo/retreats/api/internal/service"
)

// checkResult is the machine-readable output of a check
type checkResult struct {
	Source      string                 `json:"source"`
	StrictTypes bool                   `json:"strict_types"`
	OK          bool                   `json:"ok"`
	Report      *service.CatalogReport `json:"report"`
}

func main() {
	outputJSON := flag.Bool("json", false, "Output as JSON")
	path := flag.String("path", "", "Check this retreats YAML file instead of the configured source")
	taxonomyPath := flag.String("taxonomy", "", "Taxonomy YAML override")
	lenient := flag.Bool("lenient", false, "Allow retreat types missing from the taxonomy")

	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if *path != "" {
		cfg.Catalog.Source = config.SourceFile
		cfg.Catalog.Path = *path
	}
	if *taxonomyPath != "" {
		cfg.Catalog.TaxonomyPath = *taxonomyPath
	}
	if *lenient {
		cfg.Catalog.StrictTypes = false
	}

	result, err := check(context.Background(), cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading catalog: %v\n", err)
		os.Exit(1)
	}

	if *outputJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(result)
	} else {
		printReport(os.Stdout, result)
	}

	if !result.OK {
		os.Exit(1)
	}
}

// check reads the configured source and inspects it without building a catalog
func check(ctx context.Context, cfg *config.Config) (*checkResult, error) {
	src, err := repository.OpenSource(ctx, cfg)
	if err != nil {
		return nil, err
	}
	defer func() { _ = src.Close() }()

	taxonomy, err := service.LoadTaxonomyService(ctx, src.Taxonomy)
	if err != nil {
		return nil, err
	}
	retreats, err := src.Retreats.ListRetreats(ctx)
	if err != nil {
		return nil, err
	}

	report := service.InspectCatalog(retreats, taxonomy)
	return &checkResult{
		Source:      cfg.Catalog.Source,
		StrictTypes: cfg.Catalog.StrictTypes,
		OK:          report.OK(cfg.Catalog.StrictTypes),
		Report:      report,
	}, nil
}

func printReport(w io.Writer, result *checkResult) {
	report := result.Report

	fmt.Fprintln(w, "Catalog Check")
	fmt.Fprintln(w, "=============")
	fmt.Fprintf(w, "Source:    %s\n", result.Source)
	fmt.Fprintf(w, "Retreats:  %d\n", report.Total)
	fmt.Fprintln(w)

	for _, inv := range report.Invalid {
		fmt.Fprintf(w, "INVALID   #%d %q\n", inv.Index, inv.Name)
		for _, fe := range inv.Errors {
			fmt.Fprintf(w, "          %s: %s\n", fe.Field, fe.Message)
		}
	}
	for _, c := range report.Collisions {
		fmt.Fprintf(w, "COLLISION %s\n", c.Slug)
		for _, name := range c.Names {
			fmt.Fprintf(w, "          %q\n", name)
		}
	}

	unmappedLabel := "WARN      unmapped type"
	if result.StrictTypes {
		unmappedLabel = "UNMAPPED  type"
	}
	for _, t := range report.UnmappedTypes {
		fmt.Fprintf(w, "%s %q\n", unmappedLabel, t)
	}
	for _, code := range report.UnknownCountries {
		fmt.Fprintf(w, "WARN      unknown country %q\n", code)
	}

	fmt.Fprintln(w)
	if result.OK {
		fmt.Fprintln(w, "OK")
		return
	}
	fmt.Fprintln(w, "FAILED")
}
