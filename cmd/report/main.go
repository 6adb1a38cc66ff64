package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"tidewatch/analysis"
	"tidewatch/model"
)

func main() {
	// Command line flags
	snapshotFile := flag.String("snapshot", "tidewatch_snapshot.json", "Path to snapshot JSON file")
	outFile := flag.String("out", "", "Write report JSON to file instead of stdout")
	valuePerTEU := flag.Float64("value-per-teu", 1500.0, "USD value assigned per TEU-equivalent unit")
	topN := flag.Int("top-risks", 10, "Number of compound risks to keep")
	fromYear := flag.Int("from", 2025, "First projection year")
	toYear := flag.Int("to", 2035, "Last projection year")

	flag.Parse()

	snap, err := model.LoadSnapshot(*snapshotFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading snapshot: %v\n", err)
		os.Exit(1)
	}

	engine := analysis.New(analysis.Params{
		ValuePerTEU:         *valuePerTEU,
		CompoundRiskTopN:    *topN,
		ProjectionStartYear: *fromYear,
		ProjectionEndYear:   *toYear,
	})
	report := engine.Compute(snap)

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding report: %v\n", err)
		os.Exit(1)
	}

	if *outFile == "" {
		fmt.Println(string(data))
		return
	}
	if err := os.WriteFile(*outFile, data, 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing report: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Report written to %s\n", *outFile)
}
