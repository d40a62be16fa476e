/*
main.go - Application entry point

PURPOSE:
  Runs the registro retributivo batch: reads contract-period rows from JSON
  files, enriches them (tenure, equalization, period status, cumulative
  totals), runs the pay-gap report suite and writes the results next to a
  machine-readable run summary.

RUN SEQUENCE:
  1. Parse command-line flags and input file arguments
  2. Load the complement catalog (or start with an empty one)
  3. Load the report suite (or use the built-in one)
  4. Per input file: enrich rows, aggregate reports, write outputs
  5. Write summary.json and exit non-zero if any file failed

COMMAND-LINE FLAGS:
  -catalog    Complement catalog YAML (default: $PARITY_CATALOG)
  -reports    Report suite YAML (default: $PARITY_REPORTS, else built-in)
  -out        Output directory (default: .)
  -log-level  debug | info | warn | error (default: info)

OUTPUTS (per input file <base>.json):
  <base>_enriched.json   enriched rows, employee count, diagnostics
  <base>_stats.json      pay-gap reports and the participation table
  summary.json           run recap: run id, timings, per-file outcomes

EXAMPLES:
  # Built-in report suite, catalog from file
  ./parity -catalog=catalog.yaml nominas_2024.json

  # Everything from configuration, custom output directory
  ./parity -catalog=catalog.yaml -reports=reports.yaml -out=informes *.json

ENVIRONMENT:
  PARITY_CATALOG  default catalog path
  PARITY_REPORTS  default report suite path

SEE ALSO:
  - equalize/pipeline.go: the enrichment pass
  - paygap/aggregate.go: the statistics engine
  - factory/config.go: YAML configuration loading
*/
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/warp/parity-engine/compensation"
	"github.com/warp/parity-engine/equalize"
	"github.com/warp/parity-engine/factory"
	"github.com/warp/parity-engine/paygap"
)

// Outcome is the per-file entry of summary.json.
type Outcome struct {
	File      string `json:"file"`
	Status    string `json:"status"`
	Rows      int    `json:"rows,omitempty"`
	Employees int    `json:"employees,omitempty"`
	Warnings  int    `json:"warnings,omitempty"`
	Reports   int    `json:"reports,omitempty"`
	Error     string `json:"error,omitempty"`
}

// RunSummary is the machine-readable recap of one batch run.
type RunSummary struct {
	RunID     string    `json:"run_id"`
	Started   time.Time `json:"started"`
	Finished  time.Time `json:"finished"`
	Rows      int       `json:"rows"`
	Employees int       `json:"employees"`
	Warnings  int       `json:"warnings"`
	Failed    int       `json:"failed"`
	Outcomes  []Outcome `json:"outcomes"`
}

type enrichedFile struct {
	Records     []compensation.Record     `json:"records"`
	Employees   int                       `json:"employees"`
	Diagnostics []compensation.Diagnostic `json:"diagnostics,omitempty"`
}

type statsFile struct {
	Reports       []*paygap.Report           `json:"reports"`
	Participation *paygap.ParticipationTable `json:"participation,omitempty"`
}

func main() {
	catalogPath := flag.String("catalog", os.Getenv("PARITY_CATALOG"), "complement catalog YAML")
	reportsPath := flag.String("reports", os.Getenv("PARITY_REPORTS"), "report suite YAML")
	outDir := flag.String("out", ".", "output directory")
	logLevel := flag.String("log-level", "info", "debug | info | warn | error")
	flag.Parse()

	runID := uuid.NewString()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLevel(*logLevel),
	})).With("run_id", runID)

	files := flag.Args()
	if len(files) == 0 {
		fmt.Fprintln(os.Stderr, "usage: parity [flags] <rows.json> [more.json ...]")
		flag.PrintDefaults()
		os.Exit(2)
	}

	catalog, err := loadCatalog(*catalogPath, logger)
	if err != nil {
		logger.Error("catalog unusable", "path", *catalogPath, "error", err)
		os.Exit(1)
	}

	specs, err := loadReports(*reportsPath, logger)
	if err != nil {
		logger.Error("report suite unusable", "path", *reportsPath, "error", err)
		os.Exit(1)
	}

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		logger.Error("cannot create output directory", "dir", *outDir, "error", err)
		os.Exit(1)
	}

	pipeline := equalize.NewPipeline(catalog)

	summary := RunSummary{RunID: runID, Started: time.Now()}
	for _, file := range files {
		outcome := processFile(file, pipeline, specs, catalog, *outDir, logger)
		if outcome.Status != "ok" {
			summary.Failed++
		}
		summary.Rows += outcome.Rows
		summary.Employees += outcome.Employees
		summary.Warnings += outcome.Warnings
		summary.Outcomes = append(summary.Outcomes, outcome)
	}
	summary.Finished = time.Now()

	summaryPath := filepath.Join(*outDir, "summary.json")
	if err := writeJSON(summaryPath, summary); err != nil {
		logger.Error("cannot write summary", "path", summaryPath, "error", err)
		os.Exit(1)
	}

	logger.Info("run complete",
		"files", len(files), "failed", summary.Failed,
		"rows", summary.Rows, "employees", summary.Employees)
	if summary.Failed > 0 {
		os.Exit(1)
	}
}

// =============================================================================
// PER-FILE PROCESSING
// =============================================================================

func processFile(path string, pipeline *equalize.Pipeline, specs []paygap.ReportSpec, catalog *compensation.Catalog, outDir string, logger *slog.Logger) Outcome {
	log := logger.With("file", path)
	outcome := Outcome{File: path, Status: "error"}

	rows, err := readRows(path)
	if err != nil {
		log.Error("cannot read rows", "error", err)
		outcome.Error = err.Error()
		return outcome
	}
	outcome.Rows = len(rows)

	res, err := pipeline.Process(rows)
	if err != nil {
		log.Error("enrichment failed", "error", err, "fatal", compensation.IsFatal(err))
		outcome.Error = err.Error()
		return outcome
	}
	outcome.Employees = res.Employees
	outcome.Warnings = len(res.Diagnostics.Warnings())

	for _, d := range res.Diagnostics.Warnings() {
		log.Warn(d.Message, "code", string(d.Code), "employee", string(d.Employee), "component", string(d.Component))
	}
	log.Info("rows enriched", "rows", len(res.Records), "employees", res.Employees, "warnings", outcome.Warnings)

	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	enrichedPath := filepath.Join(outDir, base+"_enriched.json")
	if err := writeJSON(enrichedPath, enrichedFile{
		Records:     res.Records,
		Employees:   res.Employees,
		Diagnostics: res.Diagnostics.All(),
	}); err != nil {
		log.Error("cannot write enriched rows", "path", enrichedPath, "error", err)
		outcome.Error = err.Error()
		return outcome
	}

	stats := statsFile{}
	for _, spec := range specs {
		report, err := paygap.Aggregate(res.Records, spec)
		if err != nil {
			log.Error("report failed", "report", spec.Name, "error", err)
			outcome.Error = err.Error()
			return outcome
		}
		logReport(log, report)
		stats.Reports = append(stats.Reports, report)
	}

	participation, err := paygap.Participation(res.Records, catalog, false)
	if err != nil {
		log.Error("participation table failed", "error", err)
		outcome.Error = err.Error()
		return outcome
	}
	stats.Participation = participation

	statsPath := filepath.Join(outDir, base+"_stats.json")
	if err := writeJSON(statsPath, stats); err != nil {
		log.Error("cannot write statistics", "path", statsPath, "error", err)
		outcome.Error = err.Error()
		return outcome
	}

	outcome.Status = "ok"
	outcome.Reports = len(stats.Reports)
	log.Info("file done", "enriched", enrichedPath, "stats", statsPath, "reports", outcome.Reports)
	return outcome
}

// logReport emits the headline numbers of company-wide reports, formatted
// the way the registro retributivo documents print them.
func logReport(log *slog.Logger, report *paygap.Report) {
	if report.Spec.Partition != paygap.PartitionOverall {
		log.Debug("report done", "report", report.Spec.Name,
			"groups", len(report.Groups), "suppressed", len(report.Suppressed))
		return
	}
	s := report.Summary
	log.Info("report done", "report", report.Spec.Name,
		"mujeres", compensation.FormatAmountES(s.Women),
		"hombres", compensation.FormatAmountES(s.Men),
		"brecha", fmt.Sprintf("%.2f%%", s.GapPercent),
		"suppressed", len(report.Suppressed))
}

// =============================================================================
// CONFIGURATION AND I/O
// =============================================================================

func loadCatalog(path string, logger *slog.Logger) (*compensation.Catalog, error) {
	if path == "" {
		logger.Warn("no catalog given, all component codes will pass through unclassified")
		return compensation.NewCatalog(nil, nil), nil
	}
	catalog, err := factory.LoadCatalog(path)
	if err != nil {
		return nil, err
	}
	logger.Info("catalog loaded", "path", path, "components", catalog.Len())
	return catalog, nil
}

func loadReports(path string, logger *slog.Logger) ([]paygap.ReportSpec, error) {
	if path == "" {
		specs := factory.DefaultReports()
		logger.Info("using built-in report suite", "reports", len(specs))
		return specs, nil
	}
	specs, err := factory.LoadReports(path)
	if err != nil {
		return nil, err
	}
	logger.Info("report suite loaded", "path", path, "reports", len(specs))
	return specs, nil
}

func readRows(path string) ([]compensation.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var rows []compensation.Record
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("parse %s: %w", filepath.Base(path), err)
	}
	return rows, nil
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
