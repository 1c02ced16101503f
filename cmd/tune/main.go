// Package main searches navigation parameters that reach the goal in the
// fewest ticks on the configured scene.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/gocarina/gocsv"
	"gonum.org/v1/gonum/optimize"

	"github.com/pthm-cable/vfh/config"
)

// EvalRecord is one row of optimize_log.csv.
type EvalRecord struct {
	Eval            int     `csv:"eval"`
	Fitness         float64 `csv:"fitness"`
	Outcome         string  `csv:"outcome"`
	Ticks           int32   `csv:"ticks"`
	FinalDist       float64 `csv:"final_dist"`
	SafetyThreshold float64 `csv:"safety_threshold"`
	MinSpeed        float64 `csv:"min_speed"`
	MaxSpeed        float64 `csv:"max_speed"`
}

// evalLog appends EvalRecords, writing the header with the first row.
type evalLog struct {
	f       *os.File
	written bool
}

func (l *evalLog) write(rec EvalRecord) error {
	rows := []EvalRecord{rec}
	if !l.written {
		l.written = true
		return gocsv.Marshal(&rows, l.f)
	}
	return gocsv.MarshalWithoutHeaders(&rows, l.f)
}

// quietLogger only passes errors through.
func quietLogger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelError}))
}

// formatDuration formats a duration as HH:MM:SS or MM:SS for shorter durations.
func formatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	h := d / time.Hour
	d -= h * time.Hour
	m := d / time.Minute
	d -= m * time.Minute
	s := d / time.Second

	if h > 0 {
		return fmt.Sprintf("%dh%02dm%02ds", h, m, s)
	}
	return fmt.Sprintf("%dm%02ds", m, s)
}

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Base config YAML file (empty = use defaults)")
	maxTicks := flag.Int("max-ticks", 3000, "Tick budget per run")
	maxEvals := flag.Int("max-evals", 150, "Maximum number of evaluations")
	initStep := flag.Float64("init-step", 0.1, "Initial simplex size in normalized units")
	outputDir := flag.String("output", "", "Output directory for results")
	flag.Parse()

	// Per-run records from the game would drown the progress lines.
	slog.SetDefault(quietLogger(os.Stderr))

	if *outputDir == "" {
		log.Fatal("--output is required")
	}

	if err := os.MkdirAll(*outputDir, 0755); err != nil {
		log.Fatalf("failed to create output directory: %v", err)
	}

	baseCfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	params := NewParamVector()
	evaluator := NewFitnessEvaluator(params, int32(*maxTicks), baseCfg)

	dim := params.Dim()
	initX := params.Normalize(params.ExtractFromConfig(baseCfg))

	logPath := filepath.Join(*outputDir, "optimize_log.csv")
	logFile, err := os.Create(logPath)
	if err != nil {
		log.Fatalf("failed to create log file: %v", err)
	}
	defer logFile.Close()
	evals := &evalLog{f: logFile}

	evalCount := 0
	bestFitness := evaluator.Evaluate(params.Clamp(params.ExtractFromConfig(baseCfg)))
	bestParams := params.Clamp(params.ExtractFromConfig(baseCfg))
	fmt.Printf("Baseline: fitness=%.1f outcome=%s\n", bestFitness, evaluator.LastOutcome().Status)
	startTime := time.Now()

	problem := optimize.Problem{
		Func: func(x []float64) float64 {
			// Denormalize and clamp to get actual parameter values
			clamped := params.Clamp(params.Denormalize(x))
			fitness := evaluator.Evaluate(clamped)
			outcome := evaluator.LastOutcome()
			evalCount++

			if fitness < bestFitness {
				bestFitness = fitness
				bestParams = clamped
			}

			rec := EvalRecord{
				Eval:            evalCount,
				Fitness:         fitness,
				Outcome:         outcome.Status.String(),
				Ticks:           outcome.Ticks,
				FinalDist:       outcome.FinalDist,
				SafetyThreshold: clamped[0],
				MinSpeed:        clamped[1],
				MaxSpeed:        clamped[2],
			}
			if err := evals.write(rec); err != nil {
				log.Printf("failed to write eval log: %v", err)
			}

			elapsed := time.Since(startTime)
			avgPerEval := elapsed / time.Duration(evalCount)
			remaining := time.Duration(*maxEvals-evalCount) * avgPerEval

			fmt.Printf("Eval %d/%d: %s in %d ticks (best=%.1f) | elapsed: %s, ETA: %s\n",
				evalCount, *maxEvals, outcome.Status, outcome.Ticks, bestFitness,
				formatDuration(elapsed), formatDuration(remaining))

			return fitness
		},
	}

	settings := &optimize.Settings{
		FuncEvaluations: *maxEvals,
		Concurrent:      0, // Sequential evaluation
	}

	method := &optimize.NelderMead{
		SimplexSize: *initStep,
	}

	fmt.Printf("Starting Nelder-Mead search with %d parameters, max_evals=%d, ticks per run: %d\n",
		dim, *maxEvals, *maxTicks)

	if _, err := optimize.Minimize(problem, initX, settings, method); err != nil {
		log.Printf("optimization ended: %v", err)
	}

	totalTime := time.Since(startTime)
	fmt.Printf("\nSearch complete after %d evaluations in %s\n", evalCount, formatDuration(totalTime))
	fmt.Printf("Best fitness: %.1f\n", bestFitness)

	fmt.Println("\nBest parameters:")
	for i, spec := range params.Specs {
		fmt.Printf("  %s: %.6f\n", spec.Path, bestParams[i])
	}

	bestCfg := baseCfg.Clone()
	params.ApplyToConfig(bestCfg, bestParams)

	configOutPath := filepath.Join(*outputDir, "best_config.yaml")
	if err := bestCfg.WriteYAML(configOutPath); err != nil {
		log.Printf("failed to write best config: %v", err)
	} else {
		fmt.Printf("\nBest config saved to: %s\n", configOutPath)
	}
}
