// Command gwmcmc runs the adaptive, parallel-tempered MCMC sampler against
// a run-configuration file. Parsing the configuration format itself is out
// of scope for the core engine (spec.md §1); this entrypoint does the
// minimum ambient wiring to load one and hand it to the sampler.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/gwastro/gwmcmc/internal/config"
	"github.com/gwastro/gwmcmc/internal/driver"
	"github.com/gwastro/gwmcmc/internal/likelihood"
	"github.com/gwastro/gwmcmc/internal/output"
)

// runFile is the on-disk shape of a run configuration: the sampler config
// plus the parameter descriptor table. Real deployments populate this from
// whatever input-file format the surrounding project uses (out of scope
// here); this is the minimal JSON rendering of SPEC_FULL.md's configuration
// surface.
type runFile struct {
	Sampler     config.SamplerConfig   `json:"sampler"`
	Descriptors []config.Descriptor    `json:"descriptors"`
	Injection   []float64              `json:"injection,omitempty"`
	Network     output.Header          `json:"network"`
}

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("gwmcmc: no .env loaded: %v", err)
	}

	configPath := flag.String("config", "", "path to a run-configuration JSON file")
	seedOverride := flag.Int64("seed", 0, "override the run's random seed (0 = use config file value)")
	outDirOverride := flag.String("out", "", "override the run's output directory")
	flag.Parse()

	if *configPath == "" {
		log.Fatalf("gwmcmc: -config is required")
	}

	run, err := loadRunFile(*configPath)
	if err != nil {
		log.Fatalf("gwmcmc: %v", err)
	}

	if env := os.Getenv("GWMCMC_SEED"); env != "" {
		var s int64
		if _, err := fmt.Sscanf(env, "%d", &s); err == nil {
			run.Sampler.Seed = s
		}
	}
	if *seedOverride != 0 {
		run.Sampler.Seed = *seedOverride
	}
	if env := os.Getenv("GWMCMC_OUTPUT_DIR"); env != "" {
		run.Sampler.OutputDir = env
	}
	if *outDirOverride != "" {
		run.Sampler.OutputDir = *outDirOverride
	}

	eval := likelihood.NewGaussianTarget(defaultVariances(len(run.Descriptors)))

	runID := uuid.NewString()
	sampler, err := driver.New(run.Sampler, run.Descriptors, eval, runID)
	if err != nil {
		log.Fatalf("gwmcmc: %v", err)
	}

	if res := sampler.StartupResult(); !res.Converged {
		log.Printf("gwmcmc: startup offset search did not clear the log-likelihood floor after %d attempts; proceeding with the last drawn state (spec §7)", res.Attempts)
	}

	fmt.Printf("gwmcmc: run %s starting, %d chains, %d iterations\n", runID, run.Sampler.NTemps, run.Sampler.NIter)

	if err := sampler.Run(run.Network, run.Injection); err != nil {
		log.Fatalf("gwmcmc: %v", err)
	}

	if summary, err := sampler.SwapStats.Summarize(); err == nil {
		fmt.Printf("gwmcmc: run %s complete, median swap acceptance %.3f (variance %.3g)\n", runID, summary.MedianAcceptance, summary.VarianceAcceptance)
	} else {
		fmt.Printf("gwmcmc: run %s complete\n", runID)
	}
}

func loadRunFile(path string) (*runFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open run config: %w", err)
	}
	defer f.Close()

	var run runFile
	if err := json.NewDecoder(f).Decode(&run); err != nil {
		return nil, fmt.Errorf("decode run config: %w", err)
	}
	return &run, nil
}

// defaultVariances backs the bundled Gaussian stand-in target (spec.md §1's
// waveform/likelihood collaborators are out of scope); a real deployment
// replaces likelihood.Evaluator with its own waveform pipeline.
func defaultVariances(p int) []float64 {
	v := make([]float64, p)
	for i := range v {
		v[i] = 1.0
	}
	return v
}
