package config

import "fmt"

// LadderMode selects how the temperature ladder (spec §4.5) is built.
type LadderMode int

const (
	GeometricFixed LadderMode = iota
	GeometricSinusoidal
	ManualFixed
	ManualSinusoidal
)

// SamplerConfig is the run-configuration surface spec.md §6 describes as
// "consumed, not defined here" — parsing it from a file or flags is out of
// scope; this struct is what a loader must populate.
type SamplerConfig struct {
	Waveform Waveform

	NIter    int
	NBurn    int
	NBurn0   int
	ThinOutput     int
	SaveHotChains  int // thin multiplier for hot chains (spec §6)

	NTemps      int
	TempMax     float64
	LadderMode  LadderMode
	ManualTemps []float64 // used when LadderMode is ManualFixed/ManualSinusoidal

	ParallelTempering bool

	// AnnealT0 is the single chain's starting temperature when parallel
	// tempering is disabled (spec §4.7). A value <= 1 disables annealing.
	AnnealT0 float64

	// TargetAcceptance records alpha* of spec §4.4, typically 0.25. The
	// sampler does not read it: sigma adaptation always uses the constant
	// chain.TargetAcceptance (0.25).
	TargetAcceptance float64
	MinLogL          float64 // minLogL floor (spec §4.4, §4.8)

	NCorr    int     // nCorr, covariance window length
	MatAccFr float64 // mataccfr, fraction of tightened diagonals required

	BlockFrac float64 // fraction of uncorrelated proposals that are block moves
	CorrFrac  float64 // fraction of iterations using the correlated proposal

	AdaptationOn bool
	OffsetX      float64 // start-offset Gaussian width multiplier (spec §4.8)

	Seed int64

	OutputDir string

	Verbose bool

	// Parallelize, when true, advances temperature chains concurrently
	// within an outer iteration per spec §5's explicit allowance.
	Parallelize bool
}

// DefaultSamplerConfig returns the parameter values used by the end-to-end
// scenarios in spec.md §8, a reasonable starting point for a real run.
func DefaultSamplerConfig() SamplerConfig {
	return SamplerConfig{
		Waveform: Waveform12Par,

		NIter:         100000,
		NBurn:         10000,
		NBurn0:        1000,
		ThinOutput:    10,
		SaveHotChains: 10,

		NTemps:            5,
		TempMax:           100.0,
		LadderMode:        GeometricFixed,
		ParallelTempering: true,

		TargetAcceptance: 0.25,
		MinLogL:          0.0,

		NCorr:    1000,
		MatAccFr: 0.5,

		BlockFrac: 0.15,
		CorrFrac:  0.5,

		AdaptationOn: true,
		OffsetX:      1.0,

		Seed: 42,

		OutputDir: ".",

		Verbose: false,
	}
}

// Validate reports fatal configuration errors (spec §7).
func (c SamplerConfig) Validate() error {
	if c.NIter <= 0 {
		return fmt.Errorf("config: nIter must be positive, got %d", c.NIter)
	}
	if c.NBurn0 < 0 || c.NBurn0 > c.NBurn {
		return fmt.Errorf("config: require 0 <= nBurn0 (%d) <= nBurn (%d)", c.NBurn0, c.NBurn)
	}
	if c.ThinOutput <= 0 {
		return fmt.Errorf("config: thinOutput must be positive, got %d", c.ThinOutput)
	}
	if c.ParallelTempering {
		if c.NTemps < 1 {
			return fmt.Errorf("config: nTemps must be >= 1, got %d", c.NTemps)
		}
		if c.LadderMode == ManualFixed || c.LadderMode == ManualSinusoidal {
			if len(c.ManualTemps) != c.NTemps {
				return fmt.Errorf("config: manual ladder has %d entries, want nTemps=%d", len(c.ManualTemps), c.NTemps)
			}
		} else if c.TempMax <= 1 {
			return fmt.Errorf("config: tempMax must be > 1 for a geometric ladder, got %g", c.TempMax)
		}
	} else if c.NTemps != 1 {
		return fmt.Errorf("config: parallel tempering disabled requires nTemps == 1, got %d", c.NTemps)
	}
	if c.NCorr <= 1 {
		return fmt.Errorf("config: nCorr must be > 1, got %d", c.NCorr)
	}
	if c.MatAccFr < 0 || c.MatAccFr > 1 {
		return fmt.Errorf("config: mataccfr must be in [0,1], got %g", c.MatAccFr)
	}
	if c.BlockFrac < 0 || c.BlockFrac > 1 {
		return fmt.Errorf("config: blockFrac must be in [0,1], got %g", c.BlockFrac)
	}
	if c.CorrFrac < 0 || c.CorrFrac > 1 {
		return fmt.Errorf("config: corrFrac must be in [0,1], got %g", c.CorrFrac)
	}
	return nil
}
