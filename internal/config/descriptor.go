// Package config defines the static, per-run description of the parameter
// space a sampler explores: parameter descriptors, fix/start/prior modes, and
// the small set of named waveform families that bundle a descriptor table.
package config

import "fmt"

// FixMode controls whether a parameter moves during sampling.
type FixMode int

const (
	Free FixMode = iota
	FixToBest
	FixToInjection
)

// StartMode controls how a chain's initial value for a parameter is drawn.
type StartMode int

const (
	StartBest StartMode = iota
	StartGaussianAroundBest
	StartInjection
	StartGaussianAroundInjection
	StartUniformPrior
)

// PriorKind controls how an out-of-bounds proposal is resolved.
type PriorKind int

const (
	Reflect PriorKind = iota
	ReflectShiftedByBest
	ReflectScaledByBest
	Wrap2Pi
	WrapPi
)

// Descriptor is the static description of one parameter slot.
//
// Code is the integer identity used by waveform/likelihood collaborators;
// ShortName/LongName are for the output header and diagnostics.
type Descriptor struct {
	Code      int
	ShortName string
	LongName  string

	BestValue    float64
	ProposalSigma float64

	Fix   FixMode
	Start StartMode
	Prior PriorKind

	// Lower/Upper are absolute prior bounds once ResolveBounds has run.
	// For ReflectShiftedByBest/ReflectScaledByBest they start as offsets or
	// factors (see ResolveBounds) and are overwritten in place.
	Lower float64
	Upper float64

	// InjectionValue is the ground-truth value used when sampling
	// simulated data; only meaningful for Start modes referencing it.
	InjectionValue float64

	// Angular marks parameters whose adaptive sigma is capped (spec §4.4):
	// wrap-2π params at 2π, wrap-π params at π.
	Angular bool
}

// Free reports whether the parameter is sampled at all.
func (d Descriptor) Free() bool { return d.Fix == Free }

// ResolveBounds turns a shifted or scaled prior kind into absolute
// (Lower, Upper) bounds, in place. Safe to call more than once: after the
// first call Prior is rewritten to Reflect so a second call is a no-op.
//
// Grounded in original_source/trunk/mcmc_prior.c, which resolves these at
// configuration load rather than per-proposal.
func (d *Descriptor) ResolveBounds() error {
	switch d.Prior {
	case ReflectShiftedByBest:
		lower := d.BestValue + d.Lower
		upper := d.BestValue + d.Upper
		if lower >= upper {
			return fmt.Errorf("config: parameter %s: shifted bounds invalid (lower=%g >= upper=%g)", d.ShortName, lower, upper)
		}
		d.Lower, d.Upper = lower, upper
		d.Prior = Reflect
	case ReflectScaledByBest:
		var lower, upper float64
		if d.BestValue >= 0 {
			lower, upper = d.BestValue*d.Lower, d.BestValue*d.Upper
		} else {
			// Scaling by a negative best value flips the sense of the
			// factors; swap them so lower stays below upper.
			lower, upper = d.BestValue*d.Upper, d.BestValue*d.Lower
		}
		if lower >= upper {
			return fmt.Errorf("config: parameter %s: scaled bounds invalid (lower=%g >= upper=%g)", d.ShortName, lower, upper)
		}
		d.Lower, d.Upper = lower, upper
		d.Prior = Reflect
	case Wrap2Pi, WrapPi, Reflect:
		// already absolute
	default:
		return fmt.Errorf("config: parameter %s: unknown prior kind %d", d.ShortName, d.Prior)
	}
	return nil
}

// Validate reports configuration errors that must be fatal at startup
// (spec §7): contradictory fix/start combinations and impossible ranges.
func (d Descriptor) Validate() error {
	if d.Prior == Reflect && d.Lower >= d.Upper {
		return fmt.Errorf("config: parameter %s: lower bound %g >= upper bound %g", d.ShortName, d.Lower, d.Upper)
	}
	if d.Fix == FixToInjection && d.Start == StartUniformPrior {
		return fmt.Errorf("config: parameter %s: fixed to injection but start mode is uniform-prior", d.ShortName)
	}
	if d.ProposalSigma < 0 {
		return fmt.Errorf("config: parameter %s: negative proposal sigma %g", d.ShortName, d.ProposalSigma)
	}
	return nil
}

// ValidateAll resolves bounds and validates every descriptor, returning the
// first error encountered. Descriptors are mutated in place.
func ValidateAll(descriptors []Descriptor) error {
	for i := range descriptors {
		if err := descriptors[i].ResolveBounds(); err != nil {
			return err
		}
		if err := descriptors[i].Validate(); err != nil {
			return err
		}
	}
	return nil
}

// FreeMask returns a bool slice, one per descriptor, true where the
// parameter is free (spec §4.2's "restricted to free indices").
func FreeMask(descriptors []Descriptor) []bool {
	mask := make([]bool, len(descriptors))
	for i, d := range descriptors {
		mask[i] = d.Free()
	}
	return mask
}

// NumFree counts free parameters (nParFit in spec §4.3).
func NumFree(descriptors []Descriptor) int {
	n := 0
	for _, d := range descriptors {
		if d.Free() {
			n++
		}
	}
	return n
}
