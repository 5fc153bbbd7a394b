package config

import "fmt"

// Waveform names the parametric families the sampler targets, matching the
// parameter counts spec.md §1 requires (9/12/15 dimensions).
type Waveform string

const (
	Waveform9Par  Waveform = "1.5PN-9par"
	Waveform12Par Waveform = "1.5PN-12par"
	Waveform15Par Waveform = "1.5PN-15par"
)

// baseDescriptors lists the 9 parameters common to every waveform family:
// chirp mass, symmetric mass ratio, coalescence time, distance, two sky
// angles, two orientation angles, and coalescence phase. Names follow
// original_source/trunk/SPINspiral_parameters.c's short-name table.
func baseDescriptors() []Descriptor {
	return []Descriptor{
		{Code: 0, ShortName: "Mc", LongName: "chirp mass", Prior: Reflect},
		{Code: 1, ShortName: "eta", LongName: "symmetric mass ratio", Prior: Reflect},
		{Code: 2, ShortName: "tc", LongName: "coalescence time", Prior: Reflect},
		{Code: 3, ShortName: "logdl", LongName: "log distance", Prior: Reflect},
		{Code: 4, ShortName: "ra", LongName: "right ascension", Prior: Wrap2Pi, Angular: true},
		{Code: 5, ShortName: "sindec", LongName: "sin(declination)", Prior: Reflect},
		{Code: 6, ShortName: "cosi", LongName: "cos(inclination)", Prior: Reflect},
		{Code: 7, ShortName: "psi", LongName: "polarization angle", Prior: WrapPi, Angular: true},
		{Code: 8, ShortName: "phase", LongName: "coalescence phase", Prior: Wrap2Pi, Angular: true},
	}
}

func spinDescriptors12() []Descriptor {
	return []Descriptor{
		{Code: 9, ShortName: "a1", LongName: "spin magnitude", Prior: Reflect},
		{Code: 10, ShortName: "costh1", LongName: "cos(spin polar angle)", Prior: Reflect},
		{Code: 11, ShortName: "phi1", LongName: "spin azimuthal angle", Prior: Wrap2Pi, Angular: true},
	}
}

func spinDescriptors15() []Descriptor {
	d := spinDescriptors12()
	return append(d,
		Descriptor{Code: 12, ShortName: "a2", LongName: "spin magnitude (2)", Prior: Reflect},
		Descriptor{Code: 13, ShortName: "costh2", LongName: "cos(spin polar angle) (2)", Prior: Reflect},
		Descriptor{Code: 14, ShortName: "phi2", LongName: "spin azimuthal angle (2)", Prior: Wrap2Pi, Angular: true},
	)
}

// DescriptorsForWaveform builds the descriptor table for a named waveform
// family. Bounds, best values, and start/fix modes are left at their zero
// values and must be filled by the caller (from a run-configuration file,
// out of scope per spec.md §1) before ValidateAll is called.
func DescriptorsForWaveform(w Waveform) ([]Descriptor, error) {
	switch w {
	case Waveform9Par:
		return baseDescriptors(), nil
	case Waveform12Par:
		return append(baseDescriptors(), spinDescriptors12()...), nil
	case Waveform15Par:
		return append(baseDescriptors(), spinDescriptors15()...), nil
	default:
		return nil, fmt.Errorf("config: unknown waveform family %q", w)
	}
}
