// Package output implements the per-chain text output format spec.md §6
// describes: a header block, a column header, and one line per retained
// iteration, flushed after every record so partial runs leave a valid
// prefix (spec §5).
package output

import (
	"bufio"
	"fmt"
	"os"

	"github.com/gwastro/gwmcmc/internal/config"
)

// DetectorInfo is one line of the header's per-detector block (spec §6).
type DetectorInfo struct {
	Name      string
	SNR       float64
	FreqLow   float64
	FreqHigh  float64
	Window    string
	FFTLength float64
}

// Header carries every field spec.md §6's header block requires.
type Header struct {
	NIter      int
	NBurn      int
	Seed       int64
	NullLogL   float64
	NCorr      int
	NTemps     int
	TMax       float64
	TChain     float64
	NetworkSNR float64
	Detectors  []DetectorInfo

	// RunID is a non-normative extra column (SPEC_FULL.md domain-stack
	// expansion) correlating this file with logs from the same invocation.
	RunID string

	Descriptors []config.Descriptor
}

// FileName builds the "mcmc.output.<seed6>.<tempIndex2>" name spec.md §6
// mandates.
func FileName(seed int64, tempIndex int) string {
	s := seed % 1000000
	if s < 0 {
		s += 1000000
	}
	return fmt.Sprintf("mcmc.output.%06d.%02d", s, tempIndex)
}

// Writer emits one retained chain's output file.
type Writer struct {
	file *os.File
	buf  *bufio.Writer
	gps  []bool // per-descriptor: use the wide GPS-time field format
}

// Create opens (truncating) the output file for one chain at the given
// directory and temperature index.
func Create(dir string, seed int64, tempIndex int) (*Writer, error) {
	path := dir + string(os.PathSeparator) + FileName(seed, tempIndex)
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("output: create %s: %w", path, err)
	}
	return &Writer{file: f, buf: bufio.NewWriter(f)}, nil
}

// WriteHeader writes the header block and the column header line.
func (w *Writer) WriteHeader(h Header) error {
	fmt.Fprintf(w.buf, "%d %d %d %.6f %d %d %d %.6f %.6f %.6f",
		h.NIter, h.NBurn, h.Seed, h.NullLogL, len(h.Detectors), h.NCorr, h.NTemps,
		h.TMax, h.TChain, h.NetworkSNR)
	if h.RunID != "" {
		fmt.Fprintf(w.buf, " %s", h.RunID)
	}
	fmt.Fprintln(w.buf)

	for _, d := range h.Detectors {
		fmt.Fprintf(w.buf, "%s %.6f %.6f %.6f %s %.6f\n",
			d.Name, d.SNR, d.FreqLow, d.FreqHigh, d.Window, d.FFTLength)
	}

	w.gps = make([]bool, len(h.Descriptors))
	fmt.Fprint(w.buf, "cycle logL")
	for i, d := range h.Descriptors {
		fmt.Fprintf(w.buf, " %s", d.ShortName)
		w.gps[i] = isGPSColumn(d)
	}
	fmt.Fprintln(w.buf)

	return w.flush()
}

// isGPSColumn reports whether a descriptor holds a GPS time (the
// coalescence-time parameter), which spec.md §6 formats in a wider field.
func isGPSColumn(d config.Descriptor) bool {
	return d.ShortName == "tc"
}

// WriteRecord emits one iteration's record: the cycle index, log-likelihood,
// and full parameter vector. GPS-time columns use an 18-wide field; all
// other parameters use fixed 6-decimal precision (spec §6).
func (w *Writer) WriteRecord(cycle int64, logL float64, params []float64) error {
	fmt.Fprintf(w.buf, "%d %.6f", cycle, logL)
	for i, v := range params {
		if i < len(w.gps) && w.gps[i] {
			fmt.Fprintf(w.buf, " %18.9f", v)
		} else {
			fmt.Fprintf(w.buf, " %.6f", v)
		}
	}
	fmt.Fprintln(w.buf)
	return w.flush()
}

// flush pushes buffered bytes to the OS after every record so a partial run
// leaves a valid prefix (spec §5).
func (w *Writer) flush() error {
	if err := w.buf.Flush(); err != nil {
		return fmt.Errorf("output: flush: %w", err)
	}
	return nil
}

// Close flushes and closes the underlying file.
func (w *Writer) Close() error {
	if err := w.flush(); err != nil {
		return err
	}
	return w.file.Close()
}
