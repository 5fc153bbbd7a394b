package output

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gwastro/gwmcmc/internal/config"
)

func TestFileNameFormat(t *testing.T) {
	require.Equal(t, "mcmc.output.001234.03", FileName(1234, 3))
	require.Equal(t, "mcmc.output.000042.00", FileName(1000042, 0))
	require.Equal(t, "mcmc.output.999958.00", FileName(-42, 0))
}

// TestWriteRecordSchema covers spec.md §8 property 9: the column header
// line lists exactly one name per descriptor, in order, and every record
// has the same number of whitespace-separated fields as the header.
func TestWriteRecordSchema(t *testing.T) {
	dir := t.TempDir()
	w, err := Create(dir, 77, 1)
	require.NoError(t, err)

	descriptors := []config.Descriptor{
		{ShortName: "tc"},
		{ShortName: "mc"},
	}
	require.NoError(t, w.WriteHeader(Header{
		NIter: 10, NBurn: 5, Seed: 77, NCorr: 100, NTemps: 2, TMax: 10,
		TChain: 1, Descriptors: descriptors,
	}))
	require.NoError(t, w.WriteRecord(0, -1.5, []float64{1234567890.123456789, 30.2}))
	require.NoError(t, w.Close())

	data, err := os.ReadFile(filepath.Join(dir, FileName(77, 1)))
	require.NoError(t, err)
	lines := splitLines(string(data))
	require.GreaterOrEqual(t, len(lines), 3)

	columnHeader := fields(lines[1])
	require.Equal(t, []string{"cycle", "logL", "tc", "mc"}, columnHeader)

	record := fields(lines[2])
	require.Equal(t, len(columnHeader), len(record))
}

func TestGPSColumnUsesWideField(t *testing.T) {
	d := config.Descriptor{ShortName: "tc"}
	require.True(t, isGPSColumn(d))
	d2 := config.Descriptor{ShortName: "mc"}
	require.False(t, isGPSColumn(d2))
}

func splitLines(s string) []string {
	var lines []string
	start := 0
	for i, c := range s {
		if c == '\n' {
			lines = append(lines, s[start:i])
			start = i + 1
		}
	}
	if start < len(s) {
		lines = append(lines, s[start:])
	}
	return lines
}

func fields(s string) []string {
	var out []string
	cur := ""
	for _, c := range s {
		if c == ' ' {
			if cur != "" {
				out = append(out, cur)
				cur = ""
			}
			continue
		}
		cur += string(c)
	}
	if cur != "" {
		out = append(out, cur)
	}
	return out
}
