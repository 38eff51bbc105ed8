package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alexiusacademia/gotab/internal/arch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func defaultDesign(t *testing.T) (*arch.Result, []arch.Profile) {
	t.Helper()
	spec := arch.TimberSpec{PostLength: 1800, PostWidth: 75, RebateDepth: 9}
	result, err := arch.Design(nil, spec, arch.BridgeLayout{Segments: 6, DeckWidth: 7}, 0)
	require.NoError(t, err)
	return result, arch.Profiles(spec, result.Geometry)
}

func findRow(rows []Row, label string) (Row, bool) {
	for _, r := range rows {
		if r.Label == label {
			return r, true
		}
	}
	return Row{}, false
}

func TestRows(t *testing.T) {
	result, _ := defaultDesign(t)
	rows := Rows(result)

	tests := []struct {
		label string
		want  string
	}{
		{"Radius", "2.646 m"},
		{"Segment angle", "18.304°"},
		{"Span", "4.330 m"},
		{"Soffit height", "1.125 m"},
		{"Posts needed", "32.5"},
		{"Posts to order", "33"},
		{"Cross pieces", "2.5"},
		{"Timber mass", "167.8 kg"},
	}
	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			row, ok := findRow(rows, tt.label)
			require.True(t, ok)
			assert.Equal(t, tt.want, row.Formatted())
		})
	}
}

func TestProfileRowsDensity(t *testing.T) {
	_, profiles := defaultDesign(t)

	standard := ProfileRows(profiles, Options{})
	heavy := ProfileRows(profiles, Options{Density: 1020})
	require.Len(t, standard, 4)
	for i := range standard {
		assert.InDelta(t, 2*standard[i].Mass, heavy[i].Mass, 1e-9)
		assert.InDelta(t, profiles[i].Volume()/1e9, standard[i].Volume, 1e-15)
	}
}

func TestWriteXLSX(t *testing.T) {
	result, profiles := defaultDesign(t)
	path := filepath.Join(t.TempDir(), "bridge.xlsx")

	require.NoError(t, WriteXLSX(result, profiles, Options{Name: "Garden footbridge"}, path))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	title, err := f.GetCellValue(SheetBridge, "A1")
	require.NoError(t, err)
	assert.Equal(t, "Garden footbridge", title)

	rows, err := f.GetRows(SheetBridge, excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	values := map[string]string{}
	for _, r := range rows[2:] {
		require.GreaterOrEqual(t, len(r), 3)
		values[r[1]] = r[2]
	}
	assert.Equal(t, "32.5", values["Posts needed"])
	assert.Equal(t, "33", values["Posts to order"])
	assert.Equal(t, "1800", values["Post length"])

	profileRows, err := f.GetRows(SheetProfiles)
	require.NoError(t, err)
	require.Len(t, profileRows, 5)
	assert.Equal(t, arch.DeckPiece, profileRows[1][0])
	assert.Equal(t, arch.EndCrossPiece, profileRows[4][0])
}

func TestWritePDF(t *testing.T) {
	result, profiles := defaultDesign(t)
	path := filepath.Join(t.TempDir(), "bridge.pdf")

	require.NoError(t, WritePDF(result, profiles, Options{}, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "%PDF-"))
}

func TestWritePDFBadPath(t *testing.T) {
	result, profiles := defaultDesign(t)
	err := WritePDF(result, profiles, Options{}, filepath.Join(t.TempDir(), "missing", "bridge.pdf"))
	assert.Error(t, err)
}
