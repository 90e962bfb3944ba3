package export

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample() Dataset {
	return Dataset{
		Title:   "Math on Monday at 09:00",
		Headers: []string{"Tutor", "Cost"},
		Rows:    [][]string{{"Ana", "50.00"}, {"Bruno, Jr.", "40.00"}},
	}
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, FormatCSV, f)

	f, err = ParseFormat(" PDF ")
	require.NoError(t, err)
	assert.Equal(t, FormatPDF, f)

	_, err = ParseFormat("xlsx")
	assert.Error(t, err)
}

func TestRenderCSV(t *testing.T) {
	out, err := Render(FormatCSV, sample())
	require.NoError(t, err)
	assert.Equal(t, "Tutor,Cost\nAna,50.00\n\"Bruno, Jr.\",40.00\n", string(out))
}

func TestRenderPDF(t *testing.T) {
	out, err := Render(FormatPDF, sample())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
}

func TestRenderRejectsRaggedRows(t *testing.T) {
	data := sample()
	data.Rows = append(data.Rows, []string{"only one"})
	_, err := Render(FormatCSV, data)
	assert.Error(t, err)

	_, err = Render(FormatCSV, Dataset{})
	assert.Error(t, err)
}
