package universe

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCSV = `Symbol,Name,Sector
AAPL,Apple Inc.,Technology
AMZN,Amazon.com,Consumer Discretionary
MSFT,Microsoft,Technology
,skipped row,
IBM,International Business Machines,Technology
`

func TestRead(t *testing.T) {
	records, err := Read(strings.NewReader(sampleCSV))
	require.NoError(t, err)
	require.Len(t, records, 4, "blank symbols are skipped")

	assert.Equal(t, Record{Symbol: "AAPL", Name: "Apple Inc.", Sector: "Technology"}, records[0])
	assert.Equal(t, "IBM", records[3].Symbol)
}

func TestRead_TickerHeaderAndMissingColumns(t *testing.T) {
	csv := "Ticker\nAAPL\nMSFT\n"
	records, err := Read(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "AAPL", records[0].Symbol)
	assert.Empty(t, records[0].Name)
}

func TestFilterPrefix(t *testing.T) {
	records, err := Read(strings.NewReader(sampleCSV))
	require.NoError(t, err)

	assert.Equal(t, []string{"AAPL", "AMZN"}, FilterPrefix(records, "A"))
	assert.Equal(t, []string{"AAPL", "AMZN"}, FilterPrefix(records, "a"), "prefix match is case-insensitive")
	assert.Equal(t, []string{"AAPL", "AMZN", "MSFT", "IBM"}, FilterPrefix(records, ""))
	assert.Nil(t, FilterPrefix(records, "Z"))
}
