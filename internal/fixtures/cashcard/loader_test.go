package cashcard

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSeedCSVEmbedded(t *testing.T) {
	creates, err := LoadSeedCSV("")
	require.NoError(t, err)
	require.Len(t, creates, 1)
	assert.Equal(t, int64(99), creates[0].ID)
	assert.True(t, decimal.RequireFromString("123.45").Equal(creates[0].Amount))
}

func TestParseSeedCSV(t *testing.T) {
	testCases := []struct {
		desc    string
		csv     string
		wantLen int
		wantErr bool
	}{
		{
			desc:    "multiple rows",
			csv:     "id,amount\n1,0\n2,9.99\n",
			wantLen: 2,
		},
		{
			desc:    "short rows skipped",
			csv:     "id,amount\n42\n7,1.23\n",
			wantLen: 1,
		},
		{
			desc:    "missing header column",
			csv:     "id\n1\n",
			wantErr: true,
		},
		{
			desc:    "non-numeric id",
			csv:     "id,amount\nabc,1.00\n",
			wantErr: true,
		},
		{
			desc:    "negative amount rejected",
			csv:     "id,amount\n1,-5.00\n",
			wantErr: true,
		},
		{
			desc:    "zero id rejected",
			csv:     "id,amount\n0,5.00\n",
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			creates, err := parseSeedCSV(strings.NewReader(tc.csv))
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Len(t, creates, tc.wantLen)
		})
	}
}
