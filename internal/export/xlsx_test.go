package export

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestXLSXRoundTrip(t *testing.T) {
	data, err := XLSX(Table{
		Sheet:  "Roster",
		Header: []string{"Guard", "Society", "Days"},
		Rows: [][]interface{}{
			{"Mahesh Pawar", "Green Meadows", 31},
			{"Sunil More", "Blue Ridge", 7},
		},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, data)

	rows, err := ReadRows(data, "Roster")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"Guard", "Society", "Days"}, rows[0])
	assert.Equal(t, []string{"Mahesh Pawar", "Green Meadows", "31"}, rows[1])
	assert.Equal(t, "Blue Ridge", rows[2][1])
}

func TestXLSXHeaderOnly(t *testing.T) {
	data, err := XLSX(Table{Header: []string{"Date", "Visits"}})
	require.NoError(t, err)

	rows, err := ReadRows(data, "Sheet1")
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}
