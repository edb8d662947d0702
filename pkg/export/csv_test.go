package export

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCSV(t *testing.T) {
	nid := "A-100"
	data, err := CSV(
		[]string{"ID", "Name", "National ID", "Amount"},
		[][]interface{}{
			{int64(1), "Jane Doe", &nid, 150.5},
			{int64(2), "John Roe", (*string)(nil), 0.0},
		},
	)
	require.NoError(t, err)

	assert.Equal(t,
		"ID,Name,National ID,Amount\n"+
			"1,Jane Doe,A-100,150.50\n"+
			"2,John Roe,,0.00\n",
		string(data),
	)
}

func TestCSVQuotesSpecialCharacters(t *testing.T) {
	data, err := CSV(
		[]string{"Name", "Notes"},
		[][]interface{}{
			{"Doe, Jane", `said "hello"`},
		},
	)
	require.NoError(t, err)
	assert.Equal(t, "Name,Notes\n\"Doe, Jane\",\"said \"\"hello\"\"\"\n", string(data))
}

func TestCSVRejectsRaggedRows(t *testing.T) {
	_, err := CSV([]string{"A", "B"}, [][]interface{}{{"only-one"}})
	assert.Error(t, err)
}
