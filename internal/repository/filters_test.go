package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContainsPattern(t *testing.T) {
	tests := []struct {
		search string
		want   string
	}{
		{"night", "%night%"},
		{"100%", `%100\%%`},
		{"gate_3", `%gate\_3%`},
		{`c:\guards`, `%c:\\guards%`},
		{"", "%%"},
	}
	for _, tt := range tests {
		t.Run(tt.search, func(t *testing.T) {
			assert.Equal(t, tt.want, containsPattern(tt.search))
		})
	}
}

func TestTeamSizeRange(t *testing.T) {
	lo, hi, ok := TeamSizeMedium.Range()
	assert.True(t, ok)
	assert.Equal(t, 4, lo)
	assert.Equal(t, 10, hi)

	_, _, ok = TeamSize("huge").Range()
	assert.False(t, ok)
}
