package network

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePriority(t *testing.T) {
	tests := []struct {
		label    string
		expected Priority
	}{
		{"💰 Best Price", PriorityBestPrice},
		{"⚡ Fastest Internet", PriorityFastestInternet},
		{"📱 Overall Quality", PriorityOverallQuality},
		{"📞 Best Service", PriorityBestService},
		{"Best Price", PriorityBestPrice},
		{"something else entirely", PriorityBestService},
		{"", PriorityBestService},
	}

	for _, test := range tests {
		assert.Equal(t, test.expected, ParsePriority(test.label), "label %q", test.label)
	}
}

func TestScoreString(t *testing.T) {
	assert.Equal(t, "N/A", Score{}.String())
	assert.Equal(t, "7.9/10", Score{Mean: 7.93, N: 12}.String())
	assert.False(t, Score{}.Valid())
	assert.True(t, Score{Mean: 1, N: 1}.Valid())
}

func TestParseNetwork(t *testing.T) {
	n, ok := Parse("Orange")
	assert.True(t, ok)
	assert.Equal(t, Orange, n)

	_, ok = Parse("Vodacom")
	assert.False(t, ok)
}

func TestWebsites(t *testing.T) {
	for _, n := range All() {
		assert.NotEmpty(t, n.Website())
	}
}
