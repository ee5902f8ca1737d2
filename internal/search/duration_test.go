package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "hours and minutes", input: "PT2H30M", want: "2H 30M"},
		{name: "minutes only", input: "PT45M", want: "45M"},
		{name: "hours only keeps trailing space", input: "PT5H", want: "5H "},
		{name: "long flight", input: "PT14H5M", want: "14H 5M"},
		{name: "zero components", input: "PT0H0M", want: "0H 0M"},
		{name: "empty components degrade to stripped input", input: "PT", want: ""},
		{name: "no PT prefix passes through", input: "9H45M", want: "9H45M"},
		{name: "trailing garbage passes through stripped", input: "PT2H30M10S", want: "2H30M10S"},
		{name: "empty input", input: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatDuration(tt.input))
		})
	}
}
