package samples

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseCollapsed(t *testing.T) {
	input := strings.Join([]string{
		"python;main;foo 5",
		"",
		"python;main;bar 3",
		"python;main;foo 2",
	}, "\n")
	s, err := ParseCollapsed(strings.NewReader(input))
	require.NoError(t, err)
	require.Equal(t, StackToSampleCount{
		"python;main;foo": 7,
		"python;main;bar": 3,
	}, s)
}

func TestParseCollapsedErrors(t *testing.T) {
	testdata := []struct {
		name  string
		input string
	}{
		{"no count", "python;main;foo"},
		{"bad count", "python;main;foo x"},
		{"negative count", "python;main;foo -1"},
	}
	for _, td := range testdata {
		t.Run(td.name, func(t *testing.T) {
			_, err := ParseCollapsed(strings.NewReader(td.input))
			require.Error(t, err)
			require.Contains(t, err.Error(), td.input)
		})
	}
}

func TestCollapsedDeterministic(t *testing.T) {
	s := StackToSampleCount{
		"python;main;foo": 5,
		"java;run":        1,
	}
	expected := "java;run 1\npython;main;foo 5\n"
	require.Equal(t, expected, s.Collapsed())

	parsed, err := ParseCollapsed(strings.NewReader(s.Collapsed()))
	require.NoError(t, err)
	require.Equal(t, s, parsed)
}
