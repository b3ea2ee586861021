package cli

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
)

func TestFlagBinding(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)

	var frequency PositiveIntValue
	var pidNamespaces IntListValue
	mapSize := NewIntRangeValue(0, 1<<20, 16384)
	modes := NewEnumListValue([]string{"fp", "dwarf", "smart", "disabled"}, "smart")

	fs.Var(&frequency, "frequency", "")
	fs.Var(&pidNamespaces, "pids", "")
	fs.Var(mapSize, "map-size", "")
	fs.Var(modes, "perf-mode", "")

	err := fs.Parse([]string{
		"--frequency=11",
		"--pids=1,2,3",
		"--map-size=65536",
		"--perf-mode=fp,dwarf",
	})
	require.NoError(t, err)
	require.Equal(t, PositiveIntValue(11), frequency)
	require.Equal(t, IntListValue{1, 2, 3}, pidNamespaces)
	require.Equal(t, 65536, mapSize.Value)
	require.Equal(t, []string{"fp", "dwarf"}, modes.Values)
}

func TestFlagBindingRejectsInvalid(t *testing.T) {
	testdata := []struct {
		name string
		arg  string
	}{
		{"zero frequency", "--frequency=0"},
		{"range max exclusive", "--map-size=1048576"},
		{"unknown mode", "--perf-mode=fp,turbo"},
		{"bad list entry", "--pids=1,2,x"},
	}
	for _, td := range testdata {
		t.Run(td.name, func(t *testing.T) {
			fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
			var frequency PositiveIntValue
			var pids IntListValue
			fs.Var(&frequency, "frequency", "")
			fs.Var(&pids, "pids", "")
			fs.Var(NewIntRangeValue(0, 1<<20, 16384), "map-size", "")
			fs.Var(NewEnumListValue([]string{"fp", "dwarf"}), "perf-mode", "")

			require.Error(t, fs.Parse([]string{td.arg}))
		})
	}
}

func TestValueStrings(t *testing.T) {
	var pids IntListValue
	require.Equal(t, "[]", pids.String())
	require.NoError(t, pids.Set("4,8"))
	require.Equal(t, "4,8", pids.String())

	modes := NewEnumListValue([]string{"a", "b"}, "a")
	require.Equal(t, "a", modes.String())
}
