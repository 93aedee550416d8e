package compare

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func paths(changes []Change) []string {
	out := make([]string, 0, len(changes))
	for _, c := range changes {
		out = append(out, c.Path)
	}
	return out
}

func TestCompare_Identical(t *testing.T) {
	listing := []string{"compute/vm.svg", "storage/blob.svg"}

	result := Compare(listing, listing)

	require.False(t, result.HasChanges())
	require.Equal(t, result.RemoteDigest, result.IndexDigest)
	require.Equal(t, 2, result.RemoteCount)
	require.Equal(t, 2, result.IndexCount)
	require.Contains(t, FormatReport(result), "Index is up to date.")
}

func TestCompare_MissingAndStale(t *testing.T) {
	index := []string{"compute/old.svg", "compute/vm.svg"}
	remote := []string{"ai/bot.svg", "compute/vm.svg", "storage/blob.svg"}

	result := Compare(index, remote)

	require.True(t, result.HasChanges())
	require.NotEqual(t, result.RemoteDigest, result.IndexDigest)
	require.Equal(t, []string{"ai/bot.svg", "storage/blob.svg"}, paths(result.Missing))
	require.Equal(t, []string{"compute/old.svg"}, paths(result.Stale))
	for _, c := range result.Missing {
		require.Equal(t, Missing, c.Type)
	}
	require.Equal(t, Stale, result.Stale[0].Type)
}

func TestCompare_EmptyIndex(t *testing.T) {
	result := Compare(nil, []string{"a.svg"})

	require.Equal(t, []string{"a.svg"}, paths(result.Missing))
	require.Empty(t, result.Stale)
}

func TestFormatReport_Changes(t *testing.T) {
	result := Compare([]string{"gone.svg"}, []string{"new.svg"})

	report := FormatReport(result)

	require.Contains(t, report, "MISSING (1 icons):\n  + new.svg\n")
	require.Contains(t, report, "STALE (1 entries):\n  - gone.svg\n")
	require.Contains(t, report, "Summary: 1 missing, 1 stale")
	require.NotContains(t, report, "up to date")
}
