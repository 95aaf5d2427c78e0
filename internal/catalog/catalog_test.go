package catalog

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/invitekit/invitekit/internal/schema"
)

func TestNormalizeID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw  string
		want int
	}{
		{"classic", 1},
		{"modern", 2},
		{"bohemian", 3},
		{"Classic", 1},
		{" bohemian ", 3},
		{"7", 7},
		{"24", 24},
		{"0", 0},
		{"-3", 0},
		{"", 0},
		{"vintage", 0},
		{"3.5", 0},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, NormalizeID(tt.raw), "raw %q", tt.raw)
	}
}

func TestLegacyIDsResolveToSameDescriptors(t *testing.T) {
	t.Parallel()

	pairs := map[string]int{"classic": 1, "modern": 2, "bohemian": 3}
	for name, id := range pairs {
		byName, ok := Get(NormalizeID(name))
		require.True(t, ok)
		byID, ok := Get(id)
		require.True(t, ok)
		require.Equal(t, byID, byName)
	}
}

func TestCatalogReferentialIntegrity(t *testing.T) {
	t.Parallel()

	for _, d := range All() {
		s := schema.Lookup(string(d.Category))
		require.Equal(t, d.Category, s.Category, "template %d references unregistered category %s", d.ID, d.Category)
	}
}

func TestCatalogIDsStableAndUnique(t *testing.T) {
	t.Parallel()

	all := All()
	require.Len(t, all, 24)
	seen := make(map[int]bool)
	for i, d := range all {
		require.Equal(t, i+1, d.ID, "ids must stay dense and ordered")
		require.False(t, seen[d.ID])
		seen[d.ID] = true
	}
}

func TestDescriptorsWellFormed(t *testing.T) {
	t.Parallel()

	known := make(map[Layout]bool, len(Layouts))
	for _, l := range Layouts {
		known[l] = true
	}

	for _, d := range All() {
		require.True(t, known[d.Layout], "template %d has unknown layout %s", d.ID, d.Layout)
		require.NotEmpty(t, d.Name, "template %d", d.ID)
		require.NotEmpty(t, d.BackgroundAsset, "template %d", d.ID)
		require.NotEmpty(t, d.AccentColor, "template %d", d.ID)
		require.GreaterOrEqual(t, d.AvatarCount, 0, "template %d", d.ID)
		require.LessOrEqual(t, d.AvatarCount, 2, "template %d", d.ID)
		require.Len(t, d.AvatarGlyphs, d.AvatarCount, "template %d glyphs must match arity", d.ID)
	}
}

func TestGetUnknown(t *testing.T) {
	t.Parallel()

	_, ok := Get(999)
	require.False(t, ok)
	_, ok = Get(0)
	require.False(t, ok)
}

func TestAllReturnsCopy(t *testing.T) {
	t.Parallel()

	first := All()
	first[0].Name = "mutated"
	second := All()
	require.NotEqual(t, "mutated", second[0].Name)
}
