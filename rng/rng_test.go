package rng_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tilemaze/rng"
)

// drawN collects n draws of IntN(bound).
func drawN(src rng.Source, bound, n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = src.IntN(bound)
	}

	return out
}

// TestLCG_Int32_KnownValues pins the first unbounded draw for well-known seeds.
func TestLCG_Int32_KnownValues(t *testing.T) {
	assert.Equal(t, int32(-1170105035), rng.NewLCG(42).Int32())
	assert.Equal(t, int32(-1155484576), rng.NewLCG(0).Int32())
}

func TestLCG_IntN_Sequences(t *testing.T) {
	cases := []struct {
		name  string
		seed  int64
		bound int
		want  []int
	}{
		{"Modulo", 42, 10, []int{0, 3, 8, 4, 0, 5, 5, 8, 9, 3}},
		{"PowerOfTwo", 0, 4, []int{2, 3, 0, 2, 2}},
		{"NegativeSeed", -7, 3, []int{1, 0, 1, 0, 0, 2}},
		{"LargeBound", 42, 1<<30 + 1, []int{117392763, 102948884, 662969970, 595021505, 196118093, 969067502}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := drawN(rng.NewLCG(tc.seed), tc.bound, len(tc.want))
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestLCG_IntN_Range(t *testing.T) {
	src := rng.NewLCG(2024)
	for bound := 1; bound <= 9; bound++ {
		for i := 0; i < 500; i++ {
			v := src.IntN(bound)
			require.GreaterOrEqual(t, v, 0)
			require.Less(t, v, bound)
		}
	}
}

func TestLCG_IntN_PanicsOnBadBound(t *testing.T) {
	src := rng.NewLCG(1)
	assert.Panics(t, func() { src.IntN(0) })
	assert.Panics(t, func() { src.IntN(-3) })
}

// TestSources_SeedDeterminism checks that both source kinds replay identically per seed.
func TestSources_SeedDeterminism(t *testing.T) {
	for name, newSource := range map[string]func(int64) rng.Source{
		"lcg":  rng.NewLCGSource,
		"math": rng.NewMathSource,
	} {
		t.Run(name, func(t *testing.T) {
			a := drawN(newSource(99), 7, 64)
			b := drawN(newSource(99), 7, 64)
			assert.Equal(t, a, b)
		})
	}
}

func TestRandomSeed_Range(t *testing.T) {
	for i := 0; i < 200; i++ {
		s := rng.RandomSeed()
		require.GreaterOrEqual(t, s, int64(0))
		require.Less(t, s, int64(rng.MaxSeed))
	}
}
