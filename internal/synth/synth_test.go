package synth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSameSeedSameSequence(t *testing.T) {
	a := New(42)
	b := New(42)
	for i := 0; i < 50; i++ {
		assert.Equal(t, a.Float64(), b.Float64())
		assert.Equal(t, a.IntBetween(1, 100), b.IntBetween(1, 100))
		assert.Equal(t, a.Company(), b.Company())
		assert.Equal(t, a.LogNormal(5.5, 0.45), b.LogNormal(5.5, 0.45))
	}
}

func TestDifferentSeedsDiverge(t *testing.T) {
	a := New(1)
	b := New(2)
	same := true
	for i := 0; i < 10; i++ {
		if a.Float64() != b.Float64() {
			same = false
		}
	}
	assert.False(t, same)
}

func TestChildStreamsAreIndependent(t *testing.T) {
	// Reference: draw from child 2 of a fresh context.
	ref := New(7).Child(2)
	want := make([]float64, 20)
	for i := range want {
		want[i] = ref.Float64()
	}

	// Same child after heavy unrelated draws on the parent and a sibling.
	root := New(7)
	for i := 0; i < 100; i++ {
		root.Float64()
		root.Company()
	}
	sibling := root.Child(1)
	for i := 0; i < 100; i++ {
		sibling.IntBetween(0, 1000)
	}
	got := root.Child(2)
	for i := range want {
		assert.Equal(t, want[i], got.Float64(), "draw %d perturbed by unrelated streams", i)
	}
}

func TestStreamsAreDecorrelated(t *testing.T) {
	// Identity draws must not consume from the general stream.
	a := New(11)
	b := New(11)
	b.Company()
	b.FirstName()
	b.IPv4()
	assert.Equal(t, a.Float64(), b.Float64())

	// Nor must numeric draws.
	c := New(11)
	c.LogNormal(5.5, 0.45)
	d := New(11)
	assert.Equal(t, d.Float64(), c.Float64())
}

func TestUniformBounds(t *testing.T) {
	c := New(3)
	for i := 0; i < 1000; i++ {
		v := c.Uniform(0.85, 1.15)
		assert.GreaterOrEqual(t, v, 0.85)
		assert.Less(t, v, 1.15)
	}
}

func TestIntBetween(t *testing.T) {
	c := New(4)
	seen := make(map[int]bool)
	for i := 0; i < 1000; i++ {
		v := c.IntBetween(6, 9)
		require.GreaterOrEqual(t, v, 6)
		require.LessOrEqual(t, v, 9)
		seen[v] = true
	}
	assert.Len(t, seen, 4, "all values in the inclusive range occur")
	assert.Equal(t, 5, c.IntBetween(5, 5))
	assert.Equal(t, 5, c.IntBetween(5, 3), "inverted range collapses to lo")
}

func TestBool(t *testing.T) {
	c := New(5)
	for i := 0; i < 100; i++ {
		assert.False(t, c.Bool(0))
		assert.True(t, c.Bool(1))
	}
}

func TestTimeWindow(t *testing.T) {
	c := New(6)
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 500; i++ {
		v := c.Time(start, end)
		assert.False(t, v.Before(start))
		assert.False(t, v.After(end))
		assert.Zero(t, v.Nanosecond())
	}
	assert.Equal(t, start, c.Time(start, start))
	assert.Equal(t, end, c.Time(end, start), "inverted window collapses to start")
}

func TestWeightedPick(t *testing.T) {
	c := New(8)
	items := []string{"a", "b", "c"}
	for i := 0; i < 200; i++ {
		assert.Equal(t, "b", WeightedPick(c, items, []float64{0, 1, 0}))
	}

	counts := make(map[string]int)
	for i := 0; i < 5000; i++ {
		counts[WeightedPick(c, items, []float64{0.8, 0.1, 0.1})]++
	}
	assert.Greater(t, counts["a"], counts["b"])
	assert.Greater(t, counts["a"], counts["c"])
}

func TestSample(t *testing.T) {
	c := New(9)
	items := []string{"a", "b", "c", "d", "e"}
	original := append([]string(nil), items...)

	got := Sample(c, items, 3)
	assert.Len(t, got, 3)
	seen := make(map[string]bool)
	for _, v := range got {
		assert.False(t, seen[v], "sampled %s twice", v)
		seen[v] = true
	}
	assert.Equal(t, original, items, "source slice must not be mutated")

	all := Sample(c, items, 10)
	assert.Len(t, all, 5, "oversized k clips to the population")
	assert.ElementsMatch(t, original, all)
}
