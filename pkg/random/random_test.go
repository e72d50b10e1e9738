package random

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSameSeedSameSequence(t *testing.T) {
	a := New(42)
	b := New(42)
	for i := 0; i < 100; i++ {
		assert.Equal(t, a.Int63(), b.Int63())
	}
}

func TestSharedAcrossGoroutines(t *testing.T) {
	r := New(1)

	const workers = 8
	const picks = 1000
	out := make([][]int, workers)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < picks; i++ {
				out[w] = append(out[w], r.Intn(6))
			}
		}(w)
	}
	wg.Wait()

	for _, vals := range out {
		assert.Len(t, vals, picks)
		for _, n := range vals {
			assert.GreaterOrEqual(t, n, 0)
			assert.Less(t, n, 6)
		}
	}
}
