package encounter

import (
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collectConcurrent(t *testing.T, gen IDGenerator, workers, perWorker int) map[string]struct{} {
	t.Helper()

	var (
		mu   sync.Mutex
		seen = make(map[string]struct{}, workers*perWorker)
		wg   sync.WaitGroup
	)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			local := make([]string, 0, perWorker)
			for i := 0; i < perWorker; i++ {
				local = append(local, gen.NewID())
			}
			mu.Lock()
			for _, id := range local {
				seen[id] = struct{}{}
			}
			mu.Unlock()
		}()
	}
	wg.Wait()
	return seen
}

func TestUUIDGenerator(t *testing.T) {
	id := UUIDGenerator{}.NewID()
	parsed, err := uuid.Parse(id)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), parsed.Version())

	seen := collectConcurrent(t, UUIDGenerator{}, 16, 2_000)
	assert.Len(t, seen, 16*2_000)
}

func TestSequentialIDGenerator(t *testing.T) {
	gen := &SequentialIDGenerator{Prefix: "fish-"}
	assert.Equal(t, "fish-1", gen.NewID())
	assert.Equal(t, "fish-2", gen.NewID())

	seen := collectConcurrent(t, gen, 16, 1_000)
	assert.Len(t, seen, 16*1_000)
}
