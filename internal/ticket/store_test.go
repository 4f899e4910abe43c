package ticket

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStorePutGet(t *testing.T) {
	s := NewStore()
	_, err := s.Get("T1")
	assert.ErrorIs(t, err, ErrTicketNotFound)

	s.Put("T1", "first")
	s.Put("T1", "second")
	doc, err := s.Get("T1")
	require.NoError(t, err)
	assert.Equal(t, "second", doc)
}

func TestStoreConcurrentWritersSameKey(t *testing.T) {
	s := NewStore()
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			s.Put("T1", fmt.Sprintf("doc-%03d", i))
			_, _ = s.Get("T1")
		}(i)
	}
	wg.Wait()

	doc, err := s.Get("T1")
	require.NoError(t, err)
	assert.Regexp(t, `^doc-\d{3}$`, doc)
	assert.Equal(t, 1, s.Len())
}
