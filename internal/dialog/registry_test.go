package dialog

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/tablekit/internal/ports"
)

var _ ports.DialogRegistry = (*Registry)(nil)

func TestOpenMakesKeyActive(t *testing.T) {
	t.Parallel()

	r := NewRegistry(nil)
	r.Open("edit")
	r.Open("delete")

	require.True(t, r.IsOpen("edit"))
	require.True(t, r.IsOpen("delete"))
	active, ok := r.Active()
	require.True(t, ok)
	require.Equal(t, "delete", active)
	require.Equal(t, []string{"delete", "edit"}, r.OpenKeys())
}

func TestCloseOnlyClearsActiveKey(t *testing.T) {
	t.Parallel()

	r := NewRegistry(nil)
	r.Open("edit")
	r.Open("delete")

	r.Close("edit")
	require.False(t, r.IsOpen("edit"))
	active, ok := r.Active()
	require.True(t, ok)
	require.Equal(t, "delete", active)

	r.Close("delete")
	_, ok = r.Active()
	require.False(t, ok)
}

func TestUnknownKeyIsClosed(t *testing.T) {
	t.Parallel()

	r := NewRegistry(nil)
	require.False(t, r.IsOpen("missing"))
	r.Close("missing")
	require.False(t, r.IsOpen("missing"))
}

func TestRegistriesAreIndependent(t *testing.T) {
	t.Parallel()

	first := NewRegistry(nil)
	second := NewRegistry(nil)
	first.Open("edit")

	require.False(t, second.IsOpen("edit"))
	_, ok := second.Active()
	require.False(t, ok)
}

func TestConcurrentOpenClose(t *testing.T) {
	t.Parallel()

	r := NewRegistry(nil)
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.Open("edit")
			r.Close("edit")
		}()
	}
	wg.Wait()

	require.False(t, r.IsOpen("edit"))
	r.Reset()
	require.Empty(t, r.OpenKeys())
}
