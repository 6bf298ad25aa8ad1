package iconcache

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/tablekit/internal/domain/action"
	"github.com/alexisbeaulieu97/tablekit/internal/logger"
)

func waitResolved(t *testing.T, h *Handle) Component {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	component, err := h.Wait(ctx)
	require.NoError(t, err)
	require.Equal(t, Resolved, h.State())
	return component
}

func TestResolveReturnsSameHandle(t *testing.T) {
	t.Parallel()

	cache := New(nil, nil)
	first := cache.Resolve("iconEdit")
	second := cache.Resolve("iconEdit")

	require.Same(t, first, second)
	component := waitResolved(t, first)
	require.Equal(t, "iconEdit", component.Name)
	require.Equal(t, "✎", component.Glyph)
}

func TestHandleIsSharedBeforeLoadSettles(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	var calls atomic.Int32
	cache := New(map[string]Loader{
		"iconSlow": func() (Component, error) {
			calls.Add(1)
			<-release
			return Component{Name: "iconSlow"}, nil
		},
	}, nil)

	first := cache.Resolve("iconSlow")
	second := cache.Resolve("iconSlow")
	require.Same(t, first, second)
	require.Equal(t, Pending, first.State())

	close(release)
	waitResolved(t, first)
	require.Equal(t, int32(1), calls.Load())
}

func TestConcurrentResolveCreatesOneHandle(t *testing.T) {
	t.Parallel()

	cache := New(nil, nil)
	handles := make([]*Handle, 32)
	var wg sync.WaitGroup
	for i := range handles {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			handles[i] = cache.Resolve("iconView")
		}(i)
	}
	wg.Wait()

	for _, h := range handles {
		require.Same(t, handles[0], h)
	}
}

func TestFallbacksLogOnce(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := logger.New(logger.Options{Writer: buf})
	require.NoError(t, err)
	cache := New(nil, log)

	empty := cache.Resolve("")
	require.Same(t, empty, cache.Resolve(""))
	rocket := cache.Resolve("iconRocket")
	require.Same(t, rocket, cache.Resolve("iconRocket"))

	plus := cache.Resolve(DefaultIconType)
	require.Same(t, plus, empty)
	require.Same(t, plus, rocket)
	require.Equal(t, DefaultIconType, rocket.IconType())

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	require.Contains(t, lines[0], `"fallback":"iconPlus"`)
	require.Contains(t, lines[1], `"icon_type":"iconRocket"`)

	require.Equal(t, "+", waitResolved(t, rocket).Glyph)
}

func TestFallbackWithoutDefaultFails(t *testing.T) {
	t.Parallel()

	cache := New(map[string]Loader{}, nil)
	h := cache.Resolve("iconEdit")

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	_, err := h.Wait(ctx)
	require.Error(t, err)
	require.Equal(t, Failed, h.State())
}

func TestLoaderFailures(t *testing.T) {
	t.Parallel()

	boom := errors.New("network down")
	cache := New(map[string]Loader{
		"iconBroken": func() (Component, error) { return Component{}, boom },
		"iconPanics": func() (Component, error) { panic("bad asset") },
	}, nil)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	broken := cache.Resolve("iconBroken")
	_, err := broken.Wait(ctx)
	require.ErrorIs(t, err, boom)
	require.Equal(t, Failed, broken.State())

	panics := cache.Resolve("iconPanics")
	_, err = panics.Wait(ctx)
	require.ErrorContains(t, err, "bad asset")
}

func TestWaitHonorsContext(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	defer close(release)
	cache := New(map[string]Loader{
		"iconSlow": func() (Component, error) {
			<-release
			return Component{}, nil
		},
	}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := cache.Resolve("iconSlow").Wait(ctx)
	require.ErrorIs(t, err, context.Canceled)
}

func TestResolveColumnSkipsMissingIconType(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := logger.New(logger.Options{Writer: buf})
	require.NoError(t, err)
	cache := New(nil, log)

	view, err := action.Icon("view")
	require.NoError(t, err)
	blank, err := action.Icon("edit")
	require.NoError(t, err)
	blank.UpdateIconType("")

	handles := cache.ResolveColumn(&action.Column{
		ActivityType: action.ActivityIcon,
		ActivityList: []*action.Action{view, blank, view},
	})

	require.Len(t, handles, 3)
	require.NotNil(t, handles[0])
	require.Nil(t, handles[1])
	require.Same(t, handles[0], handles[2])
	require.Equal(t, 1, cache.Len())
	require.Contains(t, buf.String(), `"activity_index":1`)
	require.Nil(t, cache.ResolveColumn(nil))
}

func TestCachesAreIndependent(t *testing.T) {
	t.Parallel()

	first := New(nil, nil)
	second := New(nil, nil)
	require.NotSame(t, first.Resolve("iconList"), second.Resolve("iconList"))
}
