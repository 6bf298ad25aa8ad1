package diff

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUnifiedIdentical(t *testing.T) {
	t.Parallel()

	content := []byte("breakpoint: lg\ncolumnToShow: 5\n")
	require.Empty(t, Unified(content, content, "a", "b"))
}

func TestUnifiedChanges(t *testing.T) {
	t.Parallel()

	before := []byte("breakpoint: xxl\ncolumnToShow: 6\nrows: 4\n")
	after := []byte("breakpoint: xm\ncolumnToShow: 2\nrows: 4\n")

	out := Unified(before, after, "1600px", "500px")
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")

	require.Equal(t, "--- 1600px", lines[0])
	require.Equal(t, "+++ 500px", lines[1])
	require.Equal(t, "@@ -1,3 +1,3 @@", lines[2])
	require.Contains(t, lines, "-breakpoint: xxl")
	require.Contains(t, lines, "+breakpoint: xm")
	require.Contains(t, lines, "-columnToShow: 6")
	require.Contains(t, lines, "+columnToShow: 2")
	require.Contains(t, lines, " rows: 4")
}

func TestUnifiedEmptySide(t *testing.T) {
	t.Parallel()

	out := Unified(nil, []byte("a\nb\n"), "none", "some")
	require.Contains(t, out, "@@ -1,0 +1,2 @@")
	require.Contains(t, out, "+a\n+b\n")
}

func TestUnifiedTruncates(t *testing.T) {
	t.Parallel()

	var before, after strings.Builder
	for i := 0; i < maxDiffLines+10; i++ {
		fmt.Fprintf(&before, "old %d\n", i)
		fmt.Fprintf(&after, "new %d\n", i)
	}

	out := Unified([]byte(before.String()), []byte(after.String()), "a", "b")
	require.True(t, strings.HasSuffix(out, truncateMessage+"\n"))
}

func TestStats(t *testing.T) {
	t.Parallel()

	added, removed := Stats([]byte("a\nb\nc\n"), []byte("a\nx\ny\nc\n"))
	require.Equal(t, 2, added)
	require.Equal(t, 1, removed)
}
