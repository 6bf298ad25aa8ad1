package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := fmt.Errorf("unexpected token")
	err := NewParseError("table.yaml", 12, underlying)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "table.yaml", parseErr.Path)
	require.Equal(t, 12, parseErr.Line)
	require.True(t, stdErrors.Is(err, underlying))
	require.Contains(t, err.Error(), "table.yaml:12")
}

func TestValidationErrorIncludesField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("headers[1].key", "duplicate column key", nil)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "headers[1].key", validationErr.Field)
	require.Contains(t, validationErr.Message, "duplicate column key")
}

func TestConfigurationErrorNamesMissingSegment(t *testing.T) {
	t.Parallel()

	err := NewConfigurationError("pagination.loadMore.buton", "buton", "")

	var cfgErr *ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
	require.Equal(t, "buton", cfgErr.Segment)
	require.Equal(t, "configuration error: pagination.loadMore.buton: property buton does not exist", err.Error())
}

func TestConfigurationErrorWithoutSegmentUsesMessage(t *testing.T) {
	t.Parallel()

	err := NewConfigurationError("main", "", "row tier not supported")
	require.Equal(t, "configuration error: main: row tier not supported", err.Error())
}

func TestLookupMissMessages(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		err  error
		want string
	}{
		{name: "unknown key with fallback", err: NewLookupMiss(LookupIcon, "iconRocket", "iconPlus"), want: "icon lookup: iconRocket not found (using iconPlus)"},
		{name: "missing key", err: NewLookupMiss(LookupIcon, "", "iconPlus"), want: "icon lookup: missing key (using iconPlus)"},
		{name: "no fallback", err: NewLookupMiss(LookupBreakpoint, "huge", ""), want: "breakpoint lookup: huge not found"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, tc.err.Error())
		})
	}
}
