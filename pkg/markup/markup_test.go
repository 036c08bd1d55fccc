package markup

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/open-cli-collective/adorn/pkg/sgr"
)

func TestNewParser_FlagRangeValidation(t *testing.T) {
	limit := sgr.Default().Limit()

	_, err := NewParser(WithStyles(limit))
	var flagErr *FlagError
	require.ErrorAs(t, err, &flagErr)
	assert.Equal(t, limit, flagErr.Value)

	_, err = NewParser(WithAlways("x", limit+3))
	require.ErrorAs(t, err, &flagErr)

	// Everything below the limit is fine.
	_, err = NewParser(WithStyles(limit - 1))
	require.NoError(t, err)
}

func TestNewParser_LaterAlwaysOverwrites(t *testing.T) {
	p, err := NewParser(
		WithAlways("x", sgr.Red),
		WithAlways("x", sgr.Blue),
	)
	require.NoError(t, err)

	out, err := p.Render("<x>")
	require.NoError(t, err)
	assert.Equal(t, "\x1b[34mx\x1b[0;m", out)
}

func TestWithStyles_FlattensAcrossCalls(t *testing.T) {
	p, err := NewParser(
		WithStyles(sgr.Bold),
		WithStyles(sgr.Red, sgr.Underline),
	)
	require.NoError(t, err)

	out, err := p.Render("<a> <b> <c>")
	require.NoError(t, err)
	assert.Equal(t, "\x1b[1ma\x1b[0;m \x1b[31mb\x1b[0;m \x1b[4mc\x1b[0;m", out)
}

func TestWithStyleList(t *testing.T) {
	p, err := NewParser(
		WithStyleList([]uint64{sgr.Bold, sgr.Red}),
		WithStyles(sgr.Underline),
	)
	require.NoError(t, err)

	out, err := p.Render("<a> <b> <c>")
	require.NoError(t, err)
	assert.Equal(t, "\x1b[1ma\x1b[0;m \x1b[31mb\x1b[0;m \x1b[4mc\x1b[0;m", out)
}

func TestEscape(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"no metacharacters", "plain", "plain"},
		{"markers", "a < b > c", `a \< b \> c`},
		{"lone backslash kept", `a\b`, `a\b`},
		{"backslash before marker dropped", `a\<b`, `a\<b`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Escape(tt.input))
		})
	}
}

func TestEscape_RoundTrip(t *testing.T) {
	p, err := NewParser()
	require.NoError(t, err)

	inputs := []string{
		"a < b > c",
		"<all<kinds>of>markup>",
		"plain",
	}

	for _, input := range inputs {
		out, err := p.Render(Escape(input))
		require.NoError(t, err)
		assert.Equal(t, input, out)
	}
}
