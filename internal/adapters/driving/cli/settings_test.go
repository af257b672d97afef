package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/caption-viewer/internal/core/domain"
)

func TestSettingsShowCmd_Defaults(t *testing.T) {
	setupTestServices(t)

	for _, args := range [][]string{{"settings"}, {"settings", "show"}} {
		out, _, err := runCmd(t, "", args...)
		require.NoError(t, err)
		assert.Contains(t, out, "[Display]")
		assert.Contains(t, out, "Max length: unlimited")
		assert.Contains(t, out, `Truncation marker: "\n… [truncated]"`)
		assert.Contains(t, out, "Default field: (none)")
		assert.Contains(t, out, "Style: auto")
	}
}

func TestSettingsShowCmd_Configured(t *testing.T) {
	env := setupTestServices(t)
	require.NoError(t, env.settings.SetMaxLength(300))
	require.NoError(t, env.settings.SetDefaultField("caption"))
	require.NoError(t, env.settings.SetStyle(domain.RenderStyleDark))

	out, _, err := runCmd(t, "", "settings", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "Max length: 300 characters")
	assert.Contains(t, out, "Default field: caption")
	assert.Contains(t, out, "Style: dark")
}

func TestSettingsMaxLengthCmd(t *testing.T) {
	tests := []struct {
		name     string
		arg      string
		expected string
		want     int
		wantErr  bool
	}{
		{name: "set length", arg: "300", expected: "Max length set to 300\n", want: 300},
		{name: "disable", arg: "0", expected: "Truncation disabled\n", want: 0},
		{name: "not a number", arg: "abc", wantErr: true},
		{name: "negative", arg: "-1", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := setupTestServices(t)

			out, _, err := runCmd(t, "", "settings", "max-length", "--", tt.arg)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, domain.ErrInvalidInput)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, out)

			s, err := env.settings.Get()
			require.NoError(t, err)
			assert.Equal(t, tt.want, s.MaxLength)
		})
	}
}

func TestSettingsMarkerCmd(t *testing.T) {
	env := setupTestServices(t)

	out, _, err := runCmd(t, "", "settings", "marker", `\n[cut]`)
	require.NoError(t, err)
	assert.Equal(t, "Truncation marker set to \"\\n[cut]\"\n", out)

	s, err := env.settings.Get()
	require.NoError(t, err)
	assert.Equal(t, "\n[cut]", s.TruncationMarker)

	_, _, err = runCmd(t, "", "settings", "marker", "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSettingsDefaultFieldCmd(t *testing.T) {
	t.Run("known field", func(t *testing.T) {
		env := setupTestServices(t)

		out, errOut, err := runCmd(t, "", "settings", "default-field", "caption")
		require.NoError(t, err)
		assert.Equal(t, "Default field set to caption\n", out)
		assert.Empty(t, errOut)

		s, err := env.settings.Get()
		require.NoError(t, err)
		assert.Equal(t, "caption", s.DefaultField)
	})

	t.Run("unknown field warns", func(t *testing.T) {
		setupTestServices(t)

		out, errOut, err := runCmd(t, "", "settings", "default-field", "width")
		require.NoError(t, err)
		assert.Equal(t, "Default field set to width\n", out)
		assert.Contains(t, errOut, `"width" is not a string field`)
	})

	t.Run("clear", func(t *testing.T) {
		env := setupTestServices(t)
		require.NoError(t, env.settings.SetDefaultField("caption"))

		out, _, err := runCmd(t, "", "settings", "default-field", "")
		require.NoError(t, err)
		assert.Equal(t, "Default field cleared\n", out)

		s, err := env.settings.Get()
		require.NoError(t, err)
		assert.Empty(t, s.DefaultField)
	})
}

func TestSettingsStyleCmd(t *testing.T) {
	env := setupTestServices(t)

	out, _, err := runCmd(t, "", "settings", "style", "LIGHT")
	require.NoError(t, err)
	assert.Equal(t, "Render style set to light\n", out)

	s, err := env.settings.Get()
	require.NoError(t, err)
	assert.Equal(t, domain.RenderStyleLight, s.Style)

	_, _, err = runCmd(t, "", "settings", "style", "neon")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), "auto, dark, light, notty")
}

func TestExpandEscapes(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{input: `plain`, expected: "plain"},
		{input: `\n…`, expected: "\n…"},
		{input: `a\tb`, expected: "a\tb"},
		{input: `\r`, expected: `\r`},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, expandEscapes(tt.input))
		})
	}
}

func TestStyleNames(t *testing.T) {
	assert.Equal(t, []string{"auto", "dark", "light", "notty"}, styleNames())
}
