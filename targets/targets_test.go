package targets_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adamwathan/lightningcss/targets"
)

func TestVersion(t *testing.T) {
	v := targets.Version(13, 2, 1)
	assert.Equal(t, uint32(13)<<16|2<<8|1, v)
	assert.Equal(t, "13.2.1", targets.FormatVersion(v))
	assert.Equal(t, "13.2", targets.FormatVersion(targets.Version(13, 2, 0)))
	assert.Equal(t, "13", targets.FormatVersion(targets.Version(13, 0, 0)))
}

func TestParseVersion(t *testing.T) {
	var tests = []struct {
		in  string
		out uint32
		err bool
	}{
		{in: "90", out: targets.Version(90, 0, 0)},
		{in: "13.2", out: targets.Version(13, 2, 0)},
		{in: "13.2.1", out: targets.Version(13, 2, 1)},
		{in: "", err: true},
		{in: "abc", err: true},
		{in: "300", err: true},
		{in: "1.-2", err: true},
	}

	for _, tt := range tests {
		v, err := targets.ParseVersion(tt.in)
		if tt.err {
			assert.Error(t, err, "<%q>", tt.in)
			continue
		}
		require.NoError(t, err, "<%q>", tt.in)
		assert.Equal(t, tt.out, v, "<%q>", tt.in)
	}
}

// Ensure browser lists parse from their comma-separated text form.
func TestParse(t *testing.T) {
	b, err := targets.Parse("chrome 90, safari 13.2, ios_saf 13")
	require.NoError(t, err)
	assert.Equal(t, targets.Browsers{
		Chrome: targets.Version(90, 0, 0),
		Safari: targets.Version(13, 2, 0),
		IOSSaf: targets.Version(13, 0, 0),
	}, b)
	assert.Equal(t, "chrome 90, ios_saf 13, safari 13.2", b.String())

	_, err = targets.Parse("chrome")
	assert.Error(t, err)

	_, err = targets.Parse("netscape 4")
	assert.Error(t, err)
}

func TestBrowsers_IsEmpty(t *testing.T) {
	assert.True(t, targets.Browsers{}.IsEmpty())
	assert.False(t, targets.Browsers{Edge: targets.Version(100, 0, 0)}.IsEmpty())
}

func TestBrowsers_SetGet(t *testing.T) {
	var b targets.Browsers
	require.NoError(t, b.Set("firefox", targets.Version(91, 0, 0)))
	assert.Equal(t, targets.Version(91, 0, 0), b.Firefox)
	assert.Equal(t, targets.Version(91, 0, 0), b.Get("firefox"))
	assert.Equal(t, uint32(0), b.Get("chrome"))
	assert.Error(t, b.Set("netscape", 1))
}
