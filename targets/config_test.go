package targets_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/adamwathan/lightningcss/targets"
)

func writeFile(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

// Ensure a bare name/version mapping loads.
func TestLoad(t *testing.T) {
	path := writeFile(t, "targets.yaml", "chrome: \"90\"\nsafari: \"13.2\"\n")
	b, err := targets.Load(path)
	require.NoError(t, err)
	assert.Equal(t, targets.Browsers{
		Chrome: targets.Version(90, 0, 0),
		Safari: targets.Version(13, 2, 0),
	}, b)
}

// Ensure a mapping nested under a "targets" key loads too.
func TestLoad_Wrapped(t *testing.T) {
	path := writeFile(t, "config.yaml", "targets:\n  firefox: \"91\"\n")
	b, err := targets.Load(path)
	require.NoError(t, err)
	assert.Equal(t, targets.Browsers{Firefox: targets.Version(91, 0, 0)}, b)
}

func TestLoad_Errors(t *testing.T) {
	_, err := targets.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := writeFile(t, "bad.yaml", "chrome: \"not-a-version\"\n")
	_, err = targets.Load(path)
	assert.Error(t, err)

	path = writeFile(t, "unknown.yaml", "netscape: \"4\"\n")
	_, err = targets.Load(path)
	assert.Error(t, err)
}

// Ensure browser sets round-trip through YAML.
func TestBrowsers_YAML(t *testing.T) {
	in := targets.Browsers{
		Chrome: targets.Version(90, 0, 0),
		IOSSaf: targets.Version(13, 2, 0),
	}
	data, err := yaml.Marshal(in)
	require.NoError(t, err)

	var out targets.Browsers
	require.NoError(t, yaml.Unmarshal(data, &out))
	assert.Equal(t, in, out)
}
