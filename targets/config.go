package targets

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// UnmarshalYAML decodes a browser set from a mapping of browser name to
// version string:
//
//	chrome: "90"
//	safari: "13.2"
func (b *Browsers) UnmarshalYAML(value *yaml.Node) error {
	var raw map[string]string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	for name, version := range raw {
		v, err := ParseVersion(version)
		if err != nil {
			return fmt.Errorf("target %s: %w", name, err)
		}
		if err := b.Set(name, v); err != nil {
			return err
		}
	}
	return nil
}

// MarshalYAML encodes the browser set back to a name/version mapping.
func (b Browsers) MarshalYAML() (interface{}, error) {
	raw := make(map[string]string)
	for _, name := range []string{"android", "chrome", "edge", "firefox", "ie", "ios_saf", "opera", "safari", "samsung"} {
		if v := b.Get(name); v != 0 {
			raw[name] = FormatVersion(v)
		}
	}
	return raw, nil
}

// Load reads a browser set from a YAML file. The file may either be a bare
// name/version mapping or nest it under a top-level "targets" key.
func Load(path string) (Browsers, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Browsers{}, err
	}

	var wrapped struct {
		Targets Browsers `yaml:"targets"`
	}
	if err := yaml.Unmarshal(data, &wrapped); err == nil && !wrapped.Targets.IsEmpty() {
		return wrapped.Targets, nil
	}

	var b Browsers
	if err := yaml.Unmarshal(data, &b); err != nil {
		return Browsers{}, fmt.Errorf("parse targets file %s: %w", path, err)
	}
	return b, nil
}
