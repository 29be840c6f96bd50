package theme

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/go-drift/novelui/pkg/errors"
)

// Load reads a theme from a YAML file. Fields missing from the file keep
// their Default values; component sections present in the file override the
// derived component themes entirely.
func Load(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &errors.UIError{
			Op:   "theme.Load",
			Kind: errors.KindConfig,
			Err:  err,
		}
	}
	t := Default()
	if err := yaml.Unmarshal(data, t); err != nil {
		return nil, &errors.UIError{
			Op:   "theme.Load",
			Kind: errors.KindConfig,
			Err:  fmt.Errorf("parse %s: %w", path, err),
		}
	}
	return t, nil
}

// Save writes the theme to a YAML file, useful for generating a template to
// hand-edit.
func (t *Theme) Save(path string) error {
	data, err := yaml.Marshal(t)
	if err != nil {
		return &errors.UIError{
			Op:   "theme.Save",
			Kind: errors.KindConfig,
			Err:  err,
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return &errors.UIError{
			Op:   "theme.Save",
			Kind: errors.KindConfig,
			Err:  err,
		}
	}
	return nil
}
