package profile

import (
	"fmt"

	"github.com/spf13/afero"
	"go.yaml.in/yaml/v3"
)

// Parse reads a profile file from fsys. It does not validate it; see
// ValidateFile.
func Parse(fsys afero.Fs, path string) (*Profile, error) {
	data, err := readFile(fsys, path)
	if err != nil {
		return nil, err
	}

	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parsing profile %s: %w", path, err)
	}
	return &p, nil
}

func readFile(fsys afero.Fs, path string) ([]byte, error) {
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}
	return data, nil
}
