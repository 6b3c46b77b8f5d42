package content

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/nfrund/portfolio/internal/domain"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// ErrContentNotFound is returned when the configured content file does not exist.
var ErrContentNotFound = errors.New("content file not found")

// Load reads a YAML content file from fsys, normalises skill levels and
// validates every record.
func Load(fsys afero.Fs, path string) (*domain.Profile, error) {
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) || errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrContentNotFound, path)
		}
		return nil, fmt.Errorf("failed to read content file %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes YAML content. Unknown keys are rejected so typos in field
// names surface instead of silently dropping data.
func Parse(data []byte) (*domain.Profile, error) {
	var profile domain.Profile

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&profile); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty content file", domain.ErrInvalidContent)
		}
		return nil, fmt.Errorf("failed to parse content: %w", err)
	}

	for i := range profile.Skills {
		profile.Skills[i].Level = domain.ParseLevel(string(profile.Skills[i].Level))
	}

	if err := profile.Validate(); err != nil {
		return nil, err
	}
	return &profile, nil
}

// Marshal encodes a profile in the content file format.
func Marshal(profile *domain.Profile) ([]byte, error) {
	out, err := yaml.Marshal(profile)
	if err != nil {
		return nil, fmt.Errorf("failed to encode content: %w", err)
	}
	return out, nil
}
