package packager

import (
	"errors"
	"fmt"
	"os"

	"vidpack/internal/metadata"
)

// ReadMetadata extracts the embedded record from an artifact. It is a pure
// read: no snapshot, no validation. A missing record block or an unparsable
// payload yields a nil record, not an error; callers treat nil as "no usable
// metadata". Only a missing or unreadable file is an error.
func (p *Packager) ReadMetadata(artifactPath string) (*metadata.Record, error) {
	data, err := os.ReadFile(artifactPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrArtifactNotFound, artifactPath)
		}
		return nil, fmt.Errorf("read artifact: %w", err)
	}

	payload, _, _, ok := extractScript(string(data))
	if !ok {
		return nil, nil
	}
	record, err := metadata.Deserialize(payload)
	if err != nil {
		return nil, nil
	}
	return &record, nil
}
