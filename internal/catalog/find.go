package catalog

import (
	"os"
	"path/filepath"
)

// FindCatalogFile looks for filename in the working directory, ./config,
// ./data and ~/.happiest-ingest, in that order. Absolute paths are only
// checked for existence.
func FindCatalogFile(filename string) (string, error) {
	if filepath.IsAbs(filename) {
		if _, err := os.Stat(filename); err != nil {
			return "", err
		}
		return filename, nil
	}

	locations := []string{
		filename,
		filepath.Join("config", filename),
		filepath.Join("data", filename),
	}
	if home, err := os.UserHomeDir(); err == nil {
		locations = append(locations, filepath.Join(home, ".happiest-ingest", filename))
	}

	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location, nil
		}
	}
	return "", os.ErrNotExist
}
