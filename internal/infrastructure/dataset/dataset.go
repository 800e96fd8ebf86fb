// Package dataset supplies the raw tab-separated case dataset the service is
// seeded with at startup. A deployment can point DATASET_PATH at its own
// export; otherwise the embedded sample is used.
package dataset

import (
	_ "embed"
	"os"
)

//go:embed cases.tsv
var embedded string

// Raw returns the raw TSV text to seed from. When path is empty the embedded
// dataset is returned.
func Raw(path string) (string, error) {
	if path == "" {
		return embedded, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
