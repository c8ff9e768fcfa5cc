package gen

import (
	"fmt"
	"os"
	"path/filepath"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// WriteFiles writes all generated files below the output directory,
// creating intermediate directories as needed. It returns the absolute
// paths written, in input order.
func WriteFiles(files []GeneratedFile, outputDir string) ([]string, error) {
	paths := make([]string, 0, len(files))

	for _, file := range files {
		outputPath := filepath.Join(outputDir, file.Filename)

		if err := os.MkdirAll(filepath.Dir(outputPath), dirPerm); err != nil {
			return paths, fmt.Errorf("creating directory for %s: %w", file.Filename, err)
		}

		if err := os.WriteFile(outputPath, file.Content, filePerm); err != nil {
			return paths, fmt.Errorf("writing file %s: %w", file.Filename, err)
		}

		abs, err := filepath.Abs(outputPath)
		if err != nil {
			abs = outputPath
		}

		paths = append(paths, abs)
	}

	return paths, nil
}
