package stats

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/klauspost/cpuid/v2"
)

// BenchmarkPath is where frame rates for a scene are kept on this machine:
// directory/<cpu brand>/<scene>/<logical cores>.txt.
func BenchmarkPath(directory, scene string) string {
	var brand string = strings.TrimSpace(cpuid.CPU.BrandName)
	if brand == "" {
		brand = "unknown"
	}

	return filepath.Join(directory, sanitize(brand), sanitize(scene), strconv.Itoa(max(cpuid.CPU.LogicalCores, 1))+".txt")
}

// OpenBenchmark creates the directories of BenchmarkPath and opens the file
// for appending.
func OpenBenchmark(directory, scene string) (*os.File, error) {
	var path string = BenchmarkPath(directory, scene)

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create benchmark directory: %w", err)
	}

	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o666)
	if err != nil {
		return nil, fmt.Errorf("open benchmark log: %w", err)
	}

	return file, nil
}

func sanitize(name string) string {
	name = strings.Map(func(r rune) rune {
		if r == '/' || r == '\\' || r == ':' {
			return '_'
		}
		return r
	}, name)

	if name == "" || name == "." || name == ".." {
		return "_"
	}

	return name
}
