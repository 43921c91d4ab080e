package asqg

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mholt/archiver"

	"github.com/deltadev/sga/src/graph"
)

// LoadBundle unpacks a .tar/.tar.gz bundle into a temporary directory and
// loads the first .asqg (or .asqg.gz) file it contains - an ASQG string
// graph plus its source reads is routinely shipped as a single tarball.
func LoadBundle(bundlePath string) (*graph.StringGraph, error) {
	dest, err := os.MkdirTemp("", "sga-bundle-*")
	if err != nil {
		return nil, err
	}
	defer os.RemoveAll(dest)

	if err := archiver.Unarchive(bundlePath, dest); err != nil {
		return nil, fmt.Errorf("asqg: could not unpack bundle %s: %w", bundlePath, err)
	}

	asqgPath, err := findASQG(dest)
	if err != nil {
		return nil, err
	}
	return LoadFile(asqgPath)
}

func findASQG(dir string) (string, error) {
	var found string
	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		name := strings.TrimSuffix(info.Name(), ".gz")
		if strings.HasSuffix(name, ".asqg") && found == "" {
			found = path
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	if found == "" {
		return "", fmt.Errorf("asqg: no .asqg file found in bundle")
	}
	return found, nil
}
