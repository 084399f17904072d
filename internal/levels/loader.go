package levels

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/samber/lo"
	"gopkg.in/yaml.v3"
)

// LoadFile reads a level file. A song path in the file is resolved relative
// to the file's directory and loaded into the metadata.
func LoadFile(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("levels: read %s: %w", path, err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("levels: parse %s: %w", path, err)
	}

	var song []byte
	if f.Song != "" {
		songPath := f.Song
		if !filepath.IsAbs(songPath) {
			songPath = filepath.Join(filepath.Dir(path), songPath)
		}
		if song, err = os.ReadFile(songPath); err != nil {
			return nil, fmt.Errorf("levels: read song for %s: %w", path, err)
		}
	}

	def, err := f.Definition(song)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return def, nil
}

// LoadDir reads every .yaml and .yml file in dir, sorted by file name.
// Subdirectories are ignored.
func LoadDir(dir string) ([]*Definition, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("levels: read dir %s: %w", dir, err)
	}

	files := lo.Filter(entries, func(e os.DirEntry, _ int) bool {
		return !e.IsDir() && isLevelFile(e.Name())
	})

	defs := make([]*Definition, 0, len(files))
	for _, e := range files {
		def, err := LoadFile(filepath.Join(dir, e.Name()))
		if err != nil {
			return nil, err
		}
		defs = append(defs, def)
	}
	return defs, nil
}

func isLevelFile(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	return ext == ".yaml" || ext == ".yml"
}
