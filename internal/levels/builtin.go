package levels

import (
	"embed"
	"fmt"
	"path"

	"github.com/vovakirdan/beat-arcade/internal/registry"
)

//go:embed builtin/*.yaml
var builtinFS embed.FS

// Builtin parses the level files shipped with the binary.
func Builtin() ([]*Definition, error) {
	entries, err := builtinFS.ReadDir("builtin")
	if err != nil {
		return nil, fmt.Errorf("levels: builtin: %w", err)
	}
	defs := make([]*Definition, 0, len(entries))
	for _, e := range entries {
		data, err := builtinFS.ReadFile(path.Join("builtin", e.Name()))
		if err != nil {
			return nil, fmt.Errorf("levels: builtin %s: %w", e.Name(), err)
		}
		def, err := Parse(data, nil)
		if err != nil {
			return nil, fmt.Errorf("builtin %s: %w", e.Name(), err)
		}
		defs = append(defs, def)
	}
	return defs, nil
}

// Register adds a parsed level to the registry.
func Register(def *Definition) {
	registry.Register(def.Meta.ID, def.Meta.Name, def.Factory())
}

func init() {
	defs, err := Builtin()
	if err != nil {
		panic(err)
	}
	for _, def := range defs {
		Register(def)
	}
}
