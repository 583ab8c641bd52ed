// Package assets embeds the hand-authored practice ponds.
package assets

import (
	"embed"
	"fmt"
	"path"
	"sort"
	"strings"

	"github.com/froggyhop/froggyhop/internal/game"
	"github.com/froggyhop/froggyhop/internal/world"
)

//go:embed ponds/*.json
var ponds embed.FS

// PondNames lists the embedded ponds by file name without extension.
func PondNames() []string {
	entries, err := ponds.ReadDir("ponds")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".json"))
	}
	sort.Strings(names)
	return names
}

// LoadPond parses the embedded pond with the given name.
func LoadPond(name string) (*world.Board, error) {
	data, err := ponds.ReadFile(path.Join("ponds", name+".json"))
	if err != nil {
		return nil, fmt.Errorf("unknown pond %q (have %s): %w", name, strings.Join(PondNames(), ", "), err)
	}
	b, err := world.LoadBoard(data)
	if err != nil {
		return nil, fmt.Errorf("pond %s: %w", name, err)
	}
	if err := b.Validate(); err != nil {
		return nil, fmt.Errorf("pond %s: %w", name, err)
	}
	return b, nil
}

// Source returns the board source for a front end: the named practice pond
// every game, or random ponds from seed when name is empty.
func Source(name string, seed int64) (game.BoardSource, error) {
	if name == "" {
		return game.RandomBoards(world.NewRand(seed)), nil
	}
	b, err := LoadPond(name)
	if err != nil {
		return nil, err
	}
	return game.FixedBoard(b), nil
}
