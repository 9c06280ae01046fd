package shuffle

import (
	"cmp"
	"path/filepath"
	"slices"
	"strings"
)

// ArtistSeparator splits the artist from the title in a track's base name.
const ArtistSeparator = " - "

// Item is one input track, identified by its path.
type Item struct {
	Path string
}

// Name returns the base name of the item's path.
func (it Item) Name() string {
	return filepath.Base(it.Path)
}

// Artist returns the item's artist key.
func (it Item) Artist() string {
	return ArtistKey(it.Name())
}

// ArtistKey derives the artist key from a base name: the substring before
// the first ArtistSeparator, or the name without its extension when there
// is no separator.
func ArtistKey(name string) string {
	if artist, _, ok := strings.Cut(name, ArtistSeparator); ok {
		return artist
	}
	return strings.TrimSuffix(name, filepath.Ext(name))
}

// Normalize sorts items by path and drops duplicates, giving every run over
// the same directory the same starting sequence. The input is not modified.
func Normalize(items []Item) []Item {
	out := slices.Clone(items)
	slices.SortFunc(out, func(a, b Item) int {
		return cmp.Compare(a.Path, b.Path)
	})
	return slices.Compact(out)
}

// HasAdjacentArtist reports whether any two consecutive items share an
// artist key. Sequences shorter than two never do.
func HasAdjacentArtist(items []Item) bool {
	if len(items) < 2 {
		return false
	}
	prev := items[0].Artist()
	for _, it := range items[1:] {
		artist := it.Artist()
		if artist == prev {
			return true
		}
		prev = artist
	}
	return false
}
