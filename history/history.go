// Package history provides the implementation for tracking and persisting recently used colors.
package history

import (
	"slices"

	"github.com/huekit-cli/huekit/color"
	"github.com/huekit-cli/huekit/filesystem"
	"github.com/huekit-cli/huekit/key"
	"github.com/huekit-cli/huekit/where"
	"github.com/metafates/gache"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

// cacher provides an abstracted, disk-backed registry for recently used colors.
var cacher = gache.New[map[string]*SavedColor](
	&gache.Options{
		Path:       where.History(),
		FileSystem: &filesystem.GacheFs{},
	},
)

// Get returns the complete collection of saved colors from the persistent store, keyed by hex notation.
func Get() (map[string]*SavedColor, error) {
	cached, expired, err := cacher.Get()
	if err != nil {
		return nil, err
	}
	if expired || cached == nil {
		return make(map[string]*SavedColor), nil
	}
	return cached, nil
}

// All returns the saved colors ordered from most to least recently used.
func All() ([]*SavedColor, error) {
	saved, err := Get()
	if err != nil {
		return nil, err
	}

	records := lo.Values(saved)
	slices.SortFunc(records, func(a, b *SavedColor) int {
		return b.Rank - a.Rank
	})
	return records, nil
}

// Save persists a color to the history registry, refreshing its recency on repeat use.
// The registry is trimmed to the configured limit, evicting the least recent entries.
func Save(c color.Color) error {
	saved, err := Get()
	if err != nil {
		return err
	}

	record := newSavedColor(c)
	record.Rank = nextRank(saved)
	saved[record.Hex] = record

	trim(saved)

	return cacher.Set(saved)
}

// Remember persists a color only when history collection is enabled in the configuration.
func Remember(c color.Color) error {
	if !viper.GetBool(key.HistorySaveOnParse) {
		return nil
	}
	return Save(c)
}

// Remove permanently deletes a specific color record from the history registry.
func Remove(record *SavedColor) error {
	saved, err := Get()
	if err != nil {
		return err
	}

	delete(saved, record.Hex)
	return cacher.Set(saved)
}

// Clear removes every saved color from the registry.
func Clear() error {
	return cacher.Set(make(map[string]*SavedColor))
}

// nextRank computes the recency rank for a new record.
func nextRank(saved map[string]*SavedColor) int {
	highest := 0
	for _, record := range saved {
		if record.Rank > highest {
			highest = record.Rank
		}
	}
	return highest + 1
}

// trim evicts the least recent records until the registry fits the configured limit.
func trim(saved map[string]*SavedColor) {
	limit := viper.GetInt(key.HistoryLimit)
	if limit <= 0 {
		return
	}

	for len(saved) > limit {
		oldest := lo.MinBy(lo.Values(saved), func(a, b *SavedColor) bool {
			return a.Rank < b.Rank
		})
		delete(saved, oldest.Hex)
	}
}
