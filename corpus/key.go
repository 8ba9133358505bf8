package corpus

import (
	"regexp"
	"sort"
	"strconv"
)

// Categories is the canonical prompt/response language order. Every table,
// record sequence and chart axis derived from the corpus follows it.
var Categories = []string{"en_en", "zh_en", "en_zh", "zh_zh"}

var keyPattern = regexp.MustCompile(`(en_en|zh_en|en_zh|zh_zh)(?:_(\d+))?`)

// Key identifies the corpus subset a file belongs to: the category (prompt
// language x response language) and, in split-corpus mode, the part number.
type Key struct {
	Category string

	// Seq is the numeric suffix of a split-corpus file name, 0 for merged
	// files that carry none.
	Seq int
}

// ParseKey extracts the category key and optional numeric suffix from a
// file name. ok is false when the name does not follow the naming scheme.
func ParseKey(name string) (Key, bool) {
	m := keyPattern.FindStringSubmatch(name)
	if m == nil {
		return Key{}, false
	}

	k := Key{Category: m[1]}
	if m[2] != "" {
		k.Seq, _ = strconv.Atoi(m[2])
	}
	return k, true
}

func categoryRank(category string) int {
	for i, c := range Categories {
		if c == category {
			return i
		}
	}
	return len(Categories)
}

// SortNames returns the names in canonical traversal order: category in
// Categories order, then ascending numeric suffix. Names without a
// recognizable key sort last, keeping their relative order. The sort is
// stable and idempotent.
func SortNames(names []string) []string {
	sorted := make([]string, len(names))
	copy(sorted, names)

	sort.SliceStable(sorted, func(i, j int) bool {
		ki, oki := ParseKey(sorted[i])
		kj, okj := ParseKey(sorted[j])

		if oki != okj {
			return oki
		}
		if !oki {
			return false
		}

		ri, rj := categoryRank(ki.Category), categoryRank(kj.Category)
		if ri != rj {
			return ri < rj
		}
		return ki.Seq < kj.Seq
	})

	return sorted
}
