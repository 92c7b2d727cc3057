// Package search narrows data that is already on screen. It never talks to the network.
package search

import (
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/mmcdole/nextep/internal/domain"
)

// PageIndex implements sahilm/fuzzy.Source over one page of search results
type PageIndex struct {
	items       []domain.SearchResultItem
	lowerTitles []string
}

// NewPageIndex pre-computes the lowercase titles of items
func NewPageIndex(items []domain.SearchResultItem) *PageIndex {
	lower := make([]string, len(items))
	for i, item := range items {
		lower[i] = strings.ToLower(item.Title)
	}
	return &PageIndex{items: items, lowerTitles: lower}
}

// String returns the lowercase title at index i (implements fuzzy.Source)
func (idx *PageIndex) String(i int) string { return idx.lowerTitles[i] }

// Len returns the number of items (implements fuzzy.Source)
func (idx *PageIndex) Len() int { return len(idx.items) }

// Match is a page item that matched a filter, with highlight positions
type Match struct {
	Index          int // Position in the page
	Item           domain.SearchResultItem
	MatchedIndexes []int // Rune positions in Item.Title
	Score          int   // Higher is better
}

// Filter returns the items matching query, best first.
// An empty query matches every item in page order.
func (idx *PageIndex) Filter(query string) []Match {
	query = strings.TrimSpace(query)
	if query == "" {
		all := make([]Match, len(idx.items))
		for i, item := range idx.items {
			all[i] = Match{Index: i, Item: item}
		}
		return all
	}

	found := fuzzy.FindFrom(strings.ToLower(query), idx)
	matches := make([]Match, len(found))
	for i, m := range found {
		matches[i] = Match{
			Index:          m.Index,
			Item:           idx.items[m.Index],
			MatchedIndexes: runeIndexes(idx.lowerTitles[m.Index], m.MatchedIndexes),
			Score:          m.Score,
		}
	}
	return matches
}

// runeIndexes converts byte offsets reported by the matcher into rune positions
func runeIndexes(s string, byteIdx []int) []int {
	if len(byteIdx) == 0 {
		return nil
	}
	pos := make(map[int]int, len(s))
	r := 0
	for b := range s {
		pos[b] = r
		r++
	}
	out := make([]int, 0, len(byteIdx))
	for _, b := range byteIdx {
		if p, ok := pos[b]; ok {
			out = append(out, p)
		}
	}
	return out
}
