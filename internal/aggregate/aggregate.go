// Package aggregate turns a store's raw product records into the store detail
// table and its de-duplicated photo set.
package aggregate

import (
	"sort"

	"github.com/ridwanfathin/shelf-price-monitor/internal/domain"
)

// RowImageRef is what a table row hands to the image viewer: the literal image
// path plus the row's own position as a fallback. Row is a table index, not a
// gallery index.
type RowImageRef struct {
	Path string
	Row  int
}

// Row is one line of the store detail table
type Row struct {
	Index int
	Item  domain.ExtractedItem
}

// ImageRef returns the viewer reference for the row, if it has a photo
func (r Row) ImageRef() (RowImageRef, bool) {
	if !r.Item.HasImage() {
		return RowImageRef{}, false
	}
	return RowImageRef{Path: r.Item.ImagePath, Row: r.Index}, true
}

// StoreView is the aggregated presentation of one store's products
type StoreView struct {
	Table  []domain.ExtractedItem
	Images []domain.ExtractedItem
}

// Empty reports whether the store has no products at all.
// Callers render an explicit empty state in that case.
func (v StoreView) Empty() bool {
	return len(v.Table) == 0
}

// Rows returns the table with row positions attached
func (v StoreView) Rows() []Row {
	rows := make([]Row, len(v.Table))
	for i, item := range v.Table {
		rows[i] = Row{Index: i, Item: item}
	}
	return rows
}

// ImagePaths returns the ordered paths of the image set
func (v StoreView) ImagePaths() []string {
	return Paths(v.Images)
}

// Aggregate sorts items most recent first and derives the de-duplicated image
// set. The input slice is not modified.
func Aggregate(items []domain.ExtractedItem) StoreView {
	table := append([]domain.ExtractedItem(nil), items...)
	SortByRecency(table)

	images := DedupeByPath(table)
	SortByRecency(images)

	return StoreView{Table: table, Images: images}
}

// SortByRecency orders items by extractedAt descending. Equal timestamps are
// ordered by id descending so the result is deterministic.
func SortByRecency(items []domain.ExtractedItem) {
	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i], items[j]
		if !a.ExtractedAt.Equal(b.ExtractedAt.Time) {
			return a.ExtractedAt.After(b.ExtractedAt.Time)
		}
		return a.ID > b.ID
	})
}

// DedupeByPath keeps the first item seen for each distinct image path,
// skipping items without a photo. Applied to a recency-sorted list the kept
// item is the most recent one for its path.
func DedupeByPath(items []domain.ExtractedItem) []domain.ExtractedItem {
	seen := make(map[string]struct{}, len(items))
	out := make([]domain.ExtractedItem, 0, len(items))
	for _, item := range items {
		if !item.HasImage() {
			continue
		}
		if _, ok := seen[item.ImagePath]; ok {
			continue
		}
		seen[item.ImagePath] = struct{}{}
		out = append(out, item)
	}
	return out
}

// Paths extracts the image paths in order
func Paths(items []domain.ExtractedItem) []string {
	paths := make([]string, 0, len(items))
	for _, item := range items {
		paths = append(paths, item.ImagePath)
	}
	return paths
}
