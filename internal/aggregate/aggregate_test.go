package aggregate

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ridwanfathin/shelf-price-monitor/internal/domain"
)

var base = time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)

func item(id int64, name string, hour int, path string) domain.ExtractedItem {
	return domain.ExtractedItem{
		ID:          id,
		ProductName: name,
		ExtractedAt: domain.Timestamp{Time: base.Add(time.Duration(hour) * time.Hour)},
		ImagePath:   path,
		Status:      domain.StatusAutoApproved,
	}
}

func names(items []domain.ExtractedItem) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.ProductName
	}
	return out
}

func TestAggregateOrdersTableAndImages(t *testing.T) {
	a := item(1, "A", 2, "p")
	b := item(2, "B", 5, "p")
	c := item(3, "C", 3, "q")

	view := Aggregate([]domain.ExtractedItem{a, b, c})

	if diff := cmp.Diff([]string{"B", "C", "A"}, names(view.Table)); diff != "" {
		t.Fatalf("table order mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"B", "C"}, names(view.Images)); diff != "" {
		t.Fatalf("image set mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, []string{"p", "q"}, view.ImagePaths())
}

func TestAggregateEmptyStore(t *testing.T) {
	view := Aggregate(nil)
	assert.True(t, view.Empty())
	assert.Empty(t, view.Table)
	assert.Empty(t, view.Images)
}

func TestAggregateSkipsItemsWithoutPhoto(t *testing.T) {
	view := Aggregate([]domain.ExtractedItem{
		item(1, "manual", 9, ""),
		item(2, "tag", 1, "p"),
	})

	assert.Equal(t, []string{"manual", "tag"}, names(view.Table))
	assert.Equal(t, []string{"tag"}, names(view.Images))
	assert.False(t, view.Empty())
}

func TestAggregateImageSetHasOneEntryPerPath(t *testing.T) {
	var items []domain.ExtractedItem
	for i := 0; i < 20; i++ {
		path := []string{"p", "q", "r"}[i%3]
		items = append(items, item(int64(i), "x", i%7, path))
	}

	view := Aggregate(items)
	seen := map[string]bool{}
	for _, img := range view.Images {
		require.False(t, seen[img.ImagePath], "duplicate path %s", img.ImagePath)
		seen[img.ImagePath] = true
	}
	assert.Len(t, view.Images, 3)
}

func TestAggregateDoesNotMutateInput(t *testing.T) {
	in := []domain.ExtractedItem{item(1, "A", 1, "p"), item(2, "B", 2, "q")}
	Aggregate(in)
	assert.Equal(t, []string{"A", "B"}, names(in))
}

func TestSortByRecencyTieBreaksOnID(t *testing.T) {
	items := []domain.ExtractedItem{
		item(4, "four", 1, "p"),
		item(9, "nine", 1, "q"),
		item(6, "six", 1, "r"),
	}
	SortByRecency(items)
	assert.Equal(t, []string{"nine", "six", "four"}, names(items))
}

func TestImagesResortedFromUnsortedSource(t *testing.T) {
	images := DedupeByPath([]domain.ExtractedItem{
		item(1, "old", 1, "p"),
		item(2, "new", 8, "q"),
	})
	SortByRecency(images)
	assert.Equal(t, []string{"new", "old"}, names(images))
}

func TestRowImageRefCarriesTableIndex(t *testing.T) {
	view := Aggregate([]domain.ExtractedItem{
		item(1, "A", 2, "p"),
		item(2, "B", 5, "p"),
		item(3, "C", 3, ""),
	})

	rows := view.Rows()
	require.Len(t, rows, 3)

	ref, ok := rows[2].ImageRef()
	require.True(t, ok)
	assert.Equal(t, RowImageRef{Path: "p", Row: 2}, ref)

	_, ok = rows[1].ImageRef()
	assert.False(t, ok)
}
