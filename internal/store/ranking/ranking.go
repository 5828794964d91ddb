// Package ranking holds the aggregation stages that run over stores already
// loaded by the repository: tag frequency counting and the top-stores
// ranker. Each stage is a plain transformation so the ordering rules can be
// tested without a database.
package ranking

import (
	"sort"

	"github.com/xw1nchester/storefront-backend/internal/store"
)

// CountTags groups tag occurrences and sorts them by count descending, then
// by tag. Occurrences are expected one per tag per store, so a tag repeated
// inside one store counts every time.
func CountTags(occurrences []string) []store.TagCount {
	counts := make(map[string]int)
	for _, tag := range occurrences {
		counts[tag]++
	}

	tags := make([]store.TagCount, 0, len(counts))
	for tag, count := range counts {
		tags = append(tags, store.TagCount{Tag: tag, Count: count})
	}

	sort.Slice(tags, func(i, j int) bool {
		if tags[i].Count != tags[j].Count {
			return tags[i].Count > tags[j].Count
		}
		return tags[i].Tag < tags[j].Tag
	})

	return tags
}

// Flatten emits every tag of every store in order.
func Flatten(tagLists [][]string) []string {
	var occurrences []string
	for _, tags := range tagLists {
		occurrences = append(occurrences, tags...)
	}
	return occurrences
}

// TopStores ranks stores by their mean review rating: stores with fewer than
// minReviews reviews are dropped, the rest are sorted by average descending
// (ties by id) and truncated to limit.
func TopStores(stores []store.Store, minReviews, limit int) []store.TopStore {
	top := make([]store.TopStore, 0, len(stores))

	for _, s := range stores {
		if len(s.Reviews) < minReviews || len(s.Reviews) == 0 {
			continue
		}

		top = append(top, store.TopStore{
			ID:            s.ID,
			Photo:         s.Photo,
			Name:          s.Name,
			Slug:          s.Slug,
			Reviews:       s.Reviews,
			AverageRating: averageRating(s.Reviews),
		})
	}

	sort.SliceStable(top, func(i, j int) bool {
		if top[i].AverageRating != top[j].AverageRating {
			return top[i].AverageRating > top[j].AverageRating
		}
		return top[i].ID < top[j].ID
	})

	if len(top) > limit {
		top = top[:limit]
	}

	return top
}

func averageRating(reviews []store.Review) float64 {
	sum := 0
	for _, r := range reviews {
		sum += r.Rating
	}
	return float64(sum) / float64(len(reviews))
}
