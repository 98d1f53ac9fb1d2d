package lib

import (
	"luxehaven_server/structs/tables"
	"sort"
)

// SortProductImages produces the gallery display order for a product's image
// set: primary images first (ties between multiple primaries broken by
// order_index ascending), then the rest by order_index ascending.
//
// When the set is empty and a legacy single image URL exists, a synthetic
// primary entry wrapping that URL is returned. When neither exists the result
// is empty; callers substitute a placeholder at render time.
//
// The input slice is never mutated.
func SortProductImages(images []tables.ProductImage, legacyURL string) []tables.ProductImage {
	if len(images) == 0 {
		if legacyURL == "" {
			return []tables.ProductImage{}
		}
		return []tables.ProductImage{{
			ImageURL:   legacyURL,
			IsPrimary:  true,
			OrderIndex: 0,
		}}
	}

	out := make([]tables.ProductImage, len(images))
	copy(out, images)

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].IsPrimary != out[j].IsPrimary {
			return out[i].IsPrimary
		}
		return out[i].OrderIndex < out[j].OrderIndex
	})

	return out
}

// PrimaryImageURL returns the single image used where only one is shown: the
// first image of the gallery order, or "" when the product has no image at
// all.
func PrimaryImageURL(images []tables.ProductImage, legacyURL string) string {
	ordered := SortProductImages(images, legacyURL)
	if len(ordered) == 0 {
		return ""
	}
	return ordered[0].ImageURL
}
