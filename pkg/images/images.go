// Package images normalizes the aggregated image-reference strings produced
// by the product listing queries. Each product row carries a single
// comma-joined field built with string_agg over a nullable reference column,
// so the raw value may contain empty segments that must not surface to
// clients as phantom entries.
package images

import "strings"

// Delimiter joins image references inside the aggregate column.
const Delimiter = ","

// Normalize splits a raw aggregate string into an ordered list of image
// references. Empty segments are dropped and the remaining references keep
// their relative order. The result is never nil; an empty or all-delimiter
// input yields an empty slice.
func Normalize(raw string) []string {
	refs := []string{}
	if raw == "" {
		return refs
	}
	for _, seg := range strings.Split(raw, Delimiter) {
		if seg == "" {
			continue
		}
		refs = append(refs, seg)
	}
	return refs
}

// Primary returns the first reference as the legacy single-image field, or
// nil when the product has no images.
func Primary(refs []string) *string {
	if len(refs) == 0 {
		return nil
	}
	return &refs[0]
}
