package chart

import (
	"strings"

	"SiliconMeter/internal/model"
)

// Tag identifies one chart series a product's samples can contribute to.
type Tag string

const (
	TagDDR5 Tag = "DDR5"
	TagDDR4 Tag = "DDR4"
	TagHBM  Tag = "HBM"
)

// TagSet holds the series tags assigned to a single product.
type TagSet struct {
	DDR5 bool
	DDR4 bool
	HBM  bool
}

// Empty reports whether the product contributes to no series at all.
func (t TagSet) Empty() bool { return !t.DDR5 && !t.DDR4 && !t.HBM }

// Classify assigns a product to zero, one, or two chart series.
//
// The DRAM generation comes from the type string: a type containing "DDR5"
// goes to the DDR5 series, otherwise a type containing "DDR4" goes to the
// DDR4 series (so "DDR5-EXTREME" still counts as DDR5). Independently, a
// product whose display name contains "HBM" also feeds the HBM series.
// Substring matching is deliberate policy, not an enumeration.
func Classify(p model.Product) TagSet {
	var tags TagSet
	if strings.Contains(p.Type, string(TagDDR5)) {
		tags.DDR5 = true
	} else if strings.Contains(p.Type, string(TagDDR4)) {
		tags.DDR4 = true
	}
	if strings.Contains(p.Name, string(TagHBM)) {
		tags.HBM = true
	}
	return tags
}
