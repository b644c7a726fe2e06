package services

import (
	"stallpos/entity"
)

// ResolveVariant infers which price tier a historical order line used by
// comparing its stored unit price against the item's current tiers. The tag
// itself is not persisted, so editing a tier price can relabel old lines;
// Custom marks a snapshot that no longer matches any tier.
func ResolveVariant(item *entity.MenuItem, unitPriceAtTime int64) entity.Variant {
	if item == nil {
		return entity.VariantCustom
	}
	if !item.IsMultiPlate {
		return entity.VariantStandard
	}
	if item.FullPlatePrice != nil && *item.FullPlatePrice == unitPriceAtTime {
		return entity.VariantFull
	}
	if item.HalfPlatePrice != nil && *item.HalfPlatePrice == unitPriceAtTime {
		return entity.VariantHalf
	}
	return entity.VariantCustom
}
