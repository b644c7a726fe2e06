package entity

// Variant labels the price tier of a cart or order line.
type Variant string

const (
	VariantStandard Variant = "Standard"
	VariantFull     Variant = "Full"
	VariantHalf     Variant = "Half"

	// VariantCustom is only produced by historical resolution, when a stored
	// unit price no longer matches any current tier of the item.
	VariantCustom Variant = "Custom"
)

// Selectable reports whether the variant can be chosen on a cart line.
func (v Variant) Selectable() bool {
	return v == VariantStandard || v == VariantFull || v == VariantHalf
}
