package services

import (
	"testing"

	"stallpos/entity"

	"github.com/stretchr/testify/assert"
)

func TestResolveVariant(t *testing.T) {
	multi := &entity.MenuItem{
		IsMultiPlate:   true,
		FullPlatePrice: ptr(12000),
		HalfPlatePrice: ptr(7000),
	}
	plain := &entity.MenuItem{Price: 1500}

	tests := []struct {
		name  string
		item  *entity.MenuItem
		price int64
		want  entity.Variant
	}{
		{"full match", multi, 12000, entity.VariantFull},
		{"half match", multi, 7000, entity.VariantHalf},
		{"no tier matches", multi, 6500, entity.VariantCustom},
		{"single plate is always standard", plain, 1500, entity.VariantStandard},
		{"single plate even with stale price", plain, 999, entity.VariantStandard},
		{"missing item", nil, 1500, entity.VariantCustom},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveVariant(tt.item, tt.price))
		})
	}
}

func TestResolveVariantWithoutHalfPrice(t *testing.T) {
	item := &entity.MenuItem{IsMultiPlate: true, FullPlatePrice: ptr(12000)}
	assert.Equal(t, entity.VariantFull, ResolveVariant(item, 12000))
	assert.Equal(t, entity.VariantCustom, ResolveVariant(item, 7000))
}
