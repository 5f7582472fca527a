package domain_test

import (
	"testing"

	"bookstore/internal/domain"
)

func TestShippingMethodCost(t *testing.T) {
	tests := []struct {
		name   string
		method domain.ShippingMethod
		want   float64
	}{
		{"pickup", domain.ShippingPickupStore, 0},
		{"standard delivery", domain.ShippingDeliveryStandard, 150},
		{"express delivery", domain.ShippingDeliveryExpress, 250},
		{"unknown method falls back to pickup", domain.ShippingMethod("droneDrop"), 0},
		{"empty method falls back to pickup", domain.ShippingMethod(""), 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.method.Cost(); got != tc.want {
				t.Errorf("Cost(%q) = %v; want %v", tc.method, got, tc.want)
			}
		})
	}
}

func TestColorImage(t *testing.T) {
	tests := []struct {
		color domain.Color
		want  string
	}{
		{domain.ColorGreen, "hardcoverColor1Org.png"},
		{domain.ColorPurple, "hardcoverColor2Org.png"},
		{domain.ColorBrown, "hardcoverColor3Org.png"},
	}
	for _, tc := range tests {
		if got := tc.color.Image(); got != tc.want {
			t.Errorf("Image(%q) = %q; want %q", tc.color, got, tc.want)
		}
	}
	if domain.Color("plaid").Valid() {
		t.Error("unexpected valid color")
	}
}
