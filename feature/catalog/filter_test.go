package catalog

import (
	"testing"

	"catalog-sync/feature/catalog/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestFilter_Validate(t *testing.T) {
	tests := []struct {
		name    string
		filter  Filter
		wantErr bool
	}{
		{name: "empty filter", filter: Filter{}},
		{name: "valid bounds", filter: Filter{MinPrice: dec("10"), MaxPrice: dec("20")}},
		{name: "equal bounds", filter: Filter{MinPrice: dec("10"), MaxPrice: dec("10")}},
		{name: "zero bound", filter: Filter{MinPrice: dec("0")}},
		{name: "negative min", filter: Filter{MinPrice: dec("-1")}, wantErr: true},
		{name: "negative max", filter: Filter{MaxPrice: dec("-0.01")}, wantErr: true},
		{name: "min above max", filter: Filter{MinPrice: dec("200"), MaxPrice: dec("100")}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.filter.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidQuery)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestFilter_Match(t *testing.T) {
	product := models.Product{Title: "Gaming Monitor", Price: decimal.RequireFromString("150")}

	tests := []struct {
		name   string
		filter Filter
		want   bool
	}{
		{name: "empty filter matches", filter: Filter{}, want: true},
		{name: "substring match", filter: Filter{Search: "Monitor"}, want: true},
		{name: "substring is case-sensitive", filter: Filter{Search: "monitor"}, want: false},
		{name: "no match", filter: Filter{Search: "Keyboard"}, want: false},
		{name: "min bound inclusive", filter: Filter{MinPrice: dec("150")}, want: true},
		{name: "min bound excludes", filter: Filter{MinPrice: dec("150.01")}, want: false},
		{name: "max bound inclusive", filter: Filter{MaxPrice: dec("150")}, want: true},
		{name: "max bound excludes", filter: Filter{MaxPrice: dec("149.99")}, want: false},
		{name: "all criteria", filter: Filter{Search: "Gaming", MinPrice: dec("100"), MaxPrice: dec("200")}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.filter.Match(product))
		})
	}
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, `100\%`, escapeLike("100%"))
	assert.Equal(t, `usb\_c`, escapeLike("usb_c"))
	assert.Equal(t, `back\\slash`, escapeLike(`back\slash`))
	assert.Equal(t, "plain", escapeLike("plain"))
}
