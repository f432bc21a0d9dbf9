package roomRepo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
)

func TestPageOffset(t *testing.T) {
	tests := []struct {
		name  string
		page  int64
		limit int64
		want  int64
	}{
		{"first_page_starts_at_zero", 1, 8, 0},
		{"page_two_size_five_starts_at_five", 2, 5, 5},
		{"page_three_size_four_starts_at_eight", 3, 4, 8},
		{"large_page", 10, 8, 72},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, pageOffset(tc.page, tc.limit))
		})
	}
}

func TestPriceSort(t *testing.T) {
	assert.Equal(t, bson.D{{Key: "price", Value: 1}}, priceSort("asc"))
	assert.Equal(t, bson.D{{Key: "price", Value: -1}}, priceSort("desc"))

	// Anything else keeps natural order.
	assert.Nil(t, priceSort(""))
	assert.Nil(t, priceSort("cheapest"))
}
