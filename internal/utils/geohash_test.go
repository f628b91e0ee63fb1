package utils

import (
	"testing"

	"github.com/mmcloughlin/geohash"
	"github.com/piresc/nebengcab/internal/pkg/models"
	"github.com/stretchr/testify/assert"
)

func TestEncodeCoordinates(t *testing.T) {
	c := models.Coordinates{Latitude: -6.175392, Longitude: 106.827153}

	hash := EncodeCoordinates(c, 6)

	assert.Len(t, hash, 6)
	assert.Equal(t, geohash.EncodeWithPrecision(c.Latitude, c.Longitude, 6), hash)
}

func TestNearbyCells(t *testing.T) {
	cells := NearbyCells(-6.175392, 106.827153, 5)

	assert.Len(t, cells, 9)
	assert.Equal(t, geohash.EncodeWithPrecision(-6.175392, 106.827153, 5), cells[0])
	seen := map[string]bool{}
	for _, cell := range cells {
		assert.Len(t, cell, 5)
		assert.False(t, seen[cell], "duplicate cell %s", cell)
		seen[cell] = true
	}
}
