package utils

import (
	"github.com/mmcloughlin/geohash"
	"github.com/piresc/nebengcab/internal/pkg/models"
)

// EncodeCoordinates converts coordinates to a geohash of the given precision
func EncodeCoordinates(c models.Coordinates, precision uint) string {
	return geohash.EncodeWithPrecision(c.Latitude, c.Longitude, precision)
}

// NearbyCells returns the cell containing the point followed by its eight neighbours
func NearbyCells(latitude, longitude float64, precision uint) []string {
	center := geohash.EncodeWithPrecision(latitude, longitude, precision)
	return append([]string{center}, geohash.Neighbors(center)...)
}
