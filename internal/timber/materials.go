package timber

import "math"

// Stob and bridge defaults

const (
	// Default stob dimensions (mm)
	DefaultPostLength  = 1800.0
	DefaultPostWidth   = 75.0
	DefaultRebateDepth = 9.0 // slot in a long timber that seats a cross timber

	// Default bridge layout
	DefaultSegments  = 6 // segments per arch
	DefaultDeckWidth = 7 // posts across the deck

	// Density of seasoned softwood stobs (kg/m³)
	Density = 510.0

	// mm³ per m³
	cubicMillimetresPerCubicMetre = 1e9
)

// Mass returns the mass (kg) of a timber volume given in mm³
func Mass(volume float64) float64 {
	return MassAt(volume, Density)
}

// MassAt returns the mass (kg) of a timber volume (mm³) at the given density (kg/m³)
func MassAt(volume, density float64) float64 {
	return volume / cubicMillimetresPerCubicMetre * density
}

// PostVolume returns the volume (mm³) of one square-section stob
func PostVolume(length, width float64) float64 {
	return length * width * width
}

// Radians converts an angle in degrees to radians
func Radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// Degrees converts an angle in radians to degrees
func Degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}
