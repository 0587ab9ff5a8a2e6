package geo

import (
	"math"
	"testing"
)

func TestDistanceKmIdenticalPoints(t *testing.T) {
	points := [][2]float64{
		{0, 0},
		{48.8566, 2.3522},
		{-33.8688, 151.2093},
	}
	for _, p := range points {
		if d := DistanceKm(p[0], p[1], p[0], p[1]); d != 0 {
			t.Errorf("DistanceKm(%v, %v, same point) = %v, want 0", p[0], p[1], d)
		}
	}
}

func TestDistanceKmSymmetry(t *testing.T) {
	d1 := DistanceKm(52.5200, 13.4050, 40.7128, -74.0060)
	d2 := DistanceKm(40.7128, -74.0060, 52.5200, 13.4050)
	if d1 != d2 {
		t.Errorf("distance not symmetric: %v vs %v", d1, d2)
	}
}

func TestDistanceKmOneDegreeOfLongitudeAtEquator(t *testing.T) {
	// One degree along the equator is about 111.19 km
	d := DistanceKm(0, 0, 0, 1)
	if math.Abs(d-111.19) > 0.1 {
		t.Errorf("DistanceKm(0,0,0,1) = %v, want ~111.19", d)
	}
}

func TestDistanceKmKnownCityPair(t *testing.T) {
	// Paris to London, roughly 344 km
	d := DistanceKm(48.8566, 2.3522, 51.5074, -0.1278)
	if d < 330 || d > 360 {
		t.Errorf("Paris-London distance = %v, want ~344", d)
	}
}
