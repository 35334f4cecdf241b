package a

import "math"

const Pi = 3

func toRad(deg float64) float64 {
	return deg * math.Pi / 180 // want "use skyangle.FromDegree"
}

func toRadFactor(deg float64) float64 {
	return deg * (math.Pi / 180.0) // want "use skyangle.FromDegree"
}

func toDeg(rad float64) float64 {
	return rad * 180 / math.Pi // want "use skyangle.ToDegree"
}

func notPi(x float64) float64 {
	return x * Pi / 180
}

func halfTurn(x float64) float64 {
	return x * math.Pi / 2
}

func toDegFactor(rad float64) float64 {
	return rad * (180 / math.Pi) // want "use skyangle.ToDegree"
}
