package skyangle

import "math"

const degToRad = math.Pi / 180

func FromDegree(x float64) float64 { return x * degToRad }

func ToDegree(x float64) float64 { return x * 180 / math.Pi }
