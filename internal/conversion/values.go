package conversion

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// Values is a batch of angle values. It survives a JSON payload round trip
// even when it holds NaN or ±Inf, which encoding/json rejects: non-finite
// entries are written as the strings "NaN", "+Inf" and "-Inf".
type Values []float64

// MarshalJSON encodes finite entries as numbers and the rest as strings.
func (v Values) MarshalJSON() ([]byte, error) {
	if v == nil {
		return []byte("null"), nil
	}
	aux := make([]any, len(v))
	for i, x := range v {
		switch {
		case math.IsNaN(x):
			aux[i] = "NaN"
		case math.IsInf(x, 1):
			aux[i] = "+Inf"
		case math.IsInf(x, -1):
			aux[i] = "-Inf"
		default:
			aux[i] = x
		}
	}
	return json.Marshal(aux)
}

// UnmarshalJSON mirrors MarshalJSON.
func (v *Values) UnmarshalJSON(data []byte) error {
	var aux []json.RawMessage
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if aux == nil {
		*v = nil
		return nil
	}

	out := make(Values, len(aux))
	for i, raw := range aux {
		if len(raw) > 0 && raw[0] == '"' {
			var s string
			if err := json.Unmarshal(raw, &s); err != nil {
				return fmt.Errorf("values[%d]: %w", i, err)
			}
			x, err := parseNonFinite(s)
			if err != nil {
				return fmt.Errorf("values[%d]: %w", i, err)
			}
			out[i] = x
			continue
		}
		if err := json.Unmarshal(raw, &out[i]); err != nil {
			return fmt.Errorf("values[%d]: %w", i, err)
		}
	}
	*v = out
	return nil
}

func parseNonFinite(s string) (float64, error) {
	switch s {
	case "NaN":
		return math.NaN(), nil
	case "+Inf":
		return math.Inf(1), nil
	case "-Inf":
		return math.Inf(-1), nil
	default:
		return 0, fmt.Errorf("unsupported value %s", strconv.Quote(s))
	}
}
