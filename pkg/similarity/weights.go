package similarity

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

// ErrInvalidWeights is wrapped by the Validate methods of the weight types.
var ErrInvalidWeights = errors.New("invalid weights")

func validateWeights(named map[string]float64) error {
	names := make([]string, 0, len(named))
	for name := range named {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		v := named[name]
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %s weight is not finite", ErrInvalidWeights, name)
		}
		if v < 0 {
			return fmt.Errorf("%w: %s weight %g is negative", ErrInvalidWeights, name, v)
		}
	}
	return nil
}
