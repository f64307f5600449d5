package similarity

// BlendWeights controls how Blend mixes the common character rate and the
// longest common substring rate.
type BlendWeights struct {
	Char      float64 `yaml:"char" json:"char"`
	Substring float64 `yaml:"substring" json:"substring"`
}

// DefaultBlendWeights weighs both rates equally.
func DefaultBlendWeights() BlendWeights {
	return BlendWeights{Char: 0.5, Substring: 0.5}
}

// Validate rejects negative or non-finite weights.
func (w BlendWeights) Validate() error {
	return validateWeights(map[string]float64{
		"char":      w.Char,
		"substring": w.Substring,
	})
}

// Blend combines TccRate and LcsRate with the default weights.
func Blend(s, t string) float64 {
	return BlendWeighted(s, t, DefaultBlendWeights())
}

// BlendWeighted computes TccRate*w.Char + LcsRate*w.Substring. Weights are used
// exactly as given: they are not required to sum to 1 and a zero weight drops
// its term.
func BlendWeighted(s, t string, w BlendWeights) float64 {
	return TccRate(s, t)*w.Char + LcsRate(s, t)*w.Substring
}
