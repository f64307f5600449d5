package similarity

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownMethod is returned by ParseMethod for an unrecognised name.
var ErrUnknownMethod = errors.New("unknown similarity method")

// Method names one of the scoring functions.
type Method string

const (
	MethodLCS   Method = "lcs"
	MethodTCC   Method = "tcc"
	MethodBlend Method = "blend"
	MethodSmart Method = "smart"
)

// Methods lists every supported method.
var Methods = []Method{MethodLCS, MethodTCC, MethodBlend, MethodSmart}

// ParseMethod maps a name to a Method. The empty name selects MethodSmart.
func ParseMethod(name string) (Method, error) {
	switch m := Method(strings.ToLower(strings.TrimSpace(name))); m {
	case "":
		return MethodSmart, nil
	case MethodLCS, MethodTCC, MethodBlend, MethodSmart:
		return m, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownMethod, name)
	}
}

// Score runs the method on s and t. Only MethodSmart can return an error.
func (m Method) Score(s, t string, bw BlendWeights, sw SmartWeights) (float64, error) {
	switch m {
	case MethodLCS:
		return LcsRate(s, t), nil
	case MethodTCC:
		return TccRate(s, t), nil
	case MethodBlend:
		return BlendWeighted(s, t, bw), nil
	case MethodSmart:
		return SmartRateWeighted(s, t, sw)
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMethod, string(m))
	}
}
