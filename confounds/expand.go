package confounds

// Derived-column suffixes emitted by fMRIPrep.
const (
	suffixDerivative = "_derivative1"
	suffixPower2     = "_power2"
)

// ExpandNames derives the full column-name family for a list of base
// parameters under the given expansion mode. The result always begins
// with the base names in input order, followed by the whole
// _derivative1 group, then the _power2 group, then the
// _derivative1_power2 group (suffix groups are not interleaved per
// base). Length is |bases| for Basic, 2|bases| for Derivatives or
// Power2, and 4|bases| for Full.
//
// ExpandNames is pure: deterministic, no errors, input untouched.
func ExpandNames(bases []string, mode ExpansionMode) []string {
	factor := 1
	switch mode {
	case Derivatives, Power2:
		factor = 2
	case Full:
		factor = 4
	}
	out := make([]string, 0, len(bases)*factor)
	out = append(out, bases...)
	if mode == Derivatives || mode == Full {
		for _, b := range bases {
			out = append(out, b+suffixDerivative)
		}
	}
	if mode == Power2 || mode == Full {
		for _, b := range bases {
			out = append(out, b+suffixPower2)
		}
	}
	if mode == Full {
		for _, b := range bases {
			out = append(out, b+suffixDerivative+suffixPower2)
		}
	}

	return out
}
