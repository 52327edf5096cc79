package confounds

import "fmt"

// Category identifies one confound category of a denoising strategy.
//
// The categories mirror the fMRIPrep confound families:
//
//	Motion       – head motion estimates (trans_*/rot_*)
//	HighPass     – discrete cosine drift regressors
//	WMCSF        – white-matter and CSF mask averages
//	GlobalSignal – whole-brain global signal
//	CompCor      – component-based noise correction regressors
type Category int

const (
	Motion Category = iota
	HighPass
	WMCSF
	GlobalSignal
	CompCor

	numCategories // keep last
)

// String returns the canonical strategy vocabulary name.
func (c Category) String() string {
	switch c {
	case Motion:
		return "motion"
	case HighPass:
		return "high_pass"
	case WMCSF:
		return "wm_csf"
	case GlobalSignal:
		return "global"
	case CompCor:
		return "compcor"
	default:
		return fmt.Sprintf("category(%d)", int(c))
	}
}

// ExpansionMode selects which derived terms accompany a category's base
// parameters.
//
//	Basic       – base parameters only
//	Derivatives – base + first temporal derivatives        (2x)
//	Power2      – base + quadratic terms                   (2x)
//	Full        – base + derivatives + squares + squared
//	              derivatives                              (4x)
type ExpansionMode int

const (
	Basic ExpansionMode = iota
	Derivatives
	Power2
	Full
)

// String returns the canonical mode name.
func (m ExpansionMode) String() string {
	switch m {
	case Basic:
		return "basic"
	case Derivatives:
		return "derivatives"
	case Power2:
		return "power2"
	case Full:
		return "full"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// CompCorVariant selects which component-based correction regressors
// are collected.
//
//	CompCorAnat – anatomical CompCor (a_comp_cor_NN)
//	CompCorTemp – temporal CompCor   (t_comp_cor_NN)
//	CompCorFull – both, merged and lexicographically sorted
type CompCorVariant int

const (
	CompCorAnat CompCorVariant = iota
	CompCorTemp
	CompCorFull
)

// String returns the canonical variant name.
func (v CompCorVariant) String() string {
	switch v {
	case CompCorAnat:
		return "anat"
	case CompCorTemp:
		return "temp"
	case CompCorFull:
		return "full"
	default:
		return fmt.Sprintf("variant(%d)", int(v))
	}
}

// Options configures the per-category behavior of a Loader.
//
// Motion / WMCSF / GlobalSignal – expansion mode for that category.
// MotionPCA                     – principal components to keep from the
// expanded motion parameters; 0 disables reduction.
// CompCor                       – component variant.
// NCompCor                      – inclusive upper bound on component
// indices (components 0..NCompCor are requested).
type Options struct {
	Motion       ExpansionMode
	MotionPCA    int
	WMCSF        ExpansionMode
	GlobalSignal ExpansionMode
	CompCor      CompCorVariant
	NCompCor     int
}

// Option represents a functional option for configuring a Loader.
type Option func(*Options)

// WithMotion sets the motion expansion mode.
func WithMotion(m ExpansionMode) Option {
	return func(o *Options) { o.Motion = m }
}

// WithMotionPCA sets the number of principal components kept from the
// expanded motion parameters. Zero disables the reduction.
func WithMotionPCA(k int) Option {
	return func(o *Options) { o.MotionPCA = k }
}

// WithWMCSF sets the white-matter/CSF expansion mode.
func WithWMCSF(m ExpansionMode) Option {
	return func(o *Options) { o.WMCSF = m }
}

// WithGlobalSignal sets the global-signal expansion mode.
func WithGlobalSignal(m ExpansionMode) Option {
	return func(o *Options) { o.GlobalSignal = m }
}

// WithCompCor sets the component-based correction variant.
func WithCompCor(v CompCorVariant) Option {
	return func(o *Options) { o.CompCor = v }
}

// WithNCompCor sets the inclusive upper bound on component indices.
func WithNCompCor(n int) Option {
	return func(o *Options) { o.NCompCor = n }
}

// DefaultOptions returns the configuration used when no functional
// options are supplied:
//
//   - Motion:       Full (24-parameter expansion)
//   - MotionPCA:    0 (no reduction)
//   - WMCSF:        Basic
//   - GlobalSignal: Basic
//   - CompCor:      CompCorAnat
//   - NCompCor:     6
func DefaultOptions() Options {
	return Options{
		Motion:       Full,
		MotionPCA:    0,
		WMCSF:        Basic,
		GlobalSignal: Basic,
		CompCor:      CompCorAnat,
		NCompCor:     6,
	}
}

// Diagnostic reports a non-fatal condition observed during a load,
// currently only CompCor components requested by index but absent from
// the raw table. Diagnostics replace the original implementation's
// global warning channel.
type Diagnostic struct {
	Category Category
	Column   string
}

// String renders the diagnostic for logs.
func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: component column %q not found", d.Category, d.Column)
}
