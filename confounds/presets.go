package confounds

// Preset strategies adapted from Ciric et al. (2017), "Benchmarking of
// participant-level confound regression strategies for the control of
// motion artifact in studies of functional connectivity", NeuroImage
// 154:174-87. The band-pass filter of the benchmark is replaced by a
// high-pass filter, as high frequencies carry meaningful signal for
// connectivity analysis.
//
// Each preset is a plain factory over NewLoader; the arguments are
// static and known-valid, so construction cannot fail.

// mustLoader unwraps NewLoader for the static preset configurations.
func mustLoader(l *Loader, err error) *Loader {
	if err != nil {
		panic(err)
	}

	return l
}

// Default mirrors the stock configuration: motion (full expansion),
// high-pass and wm_csf (basic), no motion PCA.
func Default() *Loader {
	return mustLoader(NewLoader([]Category{Motion, HighPass, WMCSF}))
}

// P2 is the 2-parameter strategy: mean white-matter and CSF signals,
// with high-pass filter.
func P2() *Loader {
	return mustLoader(NewLoader(
		[]Category{HighPass, WMCSF},
		WithWMCSF(Basic),
	))
}

// P6 is the 6-parameter strategy: basic motion parameters with
// high-pass filter.
func P6() *Loader {
	return mustLoader(NewLoader(
		[]Category{HighPass, Motion},
		WithMotion(Basic),
		WithMotionPCA(0),
	))
}

// P9 is the 9-parameter strategy: basic motion parameters, WM/CSF
// signals, global signal and high-pass filter.
func P9() *Loader {
	return mustLoader(NewLoader(
		[]Category{HighPass, Motion, WMCSF, GlobalSignal},
		WithMotion(Basic),
		WithMotionPCA(0),
		WithWMCSF(Basic),
		WithGlobalSignal(Basic),
	))
}

// P24 is the 24-parameter strategy: full motion parameters
// (derivatives, squares and squared derivatives) with high-pass filter.
func P24() *Loader {
	return mustLoader(NewLoader(
		[]Category{HighPass, Motion},
		WithMotion(Full),
		WithMotionPCA(0),
	))
}

// P36 is the 36-parameter strategy: motion parameters, WM/CSF signals
// and global signal, all fully expanded, with high-pass filter.
func P36() *Loader {
	return mustLoader(NewLoader(
		[]Category{HighPass, Motion, WMCSF, GlobalSignal},
		WithMotion(Full),
		WithMotionPCA(0),
		WithWMCSF(Full),
		WithGlobalSignal(Full),
	))
}
