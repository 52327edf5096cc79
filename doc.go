// Package confounds selects and derives nuisance-regressor columns from
// fMRIPrep confound tables, producing denoising design matrices for
// downstream statistical analysis.
//
// 🚀 What is neurokit/confounds?
//
//	A small, deterministic, pure-Go library that brings together:
//		• Raw confound tables: ordered numeric columns loaded from TSV
//		• Suffix expansion: derivatives, quadratic terms, full 4x models
//		• Keyword discovery: high-pass discrete-cosine regressors
//		• Indexed discovery: anatomical/temporal CompCor components
//		• Motion PCA: standardize + reduce 6/12/24 motion parameters
//		• Strategies: motion, high_pass, wm_csf, global, compcor —
//		  plus the Ciric et al. (2017) presets 2P/6P/9P/24P/36P
//
// ✨ Why choose neurokit/confounds?
//
//   - Deterministic – identical inputs always yield column- and
//     value-identical outputs
//   - Fail-fast – strategies validated at construction, missing columns
//     reported before any partial result escapes
//   - Pure Go – no cgo, no hidden deps
//
// Everything is organized under three subpackages:
//
//	table/     — ordered numeric tables + TSV ingestion
//	pca/       — column standardization + principal component analysis
//	confounds/ — category loaders, strategy orchestration, presets
//
// Dive into DESIGN.md for the component map and decision log.
//
//	go get github.com/neurokit/confounds
package confounds
