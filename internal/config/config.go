// Package config holds the compile-time constants that govern the
// embedding pipeline. It replaces the process-wide mutable singleton of
// the original source with a single read-only value constructed once at
// init time; nothing here changes after the package loads.
package config

// Config bundles every tunable of the embed/extract pipeline. It is
// intentionally free of runtime knobs (port numbers, CORS origins, log
// format): those live in the environment and are read by cmd/.
type Config struct {
	// BaseEmbeddingRate is the fraction of total slots reserved for the
	// frame (header + ciphertext + tag + pad).
	BaseEmbeddingRate float64
	// MinCostThreshold gates which slots are treated as effectively
	// unusable by the position schedule's weighting function.
	MinCostThreshold float64
	// MaxGradient normalizes the Sobel-like gradient magnitude into a
	// cost in (0, 1].
	MaxGradient float64
	// FrameOverhead is the fixed LEN+NONCE+TAG byte cost of a frame.
	FrameOverhead int
	// SwapBiasProbability is the chance the biased Fisher-Yates shuffle
	// swaps two slots even when the weight comparison says it shouldn't.
	SwapBiasProbability float64
}

// HMAC/HKDF domain-separation labels. Exact bytes matter: encoder and
// decoder must derive identical streams from identical labels.
const (
	LabelInit    = "STEG_INIT_V2"
	LabelEncKey  = "STEG_ENC_V2"
	LabelPad     = "PAD_V2"
	LabelScatter = "SCATTER_V2"
	LabelCamo    = "CAMO_V2"
)

// Default is the process-wide configuration. It is read-only after
// package init; no code in this repository ever mutates its fields.
var Default = Config{
	BaseEmbeddingRate:   0.04,
	MinCostThreshold:    0.15,
	MaxGradient:         50.0,
	FrameOverhead:       32,
	SwapBiasProbability: 0.30,
}
