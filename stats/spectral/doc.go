// Package spectral describes the frequency content of a map from its row
// power spectrum: where the power sits (centroid, rolloff, peak), how noisy
// it is (flatness), and how fast it falls off (log-log slope).
package spectral
