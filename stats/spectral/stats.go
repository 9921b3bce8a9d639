package spectral

import "math"

// Stats holds descriptors of a one-sided power spectrum such as the one
// returned by noisemap.HeightMap.RowSpectrum. Frequencies are in cycles per
// cell. For an even row width the last bin is Nyquist (0.5); for an odd
// width it is (width-1)/(2*width).
//
// All descriptors except DCPower ignore bin 0: the mean height of a map
// says nothing about its texture.
type Stats struct {
	Bins      int
	DCPower   float64
	ACPower   float64 // sum of bins 1..N-1
	PeakBin   int
	PeakFreq  float64
	Centroid  float64 // power-weighted mean frequency
	Spread    float64 // power-weighted standard deviation around Centroid
	Flatness  float64 // geometric over arithmetic mean of power, 0..1
	Rolloff   float64 // frequency below which 85% of AC power lies
	Slope     float64 // least-squares slope of log(power) against log(freq)
	SlopeBins int     // bins with positive power used for Slope
}

// DefaultRolloff is the AC power fraction used by Calculate.
const DefaultRolloff = 0.85

// Frequency returns the frequency in cycles per cell of bin i in a spectrum
// of binCount bins taken from an even row width, width = 2*(binCount-1).
// Use FrequencyAt when the width may be odd.
func Frequency(i, binCount int) float64 {
	return FrequencyAt(i, evenWidth(binCount))
}

// FrequencyAt returns the frequency in cycles per cell of bin i of a row
// spectrum taken over width cells.
func FrequencyAt(i, width int) float64 {
	if width < 1 {
		return 0
	}
	return float64(i) / float64(width)
}

// evenWidth is the even row width that yields binCount bins.
func evenWidth(binCount int) int {
	if binCount < 2 {
		return 0
	}
	return 2 * (binCount - 1)
}

// Calculate computes all descriptors from a power spectrum (linear, not dB)
// taken over an even row width. Spectra of odd widths need CalculateWidth,
// since width/2+1 bins cannot tell width 2k from 2k+1.
func Calculate(power []float64) Stats {
	return CalculateWidth(power, evenWidth(len(power)))
}

// CalculateWidth is Calculate for a spectrum taken over width cells, which
// should satisfy len(power) == width/2+1. A width below 1 falls back to the
// even width.
func CalculateWidth(power []float64, width int) Stats {
	n := len(power)
	if n == 0 {
		return Stats{}
	}
	if width < 1 {
		width = evenWidth(n)
	}

	s := Stats{Bins: n, DCPower: power[0]}
	if n < 2 {
		return s
	}

	peak := power[1]
	s.PeakBin = 1
	for i := 1; i < n; i++ {
		p := power[i]
		s.ACPower += p
		if p > peak {
			peak = p
			s.PeakBin = i
		}
	}
	s.PeakFreq = FrequencyAt(s.PeakBin, width)

	s.Centroid = centroid(power, s.ACPower, width)
	s.Spread = spread(power, s.Centroid, s.ACPower, width)
	s.Flatness = Flatness(power)
	s.Rolloff = rolloff(power, DefaultRolloff, s.ACPower, width)
	s.Slope, s.SlopeBins = logLogSlope(power, width)
	return s
}

// Centroid returns the power-weighted mean frequency of bins 1..N-1.
//
//	centroid = sum(f_i * P_i) / sum(P_i)
func Centroid(power []float64) float64 {
	if len(power) < 2 {
		return 0
	}
	sum := 0.0
	for _, p := range power[1:] {
		sum += p
	}
	return centroid(power, sum, evenWidth(len(power)))
}

func centroid(power []float64, acPower float64, width int) float64 {
	n := len(power)
	if n < 2 || acPower == 0 {
		return 0
	}
	weighted := 0.0
	for i := 1; i < n; i++ {
		weighted += FrequencyAt(i, width) * power[i]
	}
	return weighted / acPower
}

func spread(power []float64, cent, acPower float64, width int) float64 {
	n := len(power)
	if n < 2 || acPower == 0 {
		return 0
	}
	weightedSq := 0.0
	for i := 1; i < n; i++ {
		diff := FrequencyAt(i, width) - cent
		weightedSq += diff * diff * power[i]
	}
	return math.Sqrt(weightedSq / acPower)
}

// Flatness returns the spectral flatness (Wiener entropy) of bins 1..N-1 in
// the range 0..1. White noise approaches 1, a pure tone approaches 0. If
// any considered bin is zero, 0 is returned.
func Flatness(power []float64) float64 {
	n := len(power)
	if n < 2 {
		return 0
	}

	nBins := float64(n - 1)
	sumLin := 0.0
	sumLog := 0.0
	for _, p := range power[1:] {
		if p <= 0 {
			return 0
		}
		sumLin += p
		sumLog += math.Log(p)
	}

	return math.Exp(sumLog/nBins) / (sumLin / nBins)
}

// Rolloff returns the frequency below which the given fraction (0..1) of AC
// power lies.
func Rolloff(power []float64, percent float64) float64 {
	if len(power) < 2 {
		return 0
	}
	sum := 0.0
	for _, p := range power[1:] {
		sum += p
	}
	return rolloff(power, percent, sum, evenWidth(len(power)))
}

func rolloff(power []float64, percent, acPower float64, width int) float64 {
	n := len(power)
	if n < 2 || acPower == 0 {
		return 0
	}
	threshold := percent * acPower
	cum := 0.0
	for i := 1; i < n; i++ {
		cum += power[i]
		if cum >= threshold {
			return FrequencyAt(i, width)
		}
	}
	return FrequencyAt(n-1, width)
}

// Slope fits log(P) = a + slope*log(f) over the bins 1..N-1 with positive
// power and returns the slope with the number of bins used. Fractal noise
// with power proportional to f^-beta yields -beta. Fewer than two usable
// bins yield (0, count).
func Slope(power []float64) (slope float64, bins int) {
	return logLogSlope(power, evenWidth(len(power)))
}

func logLogSlope(power []float64, width int) (float64, int) {
	n := len(power)
	bins := 0
	var sx, sy, sxx, sxy float64
	for i := 1; i < n; i++ {
		if power[i] <= 0 {
			continue
		}
		x := math.Log(FrequencyAt(i, width))
		y := math.Log(power[i])
		sx += x
		sy += y
		sxx += x * x
		sxy += x * y
		bins++
	}
	if bins < 2 {
		return 0, bins
	}

	k := float64(bins)
	denom := k*sxx - sx*sx
	if denom == 0 {
		return 0, bins
	}
	return (k*sxy - sx*sy) / denom, bins
}
