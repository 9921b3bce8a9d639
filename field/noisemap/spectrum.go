package noisemap

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

// RowSpectrum returns the one-sided power spectrum of the map's rows,
// averaged over all rows. Bin k holds |X[k]|^2 / width^2 for k in
// [0, width/2], so a constant map of value c has c^2 in bin 0 and zero
// elsewhere. Bin k lies at k/width cycles per cell. The bin count does not
// tell an even width from the next odd one, so analyse odd widths with
// spectral.CalculateWidth.
func (m *HeightMap) RowSpectrum() ([]float64, error) {
	if m.Empty() {
		return nil, ErrEmptyMap
	}

	width, height := m.Width(), m.Height()
	plan, err := algofft.NewPlan64(width)
	if err != nil {
		return nil, fmt.Errorf("noisemap: failed to create FFT plan: %w", err)
	}

	bins := width/2 + 1
	in := make([]complex128, width)
	out := make([]complex128, width)
	re := make([]float64, bins)
	im := make([]float64, bins)
	pow := make([]float64, bins)
	acc := make([]float64, bins)

	cells := m.Cells()
	for y := 0; y < height; y++ {
		row := cells[y*width : (y+1)*width]
		for i, v := range row {
			in[i] = complex(v, 0)
		}

		if err := plan.Forward(out, in); err != nil {
			return nil, fmt.Errorf("noisemap: forward FFT failed: %w", err)
		}

		for k := 0; k < bins; k++ {
			re[k] = real(out[k])
			im[k] = imag(out[k])
		}
		vecmath.Power(pow, re, im)
		for k, p := range pow {
			acc[k] += p
		}
	}

	norm := 1 / (float64(width) * float64(width) * float64(height))
	for k := range acc {
		acc[k] *= norm
	}
	return acc, nil
}
