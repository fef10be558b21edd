package audio

import "math"

// fftPlan holds the bit-reversal permutation and twiddle factors for one
// transform size, so per-frame transforms do no trigonometry.
type fftPlan struct {
	swaps  [][2]int
	cos    []float64
	sin    []float64
	window []float64
}

// newFFTPlan prepares a radix-2 transform of n points with a Blackman
// window. n must be a power of two.
func newFFTPlan(n int) *fftPlan {
	p := &fftPlan{
		cos:    make([]float64, n/2),
		sin:    make([]float64, n/2),
		window: blackman(n),
	}
	for k := range p.cos {
		angle := -2 * math.Pi * float64(k) / float64(n)
		p.cos[k], p.sin[k] = math.Cos(angle), math.Sin(angle)
	}
	for i, j := 1, 0; i < n; i++ {
		bit := n >> 1
		for ; j&bit != 0; bit >>= 1 {
			j ^= bit
		}
		j ^= bit
		if i < j {
			p.swaps = append(p.swaps, [2]int{i, j})
		}
	}
	return p
}

func (p *fftPlan) size() int { return len(p.window) }

// transform runs the in-place Cooley-Tukey FFT on re and im.
func (p *fftPlan) transform(re, im []float64) {
	n := p.size()
	for _, s := range p.swaps {
		i, j := s[0], s[1]
		re[i], re[j] = re[j], re[i]
		im[i], im[j] = im[j], im[i]
	}
	for size := 2; size <= n; size <<= 1 {
		half, stride := size>>1, n/size
		for start := 0; start < n; start += size {
			for k := range half {
				wr, wi := p.cos[k*stride], p.sin[k*stride]
				a, b := start+k, start+k+half
				tr := wr*re[b] - wi*im[b]
				ti := wr*im[b] + wi*re[b]
				re[b], im[b] = re[a]-tr, im[a]-ti
				re[a] += tr
				im[a] += ti
			}
		}
	}
}

// blackman returns the Blackman window coefficients for n samples.
func blackman(n int) []float64 {
	const alpha = 0.16
	a0 := (1 - alpha) / 2
	a1 := 0.5
	a2 := alpha / 2

	w := make([]float64, n)
	for i := range w {
		x := float64(i) / float64(n)
		w[i] = a0 - a1*math.Cos(2*math.Pi*x) + a2*math.Cos(4*math.Pi*x)
	}
	return w
}
