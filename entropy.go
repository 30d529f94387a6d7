package ndstats

import "math"

// Information-theoretic measures over arrays interpreted as (unnormalized)
// probability masses, in nats. Throughout, a zero mass contributes zero:
// 0 * ln 0 = 0.

// Entropy returns -sum p*ln(p).
func Entropy(p *Array[float64]) (float64, error) {
	if p.Len() == 0 {
		return 0, ErrEmptyInput
	}
	s := 0.0
	for _, v := range p.data {
		if v != 0 {
			s -= v * math.Log(v)
		}
	}
	return s, nil
}

// CrossEntropy returns -sum p*ln(q) for same-shape p and q.
func CrossEntropy(p, q *Array[float64]) (float64, error) {
	if err := sameShape(p, q); err != nil {
		return 0, err
	}
	if p.Len() == 0 {
		return 0, ErrEmptyInput
	}
	s := 0.0
	for i, v := range p.data {
		if v != 0 {
			s -= v * math.Log(q.data[i])
		}
	}
	return s, nil
}

// KLDivergence returns sum p*ln(p/q), the Kullback-Leibler divergence of q
// from p, for same-shape p and q. Zero when p and q agree; +Inf where q
// assigns zero mass to a point p does not.
func KLDivergence(p, q *Array[float64]) (float64, error) {
	if err := sameShape(p, q); err != nil {
		return 0, err
	}
	if p.Len() == 0 {
		return 0, ErrEmptyInput
	}
	s := 0.0
	for i, v := range p.data {
		if v != 0 {
			s += v * math.Log(v/q.data[i])
		}
	}
	return s, nil
}
