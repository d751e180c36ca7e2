package gestures

// sampleRing is a fixed-capacity ring buffer of pointer samples.
// When full, pushing evicts the oldest sample.
type sampleRing struct {
	data [historyCap]Sample
	pos  int
	full bool
}

func (r *sampleRing) push(s Sample) {
	r.data[r.pos] = s
	r.pos++
	if r.pos >= historyCap {
		r.pos = 0
		r.full = true
	}
}

func (r *sampleRing) clear() {
	r.pos = 0
	r.full = false
}

func (r *sampleRing) len() int {
	if r.full {
		return historyCap
	}
	return r.pos
}

// oldest returns the least recently pushed sample still retained.
func (r *sampleRing) oldest() Sample {
	if r.full {
		return r.data[r.pos]
	}
	return r.data[0]
}

// newest returns the most recently pushed sample.
func (r *sampleRing) newest() Sample {
	idx := r.pos - 1
	if idx < 0 {
		idx = historyCap - 1
	}
	return r.data[idx]
}

// velocity estimates pointer velocity in pixels per millisecond as the
// slope between the oldest and newest retained samples. It reports
// zero when fewer than two samples exist or the window spans no time.
func (r *sampleRing) velocity() (vx, vy float64) {
	if r.len() < 2 {
		return 0, 0
	}
	first, last := r.oldest(), r.newest()
	elapsed := float64(last.Time.Sub(first.Time).Microseconds()) / 1000.0
	if elapsed <= 0 {
		return 0, 0
	}
	return (last.X - first.X) / elapsed, (last.Y - first.Y) / elapsed
}
