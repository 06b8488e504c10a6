package download

// Percent returns the overall completion for file index (0-based) of
// count files, given the bytes written and the declared size of that file:
//
//	(index + written/size) / count * 100
//
// The per-file fraction is clamped to [0, 1] and the result to [0, 100].
func Percent(index, count int, written, size int64) int {
	if count <= 0 {
		return 0
	}

	var fraction float64
	if size > 0 {
		fraction = float64(written) / float64(size)
	}
	fraction = min(max(fraction, 0), 1)

	percent := int((float64(index) + fraction) / float64(count) * 100)
	return min(max(percent, 0), 100)
}

// progressTracker delivers percentages to a callback, never reporting a
// value lower than one already reported.
type progressTracker struct {
	count      int
	last       int
	onProgress func(int)
}

func newProgressTracker(count int, onProgress func(int)) *progressTracker {
	return &progressTracker{count: count, onProgress: onProgress}
}

// update reports progress within file index. Without a declared size
// nothing is reported.
func (p *progressTracker) update(index int, written, size int64) {
	if size <= 0 {
		return
	}
	p.report(Percent(index, p.count, written, size))
}

func (p *progressTracker) finish() {
	p.report(100)
}

func (p *progressTracker) report(percent int) {
	p.last = max(p.last, percent)
	if p.onProgress != nil {
		p.onProgress(p.last)
	}
}
