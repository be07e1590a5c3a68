package tui

// DefaultHistorySize is the number of CPU samples retained for the graph.
const DefaultHistorySize = 120

// History is a fixed-size ring buffer of CPU utilization samples. It is not
// safe for concurrent use; the Bubble Tea update loop owns it.
type History struct {
	data  []float64
	head  int
	count int
	size  int
}

// NewHistory creates a history buffer with the specified capacity.
func NewHistory(size int) *History {
	if size <= 0 {
		size = DefaultHistorySize
	}
	return &History{
		data: make([]float64, size),
		size: size,
	}
}

// Push adds a sample, evicting the oldest once the buffer is full.
func (h *History) Push(value float64) {
	h.data[h.head] = value
	h.head = (h.head + 1) % h.size
	if h.count < h.size {
		h.count++
	}
}

// Last returns the most recent count values in chronological order (oldest
// first). Returns fewer values if not enough history is available.
func (h *History) Last(count int) []float64 {
	if count <= 0 || h.count == 0 {
		return nil
	}

	if count > h.count {
		count = h.count
	}

	result := make([]float64, count)

	// head points to the next write position, so the most recent value is at
	// head-1. We want 'count' values ending there.
	start := (h.head - count + h.size) % h.size

	for i := 0; i < count; i++ {
		idx := (start + i) % h.size
		result[i] = h.data[idx]
	}

	return result
}

// Count returns the number of stored samples.
func (h *History) Count() int {
	return h.count
}
