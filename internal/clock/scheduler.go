package clock

// FrameID identifies a pending frame callback.
type FrameID uint64

// FrameFunc receives the frame timestamp in milliseconds.
type FrameFunc func(timestamp float64)

// Scheduler runs callbacks once on the next display frame.
type Scheduler interface {
	RequestFrame(fn FrameFunc) FrameID
	CancelFrame(id FrameID)
}

// FrameLoop is a Scheduler driven by the host game loop: the host calls Fire
// once per frame. It is not safe for concurrent use.
type FrameLoop struct {
	nextID  FrameID
	pending map[FrameID]FrameFunc
	order   []FrameID
}

func NewFrameLoop() *FrameLoop {
	return &FrameLoop{pending: map[FrameID]FrameFunc{}}
}

func (l *FrameLoop) RequestFrame(fn FrameFunc) FrameID {
	l.nextID++
	id := l.nextID
	l.pending[id] = fn
	l.order = append(l.order, id)
	return id
}

func (l *FrameLoop) CancelFrame(id FrameID) {
	delete(l.pending, id)
}

// Fire runs every callback requested before this call. Callbacks requested
// while firing wait for the next frame; callbacks cancelled while firing
// are skipped.
func (l *FrameLoop) Fire(timestamp float64) {
	batch := l.order
	l.order = nil
	for _, id := range batch {
		fn, ok := l.pending[id]
		if !ok {
			continue
		}
		delete(l.pending, id)
		fn(timestamp)
	}
}

// Pending reports how many callbacks wait for the next frame.
func (l *FrameLoop) Pending() int {
	return len(l.pending)
}
