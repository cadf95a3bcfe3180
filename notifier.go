package gridscroll

import "sync"

// IndexNotifier publishes the first visible index to subscribers, skipping
// values equal to the previous one. Once closed it never publishes again.
//
// Callback subscribers run synchronously inside Publish. Channel subscribers
// are fed by a per-channel pump goroutine that coalesces bursts: a slow reader
// sees the latest value, never two equal values in a row, and Publish never
// blocks on it.
type IndexNotifier struct {
	mu        sync.Mutex
	last      int
	published bool
	closed    bool
	nextID    int
	callbacks map[int]func(int)
	pumps     map[int]*indexPump
}

// NewIndexNotifier creates an open notifier with no subscribers.
func NewIndexNotifier() *IndexNotifier {
	return &IndexNotifier{
		callbacks: make(map[int]func(int)),
		pumps:     make(map[int]*indexPump),
	}
}

// Publish records idx and notifies subscribers if it differs from the last
// published value. Returns true if subscribers were notified.
func (n *IndexNotifier) Publish(idx int) bool {
	n.mu.Lock()
	if n.closed || (n.published && n.last == idx) {
		n.mu.Unlock()
		return false
	}
	n.last = idx
	n.published = true

	callbacks := make([]func(int), 0, len(n.callbacks))
	for _, fn := range n.callbacks {
		callbacks = append(callbacks, fn)
	}
	for _, p := range n.pumps {
		p.offer(idx)
	}
	n.mu.Unlock()

	for _, fn := range callbacks {
		fn(idx)
	}
	return true
}

// Last returns the last published value and whether anything was published.
func (n *IndexNotifier) Last() (int, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.last, n.published
}

// Subscribe registers fn for every future change. The returned function
// removes the subscription. Subscribing to a closed notifier is a no-op.
func (n *IndexNotifier) Subscribe(fn func(int)) (cancel func()) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.closed || fn == nil {
		return func() {}
	}
	id := n.nextID
	n.nextID++
	n.callbacks[id] = fn
	return func() {
		n.mu.Lock()
		delete(n.callbacks, id)
		n.mu.Unlock()
	}
}

// Changes returns a channel receiving future changes. The channel is closed
// when the notifier closes or cancel is called. On a closed notifier the
// returned channel is already closed.
func (n *IndexNotifier) Changes() (ch <-chan int, cancel func()) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.closed {
		out := make(chan int)
		close(out)
		return out, func() {}
	}
	id := n.nextID
	n.nextID++
	p := newIndexPump()
	n.pumps[id] = p
	go p.run()
	return p.out, func() {
		n.mu.Lock()
		if _, ok := n.pumps[id]; ok {
			delete(n.pumps, id)
			p.stop()
		}
		n.mu.Unlock()
	}
}

// Close permanently stops publication and closes every subscriber channel.
// Calling Close more than once is safe.
func (n *IndexNotifier) Close() {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.closed {
		return
	}
	n.closed = true
	for id, p := range n.pumps {
		p.stop()
		delete(n.pumps, id)
	}
	clear(n.callbacks)
}

// Closed reports whether Close has been called.
func (n *IndexNotifier) Closed() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.closed
}

// indexPump forwards the latest offered value to out without blocking the
// publisher. It never delivers the same value twice in a row.
type indexPump struct {
	mu      sync.Mutex
	pending int
	has     bool
	wake    chan struct{}
	done    chan struct{}
	out     chan int
	once    sync.Once
}

func newIndexPump() *indexPump {
	return &indexPump{
		wake: make(chan struct{}, 1),
		done: make(chan struct{}),
		out:  make(chan int),
	}
}

func (p *indexPump) offer(v int) {
	p.mu.Lock()
	p.pending = v
	p.has = true
	p.mu.Unlock()
	select {
	case p.wake <- struct{}{}:
	default:
	}
}

func (p *indexPump) stop() {
	p.once.Do(func() { close(p.done) })
}

func (p *indexPump) run() {
	defer close(p.out)
	var delivered int
	var hasDelivered bool
	for {
		select {
		case <-p.done:
			return
		case <-p.wake:
		}

		p.mu.Lock()
		v, ok := p.pending, p.has
		p.has = false
		p.mu.Unlock()
		if !ok || (hasDelivered && v == delivered) {
			continue
		}

		select {
		case p.out <- v:
			delivered = v
			hasDelivered = true
		case <-p.done:
			return
		}
	}
}
