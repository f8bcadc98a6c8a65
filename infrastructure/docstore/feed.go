package docstore

import "sync"

// Feed entrega snapshots a um único assinante, na ordem em que foram enfileirados.
// Push nunca bloqueia quem escreve; a entrega acontece numa goroutine própria.
type Feed struct {
	fn     SnapshotFunc
	mu     sync.Mutex
	queue  []*Document
	signal chan struct{}
	closed bool
	once   sync.Once
}

func NewFeed(fn SnapshotFunc) *Feed {
	f := &Feed{
		fn:     fn,
		signal: make(chan struct{}, 1),
	}
	go f.run()
	return f
}

func (f *Feed) Push(doc *Document) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return
	}
	f.queue = append(f.queue, doc)

	select {
	case f.signal <- struct{}{}:
	default:
	}
}

// Close interrompe a entrega. Nenhum callback novo começa depois que Close retorna.
func (f *Feed) Close() {
	f.once.Do(func() {
		f.mu.Lock()
		defer f.mu.Unlock()

		f.closed = true
		f.queue = nil
		close(f.signal)
	})
}

func (f *Feed) run() {
	for range f.signal {
		for {
			doc, ok := f.next()
			if !ok {
				break
			}
			f.fn(doc)
		}
	}
}

func (f *Feed) next() (*Document, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed || len(f.queue) == 0 {
		return nil, false
	}

	doc := f.queue[0]
	f.queue[0] = nil
	f.queue = f.queue[1:]
	return doc, true
}
