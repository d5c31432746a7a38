package audit

import (
	"context"
	"log"
	"sync"
)

type Event struct {
	BarbershopID uint
	UserID       *uint
	Action       string
	Entity       string
	EntityID     *uint
	Source       string
	Metadata     any
}

// Sink persiste eventos. *Logger é a implementação em banco.
type Sink interface {
	Write(ctx context.Context, ev Event) error
}

const defaultQueueSize = 100

type Dispatcher struct {
	sink  Sink
	queue chan Event
	done  chan struct{}

	mu     sync.RWMutex
	closed bool
}

func NewDispatcher(sink Sink) *Dispatcher {
	return NewDispatcherSize(sink, defaultQueueSize)
}

func NewDispatcherSize(sink Sink, size int) *Dispatcher {
	if size <= 0 {
		size = defaultQueueSize
	}
	d := &Dispatcher{
		sink:  sink,
		queue: make(chan Event, size),
		done:  make(chan struct{}),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer close(d.done)
	for ev := range d.queue {
		if err := d.sink.Write(context.Background(), ev); err != nil {
			log.Printf("audit error (%s): %v", ev.Action, err)
		}
	}
}

// Dispatch nunca bloqueia: com a fila cheia o evento é descartado.
// Dispatcher nil é aceito e não faz nada.
func (d *Dispatcher) Dispatch(ev Event) {
	if d == nil {
		return
	}

	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.closed {
		return
	}

	select {
	case d.queue <- ev:
	default:
		log.Printf("audit queue full, dropping event %s", ev.Action)
	}
}

// Close para de aceitar eventos e espera a fila esvaziar.
func (d *Dispatcher) Close() {
	if d == nil {
		return
	}

	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	d.closed = true
	close(d.queue)
	d.mu.Unlock()

	<-d.done
}
