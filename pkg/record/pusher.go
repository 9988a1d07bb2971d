package record

import (
	"log"
	"sync"
	"time"
)

// Pusher batches values and flushes them on an interval. Flush errors
// go to the error handler; the buffered values are dropped with them.
type Pusher[T any] struct {
	PushLogic    func(...T) error
	PushInterval time.Duration
	ErrorHandler func(error)

	buffer []T
	lock   sync.Mutex
	stop   chan struct{}
	done   chan struct{}
}

type Option[T any] func(*Pusher[T])

func WithPushLogic[T any](pushLogic func(...T) error) Option[T] {
	return func(p *Pusher[T]) {
		p.PushLogic = pushLogic
	}
}

func WithPushInterval[T any](pushInterval time.Duration) Option[T] {
	return func(p *Pusher[T]) {
		p.PushInterval = pushInterval
	}
}

func WithErrorHandler[T any](errorHandler func(error)) Option[T] {
	return func(p *Pusher[T]) {
		p.ErrorHandler = errorHandler
	}
}

func NewPusher[T any](options ...Option[T]) (newPusher *Pusher[T]) {
	newPusher = &Pusher[T]{
		PushLogic:    func(...T) error { return nil },
		ErrorHandler: func(err error) { log.Println(err) },
		PushInterval: time.Second,
		stop:         make(chan struct{}),
		done:         make(chan struct{}),
	}

	for _, option := range options {
		option(newPusher)
	}

	return
}

// PushAll flushes the buffer synchronously.
func (p *Pusher[T]) PushAll() error {
	p.lock.Lock()
	defer p.lock.Unlock()

	if len(p.buffer) == 0 {
		return nil
	}

	err := p.PushLogic(p.buffer...)
	p.buffer = nil
	return err
}

func (p *Pusher[T]) AddMessages(messages ...T) {
	p.lock.Lock()
	defer p.lock.Unlock()

	p.buffer = append(p.buffer, messages...)
}

// Start runs the flush loop until Stop.
func (p *Pusher[T]) Start() {
	go func() {
		defer close(p.done)
		ticker := time.NewTicker(p.PushInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if err := p.PushAll(); err != nil {
					p.ErrorHandler(err)
				}
			case <-p.stop:
				return
			}
		}
	}()
}

// Stop ends the flush loop and flushes whatever is still buffered.
func (p *Pusher[T]) Stop() error {
	close(p.stop)
	<-p.done
	return p.PushAll()
}
