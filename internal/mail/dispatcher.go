package mail

import (
	"context"
	"sync"
	"time"

	"github.com/Kyz7/corporate-site/internal/logger"
	"go.uber.org/zap"
)

const sendTimeout = 30 * time.Second

// Dispatcher sends mail from a background worker so request handlers never
// wait on the relay. Failed sends are logged and not retried.
type Dispatcher struct {
	sender Sender
	queue  chan Message

	mu     sync.RWMutex
	closed bool
	wg     sync.WaitGroup
}

func NewDispatcher(sender Sender, size int) *Dispatcher {
	if size <= 0 {
		size = 1
	}
	d := &Dispatcher{
		sender: sender,
		queue:  make(chan Message, size),
	}
	d.wg.Add(1)
	go d.run()
	return d
}

// Enqueue hands msg to the worker. It never blocks: when the queue is full
// or the dispatcher is closed the message is dropped and false returned.
func (d *Dispatcher) Enqueue(msg Message) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		logger.Log.Warn("mail dropped, dispatcher closed", zap.String("subject", msg.Subject))
		return false
	}

	select {
	case d.queue <- msg:
		return true
	default:
		logger.Log.Warn("mail dropped, queue full",
			zap.String("subject", msg.Subject),
			zap.Int("capacity", cap(d.queue)),
		)
		return false
	}
}

// Close stops accepting messages and waits for queued ones to be sent.
func (d *Dispatcher) Close() {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	d.closed = true
	close(d.queue)
	d.mu.Unlock()

	d.wg.Wait()
}

func (d *Dispatcher) run() {
	defer d.wg.Done()
	for msg := range d.queue {
		d.deliver(msg)
	}
}

func (d *Dispatcher) deliver(msg Message) {
	defer func() {
		if r := recover(); r != nil {
			logger.Log.Error("mail sender panicked", zap.Any("panic", r))
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), sendTimeout)
	defer cancel()

	if err := d.sender.Send(ctx, msg); err != nil {
		logger.Log.Error("mail send failed",
			zap.Strings("to", msg.To),
			zap.String("subject", msg.Subject),
			zap.Error(err),
		)
		return
	}
	logger.Log.Debug("mail sent", zap.Strings("to", msg.To), zap.String("subject", msg.Subject))
}
