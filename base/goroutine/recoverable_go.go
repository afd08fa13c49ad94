package goroutine

import (
	"github.com/x-xyz/warplet/base/log"
	"github.com/x-xyz/warplet/base/utils"
)

type PanicEvent struct {
	Panic interface{}
	Stack []byte
}

type options struct {
	logger log.Logger
}

type Option func(*options)

// WithLogger makes the panic log carry the fields of l, e.g. a request id
func WithLogger(l log.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// RecoverableGo runs f in a new goroutine. The returned channel receives a
// PanicEvent if f panics and is closed otherwise.
func RecoverableGo(f func(), opts ...Option) <-chan *PanicEvent {
	o := options{logger: log.Log()}
	for _, opt := range opts {
		opt(&o)
	}

	panicChan := make(chan *PanicEvent, 1)
	go func() {
		defer func() {
			p := recover()
			if p == nil {
				close(panicChan)
				return
			}
			stack := utils.Stack(3)
			o.logger.WithFields(log.Fields{
				"err":   p,
				"stack": string(stack),
			}).Error("panic")
			panicChan <- &PanicEvent{p, stack}
		}()
		f()
	}()
	return panicChan
}
