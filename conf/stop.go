package conf

import (
	"os"
	"os/signal"
	"sync"
	"syscall"
)

// Stop is the global stop instance. Components register with Add/Done to
// delay shutdown until they have cleaned up.
var Stop = &stop{
	c: make(chan struct{}),
}

type stop struct {
	sync.WaitGroup
	once sync.Once
	c    chan struct{}
}

func init() {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigs
		Stop.Quit()
	}()
}

// Quit closes the stop channel, signaling everyone to shut down
func (s *stop) Quit() {
	s.once.Do(func() {
		close(s.c)
	})
}

// Chan returns the stop channel
func (s *stop) Chan() <-chan struct{} {
	return s.c
}

// Bool returns true if the stop signal has fired
func (s *stop) Bool() bool {
	select {
	case <-s.c:
		return true
	default:
		return false
	}
}
