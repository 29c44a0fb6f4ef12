package lib

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
)

// HandleInterrupt blocks until SIGINT or SIGTERM, runs the cleanup funcs in
// order, then exits. Run it in its own goroutine.
func HandleInterrupt(cleanup ...func() error) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c

	for _, f := range cleanup {
		if err := f(); err != nil {
			log.Error().Err(err).Msg("cleanup failed on shutdown")
		}
	}
	log.Fatal().Msg("process interrupted")
}
