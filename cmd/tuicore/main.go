// Command tuicore renders demo frames through the layout and drawlist
// pipeline and inspects the results.
//
// Usage:
//
//	tuicore render [--width W] [--height H] [--frames N] [--out FILE] [--config FILE] [--record]
//	tuicore inspect FILE
//	tuicore frames DB [--session ID]
//	tuicore export DB --session ID --frame N --out FILE
//	tuicore version
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			os.Exit(130)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
