//go:build unix

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sys/unix"
)

// terminalColumns returns the width of the terminal on fd in cells.
func terminalColumns(fd int) (int, error) {
	ws, err := unix.IoctlGetWinsize(fd, unix.TIOCGWINSZ)
	if err != nil {
		return 0, err
	}
	return int(ws.Col), nil
}

// watchResize sends the terminal width in cells on every SIGWINCH until ctx
// is done. Widths the receiver has not picked up yet are replaced.
func watchResize(ctx context.Context, fd int, out chan int) error {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGWINCH)
	defer signal.Stop(sigCh)

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-sigCh:
			cols, err := terminalColumns(fd)
			if err != nil {
				continue
			}
			select {
			case <-out:
			default:
			}
			out <- cols
		}
	}
}
