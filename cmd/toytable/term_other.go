//go:build !unix

package main

import (
	"context"
	"errors"
)

func terminalColumns(int) (int, error) {
	return 0, errors.New("terminal size not supported on this platform")
}

// watchResize has no resize signal to wait for here.
func watchResize(ctx context.Context, _ int, _ chan int) error {
	<-ctx.Done()
	return nil
}
