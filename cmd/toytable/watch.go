package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/sync/errgroup"

	table "github.com/grindlemire/go-table"
	"github.com/grindlemire/go-table/internal/debug"
)

const clearScreen = "\x1b[H\x1b[2J"

// watchFixture redraws the fixture whenever the file changes or the terminal
// is resized, until interrupted.
//
// Three goroutines cooperate: the file watcher and the resize watcher only
// signal, and the table is owned by the goroutine running its loop.
func watchFixture(ctx context.Context, path string, p renderParams, out io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	reloads := make(chan struct{}, 1)
	resizes := make(chan int, 1)

	g.Go(func() error { return watchFile(ctx, path, reloads) })
	if p.width == 0 {
		g.Go(func() error { return watchResize(ctx, int(os.Stdout.Fd()), resizes) })
	}
	g.Go(func() error { return runTables(ctx, path, p, out, reloads, resizes) })

	return g.Wait()
}

// watchFile signals reloads on writes to path. The directory is watched so
// editors that replace the file on save are seen too.
func watchFile(ctx context.Context, path string, reloads chan<- struct{}) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != abs || !ev.Has(fsnotify.Write|fsnotify.Create) {
				continue
			}
			debug.Log("watch: %s %s", ev.Op, ev.Name)
			select {
			case reloads <- struct{}{}:
			default:
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			debug.Warn("watch", "%v", err)
		}
	}
}

// runTables builds a table from the fixture and runs its loop until the
// fixture changes, then starts over with a fresh table.
func runTables(ctx context.Context, path string, p renderParams, out io.Writer, reloads <-chan struct{}, resizes <-chan int) error {
	for {
		tbl, err := buildTable(path, p)
		if err != nil {
			fmt.Fprint(out, clearScreen)
			fmt.Fprintf(out, "error: %v\n", err)
			select {
			case <-ctx.Done():
				return nil
			case <-reloads:
				continue
			}
		}

		tbl.MarkDirty()
		loopCtx, cancel := context.WithCancel(ctx)
		go forwardSignals(loopCtx, cancel, tbl, p, reloads, resizes)

		err = tbl.Run(loopCtx, func() {
			fmt.Fprint(out, clearScreen)
			newDrawer(tbl, p.cellPixels()).draw(out)
		})
		cancel()
		tbl.Close()

		if ctx.Err() != nil {
			return nil
		}
		if err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
	}
}

// forwardSignals feeds resizes into the table loop and ends the loop on a
// reload.
func forwardSignals(ctx context.Context, cancel context.CancelFunc, tbl *table.Table, p renderParams, reloads <-chan struct{}, resizes <-chan int) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-reloads:
			cancel()
			return
		case cols := <-resizes:
			px := cols * p.cellPixels()
			tbl.QueueUpdate(func() { tbl.SetContainerWidth(px) })
		}
	}
}
