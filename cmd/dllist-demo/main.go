package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/Invicton-Labs/go-circularlist/debugging"
	"github.com/Invicton-Labs/go-circularlist/dllist"
	"github.com/Invicton-Labs/go-circularlist/log"
	"github.com/Invicton-Labs/go-stackerr"
)

// run builds a list from the configured values, prints it, removes the
// configured range and prints it again.
func run(ctx context.Context, cfg *Config, out io.Writer) stackerr.Error {
	logger := log.FromContext(ctx)
	list := dllist.New(dllist.WithLogger(logger), dllist.WithCapacity(len(cfg.Values)))
	defer list.Destroy()

	for _, v := range cfg.Values {
		list.InsertFront(v)
	}

	if _, err := fmt.Fprintln(out); err != nil {
		return stackerr.Wrap(err)
	}
	if err := list.Print(out); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(out); err != nil {
		return stackerr.Wrap(err)
	}

	if err := list.ValidateRemoveRange(cfg.RemoveStart, cfg.RemoveEnd); err != nil {
		logger.Warnw("Range will not be removed", "start", cfg.RemoveStart, "end", cfg.RemoveEnd, "error", err)
	}
	list.RemoveRange(cfg.RemoveStart, cfg.RemoveEnd)
	if err := list.Print(out); err != nil {
		return err
	}

	logger.Debugw("Demo finished", "remaining", list.Len())
	return nil
}

func main() {
	cfg, err := LoadFromEnv()
	if err != nil {
		log.Fatal(err)
	}
	log.InitDefault(cfg.Log)
	defer log.Default().Sync()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	ctx = log.LogContext(ctx, log.Default())

	if cfg.MonitorMemory {
		debugging.StartMemoryMonitor(ctx, cfg.MonitorInterval)
	}

	if err := run(ctx, cfg, os.Stdout); err != nil {
		log.Error(err)
		cancel()
		os.Exit(1)
	}

	if cfg.MonitorMemory {
		cancel()
		debugging.SampleMemory()
		maxReserved, maxInUse := debugging.GetMaxMemoryUsageMb()
		log.Infow("Peak memory usage", "max_reserved_mb", maxReserved, "max_in_use_mb", maxInUse)
		log.Debugf("%s", debugging.GetFormattedMemUsage())
	}
}
