package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"

	"github.com/philipparndt/objmix/internal/logger"
	"github.com/philipparndt/objmix/internal/mixer"
	"github.com/philipparndt/objmix/pkg/watcher"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var watchCmd = &cobra.Command{
	Use:   "watch -f <file.obj>... -o <out.obj>",
	Short: "Rewrite the output whenever an input file changes",
	RunE:  runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	defer logger.Sync()

	if cfg.Output.File == "" {
		return errors.New("watch requires --output")
	}

	opts, err := mixer.OptionsFromConfig(cfg, inputs(args))
	if err != nil {
		return err
	}
	if err := checkOutputNotInput(cfg.Output.File, opts.Inputs); err != nil {
		return err
	}

	var mu sync.Mutex
	rebuild := func() error {
		mu.Lock()
		defer mu.Unlock()

		out, err := mixer.Run(opts)
		if err != nil {
			return err
		}
		return os.WriteFile(cfg.Output.File, []byte(out), 0644)
	}

	// Only the first build is fatal; later failures keep the previous output.
	if err := rebuild(); err != nil {
		return err
	}

	fw, err := watcher.NewFileWatcher(cfg.Watch.Debounce)
	if err != nil {
		return err
	}
	defer fw.Close()

	fw.OnError(func(err error) {
		logger.Warn("watcher error", zap.Error(err))
	})

	callback := func(changedFile string) {
		logger.Info("input changed", zap.String("file", changedFile))
		if err := rebuild(); err != nil {
			logger.Error("rebuild failed, keeping previous output", zap.Error(err))
			return
		}
		logger.Info("output written", zap.String("file", cfg.Output.File))
	}

	if err := fw.Watch(opts.Inputs, callback); err != nil {
		return fmt.Errorf("failed to watch files: %w", err)
	}
	fw.Start()

	fmt.Fprintf(cmd.ErrOrStderr(), "Watching %d file(s) for changes, writing %s\n", fw.Files(), cfg.Output.File)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	return nil
}

// checkOutputNotInput rejects an output that is also watched, since every
// rebuild would then trigger the next one.
func checkOutputNotInput(output string, inputs []string) error {
	out, err := filepath.Abs(output)
	if err != nil {
		return fmt.Errorf("failed to resolve output path: %w", err)
	}
	for _, input := range inputs {
		in, err := filepath.Abs(input)
		if err != nil {
			return fmt.Errorf("failed to resolve input path: %w", err)
		}
		if in == out {
			return fmt.Errorf("output %s is also an input", output)
		}
	}
	return nil
}
