// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/mitchellh/go-homedir"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

func newWatchCmd(c *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "watch <recipe>",
		Short: "Rebuild a recipe file whenever it changes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			return Watch(ctx, c, args[0], termenv.NewOutput(cmd.OutOrStdout()))
		},
	}
}

// Watch builds the recipe file and rebuilds it each time it is written,
// until the context is done. Build errors are logged and do not stop
// the watch.
func Watch(ctx context.Context, c *Config, recipeFile string, out *termenv.Output) error {
	fn, err := homedir.Expand(recipeFile)
	if err != nil {
		return err
	}
	fn, err = filepath.Abs(fn)
	if err != nil {
		return err
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	// editors often replace the file, so the directory is watched
	if err := watcher.Add(filepath.Dir(fn)); err != nil {
		return err
	}

	rebuild := func() {
		if _, err := Build(c, fn, out); err != nil {
			slog.Error("recipe build failed", "recipe", fn, "err", err)
		}
	}
	rebuild()
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != fn {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				rebuild()
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Error("recipe watcher error", "err", err)
		}
	}
}
