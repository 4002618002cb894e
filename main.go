package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/jessevdk/go-flags"

	"shortcutsweep/core"
)

func main() {
	os.Exit(run())
}

func run() int {
	ops := &core.Options{}
	_, err := flags.Parse(ops)
	if err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			return 0
		}
		return 2
	}

	verbosity := len(ops.Verbose)
	if ops.LogLocation != "" {
		err = core.InitLoggingWithPath(ops.LogLocation, verbosity)
	} else {
		err = core.InitLoggingWithDefaultPath(verbosity)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "Logging disabled:", err)
	}
	defer core.CloseLogging()

	settings := core.GetSettingsOrDefault(ops.Config)

	if ops.SetSteamRoot != "" {
		settings.SteamRoot = ops.SetSteamRoot
		if err := core.WriteSettings(ops.Config, settings); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}

		fmt.Println("Steam root set!")
		return 0
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	channels := core.MakeDefaultChannelProvider()
	done := make(chan struct{})
	go func() {
		core.ConsoleLogger(os.Stdout, os.Stderr, channels.Logs)
		close(done)
	}()

	summary := core.RequestMainOperation(ctx, core.GetDefaultLocalFs(), ops, settings, channels)
	<-done

	if summary.Failed > 0 {
		return 1
	}
	return 0
}
