package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/astoltz/ohai/api"
	"github.com/astoltz/ohai/internal/cpu"
	"github.com/astoltz/ohai/internal/platform"
	"github.com/go-logr/logr"
	"github.com/spf13/cobra"
)

type options struct {
	arch    string
	timeout time.Duration
	verbose bool
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:          "ohai-cpu",
		Short:        "Report the CPU topology of a host",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&opts.arch, "arch", "", "Processor architecture (x86 or sparc) for psrinfo; detected with uname -p when empty, ignored on linux and windows")
	root.PersistentFlags().DurationVar(&opts.timeout, "timeout", cpu.DefaultTimeout, "Timeout for each psrinfo command; unused on linux and windows")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging")

	root.AddCommand(newShowCommand(opts), newParseCommand(opts), newServeCommand(opts))
	return root
}

func newLogger(verbose bool) logr.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return logr.FromSlogHandler(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func (o *options) readerOptions(log logr.Logger) (cpu.Options, error) {
	ro := cpu.Options{Timeout: o.timeout, Log: log}
	if o.arch != "" {
		arch, err := platform.ParseArch(o.arch)
		if err != nil {
			return ro, err
		}
		ro.Arch = arch
	}
	return ro, nil
}

func newShowCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Collect the CPU inventory and print it as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			log := newLogger(opts.verbose)
			if err := platform.ValidateSupport(); err != nil {
				return err
			}
			ro, err := opts.readerOptions(log)
			if err != nil {
				return err
			}

			inv, err := cpu.NewReader(ro).GetInventory(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to collect CPU inventory: %w", err)
			}

			host := map[string]any{}
			inv.Publish(host)
			return writeJSON(cmd, host)
		},
	}
}

func newParseCommand(opts *options) *cobra.Command {
	var totalFile, realFile, bodyFile string
	cmd := &cobra.Command{
		Use:   "parse",
		Short: "Build the CPU inventory from captured psrinfo output",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			arch, err := platform.ParseArch(opts.arch)
			if err != nil {
				return err
			}
			format, err := cpu.FormatFor(arch)
			if err != nil {
				return err
			}

			texts := make([]string, 3)
			for i, path := range []string{totalFile, realFile, bodyFile} {
				data, err := os.ReadFile(path)
				if err != nil {
					return fmt.Errorf("failed to read %s: %w", path, err)
				}
				texts[i] = string(data)
			}

			inv, err := cpu.Assemble(cpu.CountsText{Total: texts[0], Real: texts[1]}, texts[2], format)
			if err != nil {
				return err
			}
			return writeJSON(cmd, map[string]*cpu.Inventory{"cpu": inv})
		},
	}
	cmd.Flags().StringVar(&totalFile, "total", "", "File holding the output of `psrinfo | wc -l`")
	cmd.Flags().StringVar(&realFile, "real", "", "File holding the output of `psrinfo -p`")
	cmd.Flags().StringVar(&bodyFile, "body", "", "File holding the output of `psrinfo -v -p`")
	for _, name := range []string{"total", "real", "body"} {
		_ = cmd.MarkFlagRequired(name)
	}
	return cmd
}

func newServeCommand(opts *options) *cobra.Command {
	var bind, port string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the CPU inventory over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			log := newLogger(opts.verbose)
			if err := platform.ValidateSupport(); err != nil {
				return fmt.Errorf("platform validation failed: %w", err)
			}
			ro, err := opts.readerOptions(log)
			if err != nil {
				return err
			}

			server := api.NewServer(cpu.NewReader(ro), ro.Arch, log)

			// Handle graceful shutdown
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			go func() {
				<-ctx.Done()
				if err := server.Shutdown(); err != nil {
					log.Error(err, "error during shutdown")
				}
			}()

			return server.Start(bind + ":" + port)
		},
	}
	cmd.Flags().StringVar(&port, "port", "8080", "Port to run the server on")
	cmd.Flags().StringVar(&bind, "bind", "0.0.0.0", "IP address to bind the server to")
	return cmd
}

func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
