package cpu

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"
	"time"

	"github.com/astoltz/ohai/internal/platform"
	"github.com/go-logr/logr"
)

// Commands run by PsrinfoReader.
const (
	CmdTotal    = "psrinfo | wc -l"
	CmdReal     = "psrinfo -p"
	CmdArch     = "uname -p"
	CmdFlatBody = "psrinfo -v -p | grep Hz"
	CmdTreeBody = "psrinfo -v -p"
)

// Runner runs a shell command line and returns its stdout.
type Runner interface {
	Run(ctx context.Context, command string) (string, error)
}

// ShellRunner runs commands through /bin/sh.
type ShellRunner struct{}

// Run executes command and fails with a *CommandError on a non-zero exit
// status or empty output.
func (ShellRunner) Run(ctx context.Context, command string) (string, error) {
	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, "/bin/sh", "-c", command)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		return "", &CommandError{Command: command, ExitCode: exitCode, Stderr: stderr.String(), Err: err}
	}
	if strings.TrimSpace(stdout.String()) == "" {
		return "", &CommandError{Command: command, Stderr: stderr.String()}
	}
	return stdout.String(), nil
}

// PsrinfoReader collects the CPU inventory of a Solaris host from psrinfo.
type PsrinfoReader struct {
	runner  Runner
	arch    platform.Arch
	timeout time.Duration
	log     logr.Logger
}

// NewPsrinfoReader creates a reader that runs its commands through runner.
func NewPsrinfoReader(runner Runner, opts Options) *PsrinfoReader {
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	return &PsrinfoReader{
		runner:  runner,
		arch:    opts.Arch,
		timeout: opts.Timeout,
		log:     opts.Log,
	}
}

// GetInventory returns the host's CPU inventory
func (r *PsrinfoReader) GetInventory(ctx context.Context) (*Inventory, error) {
	arch := r.arch
	if arch == "" {
		out, err := r.run(ctx, CmdArch)
		if err != nil {
			return nil, err
		}
		if arch, err = platform.ParseArch(out); err != nil {
			return nil, err
		}
	}

	format, err := FormatFor(arch)
	if err != nil {
		return nil, err
	}

	total, err := r.run(ctx, CmdTotal)
	if err != nil {
		return nil, err
	}
	physical, err := r.run(ctx, CmdReal)
	if err != nil {
		return nil, err
	}

	bodyCmd := CmdFlatBody
	if format == Hierarchical {
		bodyCmd = CmdTreeBody
	}
	body, err := r.run(ctx, bodyCmd)
	if err != nil {
		return nil, err
	}

	inv, err := Assemble(CountsText{Total: total, Real: physical}, body, format)
	if err != nil {
		return nil, err
	}
	r.log.V(1).Info("Collected CPU inventory", "arch", arch, "format", format,
		"total", inv.Counts.Total, "real", inv.Counts.Real, "processors", len(inv.Table))
	return inv, nil
}

func (r *PsrinfoReader) run(ctx context.Context, command string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	r.log.V(1).Info("Running command", "command", command)
	out, err := r.runner.Run(ctx, command)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(out) == "" {
		return "", &CommandError{Command: command}
	}
	return out, nil
}
