// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package container detects a local container runtime (docker or podman)
// and runs one-shot containers that read stdin and write stdout. The
// pdftotext page source uses it to run poppler without a host install.
package container

import (
	"context"
	"fmt"
	"io"
	"os/exec"
	"strings"
)

// Runtime runs containers on the local machine.
type Runtime interface {
	// Name returns the runtime binary ("docker" or "podman").
	Name() string

	// Available reports whether the binary is on PATH and its daemon or
	// service answers "info".
	Available() bool

	// ImageExists returns nil when image is present locally.
	ImageExists(image string) error

	// Run starts a throwaway container from image with the given command
	// arguments. stdin is attached; the container's stdout is copied to
	// stdout. Cancelling ctx kills the runtime process.
	Run(ctx context.Context, image string, args []string, stdin io.Reader, stdout io.Writer) error
}

// commander abstracts process execution so tests can stand in for docker.
type commander interface {
	LookPath(file string) (string, error)
	Quiet(name string, args ...string) error
	Piped(ctx context.Context, name string, args []string, stdin io.Reader, stdout io.Writer) error
}

type osCommander struct{}

func (osCommander) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

func (osCommander) Quiet(name string, args ...string) error {
	return exec.Command(name, args...).Run()
}

func (osCommander) Piped(ctx context.Context, name string, args []string, stdin io.Reader, stdout io.Writer) error {
	var stderr strings.Builder
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = stdin
	cmd.Stdout = stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return fmt.Errorf("%w: %s", err, msg)
		}
		return err
	}
	return nil
}

// cli is a Runtime driven through a docker-compatible command line.
type cli struct {
	bin      string
	inspect  []string // subcommand that succeeds only when an image exists
	commands commander
}

func (c *cli) Name() string { return c.bin }

func (c *cli) Available() bool {
	if _, err := c.commands.LookPath(c.bin); err != nil {
		return false
	}
	return c.commands.Quiet(c.bin, "info") == nil
}

func (c *cli) ImageExists(image string) error {
	args := append(append([]string{}, c.inspect...), image)
	if err := c.commands.Quiet(c.bin, args...); err != nil {
		return fmt.Errorf("image %s not found in %s: %w", image, c.bin, err)
	}
	return nil
}

func (c *cli) Run(ctx context.Context, image string, args []string, stdin io.Reader, stdout io.Writer) error {
	full := append([]string{"run", "--rm", "-i", "--network", "none", image}, args...)
	if err := c.commands.Piped(ctx, c.bin, full, stdin, stdout); err != nil {
		return fmt.Errorf("running %s container %s: %w", c.bin, image, err)
	}
	return nil
}

func docker(cmds commander) *cli {
	return &cli{bin: "docker", inspect: []string{"image", "inspect"}, commands: cmds}
}

func podman(cmds commander) *cli {
	return &cli{bin: "podman", inspect: []string{"image", "exists"}, commands: cmds}
}

// DetectRuntime returns docker when it is usable, otherwise podman.
func DetectRuntime() (Runtime, error) {
	return detect(osCommander{})
}

func detect(cmds commander) (Runtime, error) {
	for _, rt := range []*cli{docker(cmds), podman(cmds)} {
		if rt.Available() {
			return rt, nil
		}
	}
	return nil, fmt.Errorf("no container runtime available: neither docker nor podman found or operational")
}
