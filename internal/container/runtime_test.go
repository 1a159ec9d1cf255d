// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package container

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubCommander answers LookPath and Quiet from tables and records Piped calls.
type stubCommander struct {
	onPath map[string]bool
	ok     map[string]bool // "bin arg..." -> Quiet succeeds
	piped  func(name string, args []string, stdin io.Reader, stdout io.Writer) error

	gotName string
	gotArgs []string
}

func (s *stubCommander) LookPath(file string) (string, error) {
	if s.onPath[file] {
		return "/usr/bin/" + file, nil
	}
	return "", errors.New("not found: " + file)
}

func (s *stubCommander) Quiet(name string, args ...string) error {
	key := strings.Join(append([]string{name}, args...), " ")
	if s.ok[key] {
		return nil
	}
	return errors.New("failed: " + key)
}

func (s *stubCommander) Piped(_ context.Context, name string, args []string, stdin io.Reader, stdout io.Writer) error {
	s.gotName, s.gotArgs = name, args
	if s.piped != nil {
		return s.piped(name, args, stdin, stdout)
	}
	return nil
}

func TestDetect(t *testing.T) {
	tests := []struct {
		name   string
		onPath map[string]bool
		ok     map[string]bool
		want   string
	}{
		{
			name:   "docker preferred",
			onPath: map[string]bool{"docker": true, "podman": true},
			ok:     map[string]bool{"docker info": true, "podman info": true},
			want:   "docker",
		},
		{
			name:   "podman when docker missing",
			onPath: map[string]bool{"podman": true},
			ok:     map[string]bool{"podman info": true},
			want:   "podman",
		},
		{
			name:   "podman when docker daemon is down",
			onPath: map[string]bool{"docker": true, "podman": true},
			ok:     map[string]bool{"podman info": true},
			want:   "podman",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rt, err := detect(&stubCommander{onPath: tt.onPath, ok: tt.ok})
			require.NoError(t, err)
			assert.Equal(t, tt.want, rt.Name())
		})
	}
}

func TestDetect_None(t *testing.T) {
	_, err := detect(&stubCommander{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no container runtime available")
}

func TestImageExists(t *testing.T) {
	const image = "minidocks/poppler:latest"

	cmds := &stubCommander{ok: map[string]bool{
		"docker image inspect " + image: true,
		"podman image exists " + image:  true,
	}}
	assert.NoError(t, docker(cmds).ImageExists(image))
	assert.NoError(t, podman(cmds).ImageExists(image))

	err := docker(&stubCommander{}).ImageExists(image)
	require.Error(t, err)
	assert.Contains(t, err.Error(), image)
}

func TestRun(t *testing.T) {
	cmds := &stubCommander{
		piped: func(_ string, _ []string, stdin io.Reader, stdout io.Writer) error {
			data, _ := io.ReadAll(stdin)
			_, err := stdout.Write(bytes.ToUpper(data))
			return err
		},
	}
	var out bytes.Buffer
	err := podman(cmds).Run(context.Background(), "poppler", []string{"pdftotext", "-", "-"}, strings.NewReader("pdf"), &out)
	require.NoError(t, err)

	assert.Equal(t, "PDF", out.String())
	assert.Equal(t, "podman", cmds.gotName)
	assert.Equal(t, []string{"run", "--rm", "-i", "--network", "none", "poppler", "pdftotext", "-", "-"}, cmds.gotArgs)
}

func TestRun_Error(t *testing.T) {
	cmds := &stubCommander{
		piped: func(string, []string, io.Reader, io.Writer) error { return errors.New("exit status 1") },
	}
	err := docker(cmds).Run(context.Background(), "poppler", nil, strings.NewReader(""), io.Discard)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "running docker container poppler")
}
