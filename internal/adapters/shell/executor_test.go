package shell_test

import (
	"bytes"
	"context"
	"io"
	iofs "io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/ukbuild/internal/adapters/shell"
	"go.trai.ch/ukbuild/internal/core/domain"
	"go.trai.ch/ukbuild/internal/core/ports"
	"go.trai.ch/ukbuild/internal/core/ports/mocks"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

func writeScript(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	//nolint:gosec // Test requires executable file
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body), 0o700))
	return path
}

func TestExecutor_Run_CapturesOutput(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Debug(gomock.Any()).AnyTimes()

	script := writeScript(t, t.TempDir(), "tool", "echo out-line\necho err-line >&2\n")

	result, err := shell.NewExecutor(mockLogger).Run(context.Background(), domain.Command{Name: script})
	require.NoError(t, err)

	assert.Equal(t, "out-line\n", string(result.Stdout))
	assert.Equal(t, "err-line\n", string(result.Stderr))
	assert.Equal(t, 0, result.ExitCode)
}

func TestExecutor_Run_PassesArgsAndDir(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Debug(gomock.Any()).AnyTimes()

	dir := t.TempDir()
	script := writeScript(t, dir, "tool", "pwd\necho \"$@\"\n")
	workDir := t.TempDir()

	result, err := shell.NewExecutor(mockLogger).Run(context.Background(), domain.Command{
		Name: script,
		Args: []string{"build", "--fast"},
		Dir:  workDir,
	})
	require.NoError(t, err)

	resolved, err := filepath.EvalSymlinks(workDir)
	require.NoError(t, err)
	assert.Contains(t, string(result.Stdout), resolved)
	assert.Contains(t, string(result.Stdout), "build --fast")
}

func TestExecutor_Run_NonZeroExit(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Debug(gomock.Any()).AnyTimes()

	script := writeScript(t, t.TempDir(), "tool", "echo partial\nexit 3\n")

	result, err := shell.NewExecutor(mockLogger).Run(context.Background(), domain.Command{Name: script})
	require.Error(t, err)
	require.ErrorIs(t, err, domain.ErrCommandFailed)

	assert.Equal(t, 3, result.ExitCode)
	assert.Equal(t, "partial\n", string(result.Stdout))

	var zErr *zerr.Error
	require.ErrorAs(t, err, &zErr)
	assert.Equal(t, 3, zErr.Metadata()["exit_code"])
}

func TestExecutor_Run_MissingTool(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Debug(gomock.Any()).AnyTimes()

	missing := filepath.Join(t.TempDir(), "no-such-tool")

	_, err := shell.NewExecutor(mockLogger).Run(context.Background(), domain.Command{Name: missing})
	require.ErrorIs(t, err, domain.ErrToolStart)
	assert.ErrorIs(t, err, iofs.ErrNotExist)
	assert.NotErrorIs(t, err, domain.ErrCommandFailed)

	var zErr *zerr.Error
	require.ErrorAs(t, err, &zErr)
	assert.Equal(t, missing, zErr.Metadata()["tool"])
}

func TestExecutor_Run_ToolNotOnPath(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Debug(gomock.Any()).AnyTimes()
	t.Setenv("PATH", t.TempDir())

	_, err := shell.NewExecutor(mockLogger).Run(context.Background(), domain.Command{Name: "kraft"})
	require.ErrorIs(t, err, domain.ErrToolStart)
	assert.ErrorIs(t, err, exec.ErrNotFound)
}

func TestExecutor_Run_EmptyCommand(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	_, err := shell.NewExecutor(mockLogger).Run(context.Background(), domain.Command{})
	require.ErrorIs(t, err, domain.ErrToolStart)
}

func TestExecutor_Run_LogsLinesAtDebug(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	script := writeScript(t, t.TempDir(), "tool", "printf 'first\\nsecond\\n'\n")

	gomock.InOrder(
		mockLogger.EXPECT().Debug("running "+script),
		mockLogger.EXPECT().Debug("first"),
		mockLogger.EXPECT().Debug("second"),
	)

	_, err := shell.NewExecutor(mockLogger).Run(context.Background(), domain.Command{Name: script})
	require.NoError(t, err)
}

type bufferVertex struct {
	stdout bytes.Buffer
	stderr bytes.Buffer
}

func (v *bufferVertex) Stdout() io.Writer { return &v.stdout }
func (v *bufferVertex) Stderr() io.Writer { return &v.stderr }
func (v *bufferVertex) Complete(error)    {}

func TestExecutor_Run_TeesIntoVertex(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Debug(gomock.Any()).AnyTimes()

	script := writeScript(t, t.TempDir(), "tool", "echo to-vertex\necho oops >&2\n")

	vertex := &bufferVertex{}
	ctx := ports.ContextWithVertex(context.Background(), vertex)

	_, err := shell.NewExecutor(mockLogger).Run(ctx, domain.Command{Name: script})
	require.NoError(t, err)

	assert.Equal(t, "to-vertex\n", vertex.stdout.String())
	assert.Equal(t, "oops\n", vertex.stderr.String())
}
