package pipeline_test

import (
	"errors"
	iofs "io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/ukbuild/internal/adapters/fs"
	"go.trai.ch/ukbuild/internal/adapters/telemetry"
	"go.trai.ch/ukbuild/internal/core/domain"
	"go.trai.ch/ukbuild/internal/core/ports/mocks"
	"go.trai.ch/ukbuild/internal/engine/pipeline"
	"go.uber.org/mock/gomock"
)

func newFSPipeline(t *testing.T) *pipeline.Pipeline {
	t.Helper()
	ctrl := gomock.NewController(t)
	return pipeline.New(
		mocks.NewMockExecutor(ctrl),
		fs.NewArtifacts(),
		mocks.NewMockDirectiveEmitter(ctrl),
		telemetry.NewNoOp(),
		mocks.NewMockLogger(ctrl),
	)
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestCreateLinkerScripts(t *testing.T) {
	cfg := newConfig(t)
	writeFile(t, cfg.DefaultLinkerScript(), "default\n")
	writeFile(t, filepath.Join(cfg.LibDir(), "uksched", "extra.ld"), "sched\n")
	writeFile(t, filepath.Join(cfg.LibDir(), "uklibparam", "extra.ld"), "param\n")
	require.NoError(t, os.MkdirAll(filepath.Join(cfg.LibDir(), "nolibc"), 0o750))

	fragments, err := newFSPipeline(t).CreateLinkerScripts(cfg)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(cfg.LibDir(), "uklibparam", "extra.ld"),
		filepath.Join(cfg.LibDir(), "uksched", "extra.ld"),
	}, fragments)

	def, err := os.ReadFile(cfg.DefaultLinkerScriptOut())
	require.NoError(t, err)
	assert.Equal(t, "default\n", string(def))

	merged, err := os.ReadFile(cfg.MergedLinkerScriptOut())
	require.NoError(t, err)
	assert.Equal(t, "param\nsched\n", string(merged))
}

func TestCreateLinkerScripts_NoFragments(t *testing.T) {
	cfg := newConfig(t)
	writeFile(t, cfg.DefaultLinkerScript(), "default\n")
	require.NoError(t, os.MkdirAll(cfg.LibDir(), 0o750))

	_, err := newFSPipeline(t).CreateLinkerScripts(cfg)
	require.NoError(t, err)

	info, err := os.Stat(cfg.MergedLinkerScriptOut())
	require.NoError(t, err)
	assert.Zero(t, info.Size())
}

func TestCreateLinkerScripts_MissingDefaultScript(t *testing.T) {
	cfg := newConfig(t)

	_, err := newFSPipeline(t).CreateLinkerScripts(cfg)
	require.Error(t, err)
	assert.True(t, errors.Is(err, iofs.ErrNotExist))
}

func TestCreateLinkerScripts_MissingLibDir(t *testing.T) {
	cfg := newConfig(t)
	writeFile(t, cfg.DefaultLinkerScript(), "default\n")

	_, err := newFSPipeline(t).CreateLinkerScripts(cfg)
	require.Error(t, err)
	assert.True(t, errors.Is(err, iofs.ErrNotExist))

	_, statErr := os.Stat(cfg.MergedLinkerScriptOut())
	assert.True(t, errors.Is(statErr, iofs.ErrNotExist))
}

func TestCreateLinkerScripts_PlatformSpecificSource(t *testing.T) {
	cfg, err := domain.NewBuildConfig(t.TempDir(), t.TempDir(), domain.ArchX86_64, domain.PlatformLinuxu)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(cfg.OutDir(), "build", "liblinuxuplat", "link64.lds"), cfg.DefaultLinkerScript())
}
