package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/ukbuild/internal/adapters/config"
	"go.trai.ch/ukbuild/internal/core/domain"
	"go.trai.ch/ukbuild/internal/core/ports/mocks"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

func envLookup(env map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

func newLoader(t *testing.T, env map[string]string) *config.Loader {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Debug(gomock.Any()).AnyTimes()
	return config.NewLoader(mockLogger).WithLookup(envLookup(env))
}

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.Filename), []byte(content), 0o600))
}

func TestLoad_Defaults(t *testing.T) {
	settings, err := newLoader(t, nil).Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, domain.DefaultSettings(), settings)
}

func TestLoad_Environment(t *testing.T) {
	settings, err := newLoader(t, map[string]string{
		config.EnvOutDir:     "/tmp/out",
		config.EnvTargetArch: "x86_64",
		config.EnvFeatureKVM: "1",
		config.EnvKraft:      "/opt/kraft",
		config.EnvAr:         "llvm-ar",
	}).Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "/tmp/out", settings.OutDir)
	assert.Equal(t, "x86_64", settings.TargetArch)
	assert.True(t, settings.KVM)
	assert.False(t, settings.Linuxu)
	assert.Equal(t, "/opt/kraft", settings.Tools.Kraft)
	assert.Equal(t, "llvm-ar", settings.Tools.Archiver)
}

func TestLoad_FeaturePresenceSelectsPlatform(t *testing.T) {
	settings, err := newLoader(t, map[string]string{
		config.EnvFeatureLnx: "",
	}).Load("")
	require.NoError(t, err)

	assert.True(t, settings.Linuxu, "an empty but present feature variable still selects the platform")
	assert.False(t, settings.KVM)
}

func TestLoad_File(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
tools:
  kraft: /usr/local/bin/kraft
  ar: gcc-ar
directives: ldflags
state: .ukbuild.json
`)

	settings, err := newLoader(t, nil).Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "/usr/local/bin/kraft", settings.Tools.Kraft)
	assert.Equal(t, "gcc-ar", settings.Tools.Archiver)
	assert.Equal(t, domain.FormatLdflags, settings.Format)
	assert.Equal(t, ".ukbuild.json", settings.StateFile)
}

func TestLoad_EnvironmentOverridesFile(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
tools:
  kraft: from-file
directives: ldflags
`)

	settings, err := newLoader(t, map[string]string{
		config.EnvKraft:      "from-env",
		config.EnvDirectives: "cargo",
	}).Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "from-env", settings.Tools.Kraft)
	assert.Equal(t, domain.FormatCargo, settings.Format)
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "tools: [unterminated\n")

	_, err := newLoader(t, nil).Load(dir)
	require.Error(t, err)

	var zErr *zerr.Error
	require.ErrorAs(t, err, &zErr)
	assert.Equal(t, filepath.Join(dir, config.Filename), zErr.Metadata()["path"])
}

func TestLoad_UnknownDirectiveFormat(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "directives: pkg-config\n")

	_, err := newLoader(t, nil).Load(dir)
	require.ErrorIs(t, err, domain.ErrUnknownDirectiveFormat)
}

func TestLoad_UnknownDirectiveFormatInEnv(t *testing.T) {
	_, err := newLoader(t, map[string]string{
		config.EnvDirectives: "bazel",
	}).Load("")
	require.ErrorIs(t, err, domain.ErrUnknownDirectiveFormat)
}
