package commands_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.trai.ch/ukbuild/internal/core/domain"
)

func writeManifest(t *testing.T, appDir string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(appDir, domain.ManifestFile), []byte("spec: v0.6\n"), 0o600))
}
