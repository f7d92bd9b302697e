//go:build e2e

package e2e_test

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/rogpeppe/go-internal/testscript"
)

var ukbuildBinary string

func TestMain(m *testing.M) {
	tmpDir, err := os.MkdirTemp("", "ukbuild-e2e-*")
	if err != nil {
		panic(err)
	}

	ukbuildBinary = filepath.Join(tmpDir, "ukbuild")

	//nolint:gosec // Building binary with static arguments, not user input
	cmd := exec.Command("go", "build", "-o", ukbuildBinary, "./cmd/ukbuild")
	cmd.Dir = ".."
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		panic("failed to build ukbuild binary: " + err.Error())
	}

	exitCode := m.Run()

	_ = os.RemoveAll(tmpDir)

	os.Exit(exitCode)
}

func TestScripts(t *testing.T) {
	testscript.Run(t, testscript.Params{
		Dir:   "testdata",
		Setup: setupE2E,
	})
}

func setupE2E(env *testscript.Env) error {
	binDir := filepath.Dir(ukbuildBinary)
	currentPath := env.Getenv("PATH")
	env.Setenv("PATH", binDir+string(os.PathListSeparator)+currentPath)

	outDir := filepath.Join(env.WorkDir, "out")
	if err := os.MkdirAll(outDir, 0o750); err != nil {
		return err
	}
	env.Setenv("OUT_DIR", outDir)
	env.Setenv("APP_DIR", filepath.Join(env.WorkDir, "app"))
	env.Setenv("CARGO_CFG_TARGET_ARCH", "x86_64")

	return nil
}
