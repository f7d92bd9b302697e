package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/ukbuild/internal/core/domain"
)

func TestResolvePlatform_TruthTable(t *testing.T) {
	tests := []struct {
		name     string
		kvm      bool
		linuxu   bool
		want     domain.Platform
		wantSkip bool
		wantErr  error
	}{
		{name: "both", kvm: true, linuxu: true, wantErr: domain.ErrTooManyPlatforms},
		{name: "kvm", kvm: true, want: domain.PlatformKVM},
		{name: "linuxu", linuxu: true, want: domain.PlatformLinuxu},
		{name: "none", wantSkip: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			choice, err := domain.ResolvePlatform(tt.kvm, tt.linuxu)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantSkip, choice.Skip())
			assert.Equal(t, tt.want, choice.Platform())
		})
	}
}

func TestPlatformChoice_SkipIsNotTooMany(t *testing.T) {
	skip, err := domain.ResolvePlatform(false, false)
	require.NoError(t, err)
	require.True(t, skip.Skip())

	_, err = skip.Require()
	require.ErrorIs(t, err, domain.ErrNoPlatform)
	assert.NotErrorIs(t, err, domain.ErrTooManyPlatforms)

	_, err = domain.ResolvePlatform(true, true)
	require.ErrorIs(t, err, domain.ErrTooManyPlatforms)
	assert.NotErrorIs(t, err, domain.ErrNoPlatform)
}

func TestPlatformChoice_Require(t *testing.T) {
	choice, err := domain.ResolvePlatform(false, true)
	require.NoError(t, err)

	plat, err := choice.Require()
	require.NoError(t, err)
	assert.Equal(t, domain.PlatformLinuxu, plat)
	assert.Equal(t, "linuxu", plat.String())
}

func TestPlatform_EntrySymbol(t *testing.T) {
	assert.Equal(t, "_libkvmplat_entry", domain.PlatformKVM.EntrySymbol())
	assert.Equal(t, "_liblinuxuplat_start", domain.PlatformLinuxu.EntrySymbol())
	assert.Empty(t, domain.Platform("xen").EntrySymbol())
}
