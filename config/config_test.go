package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alapierre/qr-logo-generator/config"
	"github.com/alapierre/qr-logo-generator/format"
	"github.com/alapierre/qr-logo-generator/logo"
	"github.com/alapierre/qr-logo-generator/matrix"
)

func TestDefault(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	assert.Equal(t, "UTF-8", cfg.CharacterSet)
	assert.Equal(t, matrix.LevelM, cfg.ErrorCorrection)
	assert.Equal(t, 2, cfg.Margin)
	assert.Equal(t, 300, cfg.Size)
	assert.Equal(t, matrix.BackendZXing, cfg.Backend)
	assert.Equal(t, format.PNG, cfg.Format)
	assert.Equal(t, 60, cfg.LogoSize)
	assert.Equal(t, logo.PolicyClamp, cfg.LogoScaling)
	assert.Equal(t, 15.0, cfg.BorderRadius)
	assert.Equal(t, 3.0, cfg.BorderWidth)
	assert.False(t, cfg.Verify)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, matrix.DefaultOptions, cfg.Matrix())
	assert.Equal(t, logo.DefaultFrame, cfg.Frame())
}

func TestFromEnvironment(t *testing.T) {
	t.Setenv("QR_ERROR_CORRECTION", "H")
	t.Setenv("QR_SIZE", "512")
	t.Setenv("QR_BACKEND", "skip2")
	t.Setenv("QR_FORMAT", "bmp")
	t.Setenv("QR_VERIFY", "true")

	cfg, err := config.FromEnvironment()
	require.NoError(t, err)
	assert.Equal(t, matrix.LevelH, cfg.ErrorCorrection)
	assert.Equal(t, 512, cfg.Size)
	assert.Equal(t, matrix.BackendSkip2, cfg.Backend)
	assert.Equal(t, format.BMP, cfg.Format)
	assert.True(t, cfg.Verify)
	assert.Equal(t, 2, cfg.Margin)
}

func TestFromEnvironment_Invalid(t *testing.T) {
	tests := map[string]string{
		"QR_ERROR_CORRECTION": "Z",
		"QR_MARGIN":           "-1",
		"QR_LOGO_SIZE":        "0",
		"QR_LOGO_SCALING":     "stretch",
		"QR_SIZE":             "big",
	}
	for key, value := range tests {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, value)

			_, err := config.FromEnvironment()
			require.ErrorIs(t, err, config.ErrInvalid)
		})
	}
}

func TestLoad_EnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "qr.env")
	require.NoError(t, os.WriteFile(path, []byte("QR_LOGO_SCALING=fit\nQR_BORDER_WIDTH=0\n"), 0o600))
	t.Cleanup(func() {
		_ = os.Unsetenv("QR_LOGO_SCALING")
		_ = os.Unsetenv("QR_BORDER_WIDTH")
	})

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, logo.PolicyFit, cfg.LogoScaling)
	assert.Zero(t, cfg.BorderWidth)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	cfg.CharacterSet = ""
	require.ErrorIs(t, cfg.Validate(), config.ErrInvalid)

	cfg = config.Default()
	cfg.BorderRadius = -1
	require.ErrorIs(t, cfg.Validate(), config.ErrInvalid)

	cfg = config.Default()
	cfg.Size = -5
	require.ErrorIs(t, cfg.Validate(), config.ErrInvalid)
}
