// Package config holds the generator settings, read from the environment or
// a .env file.
//
//	QR_CHARSET           character set of the encoded text (UTF-8)
//	QR_ERROR_CORRECTION  L, M, Q or H (M)
//	QR_MARGIN            quiet zone in modules (2)
//	QR_SIZE              image width and height in pixels (300)
//	QR_BACKEND           zxing or skip2 (zxing)
//	QR_FORMAT            png, bmp or tiff (png)
//	QR_LOGO_SIZE         logo bound in pixels (60)
//	QR_LOGO_SCALING      clamp or fit (clamp)
//	QR_BORDER_RADIUS     logo frame corner radius (15)
//	QR_BORDER_WIDTH      logo frame stroke width, 0 disables it (3)
//	QR_VERIFY            decode every image after it is produced (false)
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/alapierre/qr-logo-generator/format"
	"github.com/alapierre/qr-logo-generator/logo"
	"github.com/alapierre/qr-logo-generator/matrix"
)

// ErrInvalid is returned for settings that cannot produce an image.
var ErrInvalid = errors.New("invalid configuration")

type Config struct {
	CharacterSet    string         `env:"QR_CHARSET" envDefault:"UTF-8"`
	ErrorCorrection matrix.Level   `env:"QR_ERROR_CORRECTION" envDefault:"M"`
	Margin          int            `env:"QR_MARGIN" envDefault:"2"`
	Size            int            `env:"QR_SIZE" envDefault:"300"`
	Backend         matrix.Backend `env:"QR_BACKEND" envDefault:"zxing"`
	Format          format.Format  `env:"QR_FORMAT" envDefault:"png"`

	LogoSize     int         `env:"QR_LOGO_SIZE" envDefault:"60"`
	LogoScaling  logo.Policy `env:"QR_LOGO_SCALING" envDefault:"clamp"`
	BorderRadius float64     `env:"QR_BORDER_RADIUS" envDefault:"15"`
	BorderWidth  float64     `env:"QR_BORDER_WIDTH" envDefault:"3"`

	Verify bool `env:"QR_VERIFY" envDefault:"false"`
}

// Default returns the tag defaults, ignoring the process environment.
func Default() Config {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: map[string]string{}}); err != nil {
		panic(fmt.Sprintf("config: bad defaults: %v", err))
	}
	return cfg
}

// Load reads env files into the environment and parses it. Without
// arguments ./.env is read when it exists.
func Load(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil {
		if len(files) > 0 || !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("loading env file: %w", err)
		}
	}
	return FromEnvironment()
}

// FromEnvironment parses the process environment without touching .env files.
func FromEnvironment() (Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch {
	case c.CharacterSet == "":
		return fmt.Errorf("%w: empty character set", ErrInvalid)
	case c.Margin < 0:
		return fmt.Errorf("%w: negative margin %d", ErrInvalid, c.Margin)
	case c.Size < 0:
		return fmt.Errorf("%w: negative size %d", ErrInvalid, c.Size)
	case c.LogoSize <= 0:
		return fmt.Errorf("%w: logo size must be positive, got %d", ErrInvalid, c.LogoSize)
	case c.BorderWidth < 0 || c.BorderRadius < 0:
		return fmt.Errorf("%w: negative logo frame", ErrInvalid)
	}
	return nil
}

// Matrix returns the symbol encoder options.
func (c Config) Matrix() matrix.Options {
	return matrix.Options{
		CharacterSet:    c.CharacterSet,
		ErrorCorrection: c.ErrorCorrection,
		Margin:          c.Margin,
	}
}

// Frame returns the logo frame, keeping the default stroke color.
func (c Config) Frame() logo.Frame {
	f := logo.DefaultFrame
	f.Radius = c.BorderRadius
	f.Width = c.BorderWidth
	return f
}
