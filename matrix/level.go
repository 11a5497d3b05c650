package matrix

import (
	"fmt"
	"strings"

	"github.com/makiuchi-d/gozxing/qrcode/decoder"
	"github.com/skip2/go-qrcode"
)

// Level is the QR error correction level.
type Level int

const (
	LevelL Level = iota // ~7% recovery
	LevelM              // ~15% recovery
	LevelQ              // ~25% recovery
	LevelH              // ~30% recovery
)

func (l Level) String() string {
	switch l {
	case LevelL:
		return "L"
	case LevelM:
		return "M"
	case LevelQ:
		return "Q"
	case LevelH:
		return "H"
	}
	return fmt.Sprintf("Level(%d)", int(l))
}

func (l Level) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

func (l *Level) UnmarshalText(text []byte) error {
	switch strings.ToUpper(strings.TrimSpace(string(text))) {
	case "L", "LOW":
		*l = LevelL
	case "M", "MEDIUM":
		*l = LevelM
	case "Q", "QUARTILE":
		*l = LevelQ
	case "H", "HIGH":
		*l = LevelH
	default:
		return fmt.Errorf("unknown error correction level %q (want L, M, Q or H)", text)
	}
	return nil
}

func (l Level) zxing() (decoder.ErrorCorrectionLevel, error) {
	switch l {
	case LevelL:
		return decoder.ErrorCorrectionLevel_L, nil
	case LevelM:
		return decoder.ErrorCorrectionLevel_M, nil
	case LevelQ:
		return decoder.ErrorCorrectionLevel_Q, nil
	case LevelH:
		return decoder.ErrorCorrectionLevel_H, nil
	}
	return 0, fmt.Errorf("%w: unsupported error correction level %v", ErrEncode, l)
}

// skip2 names its levels by recovery percentage, so Q maps to High and H to Highest.
func (l Level) skip2() (qrcode.RecoveryLevel, error) {
	switch l {
	case LevelL:
		return qrcode.Low, nil
	case LevelM:
		return qrcode.Medium, nil
	case LevelQ:
		return qrcode.High, nil
	case LevelH:
		return qrcode.Highest, nil
	}
	return 0, fmt.Errorf("%w: unsupported error correction level %v", ErrEncode, l)
}

// Backend selects the library computing the QR symbol.
type Backend string

const (
	BackendZXing Backend = "zxing"
	BackendSkip2 Backend = "skip2"
)

func (b *Backend) UnmarshalText(text []byte) error {
	switch v := Backend(strings.ToLower(strings.TrimSpace(string(text)))); v {
	case BackendZXing, BackendSkip2:
		*b = v
		return nil
	}
	return fmt.Errorf("unknown encoder backend %q (want zxing or skip2)", text)
}
