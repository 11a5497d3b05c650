package matrix

import (
	"fmt"

	"github.com/makiuchi-d/gozxing"
	"github.com/makiuchi-d/gozxing/qrcode"
	"github.com/sirupsen/logrus"
)

// ZXing encodes with gozxing, which renders the quiet zone and scaling itself.
type ZXing struct {
	opts Options
}

func (z *ZXing) Encode(text string, width, height int) (*Grid, error) {
	if err := checkInput(text, width, height); err != nil {
		return nil, err
	}
	level, err := z.opts.ErrorCorrection.zxing()
	if err != nil {
		return nil, err
	}

	hints := map[gozxing.EncodeHintType]interface{}{
		gozxing.EncodeHintType_ERROR_CORRECTION: level,
		gozxing.EncodeHintType_MARGIN:           z.opts.Margin,
	}
	if z.opts.CharacterSet != "" {
		hints[gozxing.EncodeHintType_CHARACTER_SET] = z.opts.CharacterSet
	}

	bm, err := qrcode.NewQRCodeWriter().Encode(text, gozxing.BarcodeFormat_QR_CODE, width, height, hints)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncode, err)
	}

	w, h := bm.GetWidth(), bm.GetHeight()
	grid := newGrid(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if bm.Get(x, y) {
				grid.set(x, y)
			}
		}
	}
	logger.WithFields(logrus.Fields{"width": w, "height": h, "level": z.opts.ErrorCorrection}).Debug("zxing matrix encoded")
	return grid, nil
}
