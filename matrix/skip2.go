package matrix

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/skip2/go-qrcode"
	"golang.org/x/text/encoding/ianaindex"
)

// Skip2 encodes with skip2/go-qrcode. That library always works in byte mode
// on the raw string, so the text is transcoded to CharacterSet first.
type Skip2 struct {
	opts Options
}

func (s *Skip2) Encode(text string, width, height int) (*Grid, error) {
	if err := checkInput(text, width, height); err != nil {
		return nil, err
	}
	level, err := s.opts.ErrorCorrection.skip2()
	if err != nil {
		return nil, err
	}
	content, err := transcode(text, s.opts.CharacterSet)
	if err != nil {
		return nil, err
	}

	q, err := qrcode.New(content, level)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncode, err)
	}
	q.DisableBorder = true

	grid := render(q.Bitmap(), width, height, s.opts.Margin)
	logger.WithFields(logrus.Fields{"width": grid.width, "height": grid.height, "version": q.VersionNumber}).Debug("skip2 matrix encoded")
	return grid, nil
}

func transcode(text, charset string) (string, error) {
	switch strings.ToUpper(charset) {
	case "", "UTF-8", "UTF8":
		return text, nil
	}
	enc, err := ianaindex.IANA.Encoding(charset)
	if err != nil || enc == nil {
		return "", fmt.Errorf("%w: unsupported character set %q", ErrEncode, charset)
	}
	out, err := enc.NewEncoder().String(text)
	if err != nil {
		return "", fmt.Errorf("%w: text not representable in %s: %w", ErrEncode, charset, err)
	}
	return out, nil
}
