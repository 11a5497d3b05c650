// Package batch writes a zip archive with one QR code image per text.
//
// Entry names are the raw text plus the image extension. Texts containing
// path separators or other unsafe characters, duplicates and very long texts
// are written as is; readers of the archive may reject or rewrite them.
package batch

import (
	"errors"
	"fmt"
	"image"
	"io"

	"github.com/klauspost/compress/zip"
	"github.com/sirupsen/logrus"

	"github.com/alapierre/qr-logo-generator/qr"
)

var logger = logrus.WithField("component", "batch")

// ErrArchiveWrite is returned when the archive stream fails. The archive is
// unusable afterwards, so it always ends the batch.
var ErrArchiveWrite = errors.New("archive write failed")

// Policy decides what happens when one text cannot be turned into an image.
type Policy int

const (
	// AbortOnError stops at the first failing text.
	AbortOnError Policy = iota
	// ContinueOnError skips failing texts and reports them in Report.Failed.
	ContinueOnError
)

// ItemError ties a failure to the text that caused it.
type ItemError struct {
	Index int
	Text  string
	Err   error
}

func (e *ItemError) Error() string {
	return fmt.Sprintf("item %d (%q): %v", e.Index, e.Text, e.Err)
}

func (e *ItemError) Unwrap() error {
	return e.Err
}

// Report lists the entries written and the texts skipped.
type Report struct {
	Entries []string
	Failed  []*ItemError
}

type Encoder struct {
	gen    *qr.Generator
	policy Policy
}

type Option func(*Encoder)

func WithPolicy(p Policy) Option {
	return func(e *Encoder) {
		e.policy = p
	}
}

func New(gen *qr.Generator, opts ...Option) *Encoder {
	e := &Encoder{gen: gen, policy: AbortOnError}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Encode writes the archive for texts to w, in order. A non-empty logoPath is
// loaded once and composited on every image; failing to load it writes nothing.
func (e *Encoder) Encode(w io.Writer, logoPath string, texts []string) (*Report, error) {
	var lg image.Image
	if logoPath != "" {
		var err error
		if lg, err = e.gen.LoadLogo(logoPath); err != nil {
			return nil, err
		}
	}

	cfg := e.gen.Config()
	method := zip.Deflate
	if cfg.Format.Compressed() {
		method = zip.Store
	}

	report := &Report{}
	zw := zip.NewWriter(w)
	for i, text := range texts {
		data, err := e.render(text, lg)
		if err != nil {
			item := &ItemError{Index: i, Text: text, Err: err}
			if e.policy == AbortOnError {
				if cerr := zw.Close(); cerr != nil {
					return report, fmt.Errorf("%w: %w", ErrArchiveWrite, cerr)
				}
				return report, item
			}
			logger.WithError(err).WithField("text", text).Warn("skipping batch item")
			report.Failed = append(report.Failed, item)
			continue
		}

		name := text + "." + cfg.Format.Extension()
		fw, err := zw.CreateHeader(&zip.FileHeader{Name: name, Method: method})
		if err != nil {
			return report, &ItemError{Index: i, Text: text, Err: fmt.Errorf("%w: %w", ErrArchiveWrite, err)}
		}
		if _, err := fw.Write(data); err != nil {
			return report, &ItemError{Index: i, Text: text, Err: fmt.Errorf("%w: %w", ErrArchiveWrite, err)}
		}
		report.Entries = append(report.Entries, name)
		logger.WithFields(logrus.Fields{"entry": name, "bytes": len(data)}).Debug("entry written")
	}

	if err := zw.Close(); err != nil {
		return report, fmt.Errorf("%w: %w", ErrArchiveWrite, err)
	}
	logger.WithFields(logrus.Fields{"entries": len(report.Entries), "failed": len(report.Failed)}).Info("archive written")
	return report, nil
}

func (e *Encoder) render(text string, lg image.Image) ([]byte, error) {
	var (
		img image.Image
		err error
	)
	if lg != nil {
		img, err = e.gen.EncodeWithLogo(text, lg)
	} else {
		img, err = e.gen.Encode(text)
	}
	if err != nil {
		return nil, err
	}
	return e.gen.Config().Format.Bytes(img)
}
