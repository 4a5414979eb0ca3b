// Package download saves the résumé for /cv.
package download

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/dustin/go-humanize"
	"github.com/gen2brain/beeep"
	"go.uber.org/zap"
)

//go:embed assets/resume.pdf
var builtinResume []byte

// Options configures a Downloader.
type Options struct {
	// Source is the résumé file. Empty uses the built-in one.
	Source string
	// Name is the file name written into Dir.
	Name string
	Dir  string
	// URL is the public fallback link.
	URL      string
	Notify   bool
	CopyLink bool
}

// Result describes a finished download.
type Result struct {
	Path   string
	Size   int64
	Copied bool
}

// Summary is a one-line description such as "saved resume.pdf (1.2 kB)".
func (r Result) Summary() string {
	return fmt.Sprintf("saved %s (%s)", r.Path, humanize.Bytes(uint64(r.Size)))
}

// Downloader copies the résumé into the download directory.
type Downloader struct {
	opts Options
	log  *zap.Logger

	notify    func(title, message string) error
	writeClip func(string) error
}

// New creates a Downloader.
func New(opts Options, log *zap.Logger) *Downloader {
	if log == nil {
		log = zap.NewNop()
	}
	if opts.Name == "" {
		opts.Name = "resume.pdf"
	}
	return &Downloader{
		opts: opts,
		log:  log,
		notify: func(title, message string) error {
			return beeep.Notify(title, message, "")
		},
		writeClip: clipboard.WriteAll,
	}
}

// URL returns the fallback link.
func (d *Downloader) URL() string {
	return d.opts.URL
}

// Save writes the résumé and returns where it went. An existing file is
// never overwritten; a numbered name is picked instead.
func (d *Downloader) Save(ctx context.Context) (Result, error) {
	var res Result

	if d.opts.CopyLink && d.opts.URL != "" {
		if err := d.writeClip(d.opts.URL); err != nil {
			d.log.Debug("failed to copy link to clipboard", zap.Error(err))
		} else {
			res.Copied = true
		}
	}

	if err := ctx.Err(); err != nil {
		return res, err
	}

	data, err := d.read()
	if err != nil {
		return res, err
	}

	if err := os.MkdirAll(d.opts.Dir, 0755); err != nil {
		return res, fmt.Errorf("failed to create download directory: %w", err)
	}

	path, err := freePath(d.opts.Dir, d.opts.Name)
	if err != nil {
		return res, err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return res, fmt.Errorf("failed to write résumé: %w", err)
	}

	res.Path = path
	res.Size = int64(len(data))
	d.log.Info("résumé saved", zap.String("path", path), zap.Int64("size", res.Size))

	if d.opts.Notify {
		if err := d.notify("termfolio", "Résumé saved to "+path); err != nil {
			d.log.Debug("failed to send notification", zap.Error(err))
		}
	}

	return res, nil
}

func (d *Downloader) read() ([]byte, error) {
	if d.opts.Source == "" {
		return builtinResume, nil
	}
	data, err := os.ReadFile(d.opts.Source)
	if err != nil {
		return nil, fmt.Errorf("failed to read résumé: %w", err)
	}
	return data, nil
}

// maxCopies bounds the numbered-name search.
const maxCopies = 1000

func freePath(dir, name string) (string, error) {
	ext := filepath.Ext(name)
	stem := strings.TrimSuffix(name, ext)

	for i := 0; i < maxCopies; i++ {
		candidate := name
		if i > 0 {
			candidate = fmt.Sprintf("%s (%d)%s", stem, i, ext)
		}
		path := filepath.Join(dir, candidate)
		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			return path, nil
		} else if err != nil {
			return "", fmt.Errorf("failed to check %s: %w", path, err)
		}
	}
	return "", fmt.Errorf("too many copies of %s in %s", name, dir)
}
