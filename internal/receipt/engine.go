package receipt

import (
	"context"
	"sync"

	"tdnguyen/vispend/internal/models"
)

// LineReader is the seam to the optical-character-recognition collaborator:
// it turns an image into recognized text lines with confidences. The
// recognition engine itself lives outside this codebase.
type LineReader interface {
	ReadLines(ctx context.Context, image []byte) ([]models.OCRLine, error)
}

// LazyReader defers construction of an expensive recognition engine until
// first use and then shares the single instance across calls. Initialization
// runs at most once even under concurrent use; a failed initialization is
// sticky and returned to every caller.
type LazyReader struct {
	init   func() (LineReader, error)
	once   sync.Once
	reader LineReader
	err    error
}

// NewLazyReader wraps an engine constructor.
func NewLazyReader(init func() (LineReader, error)) *LazyReader {
	return &LazyReader{init: init}
}

// ReadLines initializes the engine on first call and delegates to it.
func (l *LazyReader) ReadLines(ctx context.Context, image []byte) ([]models.OCRLine, error) {
	l.once.Do(func() {
		l.reader, l.err = l.init()
	})
	if l.err != nil {
		return nil, l.err
	}
	return l.reader.ReadLines(ctx, image)
}
