// Package loader replays a delimited customer file against the create endpoint, one row at a time.
package loader

import (
	"context"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/unclebandit/customer-records/internal/model"
)

// Saver is the part of the API the loader calls.
type Saver interface {
	SaveCustomer(ctx context.Context, dto model.CustomerDTO) error
}

type Loader struct {
	Saver  Saver
	Logger *zap.Logger
}

// Run reads rows from r and sends each one before reading the next. It stops at the first
// parse, read or send fault and returns the number of rows sent before it.
func (l *Loader) Run(ctx context.Context, r io.Reader) (int, error) {
	rows := NewRowReader(r)
	sent := 0
	for {
		dto, err := rows.Next()
		if errors.Is(err, io.EOF) {
			return sent, nil
		}
		if err != nil {
			return sent, fmt.Errorf("read row %d: %w", sent+1, err)
		}

		if err := l.Saver.SaveCustomer(ctx, dto); err != nil {
			return sent, fmt.Errorf("send row %d (customer %s): %w", sent+1, dto.CustomerRef, err)
		}
		sent++
		l.Logger.Info("customer sent", zap.Int("row", sent), zap.String("customer_ref", dto.CustomerRef))
	}
}
