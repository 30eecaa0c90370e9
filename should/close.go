// Package should runs cleanup that ought to succeed but whose failure the
// caller can't act on, logging instead of returning the error.
package should

import (
	"context"
	"io"

	"github.com/amp-labs/stepsort/logger"
)

// Close closes closer and logs msg at error level if that fails.
//
//	defer should.Close(ctx, file, "closing trace file")
func Close(ctx context.Context, closer io.Closer, msg string) {
	if err := closer.Close(); err != nil {
		logger.Get(ctx).Error(msg, "error", err)
	}
}
