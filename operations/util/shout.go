package util

import (
	"go.uber.org/zap"

	"github.com/go-squish/squish"
)

// Shout logs the dimensions of a Table along with an optional message,
// then returns the Table unchanged. Useful for tracing the shape of data
// through a pipeline of operations.
func Shout(log *zap.SugaredLogger, t squish.Table, msg string) squish.Table {
	log.Infow(msg,
		"rows", t.NumRows(),
		"columns", t.Schema().NumColumns(),
	)
	return t
}

// ShoutOp wraps Shout as a TableOperation, for chaining via To
func ShoutOp(log *zap.SugaredLogger, msg string) squish.TableOperation {
	return func(t squish.Table) (squish.Table, error) {
		return Shout(log, t, msg), nil
	}
}
