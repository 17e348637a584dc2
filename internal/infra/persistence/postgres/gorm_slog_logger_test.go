package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	deliverycontext "coderr/internal/delivery/context"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newBufferedGormLogger(debug bool) (*bytes.Buffer, logger.Interface) {
	buf := &bytes.Buffer{}
	base := slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	return buf, newGormSlogLogger(base, debug)
}

func sqlFn() (string, int64) {
	return "SELECT 1", 1
}

func TestGormSlogLogger_Trace(t *testing.T) {
	t.Parallel()

	t.Run("record not found is ignored", func(t *testing.T) {
		t.Parallel()

		buf, l := newBufferedGormLogger(false)
		l.Trace(context.Background(), time.Now(), sqlFn, gorm.ErrRecordNotFound)

		assert.Empty(t, buf.String())
	})

	t.Run("errors carry the request id", func(t *testing.T) {
		t.Parallel()

		buf, l := newBufferedGormLogger(false)
		ctx := deliverycontext.WithRequestID(context.Background(), "req-1")
		l.Trace(ctx, time.Now(), sqlFn, errors.New("boom"))

		out := buf.String()
		assert.Contains(t, out, "sql query failed")
		assert.Contains(t, out, "request_id=req-1")
		assert.Contains(t, out, "error=boom")
	})

	t.Run("slow query logged at warn", func(t *testing.T) {
		t.Parallel()

		buf, l := newBufferedGormLogger(false)
		l.Trace(context.Background(), time.Now().Add(-time.Second), sqlFn, nil)

		assert.Contains(t, buf.String(), "slow sql query")
	})

	t.Run("fast query only logged in debug", func(t *testing.T) {
		t.Parallel()

		quietBuf, quiet := newBufferedGormLogger(false)
		quiet.Trace(context.Background(), time.Now(), sqlFn, nil)
		assert.Empty(t, quietBuf.String())

		debugBuf, debug := newBufferedGormLogger(true)
		debug.Trace(context.Background(), time.Now(), sqlFn, nil)
		assert.Contains(t, debugBuf.String(), "SELECT 1")
	})

	t.Run("silent mode drops everything", func(t *testing.T) {
		t.Parallel()

		buf, l := newBufferedGormLogger(true)
		l.LogMode(logger.Silent).Trace(context.Background(), time.Now(), sqlFn, errors.New("boom"))

		assert.Empty(t, buf.String())
	})
}
