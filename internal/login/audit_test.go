package login

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/nfrund/storefront/internal/pubsub"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// syncBuffer lets the subscriber goroutine and the test share a log buffer.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestSubscribeAudit_LogsLifecycle(t *testing.T) {
	bridge := pubsub.NewWatermillBridge()
	defer bridge.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var logs syncBuffer
	require.NoError(t, SubscribeAudit(ctx, bridge, slog.New(slog.NewTextHandler(&logs, nil))))

	c := NewController(okResponse(`{"data":{"message":"Welcome"}}`), WithPublisher(bridge))
	c.SetEmail("user@example.com")
	_, err := c.Submit(ctx)
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		out := logs.String()
		return strings.Contains(out, TopicSubmitStarted) && strings.Contains(out, TopicSubmitSucceeded)
	}, time.Second, 10*time.Millisecond)
	assert.Contains(t, logs.String(), "email=user@example.com")
}
