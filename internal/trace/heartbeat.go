package trace

import (
	"context"
	"fmt"
	"time"
)

// StartHeartbeat emits a heartbeat event every interval until ctx is done or
// the returned stop function is called. A long stretch of heartbeats with no
// span ends points at a stuck stage. It returns a no-op stop when tracing is
// off or interval is not positive.
func StartHeartbeat(ctx context.Context, t Tracer, interval time.Duration) (stop func()) {
	if t == nil || !t.Enabled() || interval <= 0 {
		return func() {}
	}
	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	go func() {
		defer close(done)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for n := 1; ; n++ {
			select {
			case <-ctx.Done():
				return
			case now := <-ticker.C:
				t.Emit(&Event{
					Time:   now,
					Kind:   KindHeartbeat,
					Scope:  ScopeDriver,
					Name:   "heartbeat",
					Detail: fmt.Sprintf("#%d", n),
				})
			}
		}
	}()
	return func() {
		cancel()
		<-done
	}
}
