package util_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"

	logger "github.com/923325596/albedo-boot/logging"
	"github.com/923325596/albedo-boot/util"
)

func TestEventBus(t *testing.T) {
	logger.InitNopLogger()

	t.Run("DeliversToEverySubscriber", func(t *testing.T) {
		bus := util.NewEventBus()
		var hits int32
		handler := func(ctx context.Context, e util.Event) error {
			assert.Equal(t, "actor-1", e.ActorID)
			atomic.AddInt32(&hits, 1)
			return nil
		}
		bus.SubscribeAll(handler, util.EventUserSaved, util.EventUserDeleted)
		bus.Subscribe(util.EventUserSaved, handler)

		bus.Publish(context.Background(), util.EventUserSaved, "actor-1", util.ChangePayload{IDs: []string{"u1"}})
		bus.Publish(context.Background(), util.EventUserDeleted, "actor-1", nil)
		bus.Publish(context.Background(), util.EventRoleSaved, "actor-1", nil)
		bus.Wait()

		assert.Equal(t, int32(3), atomic.LoadInt32(&hits))
	})

	t.Run("HandlerOutlivesCancelledRequest", func(t *testing.T) {
		bus := util.NewEventBus()
		var ctxErr error
		bus.Subscribe(util.EventOrgSaved, func(ctx context.Context, e util.Event) error {
			ctxErr = ctx.Err()
			return errors.New("ignored")
		})

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		bus.Publish(ctx, util.EventOrgSaved, "", nil)
		bus.Wait()

		assert.NoError(t, ctxErr)
	})

	t.Run("NilBusIsNoop", func(t *testing.T) {
		var bus *util.EventBus
		assert.NotPanics(t, func() {
			bus.Publish(context.Background(), util.EventUserSaved, "", nil)
		})
	})
}
