// audit/service.go
package audit

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"go.uber.org/zap"

	logger "github.com/923325596/albedo-boot/logging"
	"github.com/923325596/albedo-boot/model"
	"github.com/923325596/albedo-boot/util"
)

type Service interface {
	LogAction(ctx context.Context, log AuditLog) error
	QueryLogs(ctx context.Context, from, to time.Time, actorID, resourceID string) ([]AuditLog, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) LogAction(ctx context.Context, log AuditLog) error {
	if log.ID == "" {
		log.ID = model.NewID()
	}
	if log.Timestamp.IsZero() {
		log.Timestamp = time.Now()
	}
	return s.repo.LogAction(ctx, log)
}

func (s *service) QueryLogs(ctx context.Context, from, to time.Time, actorID, resourceID string) ([]AuditLog, error) {
	return s.repo.QueryLogs(ctx, from, to, actorID, resourceID)
}

// Subscribe records every service write event as an audit entry.
func Subscribe(bus *util.EventBus, svc Service) {
	bus.SubscribeAll(func(ctx context.Context, event util.Event) error {
		return svc.LogAction(ctx, fromEvent(event))
	},
		util.EventUserSaved, util.EventUserLocked, util.EventUserDeleted, util.EventUserPassword,
		util.EventRoleSaved, util.EventRoleDeleted,
		util.EventOrgSaved, util.EventOrgDeleted,
	)
}

func fromEvent(event util.Event) AuditLog {
	entity, action, _ := strings.Cut(event.Type, ".")
	log := AuditLog{
		ActorID: event.ActorID,
		Action:  strings.ToUpper(action + "_" + entity),
		Entity:  entity,
	}
	if change, ok := event.Payload.(util.ChangePayload); ok {
		log.ResourceIDs = change.IDs
		if len(change.Details) > 0 {
			details, err := json.Marshal(change.Details)
			if err != nil {
				logger.Warn("Failed to encode audit details", zap.Error(err), zap.String("eventType", event.Type))
			} else {
				log.Details = details
			}
		}
	}
	return log
}
