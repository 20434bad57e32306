// dao/audit_resolver.go
package dao

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"

	logger "github.com/923325596/albedo-boot/logging"
	"github.com/923325596/albedo-boot/model"
)

// AuditResolver fills the creator and modifier of audit-capable entities.
// Ids that match no user leave the relation nil, and a failed lookup is logged
// without failing the read of the owning entity.
type AuditResolver struct {
	db *gorm.DB
}

func NewAuditResolver(db *gorm.DB) *AuditResolver {
	return &AuditResolver{db: db}
}

func (r *AuditResolver) Resolve(ctx context.Context, items ...model.Auditable) {
	ids := make([]string, 0, len(items)*2)
	seen := make(map[string]bool)
	for _, item := range items {
		created, modified := item.AuditRefs()
		for _, id := range []string{created, modified} {
			if id != "" && !seen[id] {
				seen[id] = true
				ids = append(ids, id)
			}
		}
	}
	if len(ids) == 0 {
		return
	}

	var users []model.User
	err := conn(ctx, r.db).
		Select("id", "login_id", "name").
		Where(model.FieldID+" IN ?", ids).
		Find(&users).Error
	if err != nil {
		logger.Warn("Failed to resolve audit users", zap.Error(err), zap.Int("count", len(ids)))
		return
	}

	byID := make(map[string]*model.User, len(users))
	for i := range users {
		byID[users[i].ID] = &users[i]
	}
	for _, item := range items {
		created, modified := item.AuditRefs()
		item.SetAuditUsers(byID[created], byID[modified])
	}
}
