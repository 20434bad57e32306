// audit/model.go
package audit

import (
	"encoding/json"
	"time"
)

type AuditLog struct {
	ID          string          `json:"id"`
	Timestamp   time.Time       `json:"timestamp"`
	ActorID     string          `json:"actor_id"`
	Action      string          `json:"action"`
	Entity      string          `json:"entity"`
	ResourceIDs []string        `json:"resource_ids"`
	Details     json.RawMessage `json:"details,omitempty"`
}
