// model/entity.go
package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Row status values shared by every entity.
const (
	FlagNormal = 0
	FlagLocked = 1
	FlagDelete = -1
)

// Column names used by the persistence layer and the query builder.
const (
	FieldID     = "id"
	FieldStatus = "status"

	ColumnCreatedBy        = "created_by"
	ColumnCreatedDate      = "created_date"
	ColumnLastModifiedBy   = "last_modified_by"
	ColumnLastModifiedDate = "last_modified_date"
)

// PK is the set of primary key types an entity may use.
type PK interface {
	~string | ~int64
}

// IdEntity is the base of every persisted record. The audit columns are filled by
// the gorm hooks below from the actor carried in the statement context.
type IdEntity[K PK] struct {
	ID               K         `gorm:"column:id;primaryKey;size:32" json:"id"`
	Status           int       `gorm:"column:status;not null" json:"status"`
	Version          int       `gorm:"column:version;not null" json:"version"`
	Description      string    `gorm:"column:description;size:255" json:"description"`
	CreatedBy        string    `gorm:"column:created_by;size:32" json:"createdBy"`
	CreatedDate      time.Time `gorm:"column:created_date" json:"createdDate"`
	LastModifiedBy   string    `gorm:"column:last_modified_by;size:32" json:"lastModifiedBy"`
	LastModifiedDate time.Time `gorm:"column:last_modified_date" json:"lastModifiedDate"`
}

// IsNew reports whether the primary key has not been assigned yet.
func (e *IdEntity[K]) IsNew() bool {
	var zero K
	return e.ID == zero
}

// GetID returns the primary key.
func (e *IdEntity[K]) GetID() K {
	return e.ID
}

func (e *IdEntity[K]) BeforeCreate(tx *gorm.DB) error {
	if p, ok := any(&e.ID).(*string); ok && *p == "" {
		*p = NewID()
	}
	actor := ActorFromContext(tx.Statement.Context)
	now := time.Now()
	e.CreatedBy, e.CreatedDate = actor, now
	e.LastModifiedBy, e.LastModifiedDate = actor, now
	return nil
}

func (e *IdEntity[K]) BeforeUpdate(tx *gorm.DB) error {
	e.LastModifiedBy = ActorFromContext(tx.Statement.Context)
	e.LastModifiedDate = time.Now()
	e.Version++
	return nil
}

// NewID returns a 32 character random identifier.
func NewID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

// Auditable is implemented by entities that carry creator/modifier relations.
type Auditable interface {
	AuditRefs() (createdBy, lastModifiedBy string)
	SetAuditUsers(creator, modifier *User)
}

// AuditRelations are weak references to the users that created and last modified
// a record. They are never persisted, never serialized, and never written by the
// save path; a missing user simply leaves the pointer nil.
type AuditRelations struct {
	Creator  *User `gorm:"-" json:"-" copier:"-"`
	Modifier *User `gorm:"-" json:"-" copier:"-"`
}

func (a *AuditRelations) SetAuditUsers(creator, modifier *User) {
	a.Creator = creator
	a.Modifier = modifier
}

// CreatorName is the display name of the creator, empty when unresolved.
func (a *AuditRelations) CreatorName() string {
	if a.Creator == nil {
		return ""
	}
	return a.Creator.Name
}

// ModifierName is the display name of the last modifier, empty when unresolved.
func (a *AuditRelations) ModifierName() string {
	if a.Modifier == nil {
		return ""
	}
	return a.Modifier.Name
}

// DataUserEntity is an IdEntity with creator/modifier relations.
type DataUserEntity[K PK] struct {
	IdEntity[K]
	AuditRelations
}

func (e *DataUserEntity[K]) AuditRefs() (string, string) {
	return e.CreatedBy, e.LastModifiedBy
}

// TreeEntity participates in a parent/child hierarchy. ParentIDs holds the
// comma-joined ancestor path ending with a comma, starting at the root marker.
type TreeEntity[K PK] struct {
	IdEntity[K]
	ParentID  string `gorm:"column:parent_id;size:32;index" json:"parentId"`
	ParentIDs string `gorm:"column:parent_ids;size:2000" json:"parentIds"`
	Name      string `gorm:"column:name;size:100;not null" json:"name"`
	Sort      int    `gorm:"column:sort" json:"sort"`
	Leaf      bool   `gorm:"column:leaf" json:"leaf"`
}

// TreeRootID marks the top of every hierarchy.
const TreeRootID = "0"

// ChildParentIDs is the ParentIDs value a direct child of this node carries.
func (e *TreeEntity[K]) ChildParentIDs(selfID string) string {
	if e.ParentIDs == "" {
		return TreeRootID + "," + selfID + ","
	}
	return e.ParentIDs + selfID + ","
}

// TreeUserEntity is a TreeEntity with creator/modifier relations.
type TreeUserEntity[K PK] struct {
	TreeEntity[K]
	AuditRelations
}

func (e *TreeUserEntity[K]) AuditRefs() (string, string) {
	return e.CreatedBy, e.LastModifiedBy
}
