// model/user.go
package model

import "time"

const (
	// UsersByLoginCache names the cache holding users keyed by login id.
	UsersByLoginCache = "usersByLogin"
	// ReservedAdminID is never listed by paged queries.
	ReservedAdminID = "1"
	// DefaultLangKey is applied on save when the caller sends none.
	DefaultLangKey = "zh-cn"

	FieldLoginID = "login_id"
	FieldOrgID   = "org_id"
)

type User struct {
	DataUserEntity[string]
	LoginID       string     `gorm:"column:login_id;size:50;not null;uniqueIndex" json:"loginId"`
	Password      string     `gorm:"column:password_hash;size:100" json:"-"`
	Name          string     `gorm:"column:name;size:50" json:"name"`
	Email         string     `gorm:"column:email;size:100" json:"email"`
	Phone         string     `gorm:"column:phone;size:32" json:"phone"`
	Avatar        string     `gorm:"column:avatar;size:255" json:"avatar"`
	OrgID         string     `gorm:"column:org_id;size:32;index" json:"orgId"`
	LangKey       string     `gorm:"column:lang_key;size:10" json:"langKey"`
	Activated     bool       `gorm:"column:activated" json:"activated"`
	ActivationKey string     `gorm:"column:activation_key;size:20" json:"-"`
	ResetKey      string     `gorm:"column:reset_key;size:20" json:"-"`
	ResetDate     *time.Time `gorm:"column:reset_date" json:"-"`

	Org        *Org     `gorm:"-" json:"-"`
	Roles      []Role   `gorm:"-" json:"-"`
	RoleIDList []string `gorm:"-" json:"-"`
}

func (User) TableName() string {
	return "sys_user_t"
}

// RoleNames flattens the loaded roles.
func (u *User) RoleNames() []string {
	names := make([]string, 0, len(u.Roles))
	for _, r := range u.Roles {
		names = append(names, r.Name)
	}
	return names
}

// RoleIDs returns the ids of the loaded roles, or RoleIDList when none are loaded.
func (u *User) RoleIDs() []string {
	if len(u.Roles) == 0 {
		return u.RoleIDList
	}
	ids := make([]string, 0, len(u.Roles))
	for _, r := range u.Roles {
		ids = append(ids, r.ID)
	}
	return ids
}

// UserRole links a user to a role.
type UserRole struct {
	UserID string `gorm:"column:user_id;primaryKey;size:32"`
	RoleID string `gorm:"column:role_id;primaryKey;size:32"`
}

func (UserRole) TableName() string {
	return "sys_user_role_t"
}

// UserVo is the transport shape of a user.
type UserVo struct {
	ID               string    `json:"id"`
	LoginID          string    `json:"loginId" validate:"required,min=2,max=50"`
	Password         string    `json:"password,omitempty" validate:"omitempty,min=6,max=64"`
	Name             string    `json:"name" validate:"required,max=50"`
	Email            string    `json:"email" validate:"omitempty,email,max=100"`
	Phone            string    `json:"phone" validate:"max=32"`
	Avatar           string    `json:"avatar" validate:"max=255"`
	OrgID            string    `json:"orgId"`
	OrgName          string    `json:"orgName"`
	LangKey          string    `json:"langKey" validate:"max=10"`
	Activated        bool      `json:"activated"`
	ResetKey         string    `json:"-"`
	RoleIDList       []string  `json:"roleIdList"`
	RoleNames        []string  `json:"roleNames"`
	Status           int       `json:"status" validate:"oneof=-1 0 1"`
	Description      string    `json:"description" validate:"max=255"`
	CreatorName      string    `json:"creatorName"`
	ModifierName     string    `json:"modifierName"`
	CreatedDate      time.Time `json:"createdDate"`
	LastModifiedDate time.Time `json:"lastModifiedDate"`
}

// UserExcelVo is one row of a bulk user import. Org and role are given by name.
type UserExcelVo struct {
	LoginID   string `json:"loginId" validate:"required,min=2,max=50"`
	Password  string `json:"password" validate:"omitempty,min=6,max=64"`
	Name      string `json:"name" validate:"required,max=50"`
	Email     string `json:"email" validate:"omitempty,email,max=100"`
	Phone     string `json:"phone" validate:"max=32"`
	OrgName   string `json:"orgName"`
	RoleNames string `json:"roleNames" validate:"required"`
}

// IsNew reports whether saving vo creates a user.
func (vo UserVo) IsNew() bool {
	return vo.ID == ""
}
