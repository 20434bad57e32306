// model/role.go
package model

import "time"

const FieldName = "name"

type Role struct {
	DataUserEntity[string]
	Name  string `gorm:"column:name;size:50;not null" json:"name"`
	Code  string `gorm:"column:code;size:50" json:"code"`
	OrgID string `gorm:"column:org_id;size:32" json:"orgId"`
	Sort  int    `gorm:"column:sort" json:"sort"`
}

func (Role) TableName() string {
	return "sys_role_t"
}

type RoleVo struct {
	ID               string    `json:"id"`
	Name             string    `json:"name" validate:"required,max=50"`
	Code             string    `json:"code" validate:"max=50"`
	OrgID            string    `json:"orgId"`
	OrgName          string    `json:"orgName"`
	Sort             int       `json:"sort"`
	Status           int       `json:"status" validate:"oneof=-1 0 1"`
	Description      string    `json:"description" validate:"max=255"`
	CreatorName      string    `json:"creatorName"`
	ModifierName     string    `json:"modifierName"`
	CreatedDate      time.Time `json:"createdDate"`
	LastModifiedDate time.Time `json:"lastModifiedDate"`
}
