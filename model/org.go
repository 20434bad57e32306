// model/org.go
package model

import "time"

const FieldParentIDs = "parent_ids"

type Org struct {
	TreeUserEntity[string]
	Code string `gorm:"column:code;size:50" json:"code"`
	Type string `gorm:"column:type;size:10" json:"type"`
}

func (Org) TableName() string {
	return "sys_org_t"
}

type OrgVo struct {
	ID               string    `json:"id"`
	ParentID         string    `json:"parentId"`
	ParentIDs        string    `json:"parentIds"`
	ParentName       string    `json:"parentName"`
	Name             string    `json:"name" validate:"required,max=100"`
	Code             string    `json:"code" validate:"max=50"`
	Type             string    `json:"type" validate:"max=10"`
	Sort             int       `json:"sort"`
	Leaf             bool      `json:"leaf"`
	Status           int       `json:"status" validate:"oneof=-1 0 1"`
	Description      string    `json:"description" validate:"max=255"`
	CreatorName      string    `json:"creatorName"`
	ModifierName     string    `json:"modifierName"`
	CreatedDate      time.Time `json:"createdDate"`
	LastModifiedDate time.Time `json:"lastModifiedDate"`
}
