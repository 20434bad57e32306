// service/vo.go
package service

import (
	"fmt"

	"github.com/jinzhu/copier"
	"go.uber.org/zap"

	echo_errors "github.com/923325596/albedo-boot/errors"
	logger "github.com/923325596/albedo-boot/logging"
	"github.com/923325596/albedo-boot/model"
)

// copyBeanToVo copies the matching scalar fields of bean into vo.
func copyBeanToVo(bean interface{}, vo interface{}) error {
	if err := copier.Copy(vo, bean); err != nil {
		logger.Error("Failed to copy bean to vo", zap.Error(err), zap.String("type", fmt.Sprintf("%T", bean)))
		return fmt.Errorf("%w: %T: %v", echo_errors.ErrVoConversion, bean, err)
	}
	return nil
}

// mapPage converts every row and stops at the first failure.
func mapPage[T any, V any](pm *model.PageModel[T], convert func(*T) (V, error)) (*model.PageModel[V], error) {
	out := &model.PageModel[V]{
		Page:               pm.Page,
		Size:               pm.Size,
		SortName:           pm.SortName,
		SortOrder:          pm.SortOrder,
		QueryConditionJSON: pm.QueryConditionJSON,
		Total:              pm.Total,
		Data:               make([]V, 0, len(pm.Data)),
	}
	for i := range pm.Data {
		vo, err := convert(&pm.Data[i])
		if err != nil {
			return nil, err
		}
		out.Data = append(out.Data, vo)
	}
	return out, nil
}

// UserVoOf converts a user for transport. The password hash never leaves.
func UserVoOf(user *model.User) (model.UserVo, error) {
	var vo model.UserVo
	if err := copyBeanToVo(user, &vo); err != nil {
		return model.UserVo{}, err
	}
	vo.Password = ""
	vo.RoleIDList = user.RoleIDs()
	vo.RoleNames = user.RoleNames()
	if user.Org != nil {
		vo.OrgName = user.Org.Name
	}
	vo.CreatorName = user.CreatorName()
	vo.ModifierName = user.ModifierName()
	return vo, nil
}

func UserVoPage(pm *model.PageModel[model.User]) (*model.PageModel[model.UserVo], error) {
	return mapPage(pm, UserVoOf)
}

// copyVoToUser writes the editable fields of vo onto user. The id, the password
// and the audit columns are left alone.
func copyVoToUser(vo model.UserVo, user *model.User) {
	user.LoginID = vo.LoginID
	user.Name = vo.Name
	user.Email = vo.Email
	user.Phone = vo.Phone
	user.Avatar = vo.Avatar
	user.OrgID = vo.OrgID
	user.LangKey = vo.LangKey
	user.Status = vo.Status
	user.Description = vo.Description
	user.RoleIDList = vo.RoleIDList
}

func RoleVoOf(role *model.Role) (model.RoleVo, error) {
	var vo model.RoleVo
	if err := copyBeanToVo(role, &vo); err != nil {
		return model.RoleVo{}, err
	}
	vo.CreatorName = role.CreatorName()
	vo.ModifierName = role.ModifierName()
	return vo, nil
}

func RoleVoPage(pm *model.PageModel[model.Role]) (*model.PageModel[model.RoleVo], error) {
	return mapPage(pm, RoleVoOf)
}

func copyVoToRole(vo model.RoleVo, role *model.Role) {
	role.Name = vo.Name
	role.Code = vo.Code
	role.OrgID = vo.OrgID
	role.Sort = vo.Sort
	role.Status = vo.Status
	role.Description = vo.Description
}

func OrgVoOf(org *model.Org) (model.OrgVo, error) {
	var vo model.OrgVo
	if err := copyBeanToVo(org, &vo); err != nil {
		return model.OrgVo{}, err
	}
	vo.CreatorName = org.CreatorName()
	vo.ModifierName = org.ModifierName()
	return vo, nil
}

func OrgVoPage(pm *model.PageModel[model.Org]) (*model.PageModel[model.OrgVo], error) {
	return mapPage(pm, OrgVoOf)
}

// copyVoToOrg leaves the tree columns to the save path.
func copyVoToOrg(vo model.OrgVo, org *model.Org) {
	org.Name = vo.Name
	org.Code = vo.Code
	org.Type = vo.Type
	org.Sort = vo.Sort
	org.Status = vo.Status
	org.Description = vo.Description
}

func auditables[T any, P interface {
	*T
	model.Auditable
}](items []T) []model.Auditable {
	out := make([]model.Auditable, 0, len(items))
	for i := range items {
		out = append(out, P(&items[i]))
	}
	return out
}
