// util/validation_util.go

package util

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	echo_errors "github.com/923325596/albedo-boot/errors"
	"github.com/923325596/albedo-boot/model"
)

type ValidationUtil struct {
	validate *validator.Validate
}

func NewValidationUtil() *ValidationUtil {
	return &ValidationUtil{validate: validator.New(validator.WithRequiredStructEnabled())}
}

func (v *ValidationUtil) ValidateUser(user model.UserVo) error {
	if err := v.check(user, echo_errors.ErrInvalidUserData); err != nil {
		return err
	}
	if user.IsNew() && user.Password == "" {
		return echo_errors.WrapRuntimeMsg(echo_errors.ErrInvalidUserData, "password is required for a new user")
	}
	return nil
}

func (v *ValidationUtil) ValidateUserExcel(row model.UserExcelVo) error {
	return v.check(row, echo_errors.ErrInvalidUserData)
}

func (v *ValidationUtil) ValidatePassword(password string) error {
	if err := v.validate.Var(password, "required,min=6,max=64"); err != nil {
		return echo_errors.WrapRuntimeMsg(echo_errors.ErrInvalidUserData, "password must be 6 to 64 characters")
	}
	return nil
}

func (v *ValidationUtil) ValidateRole(role model.RoleVo) error {
	return v.check(role, echo_errors.ErrInvalidRoleData)
}

func (v *ValidationUtil) ValidateOrg(org model.OrgVo) error {
	if err := v.check(org, echo_errors.ErrInvalidOrgData); err != nil {
		return err
	}
	if org.ID != "" && org.ID == org.ParentID {
		return echo_errors.WrapRuntimeMsg(echo_errors.ErrInvalidOrgData, "an org cannot be its own parent")
	}
	return nil
}

// check runs the struct tags and flattens failures into one caller-facing message.
func (v *ValidationUtil) check(s interface{}, sentinel error) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %v", sentinel, err)
	}
	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, fieldMessage(fe))
	}
	return echo_errors.WrapRuntimeMsg(sentinel, "%s", strings.Join(msgs, "; "))
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "min", "max":
		return fmt.Sprintf("%s must satisfy %s=%s", fe.Field(), fe.Tag(), fe.Param())
	case "email":
		return fmt.Sprintf("%s must be a valid email", fe.Field())
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", fe.Field(), fe.Param())
	}
	return fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag())
}
