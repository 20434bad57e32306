// query/condition.go
package query

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cast"

	echo_errors "github.com/923325596/albedo-boot/errors"
)

// Operator names accepted in a condition payload.
const (
	OpEq        = "eq"
	OpNe        = "ne"
	OpGt        = "gt"
	OpGe        = "ge"
	OpLt        = "lt"
	OpLe        = "le"
	OpLike      = "like"
	OpNotLike   = "notLike"
	OpIn        = "in"
	OpNotIn     = "notIn"
	OpIsNull    = "isNull"
	OpIsNotNull = "isNotNull"
	OpBetween   = "between"
)

// Attribute types used to coerce condition values.
const (
	AttrString  = "String"
	AttrInteger = "Integer"
	AttrLong    = "Long"
	AttrDouble  = "Double"
	AttrBoolean = "Boolean"
	AttrDate    = "Date"
)

var knownOperators = map[string]bool{
	OpEq: true, OpNe: true, OpGt: true, OpGe: true, OpLt: true, OpLe: true,
	OpLike: true, OpNotLike: true, OpIn: true, OpNotIn: true,
	OpIsNull: true, OpIsNotNull: true, OpBetween: true,
}

// Condition is one field/operator/value triple.
type Condition struct {
	FieldName string      `json:"fieldName"`
	AttrType  string      `json:"attrType,omitempty"`
	Operate   string      `json:"operate"`
	Value     interface{} `json:"value"`
}

func Eq(field string, value interface{}) Condition {
	return Condition{FieldName: field, Operate: OpEq, Value: value}
}

func Ne(field string, value interface{}) Condition {
	return Condition{FieldName: field, Operate: OpNe, Value: value}
}

func In(field string, values interface{}) Condition {
	return Condition{FieldName: field, Operate: OpIn, Value: values}
}

func Like(field string, value interface{}) Condition {
	return Condition{FieldName: field, Operate: OpLike, Value: value}
}

func (c Condition) String() string {
	return fmt.Sprintf("%s %s %v", c.FieldName, c.Operate, c.Value)
}

// needsValue reports whether the operator compares against a value.
func needsValue(op string) bool {
	return op != OpIsNull && op != OpIsNotNull
}

// blank reports whether a parsed payload entry carries nothing to filter on.
func (c Condition) blank() bool {
	if strings.TrimSpace(c.FieldName) == "" || strings.TrimSpace(c.Operate) == "" {
		return true
	}
	if !needsValue(c.Operate) {
		return false
	}
	switch v := c.Value.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(v) == ""
	case []interface{}:
		return len(v) == 0
	}
	return false
}

// ParseConditions decodes a JSON array of conditions. Empty and null payloads
// yield no conditions; entries with missing parts are dropped.
func ParseConditions(payload string) ([]Condition, error) {
	payload = strings.TrimSpace(payload)
	if payload == "" || payload == "null" {
		return nil, nil
	}
	var raw []*Condition
	if err := json.Unmarshal([]byte(payload), &raw); err != nil {
		return nil, echo_errors.WrapRuntimeMsg(echo_errors.ErrInvalidQueryCondition,
			"malformed query condition payload: %v", err)
	}
	conds := make([]Condition, 0, len(raw))
	for _, c := range raw {
		if c == nil || c.blank() {
			continue
		}
		conds = append(conds, *c)
	}
	return conds, nil
}

// coerce converts one scalar according to attrType.
func coerce(attrType string, v interface{}) (interface{}, error) {
	switch attrType {
	case "":
		return v, nil
	case AttrString:
		return cast.ToStringE(v)
	case AttrInteger:
		return cast.ToIntE(v)
	case AttrLong:
		return cast.ToInt64E(v)
	case AttrDouble:
		return cast.ToFloat64E(v)
	case AttrBoolean:
		return cast.ToBoolE(v)
	case AttrDate:
		return cast.ToTimeE(v)
	}
	return nil, fmt.Errorf("unknown attribute type %q", attrType)
}

// toList turns a slice or a comma separated string into individual values.
func toList(v interface{}) []interface{} {
	switch x := v.(type) {
	case string:
		parts := strings.Split(x, ",")
		out := make([]interface{}, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				out = append(out, p)
			}
		}
		return out
	case []interface{}:
		return x
	}
	if s, err := cast.ToSliceE(v); err == nil {
		return s
	}
	if s, err := cast.ToStringSliceE(v); err == nil {
		out := make([]interface{}, len(s))
		for i := range s {
			out[i] = s[i]
		}
		return out
	}
	return []interface{}{v}
}

func coerceList(attrType string, v interface{}) ([]interface{}, error) {
	items := toList(v)
	out := make([]interface{}, 0, len(items))
	for _, item := range items {
		c, err := coerce(attrType, item)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}
