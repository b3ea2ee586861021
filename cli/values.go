package cli

import (
	"strconv"
	"strings"

	"github.com/spf13/pflag"
)

// pflag.Value adapters over the validators, so commands can bind
// validated flags directly with pflag.Var.

type PositiveIntValue int

func (v *PositiveIntValue) Set(s string) error {
	n, err := PositiveInteger(s)
	if err != nil {
		return err
	}
	*v = PositiveIntValue(n)
	return nil
}

func (v *PositiveIntValue) String() string {
	return strconv.Itoa(int(*v))
}

func (v *PositiveIntValue) Type() string {
	return "int"
}

type NonNegativeIntValue int

func (v *NonNegativeIntValue) Set(s string) error {
	n, err := NonNegativeInteger(s)
	if err != nil {
		return err
	}
	*v = NonNegativeIntValue(n)
	return nil
}

func (v *NonNegativeIntValue) String() string {
	return strconv.Itoa(int(*v))
}

func (v *NonNegativeIntValue) Type() string {
	return "int"
}

type IntListValue []int

func (v *IntListValue) Set(s string) error {
	values, err := IntegersList(s)
	if err != nil {
		return err
	}
	*v = values
	return nil
}

func (v *IntListValue) String() string {
	if len(*v) == 0 {
		return "[]"
	}
	parts := make([]string, len(*v))
	for i, n := range *v {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ",")
}

func (v *IntListValue) Type() string {
	return "ints"
}

// IntRangeValue accepts integers in [Min, Max).
type IntRangeValue struct {
	Min   int
	Max   int
	Value int
}

func NewIntRangeValue(min, max, def int) *IntRangeValue {
	return &IntRangeValue{Min: min, Max: max, Value: def}
}

func (v *IntRangeValue) Set(s string) error {
	n, err := IntegerRange(v.Min, v.Max)(s)
	if err != nil {
		return err
	}
	v.Value = n
	return nil
}

func (v *IntRangeValue) String() string {
	return strconv.Itoa(v.Value)
}

func (v *IntRangeValue) Type() string {
	return "int"
}

// EnumListValue accepts a comma separated list of allowed tokens.
type EnumListValue struct {
	Allowed []string
	Values  []string
}

func NewEnumListValue(allowed []string, def ...string) *EnumListValue {
	return &EnumListValue{Allowed: allowed, Values: def}
}

func (v *EnumListValue) Set(s string) error {
	values, err := CommaSeparatedEnumList(v.Allowed, s)
	if err != nil {
		return err
	}
	v.Values = values
	return nil
}

func (v *EnumListValue) String() string {
	return strings.Join(v.Values, ",")
}

func (v *EnumListValue) Type() string {
	return "strings"
}

var (
	_ pflag.Value = (*PositiveIntValue)(nil)
	_ pflag.Value = (*NonNegativeIntValue)(nil)
	_ pflag.Value = (*IntListValue)(nil)
	_ pflag.Value = (*IntRangeValue)(nil)
	_ pflag.Value = (*EnumListValue)(nil)
)
