package utils

import "strings"

// StringEnum флаг, который можно передать несколько раз
type StringEnum []string

func (i *StringEnum) String() string {
	return strings.Join(*i, ",")
}

func (i *StringEnum) Set(value string) error {
	*i = append(*i, value)
	return nil
}

func (i *StringEnum) Type() string {
	return "strings"
}
