package polarity

import (
	"strings"
)

// Attribute is a single INFO entry. Flags have an empty Value.
type Attribute struct {
	Key   string
	Value string
}

// Attributes keeps INFO entries in file order so records are written back
// the way they were read.
type Attributes []Attribute

// ParseInfo splits a raw INFO column. A missing column ('.') gives no attributes.
func ParseInfo(info string) Attributes {
	if info == "" || info == "." {
		return nil
	}
	fields := strings.Split(info, ";")
	ans := make(Attributes, 0, len(fields))
	var key, value string
	for i := range fields {
		if fields[i] == "" {
			continue
		}
		key, value, _ = strings.Cut(fields[i], "=")
		ans = append(ans, Attribute{Key: key, Value: value})
	}
	return ans
}

func (a Attributes) Get(key string) (string, bool) {
	for i := range a {
		if a[i].Key == key {
			return a[i].Value, true
		}
	}
	return "", false
}

func (a Attributes) Has(key string) bool {
	_, found := a.Get(key)
	return found
}

// With returns a copy of a with key set to value. An existing key keeps its
// position, a new key is appended.
func (a Attributes) With(key, value string) Attributes {
	ans := make(Attributes, len(a), len(a)+1)
	copy(ans, a)
	for i := range ans {
		if ans[i].Key == key {
			ans[i].Value = value
			return ans
		}
	}
	return append(ans, Attribute{Key: key, Value: value})
}

func (a Attributes) String() string {
	if len(a) == 0 {
		return "."
	}
	s := new(strings.Builder)
	for i := range a {
		if i > 0 {
			s.WriteByte(';')
		}
		s.WriteString(a[i].Key)
		if a[i].Value != "" {
			s.WriteByte('=')
			s.WriteString(a[i].Value)
		}
	}
	return s.String()
}
