package pathutil

import (
	"strconv"
	"strings"
)

// FieldPath locates an endpoint, one of its blocks, or a field declaration
// inside that block, as in "endpoints[3].parameter.Parameter[1]".
//
// It is a value type: Block and At return extended copies, so a path can be
// handed down a loop without undoing anything on the way back up.
type FieldPath struct {
	endpoint int
	section  string
	group    string
	field    int
}

// EndpointPath returns the path of the i-th endpoint.
func EndpointPath(i int) FieldPath {
	return FieldPath{endpoint: i, field: -1}
}

// Block narrows p to a group of a section, e.g. ("parameter", "Parameter").
func (p FieldPath) Block(section, group string) FieldPath {
	p.section, p.group, p.field = section, group, -1
	return p
}

// At narrows p to the j-th declaration of its block.
func (p FieldPath) At(j int) FieldPath {
	p.field = j
	return p
}

// String renders the path.
func (p FieldPath) String() string {
	var b strings.Builder
	b.Grow(32)
	b.WriteString("endpoints[")
	b.WriteString(strconv.Itoa(p.endpoint))
	b.WriteByte(']')
	if p.section != "" {
		b.WriteByte('.')
		b.WriteString(p.section)
	}
	if p.group != "" {
		b.WriteByte('.')
		b.WriteString(p.group)
	}
	if p.field >= 0 {
		b.WriteByte('[')
		b.WriteString(strconv.Itoa(p.field))
		b.WriteByte(']')
	}
	return b.String()
}
