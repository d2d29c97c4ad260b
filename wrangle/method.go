package wrangle

import (
	"strings"

	"tlog.app/go/errors"
)

type Argument struct {
	Name string
	Type ArgType
}

// Method describes the builder method generated for one instruction.
type Method struct {
	Name  string
	Class Class
	Args  []Argument

	// ResultTypeIndex is the position of the result type argument in Args,
	// or -1 when the instruction defines no typed value.
	ResultTypeIndex int

	// NeedsID is set when the grammar has an IdResult operand. That operand
	// is not an argument: the method allocates the id itself.
	NeedsID bool

	Diagnostics Diagnostics
}

// BuildMethod derives the Method for inst.
func BuildMethod(inst Instruction) (*Method, error) {
	if !strings.HasPrefix(inst.OpName, "Op") || inst.OpName == "Op" {
		return nil, errors.New("opname %q lacks the Op prefix", inst.OpName)
	}

	m := &Method{
		Name:            inst.MethodName(),
		Class:           inst.Class,
		ResultTypeIndex: -1,
	}

	i := 0
	for _, op := range inst.Operands {
		if op.IsResultID() {
			m.NeedsID = true
			continue
		}

		if op.IsResultType() {
			m.ResultTypeIndex = i
		}

		name, ok := ArgumentName(op, i)
		if !ok {
			m.Diagnostics.add(Diagnostic{
				OpName:   inst.OpName,
				Position: i,
				Operand:  op,
				Fallback: name,
			})
		}

		m.Args = append(m.Args, Argument{
			Name: name,
			Type: ArgumentType(op),
		})
		i++
	}

	ResolveConflicts(m.Args)

	return m, nil
}

// ResultType returns the result type argument, if any.
func (m *Method) ResultType() (Argument, bool) {
	if m.ResultTypeIndex < 0 {
		return Argument{}, false
	}
	return m.Args[m.ResultTypeIndex], true
}
