package wrangle

import "strings"

// Operand kinds with special meaning to the generator.
const (
	KindIdResult     = "IdResult"
	KindIdResultType = "IdResultType"
	KindIdRef        = "IdRef"
	KindPairIdRefRef = "PairIdRefIdRef"
)

// QuantifierRepeated marks an operand that may appear zero or more times.
const QuantifierRepeated = "*"

type Operand struct {
	Kind       string `json:"kind"`
	Name       string `json:"name,omitempty"`
	Quantifier string `json:"quantifier,omitempty"`
}

// IsResultID reports whether the operand is the instruction's own result id.
// That slot is never exposed as an argument; the generated method allocates it.
func (op Operand) IsResultID() bool {
	return op.Kind == KindIdResult
}

// IsResultType reports whether the operand references the type of the
// value the instruction defines.
func (op Operand) IsResultType() bool {
	return op.Kind == KindIdResultType
}

func (op Operand) Repeated() bool {
	return op.Quantifier == QuantifierRepeated
}

type Instruction struct {
	OpName   string    `json:"opname"`
	Class    Class     `json:"class"`
	OpCode   uint32    `json:"opcode"`
	Operands []Operand `json:"operands,omitempty"`
}

// MethodName is the opname with the "Op" prefix stripped.
func (inst Instruction) MethodName() string {
	return strings.TrimPrefix(inst.OpName, "Op")
}

type Grammar struct {
	Copyright    []string
	MagicNumber  Word
	MajorVersion int
	MinorVersion int
	Revision     int
	Instructions []Instruction
}

// InstructionsOfClass returns the instructions belonging to cl, in the order
// they appear in the grammar document.
func (g *Grammar) InstructionsOfClass(cl Class) []Instruction {
	var ret []Instruction
	for _, inst := range g.Instructions {
		if inst.Class == cl {
			ret = append(ret, inst)
		}
	}
	return ret
}

func (g *Grammar) InstructionByName(opname string) (Instruction, bool) {
	for _, inst := range g.Instructions {
		if inst.OpName == opname {
			return inst, true
		}
	}
	return Instruction{}, false
}

// Classes returns the set of every class used by at least one instruction.
func (g *Grammar) Classes() Classes {
	ret := make(Classes)
	for _, inst := range g.Instructions {
		ret.Add(inst.Class)
	}
	return ret
}
