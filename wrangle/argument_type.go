package wrangle

// Builder library types an argument can map to besides the kind names.
const (
	TypeString         = "string"
	TypeInstruction    = "Instruction"
	TypeLiteralInteger = "LiteralInteger"
	TypeOperand        = "Operand"
)

// TypeSubstitutions maps operand kinds to the builder type used for them.
var TypeSubstitutions = map[string]string{
	"LiteralString":                 TypeString,
	"IdRef":                         TypeInstruction,
	"IdResultType":                  TypeInstruction,
	"IdScope":                       TypeInstruction,
	"IdMemorySemantics":             TypeInstruction,
	"PairIdRefIdRef":                TypeInstruction,
	"LiteralContextDependentNumber": TypeLiteralInteger,
	"LiteralSpecConstantOpInteger":  TypeLiteralInteger,
	"PairLiteralIntegerIdRef":       TypeOperand,
}

// EnumMaskKinds are the bit-enum kinds whose builder type is the kind name
// suffixed with "Mask".
var EnumMaskKinds = []string{
	"MemoryAccess",
	"ImageOperands",
	"LoopControl",
	"SelectionControl",
	"FunctionControl",
}

// ArgType is the type of one generated method argument.
type ArgType struct {
	Name     string
	Repeated bool
}

func (t ArgType) String() string {
	if t.Repeated {
		return "[]" + t.Name
	}
	return t.Name
}

// ArgumentType maps op's kind to the type of its generated argument.
func ArgumentType(op Operand) ArgType {
	name := op.Kind

	switch {
	case TypeSubstitutions[op.Kind] != "":
		name = TypeSubstitutions[op.Kind]
	case isEnumMaskKind(op.Kind):
		name = op.Kind + "Mask"
	}

	return ArgType{
		Name:     name,
		Repeated: op.Repeated(),
	}
}

func isEnumMaskKind(kind string) bool {
	for _, k := range EnumMaskKinds {
		if k == kind {
			return true
		}
	}
	return false
}
