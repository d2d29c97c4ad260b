package wrangle

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArgumentType(t *testing.T) {
	tests := []struct {
		op   Operand
		want ArgType
		str  string
	}{
		{Operand{Kind: "LiteralString"}, ArgType{Name: "string"}, "string"},
		{Operand{Kind: "LiteralString", Quantifier: "*"}, ArgType{Name: "string", Repeated: true}, "[]string"},
		{Operand{Kind: "IdRef"}, ArgType{Name: "Instruction"}, "Instruction"},
		{Operand{Kind: "IdResultType"}, ArgType{Name: "Instruction"}, "Instruction"},
		{Operand{Kind: "IdScope"}, ArgType{Name: "Instruction"}, "Instruction"},
		{Operand{Kind: "IdMemorySemantics"}, ArgType{Name: "Instruction"}, "Instruction"},
		{Operand{Kind: "PairIdRefIdRef", Quantifier: "*"}, ArgType{Name: "Instruction", Repeated: true}, "[]Instruction"},
		{Operand{Kind: "LiteralContextDependentNumber"}, ArgType{Name: "LiteralInteger"}, "LiteralInteger"},
		{Operand{Kind: "LiteralSpecConstantOpInteger"}, ArgType{Name: "LiteralInteger"}, "LiteralInteger"},
		{Operand{Kind: "PairLiteralIntegerIdRef", Quantifier: "*"}, ArgType{Name: "Operand", Repeated: true}, "[]Operand"},
		{Operand{Kind: "MemoryAccess", Quantifier: "?"}, ArgType{Name: "MemoryAccessMask"}, "MemoryAccessMask"},
		{Operand{Kind: "ImageOperands"}, ArgType{Name: "ImageOperandsMask"}, "ImageOperandsMask"},
		{Operand{Kind: "LoopControl"}, ArgType{Name: "LoopControlMask"}, "LoopControlMask"},
		{Operand{Kind: "SelectionControl"}, ArgType{Name: "SelectionControlMask"}, "SelectionControlMask"},
		{Operand{Kind: "FunctionControl"}, ArgType{Name: "FunctionControlMask"}, "FunctionControlMask"},
		{Operand{Kind: "StorageClass"}, ArgType{Name: "StorageClass"}, "StorageClass"},
		{Operand{Kind: "LiteralInteger", Quantifier: "*"}, ArgType{Name: "LiteralInteger", Repeated: true}, "[]LiteralInteger"},
		{Operand{Kind: "Decoration"}, ArgType{Name: "Decoration"}, "Decoration"},
	}

	for _, tc := range tests {
		got := ArgumentType(tc.op)
		assert.Equal(t, tc.want, got, "%+v", tc.op)
		assert.Equal(t, tc.str, got.String(), "%+v", tc.op)
	}
}

func TestEnumMaskKindsAreNotSubstituted(t *testing.T) {
	for _, kind := range EnumMaskKinds {
		_, ok := TypeSubstitutions[kind]
		assert.False(t, ok, kind)
	}
}
