package wrangle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildFixtureMethod(t *testing.T, g *Grammar, opname string) *Method {
	t.Helper()

	inst, ok := g.InstructionByName(opname)
	require.True(t, ok, opname)

	m, err := BuildMethod(inst)
	require.NoError(t, err, opname)

	return m
}

func TestBuildMethodFixture(t *testing.T) {
	g := loadFixture(t)

	tests := []struct {
		op      string
		args    []Argument
		rt      int
		needsID bool
	}{
		{"OpNop", nil, -1, false},
		{"OpUndef", []Argument{{"resultType", ArgType{Name: "Instruction"}}}, 0, true},
		{"OpTypeVoid", nil, -1, true},
		{"OpTypeInt", []Argument{
			{"width", ArgType{Name: "LiteralInteger"}},
			{"signedness", ArgType{Name: "LiteralInteger"}},
		}, -1, true},
		{"OpTypeStruct", []Argument{
			{"parameters", ArgType{Name: "Instruction", Repeated: true}},
		}, -1, true},
		{"OpTypePointer", []Argument{
			{"storageClass", ArgType{Name: "StorageClass"}},
			{"typeObj", ArgType{Name: "Instruction"}},
		}, -1, true},
		{"OpVariable", []Argument{
			{"resultType", ArgType{Name: "Instruction"}},
			{"storageClass", ArgType{Name: "StorageClass"}},
			{"initializer", ArgType{Name: "Instruction"}},
		}, 0, true},
		{"OpStore", []Argument{
			{"pointer", ArgType{Name: "Instruction"}},
			{"obj", ArgType{Name: "Instruction"}},
			{"memoryAccess", ArgType{Name: "MemoryAccessMask"}},
		}, -1, false},
		{"OpCopyMemory", []Argument{
			{"target", ArgType{Name: "Instruction"}},
			{"source", ArgType{Name: "Instruction"}},
			{"memoryAccess0", ArgType{Name: "MemoryAccessMask"}},
			{"memoryAccess1", ArgType{Name: "MemoryAccessMask"}},
		}, -1, false},
		{"OpImageSampleDrefImplicitLod", []Argument{
			{"resultType", ArgType{Name: "Instruction"}},
			{"sampledImage", ArgType{Name: "Instruction"}},
			{"coordinate", ArgType{Name: "Instruction"}},
			{"dRef", ArgType{Name: "Instruction"}},
			{"imageOperands", ArgType{Name: "ImageOperandsMask"}},
		}, 0, true},
		{"OpPhi", []Argument{
			{"resultType", ArgType{Name: "Instruction"}},
			{"parameters", ArgType{Name: "Instruction", Repeated: true}},
		}, 0, true},
		{"OpSwitch", []Argument{
			{"selector", ArgType{Name: "Instruction"}},
			{"defaultObj", ArgType{Name: "Instruction"}},
			{"target", ArgType{Name: "Operand", Repeated: true}},
		}, -1, false},
		{"OpLabel", nil, -1, true},
	}

	for _, tc := range tests {
		m := buildFixtureMethod(t, g, tc.op)

		assert.Equal(t, tc.op[2:], m.Name, tc.op)
		assert.Equal(t, tc.args, m.Args, tc.op)
		assert.Equal(t, tc.rt, m.ResultTypeIndex, tc.op)
		assert.Equal(t, tc.needsID, m.NeedsID, tc.op)
		assert.Empty(t, m.Diagnostics, tc.op)
	}
}

func TestBuildMethodArgumentNamesAreUnique(t *testing.T) {
	g := loadFixture(t)

	for _, inst := range g.Instructions {
		m, err := BuildMethod(inst)
		require.NoError(t, err, inst.OpName)

		seen := map[string]bool{}
		for _, a := range m.Args {
			assert.False(t, seen[a.Name], "%v: duplicate argument %v", inst.OpName, a.Name)
			seen[a.Name] = true
		}
	}
}

func TestBuildMethodDuplicateMembers(t *testing.T) {
	m, err := BuildMethod(Instruction{
		OpName: "OpTypeStructPair",
		Class:  ClassTypeDeclaration,
		Operands: []Operand{
			{Kind: "IdResult"},
			{Kind: "IdRef", Name: "'Member'"},
			{Kind: "IdRef", Name: "'Member'"},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"member0", "member1"}, names(m.Args))
}

func TestBuildMethodResultTypeKeepsPosition(t *testing.T) {
	m, err := BuildMethod(Instruction{
		OpName: "OpOddOne",
		Class:  ClassMiscellaneous,
		Operands: []Operand{
			{Kind: "IdRef", Name: "'First'"},
			{Kind: "IdResult"},
			{Kind: "IdResultType"},
			{Kind: "IdRef", Name: "'Last'"},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"first", "resultType", "last"}, names(m.Args))
	assert.Equal(t, 1, m.ResultTypeIndex)

	rt, ok := m.ResultType()
	require.True(t, ok)
	assert.Equal(t, ResultTypeArgName, rt.Name)
}

func TestBuildMethodDiagnostics(t *testing.T) {
	m, err := BuildMethod(Instruction{
		OpName: "OpDecorate",
		Class:  "Annotation",
		Operands: []Operand{
			{Kind: "IdRef", Name: "'Target'"},
			{Kind: "Decoration"},
			{Kind: "LiteralInteger", Name: "'A, B'"},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"target", "arg1", "arg2"}, names(m.Args))
	assert.Equal(t, Diagnostics{
		{OpName: "OpDecorate", Position: 1, Operand: Operand{Kind: "Decoration"}, Fallback: "arg1"},
		{OpName: "OpDecorate", Position: 2, Operand: Operand{Kind: "LiteralInteger", Name: "'A, B'"}, Fallback: "arg2"},
	}, m.Diagnostics)
	assert.Contains(t, m.Diagnostics[0].String(), "OpDecorate: unmanaged argument name: kind=Decoration")
}

func TestBuildMethodBadOpName(t *testing.T) {
	for _, name := range []string{"TypeInt", "Op", ""} {
		_, err := BuildMethod(Instruction{OpName: name, Class: ClassMiscellaneous})
		assert.Error(t, err, name)
	}
}
