package wrangle

import (
	"sort"
	"strings"
)

type Class string

const (
	ClassMiscellaneous     Class = "Miscellaneous"
	ClassTypeDeclaration   Class = "Type-Declaration"
	ClassConstantCreation  Class = "Constant-Creation"
	ClassMemory            Class = "Memory"
	ClassFunction          Class = "Function"
	ClassImage             Class = "Image"
	ClassConversion        Class = "Conversion"
	ClassComposite         Class = "Composite"
	ClassArithmetic        Class = "Arithmetic"
	ClassBit               Class = "Bit"
	ClassRelationalLogical Class = "Relational_and_Logical"
	ClassDerivative        Class = "Derivative"
	ClassControlFlow       Class = "Control-Flow"
	ClassAtomic            Class = "Atomic"
	ClassPrimitive         Class = "Primitive"
	ClassBarrier           Class = "Barrier"
	ClassGroup             Class = "Group"
	ClassDeviceSideEnqueue Class = "Device-Side_Enqueue"
	ClassPipe              Class = "Pipe"
	ClassNonUniform        Class = "Non-Uniform"
	ClassReserved          Class = "Reserved"
)

// ClassOrder is the order in which classes appear in the generated file.
// Changing it reshuffles every generated method, so keep it stable.
var ClassOrder = []Class{
	ClassMiscellaneous,
	ClassTypeDeclaration,
	ClassConstantCreation,
	ClassMemory,
	ClassFunction,
	ClassImage,
	ClassConversion,
	ClassComposite,
	ClassArithmetic,
	ClassBit,
	ClassRelationalLogical,
	ClassDerivative,
	ClassControlFlow,
	ClassAtomic,
	ClassPrimitive,
	ClassBarrier,
	ClassGroup,
	ClassDeviceSideEnqueue,
	ClassPipe,
	ClassNonUniform,
	ClassReserved,
}

type Classes map[Class]struct{}

func (cs Classes) Has(c Class) bool {
	_, ok := cs[c]
	return ok
}

func (cs Classes) Add(c Class) {
	cs[c] = struct{}{}
}

// Sorted returns the members in lexical order.
func (cs Classes) Sorted() []Class {
	ret := make([]Class, 0, len(cs))
	for c := range cs {
		ret = append(ret, c)
	}
	sort.Slice(ret, func(i, j int) bool {
		return ret[i] < ret[j]
	})
	return ret
}

func (cs Classes) String() string {
	var buf strings.Builder
	for i, c := range cs.Sorted() {
		if i > 0 {
			buf.WriteString(", ")
		}
		buf.WriteString(string(c))
	}
	return buf.String()
}

// unordered returns the classes in cs that ClassOrder does not mention.
func (cs Classes) unordered() Classes {
	ret := make(Classes)
	for c := range cs {
		ret.Add(c)
	}
	for _, c := range ClassOrder {
		delete(ret, c)
	}
	return ret
}
