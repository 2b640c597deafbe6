package boolexpr

// Node is one parsed fragment of a boolean expression. The set of
// implementations is closed: Ident, Not, And, Or and Call. Nodes are
// immutable after parsing; each child belongs to exactly one parent,
// so a tree is always finite and acyclic.
type Node interface {
	// String re-renders the fragment as expression text, inserting
	// parentheses only where precedence requires them.
	String() string

	node()
}

// Ident is a leaf that tests its name for membership in the collection.
type Ident struct {
	Name string
}

// Not negates its operand.
type Not struct {
	Expr Node
}

// And is true iff both operands are true. The right operand is not
// evaluated when the left one is false.
type And struct {
	Left  Node
	Right Node
}

// Or is true iff either operand is true. The right operand is not
// evaluated when the left one is true.
type Or struct {
	Left  Node
	Right Node
}

// Builtin identifies one of the nullary builtin predicates.
type Builtin string

const (
	// BuiltinEmpty is true iff the collection holds no elements.
	BuiltinEmpty Builtin = "empty"
	// BuiltinAnything is always true.
	BuiltinAnything Builtin = "anything"
)

// Call invokes a builtin predicate. Builtins take no arguments.
type Call struct {
	Func Builtin
}

func (*Ident) node() {}
func (*Not) node()   {}
func (*And) node()   {}
func (*Or) node()    {}
func (*Call) node()  {}

// Operator precedence for rendering, loosest to tightest.
const (
	precOr = iota + 1
	precAnd
	precNot
	precAtom
)

func nodePrec(n Node) int {
	switch n.(type) {
	case *Or:
		return precOr
	case *And:
		return precAnd
	case *Not:
		return precNot
	}
	return precAtom
}

// operand renders a child node, parenthesizing it when its precedence
// is below what the surrounding operator requires.
func operand(n Node, min int) string {
	if nodePrec(n) < min {
		return "(" + n.String() + ")"
	}
	return n.String()
}

func (n *Ident) String() string {
	return n.Name
}

func (n *Not) String() string {
	return "not " + operand(n.Expr, precNot)
}

func (n *And) String() string {
	// Binary chains are left-associative, so a right child at the same
	// tier keeps its parentheses.
	return operand(n.Left, precAnd) + " and " + operand(n.Right, precAnd+1)
}

func (n *Or) String() string {
	return operand(n.Left, precOr) + " or " + operand(n.Right, precOr+1)
}

func (n *Call) String() string {
	return string(n.Func) + "()"
}
