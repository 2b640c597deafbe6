package boolexpr

import "fmt"

// eval walks the tree against the collection's membership predicate.
//
// Short-circuiting is part of the contract, not an optimization: once
// the left operand of "and"/"or" decides the result, the right operand
// is never visited, so its membership tests never run. Errors from the
// collection abort the walk and propagate unchanged.
func eval(n Node, c Collection) (bool, error) {
	switch n := n.(type) {
	case *Ident:
		return c.Contains(n.Name)

	case *Not:
		result, err := eval(n.Expr, c)
		if err != nil {
			return false, err
		}
		return !result, nil

	case *And:
		left, err := eval(n.Left, c)
		if err != nil || !left {
			return false, err
		}
		return eval(n.Right, c)

	case *Or:
		left, err := eval(n.Left, c)
		if err != nil || left {
			return left, err
		}
		return eval(n.Right, c)

	case *Call:
		return evalCall(n, c)
	}

	return false, fmt.Errorf("cannot evaluate node type %T", n)
}

func evalCall(n *Call, c Collection) (bool, error) {
	switch n.Func {
	case BuiltinAnything:
		return true, nil

	case BuiltinEmpty:
		emptier, ok := c.(Emptier)
		if !ok {
			return false, &CollectionError{
				Op:      "empty",
				Message: fmt.Sprintf("collection %T does not support emptiness checks", c),
			}
		}
		return emptier.Empty()
	}

	// Unreachable: the parser rejects unknown callees.
	return false, fmt.Errorf("unknown builtin %q", n.Func)
}
