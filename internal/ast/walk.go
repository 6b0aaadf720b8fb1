package ast

// Handler is called once per node in pre-order. Returning false prunes
// that node's children (mirrors the teacher's TraversalAction, reduced to
// the two cases this package's consumers need).
type Handler func(node, parent Node) (descend bool)

// Walk performs a pre-order depth-first traversal of node, calling handle
// for node and every descendant. Unlike the teacher's ast.Walk this is a
// plain type switch rather than reflection, since the node set here is
// closed and small.
func Walk(node Node, handle Handler) {
	walk(node, nil, handle)
}

func walk(node, parent Node, handle Handler) {
	if node == nil {
		return
	}
	if !handle(node, parent) {
		return
	}

	switch n := node.(type) {
	case *Invalid, *Literal, *Variable, *Super, *Import:
		// leaves

	case *UnaryOperator:
		walk(n.Operand, n, handle)
	case *BinaryOperator:
		for _, o := range n.Operands {
			walk(o, n, handle)
		}
	case *Assignment:
		walk(n.Left, n, handle)
		walk(n.Right, n, handle)
	case *UpdatingAssignment:
		walk(n.Left, n, handle)
		walk(n.Right, n, handle)
	case *RWUnaryPrefix:
		walk(n.Operand, n, handle)
	case *RWUnarySuffix:
		walk(n.Operand, n, handle)
	case *Conditional:
		walk(n.Test, n, handle)
		walk(n.Consequent, n, handle)
		walk(n.Alternate, n, handle)
	case *Dot:
		walk(n.Object, n, handle)
	case *Index:
		walk(n.Object, n, handle)
		walk(n.Subscript, n, handle)
	case *Call:
		walk(n.Callee, n, handle)
		for _, a := range n.Args {
			walk(a, n, handle)
		}
	case *New:
		walk(n.Callee, n, handle)
		for _, a := range n.Args {
			walk(a, n, handle)
		}
	case *Template:
		if n.Tag != nil {
			walk(n.Tag, n, handle)
		}
		for _, s := range n.Substitutions {
			walk(s, n, handle)
		}
	case *Array:
		for _, e := range n.Elements {
			walk(e, n, handle)
		}
	case *Object:
		for _, e := range n.Entries {
			if e.Property != nil {
				walk(e.Property, n, handle)
			}
			walk(e.Value, n, handle)
		}
	case *Spread:
		walk(n.Operand, n, handle)
	case *Await:
		walk(n.Operand, n, handle)
	case *Function:
		for _, p := range n.Params {
			walk(p, n, handle)
		}
		if n.Body != nil {
			walk(n.Body, n, handle)
		}
	case *NamedFunction:
		for _, p := range n.Params {
			walk(p, n, handle)
		}
		if n.Body != nil {
			walk(n.Body, n, handle)
		}
	case *ArrowFunctionWithExpression:
		for _, p := range n.Parameters {
			walk(p, n, handle)
		}
		walk(n.Body, n, handle)
	case *ArrowFunctionWithStatements:
		for _, p := range n.Parameters {
			walk(p, n, handle)
		}
		if n.Body != nil {
			walk(n.Body, n, handle)
		}
	case *Class:
		if n.SuperClass != nil {
			walk(n.SuperClass, n, handle)
		}
		walkClassMembers(n.Members, n, handle)

	case *PatternIdentifierNode:
		// leaf
	case *PatternObjectNode:
		for _, p := range n.Properties {
			if p.Key != nil {
				walk(p.Key, n, handle)
			}
			walk(p.Value, n, handle)
		}
		if n.Rest != nil {
			walk(n.Rest, n, handle)
		}
	case *PatternArrayNode:
		for _, e := range n.Elements {
			if e != nil {
				walk(e, n, handle)
			}
		}
		if n.Rest != nil {
			walk(n.Rest, n, handle)
		}
	case *PatternAssignmentNode:
		walk(n.Target, n, handle)
		walk(n.Default, n, handle)
	case *PatternRestNode:
		walk(n.Target, n, handle)
	case *InvalidPatternNode:
		// leaf

	case *ExpressionStatement:
		walk(n.Expression, n, handle)
	case *VariableDeclaration:
		for _, d := range n.Declarators {
			walk(d.Target, n, handle)
			if d.Init != nil {
				walk(d.Init, n, handle)
			}
		}
	case *FunctionDeclaration:
		for _, p := range n.Params {
			walk(p, n, handle)
		}
		if n.Body != nil {
			walk(n.Body, n, handle)
		}
	case *ClassDeclaration:
		if n.SuperClass != nil {
			walk(n.SuperClass, n, handle)
		}
		walkClassMembers(n.Members, n, handle)
	case *Block:
		for _, s := range n.Statements {
			walk(s, n, handle)
		}
	case *If:
		walk(n.Test, n, handle)
		walk(n.Consequent, n, handle)
		if n.Alternate != nil {
			walk(n.Alternate, n, handle)
		}
	case *For:
		if n.Init != nil {
			walk(n.Init, n, handle)
		}
		if n.Test != nil {
			walk(n.Test, n, handle)
		}
		if n.Update != nil {
			walk(n.Update, n, handle)
		}
		walk(n.Body, n, handle)
	case *ForIn:
		walk(n.Left, n, handle)
		walk(n.Right, n, handle)
		walk(n.Body, n, handle)
	case *ForOf:
		walk(n.Left, n, handle)
		walk(n.Right, n, handle)
		walk(n.Body, n, handle)
	case *While:
		walk(n.Test, n, handle)
		walk(n.Body, n, handle)
	case *DoWhile:
		walk(n.Body, n, handle)
		walk(n.Test, n, handle)
	case *Switch:
		walk(n.Discriminant, n, handle)
		for _, c := range n.Cases {
			if c.Test != nil {
				walk(c.Test, n, handle)
			}
			for _, s := range c.Consequent {
				walk(s, n, handle)
			}
		}
	case *Try:
		walk(n.Body, n, handle)
		if n.Catch != nil {
			if n.Catch.Param != nil {
				walk(n.Catch.Param, n, handle)
			}
			walk(n.Catch.Body, n, handle)
		}
		if n.Finally != nil {
			walk(n.Finally, n, handle)
		}
	case *Throw:
		walk(n.Value, n, handle)
	case *Return:
		if n.Value != nil {
			walk(n.Value, n, handle)
		}
	case *Break, *Continue, *Empty, *Debugger:
		// leaves
	case *With:
		walk(n.Object, n, handle)
		walk(n.Body, n, handle)
	case *Labeled:
		walk(n.Body, n, handle)
	case *ImportDeclaration:
		// leaf (specifiers carry no sub-nodes)
	case *ExportDeclaration:
		if n.Default != nil {
			walk(n.Default, n, handle)
		}
		if n.Declaration != nil {
			walk(n.Declaration, n, handle)
		}
	case *InvalidStatement:
		// leaf
	}
}

func walkClassMembers(members []ClassMember, parent Node, handle Handler) {
	for _, m := range members {
		if m.Computed && m.Key != nil {
			walk(m.Key, parent, handle)
		}
		if m.Value != nil {
			walk(m.Value, parent, handle)
		}
	}
}
