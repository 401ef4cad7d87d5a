package ast

// Program is the root of a parsed Triangle source file: a single top-level
// statement (spec end-to-end scenarios are single statements, typically a
// `let ... in ...` or `begin ... end` block).
type Program struct {
	posNode
	Root Statement
}

func NewProgram(root Statement) *Program {
	pos := root.Pos()
	return &Program{posNode: posNode{pos}, Root: root}
}
