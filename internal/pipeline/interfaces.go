package pipeline

// Processor is any component that can process a Context and return a
// (possibly the same) modified Context.
type Processor interface {
	Process(ctx *Context) *Context
}

// Pipeline is an ordered sequence of processing stages.
type Pipeline struct {
	processors []Processor
}

// New builds a Pipeline running processors in order.
func New(processors ...Processor) *Pipeline {
	return &Pipeline{processors: processors}
}

// Run executes every stage in order, feeding each one the previous stage's
// context. Stages continue to run after an error is recorded so later
// stages that can still produce useful diagnostics (or, for stages that
// genuinely cannot proceed, a no-op Process) get the chance to.
func (p *Pipeline) Run(initial *Context) *Context {
	ctx := initial
	for _, proc := range p.processors {
		ctx = proc.Process(ctx)
	}
	return ctx
}
