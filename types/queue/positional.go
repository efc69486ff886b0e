package queue

// Positional is the ordered list of option names receiving positional arguments.
// The head of the queue is the cursor: Advance moves past an option once it is satisfied.
// A Positional is built fresh for every parse and is not safe for concurrent use.
type Positional struct {
	names *Q[string]
}

// NewPositional returns a queue whose cursor points at the first of names
func NewPositional(names []string) *Positional {
	return &Positional{names: New(names...)}
}

// Current returns the option name at the cursor; ok is false once the queue is exhausted
func (p *Positional) Current() (name string, ok bool) {
	return p.names.Peek()
}

// Advance moves the cursor past the current option
func (p *Positional) Advance() {
	p.names.Dequeue()
}

// Exhausted reports whether no option remains to receive positional arguments
func (p *Positional) Exhausted() bool {
	return p.names.Len() == 0
}

// Remaining returns the number of options at or after the cursor
func (p *Positional) Remaining() int {
	return p.names.Len()
}
