package optarg

import (
	"github.com/hashicorp/go-hclog"
	"github.com/napalu/optarg/errs"
	"github.com/napalu/optarg/internal/parse"
	"github.com/napalu/optarg/types"
	"github.com/napalu/optarg/types/queue"
)

// parser holds the state of a single Parse call
type parser struct {
	options   *Options
	result    *ParseResult
	state     parse.State
	queue     *queue.Positional
	unmatched []string
	logger    hclog.Logger
}

func newParser(o *Options, args []string) *parser {
	return &parser{
		options: o,
		result:  newParseResult(o),
		state:   parse.NewState(args),
		queue:   queue.NewPositional(o.positional),
		logger:  o.logger,
	}
}

func (p *parser) run() error {
	p.logger.Trace("parse started", "args", p.state.Len(), "positional", p.queue.Remaining())
	p.unmatched = []string{}
	if p.state.Advance() {
		// the program name is never matched
		p.unmatched = append(p.unmatched, p.state.CurrentArg())
	}

	terminated, err := p.scan()
	if err != nil {
		return err
	}

	if err := p.fillDefaults(); err != nil {
		return err
	}

	if terminated {
		if err := p.consumeRemaining(); err != nil {
			return err
		}
	}

	p.result.unmatched = p.unmatched
	// the program name is not counted
	unmatched := len(p.unmatched)
	if unmatched > 0 {
		unmatched--
	}
	p.logger.Trace("parse complete", "unmatched", unmatched, "occurrences", len(p.result.sequential))

	return nil
}

// scan processes arguments up to the end or the first "--" and reports whether "--" was seen
func (p *parser) scan() (bool, error) {
	for p.state.Advance() {
		arg := p.state.CurrentArg()
		tok := parse.ScanToken(arg)
		p.logger.Trace("token", "pos", p.state.Pos(), "arg", arg, "kind", tok.Kind.String())

		var err error
		switch tok.Kind {
		case parse.Terminator:
			return true, nil
		case parse.LongOption:
			err = p.processLong(arg, tok)
		case parse.ShortOptions:
			err = p.processShort(tok)
		case parse.Malformed:
			if !p.options.allowUnrecognised {
				return false, errs.ErrOptionSyntax.WithArgs(arg)
			}
			err = p.processPositional(arg)
		default:
			err = p.processPositional(arg)
		}

		if err != nil {
			return false, err
		}
	}

	return false, nil
}

func (p *parser) processLong(arg string, tok parse.Token) error {
	opt, found := p.options.Lookup(tok.Name)
	if !found {
		if p.options.allowUnrecognised {
			p.logger.Trace("unrecognised option kept", "arg", arg)
			p.unmatched = append(p.unmatched, arg)
			return nil
		}
		return errs.ErrOptionNotExists.WithArgs(tok.Name)
	}

	if tok.HasValue {
		if !opt.value.TakesArgument() {
			return errs.ErrOptionNotHasArgument.WithArgs(tok.Name, tok.Value)
		}
		return p.fill(opt, tok.Value)
	}

	return p.fillFromNext(opt, tok.Name)
}

// processShort handles a bundle such as -abc. Every option but the last must have an implicit value; the last one
// may take the following argument.
func (p *parser) processShort(tok parse.Token) error {
	last := len(tok.Name) - 1
	for i := 0; i <= last; i++ {
		name := tok.Name[i : i+1]
		opt, found := p.options.Lookup(name)
		if !found {
			if p.options.allowUnrecognised {
				p.logger.Trace("unrecognised short option skipped", "name", name)
				continue
			}
			return errs.ErrOptionNotExists.WithArgs(name)
		}

		if i == last {
			return p.fillFromNext(opt, name)
		}
		if !opt.value.HasImplicit() {
			return errs.ErrOptionRequiresArgument.WithArgs(name)
		}
		if err := p.fill(opt, opt.value.ImplicitValue()); err != nil {
			return err
		}
	}

	return nil
}

// fillFromNext uses the implicit value when there is one and otherwise consumes the following argument
func (p *parser) fillFromNext(opt *Option, name string) error {
	if opt.value.HasImplicit() {
		return p.fill(opt, opt.value.ImplicitValue())
	}

	next, ok := p.state.Peek()
	if !ok {
		return errs.ErrMissingArgument.WithArgs(name)
	}
	p.state.Advance()

	return p.fill(opt, next)
}

func (p *parser) processPositional(arg string) error {
	consumed, err := p.consumePositional(arg)
	if err != nil {
		return err
	}
	if !consumed {
		p.unmatched = append(p.unmatched, arg)
	}

	return nil
}

// consumePositional offers arg to the option at the queue cursor. A list option keeps absorbing arguments;
// any other option is skipped once it holds a value.
func (p *parser) consumePositional(arg string) (bool, error) {
	for {
		name, ok := p.queue.Current()
		if !ok {
			return false, nil
		}

		opt, found := p.options.Lookup(name)
		if !found {
			return false, errs.ErrOptionNotExists.WithArgs(name)
		}

		if opt.value.IsContainer() {
			p.logger.Trace("positional", "option", name, "arg", arg)
			return true, p.fill(opt, arg)
		}

		if p.result.values[opt].count > 0 {
			p.queue.Advance()
			continue
		}

		p.logger.Trace("positional", "option", name, "arg", arg)
		if err := p.fill(opt, arg); err != nil {
			return false, err
		}
		p.queue.Advance()

		return true, nil
	}
}

// consumeRemaining feeds the arguments after "--" to the positional options until one is not consumed
func (p *parser) consumeRemaining() error {
	remaining := p.state.Remaining()
	p.logger.Trace("terminator", "remaining", len(remaining), "positional", p.queue.Remaining())

	for i, arg := range remaining {
		if p.queue.Exhausted() {
			p.unmatched = append(p.unmatched, remaining[i:]...)
			break
		}
		consumed, err := p.consumePositional(arg)
		if err != nil {
			return err
		}
		if !consumed {
			p.unmatched = append(p.unmatched, remaining[i:]...)
			break
		}
	}

	return nil
}

// fillDefaults parses the default of every option that was not given
func (p *parser) fillDefaults() error {
	for _, opt := range p.options.declared {
		v := p.result.values[opt]
		if !opt.value.HasDefault() || v.count > 0 || v.defaulted {
			continue
		}
		if err := v.parseDefault(); err != nil {
			return err
		}
		p.logger.Trace("default", "option", opt.Name(), "value", opt.value.DefaultValue())
	}

	return nil
}

func (p *parser) fill(opt *Option, text string) error {
	if err := p.result.values[opt].parse(text); err != nil {
		return err
	}
	p.result.sequential = append(p.result.sequential, types.KeyValue[string, string]{Key: opt.Name(), Value: text})
	p.logger.Trace("value", "option", opt.Name(), "text", text)

	return nil
}
