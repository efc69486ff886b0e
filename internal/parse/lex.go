package parse

import "strings"

// TokenKind classifies a single command-line argument
type TokenKind int

const (
	Positional   TokenKind = iota // Positional is anything not starting with '-', plus the lone "-"
	Terminator                    // Terminator is the literal "--"
	LongOption                    // LongOption is --name or --name=value
	ShortOptions                  // ShortOptions is -x or a bundle such as -xyz
	Malformed                     // Malformed starts with '-' but fits neither option grammar
)

// String returns the string representation of a TokenKind
func (k TokenKind) String() string {
	switch k {
	case Positional:
		return "positional"
	case Terminator:
		return "terminator"
	case LongOption:
		return "long"
	case ShortOptions:
		return "short"
	case Malformed:
		return "malformed"
	}
	return "unknown"
}

// Token is the result of scanning one argument
type Token struct {
	Kind TokenKind
	// Name is the long option name or, for ShortOptions, the bundled characters
	Name string
	// Value is the text after '=' of a long option; HasValue distinguishes --name= from --name
	Value    string
	HasValue bool
}

// ScanToken classifies arg against the grammars
//
//	long:  --[alnum][-_alnum]+(=.*)?
//	short: -[alnum]+
//
// Long names are at least two characters, so "--x" is Malformed.
func ScanToken(arg string) Token {
	switch {
	case arg == "--":
		return Token{Kind: Terminator}
	case strings.HasPrefix(arg, "--"):
		return scanLong(arg)
	case len(arg) > 1 && arg[0] == '-':
		return scanShort(arg)
	}

	return Token{Kind: Positional}
}

func scanLong(arg string) Token {
	body := arg[2:]
	name, value, hasValue := strings.Cut(body, "=")
	if !IsLongName(name) {
		return Token{Kind: Malformed}
	}

	return Token{Kind: LongOption, Name: name, Value: value, HasValue: hasValue}
}

func scanShort(arg string) Token {
	chars := arg[1:]
	for i := 0; i < len(chars); i++ {
		if !isAlnum(chars[i]) {
			return Token{Kind: Malformed}
		}
	}

	return Token{Kind: ShortOptions, Name: chars}
}

// IsLongName reports whether name can be given as --name: an alphanumeric followed by at least one
// alphanumeric, '-' or '_'
func IsLongName(name string) bool {
	if len(name) < 2 || !isAlnum(name[0]) {
		return false
	}
	return isNameTail(name[1:])
}

// ParseSpecifier splits an option specifier of the form "s,long", "s" or "long" into its short and
// long names. Spaces may follow the comma. A one-character name given alone is the short name.
// ok is false when neither name is present, when the text does not fit
// ([alnum],)?[ ]*([alnum][-_alnum]*)? or when a one-character long name follows a short name.
func ParseSpecifier(spec string) (short, long string, ok bool) {
	rest := spec
	if len(rest) >= 2 && isAlnum(rest[0]) && rest[1] == ',' {
		short = rest[:1]
		rest = rest[2:]
	}

	rest = strings.TrimLeft(rest, " ")
	if rest != "" {
		if !isAlnum(rest[0]) || !isNameTail(rest[1:]) {
			return "", "", false
		}
		long = rest
	}

	switch {
	case short == "" && long == "":
		return "", "", false
	case len(long) == 1 && short != "":
		return "", "", false
	case len(long) == 1:
		return long, "", true
	}

	return short, long, true
}

func isNameTail(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !isAlnum(c) && c != '-' && c != '_' {
			return false
		}
	}
	return true
}

func isAlnum(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}
