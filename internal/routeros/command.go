// Package routeros builds RouterOS CLI commands, runs them over SSH and
// classifies the text that comes back.
//
// A command is a menu path, a verb and a list of space separated tokens:
//
//	/ip dns static add name="host.lan" address=10.0.0.5 disabled=yes
//
// Strings that may carry spaces are double quoted, identifiers and numbers are
// not, booleans are yes/no and absent optional values produce no token at all.
package routeros

import (
	"regexp"
	"strconv"
	"strings"
)

// identPattern matches values that RouterOS accepts unquoted.
var identPattern = regexp.MustCompile(`^[A-Za-z0-9._:/,*@+\-]+$`)

// quoteEscaper escapes everything the CLI interprets inside a quoted
// string: the backslash itself, the closing quote, variable expansion and
// line breaks, which would otherwise end the statement.
var quoteEscaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	`$`, `\$`,
	"\n", `\n`,
	"\r", `\r`,
	"\t", `\t`,
)

// Quote wraps v in double quotes so that it always stays one string token.
func Quote(v string) string {
	return `"` + quoteEscaper.Replace(v) + `"`
}

// ident renders an identifier unquoted when that is safe and quoted otherwise.
func ident(v string) string {
	if identPattern.MatchString(v) {
		return v
	}
	return Quote(v)
}

// YesNo maps a boolean to the RouterOS literals.
func YesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

// Command is one RouterOS CLI statement under construction.
// Tokens are emitted in the order they are added.
type Command struct {
	path   string
	verb   string
	tokens []string
	args   int
}

// NewCommand starts a command for the given menu path and verb.
func NewCommand(path, verb string) *Command {
	return &Command{path: path, verb: verb}
}

// Flag appends a bare word such as "detail" or "count-only".
func (c *Command) Flag(word string) *Command {
	c.tokens = append(c.tokens, word)
	return c
}

// FlagIf appends word only when cond holds.
func (c *Command) FlagIf(cond bool, word string) *Command {
	if cond {
		c.Flag(word)
	}
	return c
}

// Positional appends an unnamed argument, e.g. the host for /resolve.
func (c *Command) Positional(v string) *Command {
	c.tokens = append(c.tokens, ident(v))
	return c
}

// Target appends the row address for set, remove, enable or disable.
func (c *Command) Target(ref Ref) *Command {
	c.tokens = append(c.tokens, ref.target())
	return c
}

// Raw appends key=value with value emitted verbatim.
func (c *Command) Raw(key, value string) *Command {
	return c.add(key + "=" + value)
}

// Ident appends key=value, leaving identifier-safe values unquoted.
func (c *Command) Ident(key, value string) *Command {
	if value == "" {
		return c.add(key + `=""`)
	}
	return c.add(key + "=" + ident(value))
}

// Quoted appends key="value".
func (c *Command) Quoted(key, value string) *Command {
	return c.add(key + "=" + Quote(value))
}

// Int appends key=n.
func (c *Command) Int(key string, n int) *Command {
	return c.add(key + "=" + strconv.Itoa(n))
}

// Bool appends key=yes or key=no.
func (c *Command) Bool(key string, b bool) *Command {
	return c.add(key + "=" + YesNo(b))
}

// OptIdent appends key=value unless value is empty.
func (c *Command) OptIdent(key, value string) *Command {
	if value == "" {
		return c
	}
	return c.Ident(key, value)
}

// OptQuoted appends key="value" unless value is empty.
func (c *Command) OptQuoted(key, value string) *Command {
	if value == "" {
		return c
	}
	return c.Quoted(key, value)
}

// OptInt appends key=n unless n is nil.
func (c *Command) OptInt(key string, n *int) *Command {
	if n == nil {
		return c
	}
	return c.Int(key, *n)
}

// YesIf appends key=yes when b is true and nothing otherwise.
func (c *Command) YesIf(key string, b bool) *Command {
	if !b {
		return c
	}
	return c.add(key + "=yes")
}

// Field appends the token for a three-state update field.
func (c *Command) Field(key string, f Field) *Command {
	if tok, ok := f.token(key); ok {
		c.add(tok)
	}
	return c
}

// Where appends a where clause. An empty clause adds nothing.
func (c *Command) Where(w *Where) *Command {
	if w == nil || w.Empty() {
		return c
	}
	c.tokens = append(c.tokens, "where", w.String())
	return c
}

// Args is the number of key=value (or !key) tokens added so far.
func (c *Command) Args() int {
	return c.args
}

func (c *Command) add(tok string) *Command {
	c.tokens = append(c.tokens, tok)
	c.args++
	return c
}

// String renders the command line.
func (c *Command) String() string {
	var b strings.Builder
	b.WriteString(c.path)
	if c.verb != "" {
		b.WriteByte(' ')
		b.WriteString(c.verb)
	}
	for _, t := range c.tokens {
		b.WriteByte(' ')
		b.WriteString(t)
	}
	return b.String()
}

// Ref addresses one row, either by its .id or by a natural key.
type Ref struct {
	field string
	value string
}

// ByID addresses a row by its RouterOS identifier (e.g. "*5").
func ByID(id string) Ref {
	return Ref{field: ".id", value: id}
}

// ByKey addresses a row by a human field such as name or address.
func ByKey(field, value string) Ref {
	return Ref{field: field, value: value}
}

// IsID reports whether the ref uses the .id form.
func (r Ref) IsID() bool {
	return r.field == ".id"
}

// Value is the id or key value.
func (r Ref) Value() string {
	return r.value
}

func (r Ref) target() string {
	if r.IsID() {
		return r.value
	}
	return "[find " + r.field + "=" + Quote(r.value) + "]"
}

// Predicate returns the where clause selecting this row.
func (r Ref) Predicate() *Where {
	if r.IsID() {
		return NewWhere().EqIdent(".id", r.value)
	}
	return NewWhere().Eq(r.field, r.value)
}
