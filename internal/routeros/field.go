package routeros

import "strconv"

type fieldState uint8

const (
	fieldUnset fieldState = iota
	fieldClear
	fieldSet
)

// Field is an update parameter: Unset leaves the device value alone, Clear
// emits the "!name" unset token and Set emits name=value. A Set field may
// carry an empty value, which is distinct from Clear.
type Field struct {
	state fieldState
	value string
	quote bool
}

// Unset returns a field that produces no token.
func Unset() Field { return Field{} }

// Clear returns a field that produces "!name".
func Clear() Field { return Field{state: fieldClear} }

// SetQuoted returns a field rendered as name="v".
func SetQuoted(v string) Field { return Field{state: fieldSet, value: v, quote: true} }

// SetIdent returns a field rendered as name=v.
func SetIdent(v string) Field { return Field{state: fieldSet, value: v} }

// SetInt returns a numeric field.
func SetInt(n int) Field { return Field{state: fieldSet, value: strconv.Itoa(n)} }

// SetBool returns a yes/no field.
func SetBool(b bool) Field { return Field{state: fieldSet, value: YesNo(b)} }

// IsUnset reports whether the field produces no token.
func (f Field) IsUnset() bool { return f.state == fieldUnset }

// IsClear reports whether the field unsets the device value.
func (f Field) IsClear() bool { return f.state == fieldClear }

func (f Field) token(key string) (string, bool) {
	switch f.state {
	case fieldClear:
		return "!" + key, true
	case fieldSet:
		switch {
		case f.quote:
			return key + "=" + Quote(f.value), true
		case f.value == "":
			return key + `=""`, true
		default:
			return key + "=" + ident(f.value), true
		}
	default:
		return "", false
	}
}

// QuotedOrClear converts an optional string argument: nil is Unset, "" is
// Clear and anything else is a quoted Set.
func QuotedOrClear(p *string) Field {
	switch {
	case p == nil:
		return Unset()
	case *p == "":
		return Clear()
	default:
		return SetQuoted(*p)
	}
}

// IdentOrClear is QuotedOrClear for unquoted values.
func IdentOrClear(p *string) Field {
	switch {
	case p == nil:
		return Unset()
	case *p == "":
		return Clear()
	default:
		return SetIdent(*p)
	}
}

// QuotedText converts an optional free-text argument where "" is a legitimate
// value (comments): nil is Unset, anything else is a quoted Set.
func QuotedText(p *string) Field {
	if p == nil {
		return Unset()
	}
	return SetQuoted(*p)
}

// NonEmptyQuoted treats both nil and "" as Unset.
func NonEmptyQuoted(p *string) Field {
	if p == nil || *p == "" {
		return Unset()
	}
	return SetQuoted(*p)
}

// NonEmptyIdent treats both nil and "" as Unset.
func NonEmptyIdent(p *string) Field {
	if p == nil || *p == "" {
		return Unset()
	}
	return SetIdent(*p)
}

// IntValue converts an optional integer argument.
func IntValue(p *int) Field {
	if p == nil {
		return Unset()
	}
	return SetInt(*p)
}

// BoolValue converts an optional boolean argument.
func BoolValue(p *bool) Field {
	if p == nil {
		return Unset()
	}
	return SetBool(*p)
}
