package validator

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Parse builds a Registration from a pipe-separated rule string such as
// "required|string|max:255". Patterns containing "|" need ParseTokens.
//
// messages optionally overrides the default message per rule kind.
func Parse(rules string, messages map[string]string) (*Registration, error) {
	return ParseTokens(strings.Split(rules, "|"), messages)
}

// ParseTokens builds a Registration from already split rule tokens. Tokens
// are applied in order, so "numeric" before "min:1" gives min a numeric reading.
// Blank tokens are skipped.
func ParseTokens(tokens []string, messages map[string]string) (*Registration, error) {
	reg := NewRegistration()
	for _, token := range tokens {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		if err := applyToken(reg, token, messages); err != nil {
			return nil, err
		}
	}
	return reg, nil
}

func applyToken(reg *Registration, token string, messages map[string]string) error {
	kind, arg, hasArg := strings.Cut(token, ":")
	kind = strings.ToLower(strings.TrimSpace(kind))

	var msg []string
	if m, ok := messages[kind]; ok {
		msg = []string{m}
	}

	switch kind {
	case RuleRequired:
		reg.Required(msg...)
	case RuleNullable:
		reg.Nullable()
	case RuleString:
		reg.String(msg...)
	case RuleNumeric:
		reg.Numeric(msg...)
	case RuleArray:
		reg.Array(msg...)
	case RuleEmail:
		reg.Email(msg...)
	case RuleMin, RuleMax:
		if !hasArg {
			return fmt.Errorf("%w: %s requires a bound", ErrInvalidRuleArgument, kind)
		}
		bound, err := strconv.ParseFloat(strings.TrimSpace(arg), 64)
		if err != nil {
			return fmt.Errorf("%w: %s bound %q: %v", ErrInvalidRuleArgument, kind, arg, err)
		}
		if kind == RuleMin {
			reg.Min(bound, msg...)
		} else {
			reg.Max(bound, msg...)
		}
	case RuleIn:
		values := parseList(arg)
		if !hasArg || len(values) == 0 {
			return fmt.Errorf("%w: in requires a list of values", ErrInvalidRuleArgument)
		}
		reg.set(RuleIn, inText(values, msg...))
	case RuleRegex:
		if !hasArg || arg == "" {
			return fmt.Errorf("%w: regex requires a pattern", ErrInvalidRuleArgument)
		}
		pattern, err := regexp.Compile(trimDelimiters(arg))
		if err != nil {
			return fmt.Errorf("%w: regex %q: %v", ErrInvalidRuleArgument, arg, err)
		}
		reg.Regex(pattern, msg...)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownRule, kind)
	}
	return nil
}

// parseList splits "a,b,c" into trimmed, non-empty items.
func parseList(arg string) []string {
	items := strings.Split(arg, ",")
	out := make([]string, 0, len(items))
	for _, item := range items {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

// trimDelimiters strips the surrounding slashes of "/pattern/".
func trimDelimiters(pattern string) string {
	if len(pattern) >= 2 && strings.HasPrefix(pattern, "/") && strings.HasSuffix(pattern, "/") {
		return pattern[1 : len(pattern)-1]
	}
	return pattern
}
