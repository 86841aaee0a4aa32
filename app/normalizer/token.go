package normalizer

import "strings"

// Token is a classified input. Each grammar the service understands is one
// variant.
type Token interface {
	Raw() string
	isToken()
}

type CalendarToken struct {
	Value string
}

func (t CalendarToken) Raw() string { return t.Value }
func (CalendarToken) isToken()      {}

type EpochToken struct {
	Value string
}

func (t EpochToken) Raw() string { return t.Value }
func (EpochToken) isToken()      {}

// Rule claims a raw token for a grammar. ok is false when the rule does not
// apply and the next rule should be tried.
type Rule func(raw string) (token Token, ok bool)

// Classifier tries its rules in order and falls back to an EpochToken.
type Classifier struct {
	rules []Rule
}

func NewClassifier(rules ...Rule) *Classifier {
	return &Classifier{rules: rules}
}

// DefaultRules treats any token containing a hyphen as a calendar date.
func DefaultRules() []Rule {
	return []Rule{calendarRule}
}

func calendarRule(raw string) (Token, bool) {
	if strings.Contains(raw, "-") {
		return CalendarToken{Value: raw}, true
	}
	return nil, false
}

func (c *Classifier) Classify(raw string) Token {
	for _, rule := range c.rules {
		if token, ok := rule(raw); ok {
			return token
		}
	}
	return EpochToken{Value: raw}
}
