package models

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
	"unicode"
)

// EstateState is the IsAccepted workflow sentinel stored on estates.
type EstateState string

const (
	EstatePending  EstateState = "1"
	EstateAccepted EstateState = "2"
	EstateRejected EstateState = "3"
)

var estateTransitions = map[EstateState]map[EstateState]struct{}{
	EstatePending: {EstateAccepted: {}, EstateRejected: {}},
}

// CanTransition reports whether an estate in state from may move to to.
// Accepted and rejected are terminal.
func (from EstateState) CanTransition(to EstateState) bool {
	allowed, ok := estateTransitions[from]
	if !ok {
		return false
	}
	_, ok = allowed[to]
	return ok
}

// PostStatus is the Status sentinel stored on posts.
type PostStatus string

const (
	PostAccepted PostStatus = "1"
	PostRejected PostStatus = "2"
)

// Valid reports whether s is one of the two accepted wire values.
func (s PostStatus) Valid() bool {
	return s == PostAccepted || s == PostRejected
}

// UserType is the TypeUser sentinel stored on users.
type UserType string

const (
	UserCustomer UserType = "1"
	UserProvider UserType = "2"
)

// YesNo is how "1"/other flags are rendered in responses.
type YesNo string

const (
	Yes YesNo = "Yes"
	No  YesNo = "No"
)

// LooseString renders a raw JSON value the way the admin panel sends
// workflow values: strings as-is, numbers in their shortest decimal form
// (2.0 is "2"), anything else as its JSON literal. A missing value renders
// as "undefined" so it can never match a sentinel.
func LooseString(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return "undefined"
	}
	if string(raw) == "null" {
		return "null"
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	return string(raw)
}

// ParseAccountType reads the leading base-10 integer of a TypeAccount value.
// nil means no number could be read.
func ParseAccountType(v interface{}) *int {
	var s string
	switch t := v.(type) {
	case string:
		s = t
	case float64:
		s = strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return nil
	}
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return nil
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return nil
	}
	return &n
}
