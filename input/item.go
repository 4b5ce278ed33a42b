package input

import (
	"regexp"

	"github.com/pkg/errors"
)

type ItemType int

const (
	UnknownItem ItemType = iota
	JSONFieldItem
	URLParameterItem
	HTTPHeaderItem
	DataFieldItem
)

func (t ItemType) String() string {
	switch t {
	case JSONFieldItem:
		return "json field"
	case URLParameterItem:
		return "url parameter"
	case HTTPHeaderItem:
		return "http header"
	case DataFieldItem:
		return "data field"
	default:
		return "unknown"
	}
}

// Item is one classified request item. For JSONFieldItem, Value holds the
// raw JSON text as typed by the user.
type Item struct {
	Type  ItemType
	Key   string
	Value string
}

type grammar struct {
	itemType ItemType
	re       *regexp.Regexp
}

// Ordered by precedence: each separator must be tried before any separator
// it contains, so ":=" precedes ":" and "==" precedes "=".
var grammars = []grammar{
	{JSONFieldItem, regexp.MustCompile(`(?s)^(.+?):=(.+)$`)},
	{URLParameterItem, regexp.MustCompile(`(?s)^(.*?)==(.+)$`)},
	{HTTPHeaderItem, regexp.MustCompile(`(?s)^(.*?):(.+)$`)},
	{DataFieldItem, regexp.MustCompile(`(?s)^(.+?)=(.+)$`)},
}

// Classify splits a request item into its destination, key and value.
// The first grammar that matches wins.
func Classify(s string) (Item, error) {
	for _, g := range grammars {
		m := g.re.FindStringSubmatch(s)
		if m == nil {
			continue
		}
		return Item{Type: g.itemType, Key: m[1], Value: m[2]}, nil
	}
	return Item{}, errors.WithStack(&ArgumentError{Arg: s})
}
