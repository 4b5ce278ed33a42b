package input

import (
	"net/http"
	"net/url"
	"regexp"
	"strings"

	"github.com/pkg/errors"
	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"golang.org/x/net/http/httpguts"
)

var reScheme = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9+-.]*://`)

// Builder accumulates request items on top of a base URL.
type Builder struct {
	url    *url.URL
	header http.Header
	body   Body
	form   bool
}

func NewBuilder(rawurl string, form bool) (*Builder, error) {
	u, err := parseURL(rawurl)
	if err != nil {
		return nil, err
	}
	return &Builder{
		url:    u,
		header: make(http.Header),
		form:   form,
	}, nil
}

// AddParams adds the items in order and stops at the first failure. Items
// added before the failure stay in the builder.
func (b *Builder) AddParams(items []string) error {
	for _, item := range items {
		if err := b.AddParam(item); err != nil {
			return err
		}
	}
	return nil
}

func (b *Builder) AddParam(s string) error {
	item, err := Classify(s)
	if err != nil {
		return err
	}

	switch item.Type {
	case JSONFieldItem:
		if !gjson.Valid(item.Value) {
			return errors.WithStack(&BodyEncodingError{Key: item.Key, Value: item.Value})
		}
		return b.body.setRaw(item.Key, pretty.Ugly([]byte(item.Value)))
	case URLParameterItem:
		b.appendQuery(item.Key, item.Value)
		return nil
	case HTTPHeaderItem:
		if !httpguts.ValidHeaderFieldName(item.Key) || !httpguts.ValidHeaderFieldValue(item.Value) {
			return errors.WithStack(&ArgumentError{Arg: s})
		}
		b.header.Set(item.Key, item.Value)
		return nil
	case DataFieldItem:
		return b.body.setString(item.Key, item.Value)
	default:
		return errors.WithStack(&ArgumentError{Arg: s})
	}
}

// appendQuery keeps whatever the URL already carried and appends the pair
// after it, so parameters come out in the order they were given.
func (b *Builder) appendQuery(name, value string) {
	pair := url.QueryEscape(name) + "=" + url.QueryEscape(value)
	if b.url.RawQuery == "" {
		b.url.RawQuery = pair
	} else {
		b.url.RawQuery += "&" + pair
	}
}

func (b *Builder) Build() *Request {
	return &Request{
		URL:    b.url.String(),
		Header: b.header.Clone(),
		Body:   b.body.clone(),
		Form:   b.form,
	}
}

func parseURL(s string) (*url.URL, error) {
	defaultScheme := "http"
	defaultHost := "localhost"
	original := s

	// ex) :8080/hello or /hello
	if strings.HasPrefix(s, ":") || strings.HasPrefix(s, "/") {
		s = defaultHost + s
	}

	// ex) example.com/hello
	if !reScheme.MatchString(s) {
		s = defaultScheme + "://" + s
	}

	u, err := url.Parse(s)
	if err != nil {
		return nil, errors.WithStack(&URLError{URL: original, Err: err})
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, errors.WithStack(&URLError{URL: original, Err: errors.Errorf("unsupported scheme %q", u.Scheme)})
	}
	u.Host = strings.TrimSuffix(u.Host, ":")
	if u.Host == "" {
		return nil, errors.WithStack(&URLError{URL: original, Err: errors.New("missing host")})
	}
	if u.Path == "" {
		u.Path = "/"
	}
	return u, nil
}
