package input

import (
	"net/url"
	"reflect"
	"testing"

	"github.com/pkg/errors"
)

func TestParseArgs(t *testing.T) {
	testCases := []struct {
		title         string
		args          []string
		options       Options
		expected      *Input
		shouldBeError bool
	}{
		{
			title: "Happy case",
			args:  []string{"get", "http://example.com/hello"},
			expected: &Input{
				Method: "GET",
				Request: &Request{
					URL:    "http://example.com/hello",
					Header: make(map[string][]string),
				},
			},
		},
		{
			title:   "Form mode with items",
			args:    []string{"POST", "example.com", "a==1", "X-Foo:bar"},
			options: Options{Form: true},
			expected: &Input{
				Method: "POST",
				Request: &Request{
					URL:    "http://example.com/?a=1",
					Header: map[string][]string{"X-Foo": {"bar"}},
					Form:   true,
				},
			},
		},
		{
			title:         "Invalid method",
			args:          []string{"GET/POST", "http://example.com/hello"},
			shouldBeError: true,
		},
		{
			title:         "Unsupported method",
			args:          []string{"TRACE", "http://example.com/hello"},
			shouldBeError: true,
		},
		{
			title:    "Method set is configurable",
			args:     []string{"trace", "http://example.com/hello"},
			options:  Options{Methods: []string{"TRACE"}},
			expected: &Input{Method: "TRACE", Request: &Request{URL: "http://example.com/hello", Header: make(map[string][]string)}},
		},
		{
			title:         "Method missing",
			args:          []string{},
			shouldBeError: true,
		},
		{
			title:         "URL missing",
			args:          []string{"POST"},
			shouldBeError: true,
		},
		{
			title:         "Malformed item",
			args:          []string{"POST", "http://example.com/hello", "oops"},
			shouldBeError: true,
		},
	}
	for _, tt := range testCases {
		t.Run(tt.title, func(t *testing.T) {
			in, err := ParseArgs(tt.args, &tt.options)
			if (err != nil) != tt.shouldBeError {
				t.Fatalf("unexpected error: shouldBeError=%v, err=%v", tt.shouldBeError, err)
			}
			if err != nil {
				return
			}
			if !reflect.DeepEqual(in, tt.expected) {
				t.Errorf("unexpected input: expected=%+v, actual=%+v", tt.expected, in)
			}
		})
	}
}

func TestParseArgs_UsageErrors(t *testing.T) {
	_, err := ParseArgs([]string{"POST"}, &Options{})
	if _, ok := errors.Cause(err).(*UsageError); !ok {
		t.Errorf("expected UsageError, got %T", errors.Cause(err))
	}
}

func TestParseURL(t *testing.T) {
	testCases := []struct {
		title    string
		input    string
		expected url.URL
	}{
		{
			title: "Typical case",
			input: "http://example.com/hello/world",
			expected: url.URL{
				Scheme: "http",
				Host:   "example.com",
				Path:   "/hello/world",
			},
		},
		{
			title: "No scheme",
			input: "example.com/hello/world",
			expected: url.URL{
				Scheme: "http",
				Host:   "example.com",
				Path:   "/hello/world",
			},
		},
		{
			title: "No host and port",
			input: "/hello/world",
			expected: url.URL{
				Scheme: "http",
				Host:   "localhost",
				Path:   "/hello/world",
			},
		},
		{
			title: "Only colon",
			input: ":",
			expected: url.URL{
				Scheme: "http",
				Host:   "localhost",
				Path:   "/",
			},
		},
		{
			title: "No host but has port",
			input: ":8080/hello/world",
			expected: url.URL{
				Scheme: "http",
				Host:   "localhost:8080",
				Path:   "/hello/world",
			},
		},
		{
			title: "Has query parameters",
			input: "http://example.com/?q=hello&lang=ja",
			expected: url.URL{
				Scheme:   "http",
				Host:     "example.com",
				Path:     "/",
				RawQuery: "q=hello&lang=ja",
			},
		},
		{
			title: "No path",
			input: "https://example.com",
			expected: url.URL{
				Scheme: "https",
				Host:   "example.com",
				Path:   "/",
			},
		},
	}
	for _, tt := range testCases {
		t.Run(tt.title, func(t *testing.T) {
			u, err := parseURL(tt.input)
			if err != nil {
				t.Fatalf("unexpected error: err=%v", err)
			}
			if !reflect.DeepEqual(*u, tt.expected) {
				t.Errorf("unexpected result: expected=%+v, actual=%+v", tt.expected, *u)
			}
		})
	}
}
