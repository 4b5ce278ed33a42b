package input

import (
	"regexp"
	"strings"
)

var reMethod = regexp.MustCompile(`^[a-zA-Z]+$`)

// DefaultMethods is the set of methods accepted on the command line.
var DefaultMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"}

// ParseArgs interprets the positional arguments METHOD URL [ITEM ...].
func ParseArgs(args []string, options *Options) (*Input, error) {
	switch len(args) {
	case 0:
		return nil, NewUsageError("METHOD is required")
	case 1:
		return nil, NewUsageError("URL is required")
	}

	methods := options.Methods
	if len(methods) == 0 {
		methods = DefaultMethods
	}
	method, err := parseMethod(args[0], methods)
	if err != nil {
		return nil, err
	}

	builder, err := NewBuilder(args[1], options.Form)
	if err != nil {
		return nil, err
	}
	if err := builder.AddParams(args[2:]); err != nil {
		return nil, err
	}

	return &Input{
		Method:  method,
		Request: builder.Build(),
	}, nil
}

func parseMethod(s string, methods []string) (string, error) {
	if !reMethod.MatchString(s) {
		return "", NewUsageError("METHOD must consist of alphabets: " + s)
	}
	method := strings.ToUpper(s)
	for _, m := range methods {
		if strings.ToUpper(m) == method {
			return method, nil
		}
	}
	return "", NewUsageError("unsupported METHOD: " + s + " (expected one of " + strings.Join(methods, ", ") + ")")
}
