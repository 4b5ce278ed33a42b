package exchange

import (
	"net/http"
	"strings"

	"github.com/nojima/rural-go/input"
	"github.com/pkg/errors"
)

// SendRequest performs exactly one exchange. The caller owns the returned
// response body.
func SendRequest(method string, req *input.Request, options *Options) (*http.Response, error) {
	logger := options.logger()

	method = strings.ToUpper(method)
	if !isSupportedMethod(method, options.Methods) {
		logger.Error().Str("method", method).Msg("unsupported method reached the dispatcher")
		return nil, errors.WithStack(&UnsupportedMethodError{Method: method})
	}

	client := BuildHTTPClient(options)
	r, err := BuildHTTPRequest(method, req)
	if err != nil {
		return nil, err
	}

	logger.Debug().
		Str("method", r.Method).
		Str("url", r.URL.String()).
		Bool("form", req.Form).
		Int64("content_length", r.ContentLength).
		Msg("sending request")

	resp, err := client.Do(r)
	if err != nil {
		return nil, errors.WithStack(&TransportError{Err: err})
	}

	logger.Debug().
		Str("proto", resp.Proto).
		Int("status", resp.StatusCode).
		Msg("received response")
	return resp, nil
}

func isSupportedMethod(method string, methods []string) bool {
	if len(methods) == 0 {
		methods = input.DefaultMethods
	}
	for _, m := range methods {
		if strings.ToUpper(m) == method {
			return true
		}
	}
	return false
}
