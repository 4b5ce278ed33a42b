package exchange

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/nojima/rural-go/input"
	"github.com/nojima/rural-go/version"
	"github.com/pkg/errors"
	"github.com/tidwall/gjson"
)

// Methods that go out without a body when no body item was given.
var bodylessMethods = map[string]bool{
	http.MethodGet:     true,
	http.MethodHead:    true,
	http.MethodOptions: true,
	http.MethodDelete:  true,
}

func BuildHTTPRequest(method string, req *input.Request) (*http.Request, error) {
	header := buildHTTPHeader(req)
	bodyTuple := buildHTTPBody(method, req)

	if header.Get("Content-Type") == "" && bodyTuple.contentType != "" {
		header.Set("Content-Type", bodyTuple.contentType)
	}
	if header.Get("User-Agent") == "" {
		header.Set("User-Agent", fmt.Sprintf("rural-go/%s", version.Current()))
	}

	var body io.Reader
	if bodyTuple.body != nil {
		body = bytes.NewReader(bodyTuple.body)
	}
	r, err := http.NewRequest(method, req.URL, body)
	if err != nil {
		return nil, errors.Wrap(err, "building HTTP request")
	}
	r.Header = header
	if host := header.Get("Host"); host != "" {
		r.Host = host
	}
	return r, nil
}

func buildHTTPHeader(req *input.Request) http.Header {
	header := make(http.Header)
	for name, values := range req.Header {
		header[name] = append([]string(nil), values...)
	}
	return header
}

type bodyTuple struct {
	body        []byte
	contentType string
}

func buildHTTPBody(method string, req *input.Request) bodyTuple {
	if req.Body.IsEmpty() && bodylessMethods[method] {
		return bodyTuple{}
	}
	if req.Form {
		return buildFormBody(req.Body)
	}
	return buildJSONBody(req.Body)
}

func buildJSONBody(body input.Body) bodyTuple {
	return bodyTuple{
		body:        body.JSON(),
		contentType: "application/json",
	}
}

// buildFormBody encodes fields in insertion order. Values set with
// key:=value contribute their compact JSON text, except JSON strings, which
// contribute the string itself.
func buildFormBody(body input.Body) bodyTuple {
	var sb strings.Builder
	body.ForEach(func(name string, value gjson.Result) bool {
		if sb.Len() > 0 {
			sb.WriteByte('&')
		}
		sb.WriteString(url.QueryEscape(name))
		sb.WriteByte('=')
		sb.WriteString(url.QueryEscape(formValue(value)))
		return true
	})
	return bodyTuple{
		body:        []byte(sb.String()),
		contentType: "application/x-www-form-urlencoded",
	}
}

func formValue(value gjson.Result) string {
	if value.Type == gjson.String {
		return value.Str
	}
	return value.Raw
}
