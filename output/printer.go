package output

import (
	"io"
	"net/http"
)

type Printer interface {
	PrintStatusLine(resp *http.Response) error
	PrintHeader(header http.Header) error
	PrintBody(body []byte) error
}

func NewPrinter(writer io.Writer, enableColor bool) Printer {
	if enableColor {
		return NewPrettyPrinter(writer)
	}
	return NewPlainPrinter(writer)
}
