package output

import (
	"fmt"
	"io"
	"net/http"
	"sort"

	"github.com/pkg/errors"
)

type PlainPrinter struct {
	writer io.Writer
}

func NewPlainPrinter(writer io.Writer) Printer {
	return &PlainPrinter{
		writer: writer,
	}
}

func (p *PlainPrinter) PrintStatusLine(resp *http.Response) error {
	_, err := fmt.Fprintf(p.writer, "%s %s\n", resp.Proto, resp.Status)
	return err
}

func (p *PlainPrinter) PrintHeader(header http.Header) error {
	for _, name := range sortedNames(header) {
		for _, value := range header[name] {
			if _, err := fmt.Fprintf(p.writer, "%s: %s\n", name, value); err != nil {
				return err
			}
		}
	}
	return nil
}

func (p *PlainPrinter) PrintBody(body []byte) error {
	if _, err := p.writer.Write(body); err != nil {
		return errors.Wrap(err, "printing response body")
	}
	return nil
}

func sortedNames(header http.Header) []string {
	names := make([]string, 0, len(header))
	for name := range header {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
