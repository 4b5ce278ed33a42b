package output

import (
	"io"
	"net/http"
	"strings"

	"github.com/pkg/errors"
)

type Renderer struct {
	options *Options
}

func NewRenderer(options *Options) *Renderer {
	return &Renderer{options: options}
}

// Render reads the whole response and returns what should be shown to the
// user. When OutputFile is set the body is written there instead.
//
// A HEAD response always shows its status line and headers. The body is
// shown unless ShowHeaders is set.
func (r *Renderer) Render(resp *http.Response) (string, error) {
	options := r.options
	isHead := resp.Request != nil && resp.Request.Method == http.MethodHead
	showHead := isHead || options.ShowHeaders || options.ShowBoth
	showBody := !options.ShowHeaders

	var buffer strings.Builder
	printer := NewPrinter(&buffer, options.EnableColor)

	if showHead {
		if !options.SuppressStatusLine {
			if err := printer.PrintStatusLine(resp); err != nil {
				return "", err
			}
		}
		if err := printer.PrintHeader(resp.Header); err != nil {
			return "", err
		}
	}
	if !showBody {
		return buffer.String(), nil
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errors.Wrap(err, "reading response body")
	}

	if options.OutputFile != "" {
		if err := NewFileWriter(options.OutputFile, options.logger()).Write(body); err != nil {
			return "", err
		}
		return buffer.String(), nil
	}

	if buffer.Len() > 0 {
		buffer.WriteString("\n")
	}
	if err := printer.PrintBody(body); err != nil {
		return "", err
	}
	return buffer.String(), nil
}
