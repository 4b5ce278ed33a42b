package output

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/logrusorgru/aurora"
	"github.com/pkg/errors"
	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
)

type PrettyPrinter struct {
	writer        io.Writer
	plain         Printer
	aurora        aurora.Aurora
	headerPalette *HeaderPalette
	jsonStyle     *pretty.Style
}

type HeaderPalette struct {
	Proto          aurora.Color
	Status         aurora.Color
	FieldName      aurora.Color
	FieldValue     aurora.Color
	FieldSeparator aurora.Color
}

var defaultHeaderPalette = HeaderPalette{
	Proto:          aurora.BlueFg,
	Status:         aurora.BrownFg | aurora.BoldFm,
	FieldName:      aurora.BlackFg | aurora.BrightFg,
	FieldValue:     aurora.CyanFg,
	FieldSeparator: aurora.BlackFg | aurora.BrightFg,
}

// JSONPalette colours JSON tokens. Braces, brackets and separators are left
// uncoloured.
type JSONPalette struct {
	Name    aurora.Color
	String  aurora.Color
	Number  aurora.Color
	Boolean aurora.Color
	Null    aurora.Color
}

var defaultJSONPalette = JSONPalette{
	Name:    aurora.BlueFg,
	String:  aurora.BrownFg,
	Number:  aurora.CyanFg,
	Boolean: aurora.MagentaFg,
	Null:    aurora.RedFg,
}

var jsonLayout = &pretty.Options{Indent: "    "}

func NewPrettyPrinter(writer io.Writer) Printer {
	au := aurora.NewAurora(true)
	return &PrettyPrinter{
		writer:        writer,
		plain:         NewPlainPrinter(writer),
		aurora:        au,
		headerPalette: &defaultHeaderPalette,
		jsonStyle:     newJSONStyle(au, &defaultJSONPalette),
	}
}

func newJSONStyle(au aurora.Aurora, palette *JSONPalette) *pretty.Style {
	return &pretty.Style{
		Key:    escapeCodes(au, palette.Name),
		String: escapeCodes(au, palette.String),
		Number: escapeCodes(au, palette.Number),
		True:   escapeCodes(au, palette.Boolean),
		False:  escapeCodes(au, palette.Boolean),
		Null:   escapeCodes(au, palette.Null),
	}
}

// escapeCodes returns the sequences aurora puts before and after a value
// coloured with c.
func escapeCodes(au aurora.Aurora, c aurora.Color) [2]string {
	s := au.Colorize("\x00", c).String()
	i := strings.IndexByte(s, 0)
	return [2]string{s[:i], s[i+1:]}
}

func (p *PrettyPrinter) PrintStatusLine(resp *http.Response) error {
	_, err := fmt.Fprintf(p.writer, "%s %s\n",
		p.aurora.Colorize(resp.Proto, p.headerPalette.Proto),
		p.aurora.Colorize(resp.Status, p.headerPalette.Status))
	return err
}

func (p *PrettyPrinter) PrintHeader(header http.Header) error {
	for _, name := range sortedNames(header) {
		for _, value := range header[name] {
			_, err := fmt.Fprintf(p.writer, "%s%s %s\n",
				p.aurora.Colorize(name, p.headerPalette.FieldName),
				p.aurora.Colorize(":", p.headerPalette.FieldSeparator),
				p.aurora.Colorize(value, p.headerPalette.FieldValue))
			if err != nil {
				return err
			}
		}
	}
	return nil
}

// PrintBody re-indents and colours a JSON body. Anything that is not valid
// JSON is printed unchanged.
func (p *PrettyPrinter) PrintBody(body []byte) error {
	if !gjson.ValidBytes(body) {
		return p.plain.PrintBody(body)
	}

	out := pretty.Color(pretty.PrettyOptions(body, jsonLayout), p.jsonStyle)
	if _, err := p.writer.Write(out); err != nil {
		return errors.Wrap(err, "printing response body")
	}
	return nil
}
