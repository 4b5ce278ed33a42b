package output

import "github.com/rs/zerolog"

type Options struct {
	// ShowHeaders prints the status line and headers instead of the body.
	ShowHeaders bool
	// ShowBoth prints the status line, headers and body. It must not be
	// combined with ShowHeaders.
	ShowBoth           bool
	SuppressStatusLine bool

	EnableColor bool

	// OutputFile receives the raw body instead of the rendered output.
	OutputFile string

	Logger *zerolog.Logger
}

func (o *Options) logger() *zerolog.Logger {
	if o.Logger == nil {
		nop := zerolog.Nop()
		return &nop
	}
	return o.Logger
}
