package exchange

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

type Options struct {
	// Timeout bounds the whole exchange. Zero means no deadline.
	Timeout time.Duration
	// Methods is the set of methods SendRequest accepts. Empty means
	// input.DefaultMethods.
	Methods   []string
	Transport http.RoundTripper
	Logger    *zerolog.Logger
}

func (o *Options) logger() *zerolog.Logger {
	if o.Logger == nil {
		nop := zerolog.Nop()
		return &nop
	}
	return o.Logger
}
