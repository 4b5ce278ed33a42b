package exchange

import (
	"net/http"
)

func BuildHTTPClient(options *Options) *http.Client {
	transp := options.Transport
	if transp == nil {
		transp = http.DefaultTransport.(*http.Transport).Clone()
	}
	return &http.Client{
		Transport: transp,
		Timeout:   options.Timeout,
	}
}
