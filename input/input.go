package input

type Input struct {
	Method  string
	Request *Request
}

type Options struct {
	Form    bool
	Methods []string
}
