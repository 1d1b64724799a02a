package llm

// Option sets provider-independent defaults applied when a Request leaves them unset.
type Option func(*defaults)

type defaults struct {
	temperature *float64
	maxTokens   int
}

func WithTemperature(t float64) Option {
	return func(d *defaults) {
		d.temperature = &t
	}
}

func WithMaxTokens(n int) Option {
	return func(d *defaults) {
		d.maxTokens = n
	}
}

func newDefaults(opts []Option) defaults {
	var d defaults
	for _, opt := range opts {
		opt(&d)
	}
	return d
}

func (d defaults) temperatureFor(req *Request) *float64 {
	if req.Temperature != nil {
		return req.Temperature
	}
	return d.temperature
}

func (d defaults) maxTokensFor(req *Request) int {
	if req.MaxTokens > 0 {
		return req.MaxTokens
	}
	return d.maxTokens
}
