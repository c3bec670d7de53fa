package cli

import (
	"github.com/morikuni/failure/v2"
	"github.com/spf13/pflag"
)

const (
	formatText     = "text"
	formatMarkdown = "markdown"
)

// formatFlag selects how a single meal is printed
type formatFlag struct {
	Value string
}

// String implements pflag.Value.
func (f *formatFlag) String() string {
	if f.Value == "" {
		return formatText
	}
	return f.Value
}

func (f *formatFlag) Set(value string) error {
	switch value {
	case formatText, formatMarkdown:
		f.Value = value
		return nil
	default:
		return failure.New(InvalidFormat,
			failure.Message("format must be \"text\" or \"markdown\""),
			failure.Context{"format": value},
		)
	}
}

func (f *formatFlag) Type() string {
	return "format"
}

var _ pflag.Value = &formatFlag{}
