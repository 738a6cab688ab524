package application

import "errors"

const DefaultOutputPath = "har_analysis.xlsx"

var (
	ErrNoInput  = errors.New("no input file specified")
	ErrNoOutput = errors.New("no output file specified")
)

// Config is the whole run configuration; nothing is read from the environment.
type Config struct {
	InputPath  string
	OutputPath string
	Verbose    bool
}

func NewConfig() Config {
	return Config{OutputPath: DefaultOutputPath}
}

func (c Config) Validate() error {
	if c.InputPath == "" {
		return ErrNoInput
	}
	if c.OutputPath == "" {
		return ErrNoOutput
	}
	return nil
}
