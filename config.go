package main

import (
	"fmt"
	"os"

	"github.com/hesusruiz/vcutils/yaml"
)

// Formats of the parse command output
const (
	outputJSON = "json"
	outputDSL  = "dsl"
)

// defaultConfigFile is read when present in the working directory and no other file is given
const defaultConfigFile = "infographic.yaml"

// Config holds the settings of the command line tool.
type Config struct {
	// CodeStyle is the chroma style used with --color
	CodeStyle string

	// Color enables syntax highlighting of output written to the terminal
	Color bool

	// Input is the file processed when none is given in the command line
	Input string

	// Output is the format written by the parse command, outputJSON or outputDSL
	Output string
}

// LoadConfig reads the configuration from fileName, or from the default file if it exists.
// A missing default file is not an error, the built-in defaults are used.
func LoadConfig(fileName string) (*Config, error) {
	var data *yaml.YAML
	var err error

	if len(fileName) == 0 {
		if _, statErr := os.Stat(defaultConfigFile); statErr == nil {
			fileName = defaultConfigFile
		}
	}

	if len(fileName) > 0 {
		data, err = yaml.ParseYamlFile(fileName)
		if err != nil {
			return nil, fmt.Errorf("reading config %s: %w", fileName, err)
		}
	} else {
		// Initialise the config just in case we do not find a suitable one
		data, err = yaml.ParseYaml("")
		if err != nil {
			return nil, err
		}
	}

	return &Config{
		CodeStyle: data.String("infographic.codeStyle", "github"),
		Color:     data.Bool("infographic.color"),
		Input:     data.String("infographic.input", "index.txt"),
		Output:    data.String("infographic.output", outputJSON),
	}, nil
}
