package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hesusruiz/infographic/fenced"
	"github.com/hesusruiz/infographic/infographic"
	"github.com/hesusruiz/infographic/sliceedit"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

// stdinName is the input file name meaning "read standard input"
const stdinName = "-"

// env holds what every command needs, built from the global flags
type env struct {
	log    *zap.SugaredLogger
	config *Config
	parser *infographic.Parser
}

// setup creates the logger, reads the configuration and builds the parser
func setup(c *cli.Context) (*env, error) {
	var z *zap.Logger
	var err error

	// Setup the logging system
	if c.Bool("debug") {
		z, err = zap.NewDevelopment()
	} else {
		z, err = zap.NewProduction()
	}
	if err != nil {
		return nil, err
	}
	sugar := z.Sugar()

	config, err := LoadConfig(c.String("config"))
	if err != nil {
		return nil, err
	}

	return &env{
		log:    sugar,
		config: config,
		parser: infographic.NewParser(infographic.WithLogger(sugar)),
	}, nil
}

// inputName returns the file given in the command line, or the configured default
func (e *env) inputName(c *cli.Context) string {
	if c.Args().Present() {
		return c.Args().First()
	}
	e.log.Infow("no input file provided", "using", e.config.Input)
	return e.config.Input
}

// readInput reads a file, or standard input for "-", and removes carriage returns
func readInput(c *cli.Context, name string) ([]byte, error) {
	var src []byte
	var err error

	if name == stdinName {
		src, err = io.ReadAll(c.App.Reader)
	} else {
		src, err = os.ReadFile(name)
	}
	if err != nil {
		return nil, err
	}

	buf := sliceedit.NewBuffer(src)
	buf.DeleteAllString("\r")
	return buf.Bytes(), nil
}

// writeOutput writes out to the file in the "output" flag, or to the terminal,
// highlighted with lexerName when color is enabled
func (e *env) writeOutput(c *cli.Context, out []byte, lexerName string) error {
	if outputFileName := c.String("output"); len(outputFileName) > 0 {
		return os.WriteFile(outputFileName, out, 0664)
	}

	if c.Bool("color") || e.config.Color {
		return highlight(c.App.Writer, string(out), lexerName, e.config.CodeStyle)
	}

	_, err := c.App.Writer.Write(out)
	return err
}

// parseAction prints the structured form of a DSL file as JSON, or as canonical DSL
// when the configured output is outputDSL
func parseAction(c *cli.Context) error {
	e, err := setup(c)
	if err != nil {
		return err
	}
	defer e.log.Sync()

	inputFileName := e.inputName(c)

	src, err := readInput(c, inputFileName)
	if err != nil {
		return err
	}

	doc, err := e.parser.Parse(string(src))
	if err != nil {
		return fmt.Errorf("%s:%w", inputFileName, err)
	}

	if e.config.Output == outputDSL {
		return e.writeOutput(c, []byte(infographic.Serialize(doc)+"\n"), dslLexer)
	}

	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	out = append(out, '\n')

	return e.writeOutput(c, out, jsonLexer)
}

// isMarkdown reports whether the file holds Markdown with fenced DSL blocks
func isMarkdown(fileName string) bool {
	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".md", ".markdown":
		return true
	}
	return false
}

// formatSource returns the canonical form of src. Markdown files get their
// fenced blocks rewritten, anything else is a DSL text on its own.
func (e *env) formatSource(fileName string, src []byte) ([]byte, error) {
	if isMarkdown(fileName) {
		out, res := fenced.Format(src, e.parser)
		e.log.Infow("formatted fenced blocks", "file", fileName, "blocks", res.Blocks, "changed", res.Changed, "skipped", res.Skipped)
		return out, nil
	}

	doc, err := e.parser.Parse(string(src))
	if err != nil {
		return nil, fmt.Errorf("%s:%w", fileName, err)
	}
	return []byte(infographic.Serialize(doc) + "\n"), nil
}

// formatFile formats a file once, according to the flags
func (e *env) formatFile(c *cli.Context, inputFileName string) error {
	src, err := readInput(c, inputFileName)
	if err != nil {
		return err
	}

	out, err := e.formatSource(inputFileName, src)
	if err != nil {
		return err
	}

	// Do nothing if flag dryrun was specified
	if c.Bool("dryrun") {
		fmt.Fprintf(c.App.Writer, "dry run: %v is canonical: %v\n", inputFileName, bytes.Equal(src, out))
		return nil
	}

	if c.Bool("write") {
		if inputFileName == stdinName {
			return errors.New("can not write back to standard input")
		}
		if bytes.Equal(src, out) {
			return nil
		}
		e.log.Infow("rewriting", "file", inputFileName)
		return os.WriteFile(inputFileName, out, 0664)
	}

	lexer := dslLexer
	if isMarkdown(inputFileName) {
		lexer = markdownLexer
	}
	return e.writeOutput(c, out, lexer)
}

// formatWatch checks periodically if an input file (inputFileName) has been modified, and if so
// it formats the file again. It returns when the context is cancelled.
func (e *env) formatWatch(c *cli.Context, inputFileName string) error {
	var oldTimestamp time.Time

	ctx := c.Context
	if ctx == nil {
		ctx = context.Background()
	}

	ticker := time.NewTicker(1 * time.Second)
	defer ticker.Stop()

	for {

		// Get the modified timestamp of the input file
		info, err := os.Stat(inputFileName)
		if err != nil {
			return err
		}

		// If current modified timestamp is newer than the previous timestamp, process the file
		if oldTimestamp.Before(info.ModTime()) {
			oldTimestamp = info.ModTime()
			if err := e.formatFile(c, inputFileName); err != nil {
				e.log.Errorw("formatting failed", "file", inputFileName, "error", err)
			}
		}

		// Check again in one second
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

// formatAction writes the canonical form of a DSL or Markdown file
func formatAction(c *cli.Context) error {
	e, err := setup(c)
	if err != nil {
		return err
	}
	defer e.log.Sync()

	inputFileName := e.inputName(c)

	// This is useful while editing: loop forever formatting the input file when modified
	if c.Bool("watch") {
		if inputFileName == stdinName {
			return errors.New("can not watch standard input")
		}
		return e.formatWatch(c, inputFileName)
	}

	return e.formatFile(c, inputFileName)
}

// templateAction prints the data field expected by a template
func templateAction(c *cli.Context) error {
	if !c.Args().Present() {
		return errors.New("missing template name")
	}
	_, err := fmt.Fprintln(c.App.Writer, infographic.DataFieldForTemplate(c.Args().First()))
	return err
}

// templatesAction prints the catalog of templates
func templatesAction(c *cli.Context) error {
	for _, g := range infographic.TemplateGroups {
		fmt.Fprintf(c.App.Writer, "%s:\n", g.Label)
		for _, name := range g.Templates {
			fmt.Fprintf(c.App.Writer, "  %s (%s)\n", name, infographic.DataFieldForTemplate(name))
		}
	}
	return nil
}

func outputFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "write the result to `FILE` instead of the terminal",
	}
}

func colorFlag() cli.Flag {
	return &cli.BoolFlag{
		Name:  "color",
		Usage: "highlight the result written to the terminal",
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:     "infographic",
		Version:  "v0.1.0",
		Compiled: time.Now(),
		Authors: []*cli.Author{
			{
				Name:  "Jesus Ruiz",
				Email: "hesus.ruiz@gmail.com",
			},
		},
		Usage: "parse and format infographic DSL documents",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "read configuration from `FILE` (default is " + defaultConfigFile + " if present)",
			},
			&cli.BoolFlag{
				Name:    "debug",
				Aliases: []string{"d"},
				Usage:   "run in debug mode, reporting the input the parser skips",
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "parse",
				Usage:     "print the structured form of a document as JSON (or DSL, per the config file)",
				ArgsUsage: "[INPUT_FILE] (default is index.txt, - for standard input)",
				Flags:     []cli.Flag{outputFlag(), colorFlag()},
				Action:    parseAction,
			},
			{
				Name:      "fmt",
				Usage:     "write a document, or the infographic blocks of a Markdown file, in canonical form",
				ArgsUsage: "[INPUT_FILE] (default is index.txt, - for standard input)",
				Flags: []cli.Flag{
					outputFlag(),
					colorFlag(),
					&cli.BoolFlag{
						Name:  "write",
						Usage: "write the result to the input file",
					},
					&cli.BoolFlag{
						Name:    "dryrun",
						Aliases: []string{"n"},
						Usage:   "do not generate output, just report if the input is canonical",
					},
					&cli.BoolFlag{
						Name:    "watch",
						Aliases: []string{"w"},
						Usage:   "watch the file for changes",
					},
				},
				Action: formatAction,
			},
			{
				Name:      "template",
				Usage:     "print the data field keyword expected by a template",
				ArgsUsage: "TEMPLATE",
				Action:    templateAction,
			},
			{
				Name:   "templates",
				Usage:  "list the known templates",
				Action: templatesAction,
			},
		},
	}
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
