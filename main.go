package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/endrebjorgo/json-parser/internal/config"
	"github.com/endrebjorgo/json-parser/internal/errors"
	"github.com/endrebjorgo/json-parser/internal/parser"
	"github.com/endrebjorgo/json-parser/internal/serializer"
	"github.com/endrebjorgo/json-parser/internal/tokenizer"
)

// CLI defines the command-line interface
var CLI struct {
	Path    string `arg:"" optional:"" help:"Path to the .json file to parse." type:"path"`
	Output  string `help:"Path to output file. If not specified, writes to stdout." short:"o" type:"path"`
	Indent  int    `help:"Indent width for serialized output (overrides config)." default:"0"`
	Tokens  bool   `help:"Print the token sequence instead of the serialized document." short:"t"`
	Config  string `help:"Path to a config file." short:"c" type:"path"`
	Debug   bool   `help:"Enable debug logging." short:"d"`
	Version bool   `help:"Show version information." short:"v"`
}

// Context holds the runtime context
type Context struct {
	Debug  bool
	Config *config.Config
}

// Version information
const (
	Version = "0.1.0"
)

func main() {
	kparser := kong.Must(&CLI,
		kong.Name("jsonparser"),
		kong.Description("Parse a JSON document into a value tree and print it back out"),
		kong.UsageOnError(),
	)

	_, err := kparser.Parse(os.Args[1:])
	if err != nil {
		// Usage is already shown by kong.UsageOnError()
		os.Exit(1)
	}

	if CLI.Version {
		fmt.Printf("jsonparser version %s\n", Version)
		return
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", errors.UserFriendlyError(err))
		os.Exit(1)
	}

	err = run(&Context{Debug: CLI.Debug || cfg.Dev.Debug, Config: cfg})
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", errors.UserFriendlyError(err))
		fmt.Fprintf(os.Stderr, "\nFor help, run: jsonparser --help\n")
		os.Exit(1)
	}
}

// loadConfig resolves configuration: an explicit --config path wins, then a
// config file discovered from the working directory, then defaults. CLI flags
// override whatever was loaded.
func loadConfig() (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	switch {
	case CLI.Config != "":
		cfg, err = config.LoadConfig(CLI.Config)
	default:
		if path := config.FindConfigFile(); path != "" {
			cfg, err = config.LoadConfig(path)
		} else {
			cfg = config.NewConfig()
		}
	}
	if err != nil {
		return nil, errors.NewInputError("failed to load configuration", err)
	}

	if CLI.Indent > 0 {
		cfg.Output.Indent = CLI.Indent
	}
	if CLI.Tokens {
		cfg.Output.Tokens = true
	}
	return cfg, cfg.Validate()
}

// run executes the main program logic
func run(ctx *Context) error {
	if CLI.Path == "" {
		return errors.NewInputError("expected exactly one JSON file path", errors.ErrNoInput)
	}
	if !strings.EqualFold(filepath.Ext(CLI.Path), ".json") {
		return errors.NewInputError(
			fmt.Sprintf("input file '%s' must have a .json extension", CLI.Path),
			errors.ErrNotJSONFile,
		)
	}

	if ctx.Config.Output.Tokens {
		return dumpTokens(CLI.Path)
	}

	tree, err := parser.ParseFile(CLI.Path)
	if err != nil {
		// Tokenize/parse/input errors carry their own context
		return err
	}

	ser := serializer.NewSerializerWithIndent(ctx.Config.Output.Indent)
	text := ser.Serialize(tree)
	if ctx.Config.Output.Trailing {
		text += "\n"
	}
	return writeOutput(text)
}

// dumpTokens prints the token listing for a file, one token per line.
func dumpTokens(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return errors.NewInputError(
				fmt.Sprintf("file '%s' not found", path),
				errors.ErrFileNotFound,
			)
		}
		return errors.NewInputError(fmt.Sprintf("failed to read file '%s'", path), err)
	}

	tokens, err := tokenizer.Tokenize(data)
	if err != nil {
		return err
	}

	var b strings.Builder
	for i, tok := range tokens {
		fmt.Fprintf(&b, "Token %03d: %s\n", i, tok)
	}
	return writeOutput(b.String())
}

// writeOutput writes text to the output file or stdout
func writeOutput(text string) error {
	if CLI.Output != "" {
		err := os.WriteFile(CLI.Output, []byte(text), 0644)
		if err != nil {
			return errors.NewOutputError(fmt.Sprintf("failed to write to file '%s'", CLI.Output), err)
		}
		return nil
	}

	_, err := fmt.Print(text)
	if err != nil {
		return errors.NewOutputError("failed to write to stdout", err)
	}
	return nil
}
