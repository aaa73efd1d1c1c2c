// Command qparse parses question text from files or stdin and prints the
// parse result, or the question converted to another syntax.
//
//	qparse [-to pipe|json|markdown|natural] [-vocab file.yaml] [-batch] [file ...]
//
// The exit status is 1 when any question is invalid.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/nafes-platform/question-service/internal/question"
	"github.com/nafes-platform/question-service/internal/question/parser"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("qparse", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		to    = fs.String("to", "", "Render valid questions as pipe, json, markdown or natural instead of printing the parse result")
		vocab = fs.String("vocab", "", "YAML file extending the keyword vocabulary")
		batch = fs.Bool("batch", false, "Treat each input as several questions separated by --- or blank lines")
	)
	if err := fs.Parse(args); err != nil {
		return 2
	}

	logger := zerolog.New(zerolog.ConsoleWriter{Out: stderr, NoColor: true}).With().Timestamp().Logger()

	p := parser.Default()
	if *vocab != "" {
		v, err := parser.LoadVocabulary(*vocab)
		if err != nil {
			logger.Error().Err(err).Str("path", *vocab).Msg("failed to load vocabulary")
			return 2
		}
		p = parser.New(v)
	}

	inputs, err := readInputs(fs.Args(), stdin)
	if err != nil {
		logger.Error().Err(err).Msg("failed to read input")
		return 2
	}

	var questions []string
	for _, in := range inputs {
		if *batch {
			questions = append(questions, question.SplitBatch(in)...)
		} else {
			questions = append(questions, in)
		}
	}
	if len(questions) == 0 {
		logger.Error().Msg("no input")
		return 2
	}

	status := 0
	for i, in := range questions {
		res := p.Parse(in)
		if !res.IsValid {
			status = 1
		}

		if *to == "" {
			enc := json.NewEncoder(stdout)
			enc.SetEscapeHTML(false)
			enc.SetIndent("", "  ")
			if err := enc.Encode(res); err != nil {
				logger.Error().Err(err).Msg("failed to encode result")
				return 2
			}
			continue
		}

		if !res.IsValid {
			for _, issue := range res.Errors {
				logger.Warn().Int("question", i+1).Str("field", issue.Field).Msg(issue.Message)
			}
			continue
		}
		out, err := parser.Render(res.Data, parser.Format(*to))
		if err != nil {
			logger.Error().Err(err).Msg("cannot render")
			return 2
		}
		if i > 0 {
			fmt.Fprintln(stdout, "---")
		}
		fmt.Fprintln(stdout, strings.TrimRight(out, "\n"))
	}
	return status
}

func readInputs(paths []string, stdin io.Reader) ([]string, error) {
	if len(paths) == 0 {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, err
		}
		return []string{string(data)}, nil
	}
	inputs := make([]string, 0, len(paths))
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		inputs = append(inputs, string(data))
	}
	return inputs, nil
}
