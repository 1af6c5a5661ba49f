package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/coregx/whynot"
)

// dfaFile is the on-disk description format:
//
//	{
//	  "initial": 0,
//	  "final": [2],
//	  "states": [
//	    [{"symbol": "a", "target": 1}, {"symbol": "b", "target": 1}],
//	    [{"symbol": "c", "target": 2}],
//	    []
//	  ]
//	}
//
// states[i] lists state i's transitions; their order fixes the order of the
// printed completions.
type dfaFile struct {
	Initial int      `json:"initial"`
	Final   []int    `json:"final"`
	States  [][]edge `json:"states"`
}

type edge struct {
	Symbol string `json:"symbol"`
	Target int    `json:"target"`
}

// jsonStep mirrors whynot.Step for --json output.
type jsonStep struct {
	Symbols  []string `json:"symbols"`
	Target   int      `json:"target"`
	Accepted bool     `json:"accepted"`
}

type jsonCompletion struct {
	Steps         []jsonStep `json:"steps"`
	AcceptedCount int        `json:"accepted_count"`
	MissingCount  int        `json:"missing_count"`
}

func newRunCmd() *cobra.Command {
	var (
		dfaPath   string
		input     string
		fromStdin bool
		asJSON    bool
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the traverser over an input and print each completion",
		RunE: func(cmd *cobra.Command, args []string) error {
			desc, err := loadDescription(dfaPath)
			if err != nil {
				return err
			}

			var symbols []string
			switch {
			case fromStdin:
				symbols, err = readSymbols(cmd.InOrStdin())
				if err != nil {
					return err
				}
			default:
				symbols = splitInput(input)
			}

			return runTraversal(cmd.OutOrStdout(), desc, symbols, asJSON)
		},
	}
	cmd.Flags().StringVar(&dfaPath, "dfa", "", "path to the JSON DFA description (required)")
	cmd.Flags().StringVar(&input, "input", "", "input sequence, one symbol per rune")
	cmd.Flags().BoolVar(&fromStdin, "stdin", false, "read whitespace-separated symbols from stdin instead of --input")
	cmd.Flags().BoolVar(&asJSON, "json", false, "emit completions as JSON")
	_ = cmd.MarkFlagRequired("dfa")
	return cmd
}

// loadDescription reads and decodes a JSON DFA description.
func loadDescription(path string) (whynot.Description, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return whynot.Description{}, fmt.Errorf("read DFA description: %w", err)
	}
	var file dfaFile
	if err := json.Unmarshal(data, &file); err != nil {
		return whynot.Description{}, fmt.Errorf("decode DFA description %s: %w", path, err)
	}

	desc := whynot.Description{
		InitialState: file.Initial,
		FinalStates:  file.Final,
		Transitions:  make([][]whynot.Edge, len(file.States)),
	}
	for i, edges := range file.States {
		row := make([]whynot.Edge, len(edges))
		for j, e := range edges {
			row[j] = whynot.Edge{Symbol: e.Symbol, Target: e.Target}
		}
		desc.Transitions[i] = row
	}
	return desc, nil
}

// splitInput turns --input into symbols, one per rune.
func splitInput(input string) []string {
	var symbols []string
	for _, r := range input {
		symbols = append(symbols, string(r))
	}
	return symbols
}

// readSymbols reads whitespace-separated symbols until EOF.
func readSymbols(r io.Reader) ([]string, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	var symbols []string
	for sc.Scan() {
		symbols = append(symbols, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read input symbols: %w", err)
	}
	return symbols, nil
}

// runTraversal compiles desc, executes over symbols, and writes each
// completion to w, one per line (or as a JSON array with asJSON).
func runTraversal(w io.Writer, desc whynot.Description, symbols []string, asJSON bool) error {
	tr, err := whynot.Compile(desc)
	if err != nil {
		return fmt.Errorf("compile DFA: %w", err)
	}

	finals, err := tr.ExecuteSlice(symbols)
	if err != nil {
		return fmt.Errorf("traverse: %w", err)
	}
	slog.Debug("traversal complete",
		slog.Int("input_symbols", len(symbols)),
		slog.Int("completions", len(finals)))

	if asJSON {
		out := make([]jsonCompletion, len(finals))
		for i, f := range finals {
			c := whynot.Expand(f)
			steps := make([]jsonStep, len(c.Steps))
			for j, s := range c.Steps {
				steps[j] = jsonStep{Symbols: s.Symbols, Target: s.Target, Accepted: s.Accepted}
			}
			out[i] = jsonCompletion{
				Steps:         steps,
				AcceptedCount: c.AcceptedCount,
				MissingCount:  c.MissingCount,
			}
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	for _, f := range finals {
		fmt.Fprintln(w, formatCompletion(whynot.Expand(f)))
	}
	return nil
}

// formatCompletion renders a completion on one line: accepted symbols bare,
// missing steps as a bracketed alternative list, e.g. "[a|b]c".
func formatCompletion(c whynot.Completion) string {
	var b strings.Builder
	for _, s := range c.Steps {
		if s.Accepted {
			b.WriteString(s.Symbols[0])
			continue
		}
		b.WriteByte('[')
		b.WriteString(strings.Join(s.Symbols, "|"))
		b.WriteByte(']')
	}
	return b.String()
}
