package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/patternminer/gsp/gsp"
	"github.com/patternminer/gsp/internal/datasetgen"
	"github.com/patternminer/gsp/internal/ingest"
	"github.com/patternminer/gsp/internal/runner"
	"github.com/patternminer/gsp/internal/serialize"
	"github.com/projectdiscovery/gologger"
	fileutil "github.com/projectdiscovery/utils/file"
)

func main() {
	if len(os.Args) < 2 {
		gologger.Fatal().Msgf("usage: gsp <mine|gen> [flags]")
	}

	subcommand := os.Args[1]
	os.Args = append([]string{os.Args[0]}, os.Args[2:]...)

	switch subcommand {
	case "mine":
		runMine()
	case "gen":
		runGen()
	default:
		gologger.Fatal().Msgf("unknown subcommand %q, expected mine or gen", subcommand)
	}
}

func runMine() {
	cliOpts := runner.ParseMineFlags()

	if cliOpts.Input == "" {
		gologger.Fatal().Msgf("gsp: no input dataset given (-i)")
	}
	if !fileutil.FileExists(cliOpts.Input) {
		gologger.Fatal().Msgf("gsp: input file %v not found", cliOpts.Input)
	}

	opts, err := cliOpts.ToOptions()
	if err != nil {
		gologger.Fatal().Msgf("gsp: %v", err)
	}

	dataset, dict, err := ingest.Load(cliOpts.Input)
	if err != nil {
		gologger.Fatal().Msgf("gsp: failed to load %v: %v", cliOpts.Input, err)
	}
	if len(dataset) == 0 {
		gologger.Fatal().Msgf("gsp: could not load dataset from %v", cliOpts.Input)
	}

	if !confirmOverwrite(cliOpts.Output, cliOpts.Force) {
		gologger.Info().Msgf("quitting")
		return
	}

	results, err := gsp.Mine(dataset, opts)
	if err != nil {
		gologger.Fatal().Msgf("gsp: %v", err)
	}

	output := openOutput(cliOpts.Output)
	defer closeOutput(output, cliOpts.Output)

	count, err := serialize.Write(output, results, dict)
	if err != nil {
		gologger.Error().Msgf("failed to write output got %v", err)
		return
	}
	gologger.Info().Msgf("found %d frequent patterns", count)
}

func runGen() {
	cliOpts := runner.ParseGenFlags()

	genOpts := datasetgen.Options{
		Size:      cliOpts.Size,
		NumEvents: cliOpts.NumEvents,
		MaxEvents: cliOpts.MaxEvents,
		MaxElems:  cliOpts.MaxElems,
	}

	if cliOpts.Seed != "" {
		seed, err := parseSeed(cliOpts.Seed)
		if err != nil {
			gologger.Fatal().Msgf("gsp: invalid seed %v", cliOpts.Seed)
		}
		genOpts.Seed = &seed
	}

	if cliOpts.Items != "" {
		if !fileutil.FileExists(cliOpts.Items) {
			gologger.Fatal().Msgf("gsp: items file %v not found", cliOpts.Items)
		}
		items, err := readLines(cliOpts.Items)
		if err != nil {
			gologger.Fatal().Msgf("gsp: failed to read %v: %v", cliOpts.Items, err)
		}
		if len(items) < cliOpts.NumEvents {
			gologger.Fatal().Msgf("gsp: %v has fewer items than the requested %d events", cliOpts.Items, cliOpts.NumEvents)
		}
		genOpts.Items = items
	}

	if !confirmOverwrite(cliOpts.Output, cliOpts.Force) {
		gologger.Info().Msgf("quitting")
		return
	}

	dataset, vocab, err := datasetgen.Generate(genOpts)
	if err != nil {
		gologger.Fatal().Msgf("gsp: %v", err)
	}

	output := openOutput(cliOpts.Output)
	defer closeOutput(output, cliOpts.Output)

	if err := writeGeneratedDataset(output, dataset, vocab); err != nil {
		gologger.Error().Msgf("failed to write output got %v", err)
		return
	}
	gologger.Info().Msgf("generated %d sequences", len(dataset))
}

// writeGeneratedDataset writes dataset in the same token/-1/-2 format Load
// reads back, resolving events through vocab when present.
func writeGeneratedDataset(w io.Writer, dataset gsp.Dataset, vocab datasetgen.Vocabulary) error {
	bw := bufio.NewWriter(w)
	for _, sequence := range dataset {
		for _, elem := range sequence {
			for _, e := range elem {
				token := fmt.Sprintf("%d", e)
				if t, ok := vocab.Token(e); ok {
					token = t
				}
				if _, err := fmt.Fprintf(bw, "%s ", token); err != nil {
					return err
				}
			}
			if _, err := bw.WriteString("-1 "); err != nil {
				return err
			}
		}
		if _, err := bw.WriteString("-2\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// confirmOverwrite asks the user to confirm before truncating an existing
// output file, unless force is set or output is stdout.
func confirmOverwrite(output string, force bool) bool {
	if output == "" || force || !fileutil.FileExists(output) {
		return true
	}
	gologger.Info().Msgf("file %v already exists, want to proceed? [Y/N]", output)
	reader := bufio.NewReader(os.Stdin)
	for {
		line, err := reader.ReadString('\n')
		if err != nil {
			return false
		}
		switch strings.ToUpper(strings.TrimSpace(line)) {
		case "Y":
			return true
		case "N":
			return false
		}
	}
}

func openOutput(path string) io.Writer {
	if path == "" {
		return os.Stdout
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		gologger.Fatal().Msgf("failed to open output file %v got %v", path, err)
	}
	return f
}

func closeOutput(w io.Writer, path string) {
	if path == "" {
		return
	}
	if closer, ok := w.(io.Closer); ok {
		closer.Close()
	}
}

func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines, scanner.Err()
}

func parseSeed(s string) (int64, error) {
	var seed int64
	_, err := fmt.Sscanf(s, "%d", &seed)
	return seed, err
}
