package runner

import (
	"strconv"

	"github.com/patternminer/gsp/gsp"
	"github.com/projectdiscovery/goflags"
	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/gologger/levels"
	errorutil "github.com/projectdiscovery/utils/errors"
)

// MineOptions is the parsed command line for the "mine" subcommand: run
// GSP over an input dataset and write the frequent patterns found.
type MineOptions struct {
	Input   string
	Output  string
	Config  string
	MinSup  string
	MaxK    int
	MaxGap  int
	MinGap  int
	MaxSpan int
	Verbose bool
	Silent  bool
	Force   bool
}

// ParseMineFlags parses the flags for `gsp mine`. The caller is expected to
// have already stripped the subcommand word from os.Args (flagSet.Parse
// reads os.Args itself, same as the rest of the corpus).
func ParseMineFlags() *MineOptions {
	opts := &MineOptions{}
	flagSet := goflags.NewFlagSet()
	flagSet.SetDescription(`Mine frequent sequential patterns from a dataset using GSP.`)

	flagSet.CreateGroup("input", "Input",
		flagSet.StringVarP(&opts.Input, "input", "i", "", "input dataset file (whitespace-delimited, -1/-2 terminated)"),
		flagSet.StringVarP(&opts.MinSup, "minsup", "m", "", "minimum support, a decimal in (0,1]"),
	)

	flagSet.CreateGroup("constraints", "Constraints",
		flagSet.IntVar(&opts.MaxK, "maxk", -1, "maximum pattern length (default unbounded)"),
		flagSet.IntVar(&opts.MaxGap, "maxgap", -1, "maximum element-index gap between matched elements (default unbounded)"),
		flagSet.IntVar(&opts.MinGap, "mingap", 0, "minimum element-index gap between matched elements"),
		flagSet.IntVar(&opts.MaxSpan, "maxspan", -1, "maximum element-index span of the match (default unbounded)"),
	)

	flagSet.CreateGroup("output", "Output",
		flagSet.StringVarP(&opts.Output, "output", "o", "", "output file to write mined patterns to"),
		flagSet.BoolVarP(&opts.Force, "force", "f", false, "overwrite output file without prompting"),
		flagSet.BoolVarP(&opts.Verbose, "verbose", "v", false, "display verbose output"),
		flagSet.BoolVar(&opts.Silent, "silent", false, "display results only"),
		flagSet.CallbackVar(printVersion, "version", "display gsp version"),
	)

	flagSet.CreateGroup("config", "Config",
		flagSet.StringVar(&opts.Config, "config", "", `gsp config file (default '$HOME/.config/gsp/config.yaml')`),
	)

	if err := flagSet.Parse(); err != nil {
		gologger.Fatal().Msgf("could not read flags: %s\n", err)
	}

	if opts.Config != "" {
		if err := flagSet.MergeConfigFile(opts.Config); err != nil {
			gologger.Error().Msgf("failed to read config file got %v", err)
		}
	}

	applyLogLevel(opts.Silent, opts.Verbose)
	showBanner()

	return opts
}

// ToOptions resolves the parsed flags (plus any on-disk config) into
// gsp.Options. Command-line flags take precedence over the config file when
// both are set, matching how a CLI shadows its config.
func (m *MineOptions) ToOptions() (gsp.Options, error) {
	cfg := gsp.DefaultConfig()
	if m.Config != "" {
		if loaded, err := gsp.NewConfig(m.Config); err == nil {
			cfg = *loaded
		}
	}

	opts := cfg.ToOptions()
	if m.MinSup != "" {
		minsup, err := strconv.ParseFloat(m.MinSup, 64)
		if err != nil {
			return gsp.Options{}, errorutil.New("minsup must be a decimal number")
		}
		opts.MinSup = minsup
	}
	if m.MaxK >= 0 {
		opts.MaxK = m.MaxK
	}
	if m.MaxGap >= 0 {
		opts.MaxGap = m.MaxGap
	}
	opts.MinGap = m.MinGap
	if m.MaxSpan >= 0 {
		opts.MaxSpan = m.MaxSpan
	}
	opts.Verbose = m.Verbose

	if err := opts.Validate(); err != nil {
		return gsp.Options{}, err
	}
	return opts, nil
}

// GenOptions is the parsed command line for the "gen" subcommand: generate
// a synthetic dataset.
type GenOptions struct {
	Output    string
	Size      int
	NumEvents int
	MaxEvents int
	MaxElems  int
	Items     string
	Seed      string
	Verbose   bool
	Silent    bool
	Force     bool
}

// ParseGenFlags parses the flags for `gsp gen`. Same os.Args convention as
// ParseMineFlags.
func ParseGenFlags() *GenOptions {
	opts := &GenOptions{}
	flagSet := goflags.NewFlagSet()
	flagSet.SetDescription(`Generate a synthetic sequence dataset for GSP mining.`)

	flagSet.CreateGroup("dataset", "Dataset",
		flagSet.IntVar(&opts.Size, "size", 100, "number of sequences to generate"),
		flagSet.IntVar(&opts.NumEvents, "events", 10, "number of distinct events"),
		flagSet.IntVar(&opts.MaxEvents, "max-events", 3, "max events per element"),
		flagSet.IntVar(&opts.MaxElems, "max-elems", 5, "max elements per sequence"),
		flagSet.StringVar(&opts.Items, "items", "", "file listing event labels, one per line (default raw integer ids)"),
		flagSet.StringVarP(&opts.Seed, "seed", "s", "", "seed for reproducible generation"),
	)

	flagSet.CreateGroup("output", "Output",
		flagSet.StringVarP(&opts.Output, "output", "o", "", "output file to write the generated dataset to"),
		flagSet.BoolVarP(&opts.Force, "force", "f", false, "overwrite output file without prompting"),
		flagSet.BoolVarP(&opts.Verbose, "verbose", "v", false, "display verbose output"),
		flagSet.BoolVar(&opts.Silent, "silent", false, "display results only"),
	)

	if err := flagSet.Parse(); err != nil {
		gologger.Fatal().Msgf("could not read flags: %s\n", err)
	}

	applyLogLevel(opts.Silent, opts.Verbose)
	showBanner()

	return opts
}

func applyLogLevel(silent, verbose bool) {
	if silent {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelSilent)
	} else if verbose {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelVerbose)
	}
}
