// Command prbs prints a pseudo-random binary excitation sequence, one row per
// time step: the 1-based sample index followed by one column per channel.
//
//	prbs -length 25
//	prbs -length 1000 -channels 3 -seed 7 -bipolar
//	prbs -config prbs.conf -d
//
// A config file holds "key value" lines for any of length, channels, seed,
// parallel, bipolar and debug; flags given on the command line win.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/jaw0/acconfig"
	"github.com/jaw0/acdiag"

	"github.com/katalvlaran/sysid/prbs"
)

// Config is the file-backed run configuration.
type Config struct {
	Length   int
	Channels int
	Seed     int   // 0 draws seeds from the process-wide source
	Parallel bool
	Bipolar  bool // print -1/+1 instead of 0/1
	Debug    map[string]bool
}

const defaultLength = 25

var (
	configFlag   = flag.String("config", "", "optional config file")
	lengthFlag   = flag.Int("length", defaultLength, "number of samples")
	channelsFlag = flag.Int("channels", prbs.DefaultChannels, "number of input channels")
	seedFlag     = flag.Int("seed", 0, "seed for reproducible output (0 = random)")
	parallelFlag = flag.Bool("parallel", false, "generate channels concurrently")
	bipolarFlag  = flag.Bool("bipolar", false, "print -1/+1 levels instead of 0/1")
)

func main() {
	flag.Parse()

	cf, err := loadConfig(*configFlag)
	if err != nil {
		diag.Fatal("%v", err)
	}
	applyFlags(cf)
	diag.SetConfig(&diag.Config{Debug: cf.Debug})

	seq, err := prbs.Generate(cf.Length, cf.Channels, options(cf)...)
	if err != nil {
		diag.Fatal("%v", err)
	}
	diag.Verbose("prbs: %d samples x %d channels, %d-bit register, period %d",
		seq.Rows(), seq.Cols(), seq.RegisterLength(), seq.Period())

	w := bufio.NewWriter(os.Stdout)
	if err := writeTable(w, seq, cf.Bipolar); err != nil {
		diag.Fatal("write: %v", err)
	}
	if err := w.Flush(); err != nil {
		diag.Fatal("write: %v", err)
	}
}

// loadConfig returns defaults, overlaid with file when it is non-empty.
func loadConfig(file string) (*Config, error) {
	cf := &Config{
		Length:   defaultLength,
		Channels: prbs.DefaultChannels,
		Debug:    make(map[string]bool),
	}
	if file == "" {
		return cf, nil
	}
	if err := acconfig.Read(file, cf); err != nil {
		return nil, fmt.Errorf("cannot read config '%s': %v", file, err)
	}

	return cf, nil
}

// applyFlags copies explicitly set flags over the config.
func applyFlags(cf *Config) {
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "length":
			cf.Length = *lengthFlag
		case "channels":
			cf.Channels = *channelsFlag
		case "seed":
			cf.Seed = *seedFlag
		case "parallel":
			cf.Parallel = *parallelFlag
		case "bipolar":
			cf.Bipolar = *bipolarFlag
		}
	})
}

// options maps the run configuration to Generate options.
func options(cf *Config) []prbs.Option {
	var opts []prbs.Option
	if cf.Seed != 0 {
		opts = append(opts, prbs.WithSeed(int64(cf.Seed)))
	}
	if cf.Parallel {
		opts = append(opts, prbs.WithParallel())
	}

	return opts
}

// writeTable prints "index<TAB>ch0<TAB>ch1…" per time step, index from 1.
func writeTable(w io.Writer, seq *prbs.Sequence, bipolar bool) error {
	low, high := 0, 1
	if bipolar {
		low = -1
	}
	for t, row := range prbs.Levels(seq, low, high) {
		if _, err := fmt.Fprint(w, t+1); err != nil {
			return err
		}
		for _, v := range row {
			if _, err := fmt.Fprintf(w, "\t%d", v); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}

	return nil
}
