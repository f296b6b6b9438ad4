package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/recbatch/recbatch/batch"
	"github.com/recbatch/recbatch/source"
)

// maxLineBytes bounds a single input record; lines beyond this fail the
// scan rather than being truncated silently.
const maxLineBytes = 1 << 20

var (
	maxBatchLen    int    // Maximum number of records per batch
	maxBatchBytes  int    // Maximum summed record bytes per batch
	maxRecordBytes int    // Maximum bytes of a single record
	onOversize     string // Handling of records that can never fit (skip, error)
	logLevel       string // Log verbosity level
	presetFile     string // YAML file with named limit presets
	presetName     string // Preset to apply from the preset file
)

// rootCmd batches newline-delimited records from a file or stdin into
// JSON-array lines on stdout.
var rootCmd = &cobra.Command{
	Use:   "recbatch [FILE]",
	Short: "Group newline-delimited records into bounded batches",
	Long: `recbatch reads newline-delimited records from FILE (or stdin) and
writes them to stdout grouped into batches, one JSON array per line.
Batches are bounded by a maximum record count (--max-batch-len), a maximum
summed byte size (--max-batch-bytes), or both. Records larger than
--max-record-bytes (or --max-batch-bytes if unset) can never fit in any
batch and are skipped or reported as an error per --on-oversize.`,
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().IntVar(&maxBatchLen, "max-batch-len", 0, "Maximum number of records per batch (0 = unbounded)")
	rootCmd.Flags().IntVar(&maxBatchBytes, "max-batch-bytes", 0, "Maximum summed record bytes per batch (0 = unbounded)")
	rootCmd.Flags().IntVar(&maxRecordBytes, "max-record-bytes", 0, "Maximum bytes of a single record (0 = defaults to --max-batch-bytes)")
	rootCmd.Flags().StringVar(&onOversize, "on-oversize", "error", "What to do with records that can never fit (skip, error)")
	rootCmd.Flags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")
	rootCmd.Flags().StringVar(&presetFile, "preset-file", "", "YAML file with named limit presets")
	rootCmd.Flags().StringVar(&presetName, "preset", "", "Name of the preset to apply from --preset-file")
}

func run(cmd *cobra.Command, args []string) error {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		return fmt.Errorf("invalid log level %q", logLevel)
	}
	logrus.SetLevel(level)

	if presetFile != "" {
		preset, err := loadPreset(presetFile, presetName)
		if err != nil {
			return err
		}
		logrus.Infof("using preset %q from %s", presetName, presetFile)
		preset.apply()
	}

	policy, err := batch.ParseOversizePolicy(onOversize)
	if err != nil {
		return err
	}

	in := cmd.InOrStdin()
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	cfg := batch.Config[string]{
		MaxBatchLen:   maxBatchLen,
		MaxBatchSize:  maxBatchBytes,
		MaxRecordSize: maxRecordBytes,
		OnOversize:    policy,
	}
	if maxBatchBytes > 0 || maxRecordBytes > 0 {
		cfg.SizeFunc = batch.StringLen
	}

	stats := batch.NewBasicStatsCollector()
	b, err := batch.New(lineSource(in), cfg)
	if err != nil {
		return err
	}
	b.WithLogger(batch.NewLogrusLogger(logrus.StandardLogger())).WithStats(stats)

	enc := json.NewEncoder(cmd.OutOrStdout())
	for b.Next() {
		if err := enc.Encode(b.Batch()); err != nil {
			return err
		}
	}
	if err := b.Err(); err != nil {
		return err
	}

	s := stats.GetStats()
	logrus.Infof("emitted %d batch(es) from %d record(s), skipped %d",
		s.BatchesEmitted, s.RecordsRead, s.RecordsSkipped)
	return nil
}

// lineSource yields the lines of r as records, without the trailing
// newline.
func lineSource(r io.Reader) source.Source[string] {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	return source.FromFunc(func() (string, error) {
		if sc.Scan() {
			return sc.Text(), nil
		}
		if err := sc.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	})
}
