package main

import (
	"io"
	"time"

	"github.com/pingcap/errors"
	"github.com/pingcap/log"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/philpearl/hashcsv"
	"github.com/philpearl/hashcsv/internal/charset"
	"github.com/philpearl/hashcsv/internal/config"
	"github.com/philpearl/hashcsv/internal/render"
)

const (
	flagConfig   = "config"
	flagCharset  = "charset"
	flagStyle    = "style"
	flagMissing  = "missing"
	flagQuote    = "quote"
	flagHeader   = "header"
	flagLogLevel = "log-level"
)

func addFlags(flags *pflag.FlagSet) {
	def := config.Default()
	flags.StringP(flagConfig, "c", "", "path to a TOML config file")
	flags.String(flagCharset, def.Charset, "character set of the input (utf8, gbk, gb18030, latin1)")
	flags.StringP(flagStyle, "s", def.Style, "output style (rounded, plain, csv)")
	flags.String(flagMissing, def.Missing, "text shown in cells missing from short rows")
	flags.BoolP(flagQuote, "q", def.Quote, "show every field Go-quoted")
	flags.Bool(flagHeader, false, "draw the first row as a header")
	flags.String(flagLogLevel, def.Log.Level, "log level (debug, info, warn, error)")
}

// loadConfig reads the config file, if any, then applies flags that were set
// explicitly on the command line.
func loadConfig(flags *pflag.FlagSet) (*config.Config, error) {
	path, err := flags.GetString(flagConfig)
	if err != nil {
		return nil, errors.Trace(err)
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	for name, dst := range map[string]*string{
		flagCharset:  &cfg.Charset,
		flagStyle:    &cfg.Style,
		flagMissing:  &cfg.Missing,
		flagLogLevel: &cfg.Log.Level,
	} {
		if !flags.Changed(name) {
			continue
		}
		if *dst, err = flags.GetString(name); err != nil {
			return nil, errors.Trace(err)
		}
	}
	if flags.Changed(flagQuote) {
		if cfg.Quote, err = flags.GetBool(flagQuote); err != nil {
			return nil, errors.Trace(err)
		}
	}

	return cfg, cfg.Validate()
}

func initLogger(cfg config.Log, w io.Writer) error {
	ws := zapcore.AddSync(w)
	logger, props, err := log.InitLoggerWithWriteSyncer(&log.Config{
		Level:  cfg.Level,
		Format: cfg.Format,
	}, ws, ws)
	if err != nil {
		return errors.Trace(err)
	}
	log.ReplaceGlobals(logger, props)
	return nil
}

func newRootCommand(fs afero.Fs) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "hashcsv [file]",
		Short:        "hashcsv parses comma separated text with # comments and prints it as a table.",
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		// main prints the error itself, in colour
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, fs, args)
		},
	}
	addFlags(cmd.Flags())
	return cmd
}

func run(cmd *cobra.Command, fs afero.Fs, args []string) error {
	cfg, err := loadConfig(cmd.Flags())
	if err != nil {
		return err
	}
	if err := initLogger(cfg.Log, cmd.ErrOrStderr()); err != nil {
		return err
	}
	header, err := cmd.Flags().GetBool(flagHeader)
	if err != nil {
		return errors.Trace(err)
	}

	name := "<stdin>"
	in := cmd.InOrStdin()
	if len(args) == 1 {
		name = args[0]
		f, err := fs.Open(name)
		if err != nil {
			return errors.Trace(err)
		}
		defer f.Close()
		in = f
	}

	enc, err := charset.Lookup(cfg.Charset)
	if err != nil {
		return err
	}

	start := time.Now()
	r := hashcsv.NewReader(in)
	r.Encoding = enc
	rows, err := r.ReadAll()
	if err != nil {
		if perr, ok := err.(*hashcsv.ParseError); ok {
			log.Error("parse failed",
				zap.String("input", name),
				zap.Int("line", perr.Line),
				zap.Int("offset", perr.Offset),
				zap.Error(perr.Err))
		}
		return errors.Annotatef(err, "read %s", name)
	}
	log.Info("parsed input",
		zap.String("input", name),
		zap.String("charset", cfg.Charset),
		zap.Int("rows", len(rows)),
		zap.Duration("elapsed", time.Since(start)))

	return render.Render(cmd.OutOrStdout(), rows, render.Options{
		Style:   render.Style(cfg.Style),
		Header:  header,
		Missing: cfg.Missing,
		Quote:   cfg.Quote,
	})
}
