// Package main is the yomu CLI entry point.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	"go.uber.org/zap"

	"github.com/hyperjump/yomu/internal/annotate"
	"github.com/hyperjump/yomu/internal/cli"
	"github.com/hyperjump/yomu/internal/config"
	"github.com/hyperjump/yomu/internal/models"
	"github.com/hyperjump/yomu/internal/segment"
	"github.com/hyperjump/yomu/internal/server"
	"github.com/hyperjump/yomu/internal/storage"
	"github.com/hyperjump/yomu/internal/textdecode"
	"github.com/hyperjump/yomu/pkg/utils"
)

var version = "dev"

const defaultConfigPath = "/usr/local/etc/yomu/config.yaml"

// Globals are the flags shared by every command.
type Globals struct {
	Config string `help:"Config file path." default:"/usr/local/etc/yomu/config.yaml" type:"path"`
	Debug  bool   `help:"Enable debug logging."`

	stdout io.Writer `kong:"-"`
	stdin  io.Reader `kong:"-"`
}

// CLI defines the command-line interface for yomu.
type CLI struct {
	Globals

	Server   ServerCmd   `cmd:"" help:"Start the HTTP API server."`
	Annotate AnnotateCmd `cmd:"" help:"Annotate a Japanese text file with readings, translations and kanji levels."`
	Lookup   LookupCmd   `cmd:"" help:"Show the JLPT level, frequency and grade of a kanji."`
	Import   ImportGroup `cmd:"" help:"Build the dictionary tables from source files."`
	Status   StatusCmd   `cmd:"" help:"Show dictionary statistics."`
	Version  VersionCmd  `cmd:"" help:"Print version information."`
}

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "yomu: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout io.Writer) error {
	var c CLI
	c.stdin, c.stdout = stdin, stdout
	parser, err := kong.New(&c,
		kong.Name("yomu"),
		kong.Description("Japanese reading assistant: furigana, translations and JLPT levels for any text."),
		kong.UsageOnError(),
		kong.Writers(stdout, os.Stderr),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
	)
	if err != nil {
		return err
	}
	ctx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	return ctx.Run(&c.Globals)
}

// loadConfig loads config from path. When path is the default, it first looks for
// config.yaml in the current directory (for development). When the default file does not
// exist either, built-in defaults are used. Returns the config and the path that was
// actually loaded ("" for defaults).
func loadConfig(path string) (*config.Config, string, error) {
	if path == defaultConfigPath {
		if cwd, cwdErr := os.Getwd(); cwdErr == nil {
			fallback := filepath.Join(cwd, "config.yaml")
			if _, statErr := os.Stat(fallback); statErr == nil {
				cfg, loadErr := config.Load(fallback)
				if loadErr != nil {
					return nil, "", loadErr
				}
				return cfg, fallback, nil
			}
		}
		if _, statErr := os.Stat(path); os.IsNotExist(statErr) {
			cfg, err := config.Default()
			if err != nil {
				return nil, "", err
			}
			return cfg, "", nil
		}
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, "", err
	}
	return cfg, path, nil
}

// setup loads the config and builds the logger.
func (g *Globals) setup() (*config.Config, *zap.Logger, error) {
	cfg, resolved, err := loadConfig(g.Config)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	debug := cfg.Debug || g.Debug
	logger, err := utils.NewLogger(debug)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create logger: %w", err)
	}
	logger.Debug("config loaded", zap.String("config_path", resolved), zap.Bool("debug", debug))
	return cfg, logger, nil
}

// Components holds the long-lived pieces of the annotation pipeline.
type Components struct {
	Store     *storage.SQLiteStore
	Lookups   *storage.CachedStore
	Segmenter *segment.Kagome
	Annotator *annotate.Annotator
}

// Close releases the dictionary store.
func (c *Components) Close() {
	if c.Store != nil {
		_ = c.Store.Close()
	}
}

// initializeComponents opens the dictionary read-only and builds the annotator.
// With requireStore false a missing dictionary only degrades lookups to empty results.
func initializeComponents(cfg *config.Config, logger *zap.Logger, requireStore bool) (*Components, error) {
	seg, err := segment.NewKagome(cfg.Segmenter.Dictionary)
	if err != nil {
		return nil, fmt.Errorf("failed to create segmenter: %w", err)
	}
	c := &Components{Segmenter: seg}

	var (
		kanji        annotate.KanjiTable
		translations annotate.TranslationTable
	)
	store, err := storage.Open(cfg.Storage.DatabasePath, storage.ReadOnly())
	switch {
	case err == nil:
		c.Store = store
		c.Lookups, err = storage.NewCachedStore(store, cfg.Storage.CacheSize)
		if err != nil {
			store.Close()
			return nil, fmt.Errorf("failed to create lookup cache: %w", err)
		}
		kanji, translations = c.Lookups, c.Lookups
	case requireStore:
		return nil, err
	default:
		logger.Warn("dictionary unavailable, translations and kanji levels will be empty",
			zap.String("database_path", cfg.Storage.DatabasePath), zap.Error(err))
	}

	c.Annotator = annotate.NewAnnotator(seg, kanji, translations, annotate.WithLogger(logger))
	logger.Debug("components initialized",
		zap.String("segmenter_dictionary", seg.Dictionary()),
		zap.String("sqlite_driver", storage.DriverType()),
	)
	return c, nil
}

// ServerCmd starts the HTTP API.
type ServerCmd struct {
	Host string `help:"Override the listen host."`
	Port int    `help:"Override the listen port."`
}

func (s *ServerCmd) Run(g *Globals) error {
	cfg, logger, err := g.setup()
	if err != nil {
		return err
	}
	defer logger.Sync()
	if s.Host != "" {
		cfg.Server.Host = s.Host
	}
	if s.Port != 0 {
		cfg.Server.Port = s.Port
	}

	components, err := initializeComponents(cfg, logger, true)
	if err != nil {
		return fmt.Errorf("failed to initialize components: %w", err)
	}
	defer components.Close()

	srv := server.NewServer(components.Annotator, components.Lookups, cfg, logger)
	errCh := make(chan error, 1)
	go func() { errCh <- srv.Start() }()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-sigChan:
	}

	logger.Info("Shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Stop(ctx)
}

// AnnotateCmd annotates a text file or stdin.
type AnnotateCmd struct {
	Path   string `arg:"" help:"Text file to annotate, or - for stdin." default:"-"`
	Start  int    `help:"Start position in characters." default:"0"`
	Size   int    `help:"Page size in characters (0 uses the configured default)." default:"0"`
	Output string `help:"Output format." enum:"text,json" default:"text" short:"o"`
}

func (a *AnnotateCmd) Run(g *Globals) error {
	cfg, logger, err := g.setup()
	if err != nil {
		return err
	}
	defer logger.Sync()

	data, err := a.read(g.stdin)
	if err != nil {
		return err
	}
	text, encoding, err := textdecode.Decode(data)
	if err != nil {
		return fmt.Errorf("failed to decode %s: %w", a.Path, err)
	}
	logger.Debug("decoded input", zap.String("path", a.Path), zap.String("encoding", encoding))

	req := models.PageRequest{Text: text, StartPosition: a.Start, PageSize: a.Size}
	if err := req.Validate(cfg.Annotate.DefaultPageSize, 0); err != nil {
		return err
	}

	components, err := initializeComponents(cfg, logger, false)
	if err != nil {
		return err
	}
	defer components.Close()

	page, err := components.Annotator.AnnotatePage(context.Background(), req.Text, req.StartPosition, req.PageSize)
	if err != nil {
		return err
	}
	return cli.WritePage(g.stdout, page, cli.OutputFormat(a.Output))
}

func (a *AnnotateCmd) read(stdin io.Reader) ([]byte, error) {
	if a.Path == "-" {
		return io.ReadAll(stdin)
	}
	data, err := os.ReadFile(a.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", a.Path, err)
	}
	return data, nil
}

// LookupCmd prints the metadata of one kanji.
type LookupCmd struct {
	Kanji  string `arg:"" help:"A single kanji character."`
	Output string `help:"Output format." enum:"text,json" default:"text" short:"o"`
}

func (l *LookupCmd) Run(g *Globals) error {
	cfg, logger, err := g.setup()
	if err != nil {
		return err
	}
	defer logger.Sync()

	chars := []rune(l.Kanji)
	if len(chars) != 1 {
		return fmt.Errorf("expected a single character, got %q", l.Kanji)
	}
	store, err := storage.Open(cfg.Storage.DatabasePath, storage.ReadOnly())
	if err != nil {
		return err
	}
	defer store.Close()

	meta, err := store.LookupKanji(context.Background(), chars[0])
	if err != nil {
		return err
	}
	if meta == nil {
		return fmt.Errorf("kanji %q not found", l.Kanji)
	}
	return cli.WriteKanji(g.stdout, meta, cli.OutputFormat(l.Output))
}

// StatusCmd prints table counts and configuration.
type StatusCmd struct{}

func (s *StatusCmd) Run(g *Globals) error {
	cfg, logger, err := g.setup()
	if err != nil {
		return err
	}
	defer logger.Sync()

	store, err := storage.Open(cfg.Storage.DatabasePath, storage.ReadOnly())
	if err != nil {
		return err
	}
	defer store.Close()

	ctx := context.Background()
	kanjiCount, err := store.CountKanji(ctx)
	if err != nil {
		return fmt.Errorf("failed to count kanji: %w", err)
	}
	wordCount, err := store.CountWords(ctx)
	if err != nil {
		return fmt.Errorf("failed to count words: %w", err)
	}
	size, _ := storage.DatabaseSize(cfg.Storage.DatabasePath)

	fmt.Fprintf(g.stdout, "Database:   %s (%d bytes, %s driver)\n", cfg.Storage.DatabasePath, size, storage.DriverType())
	fmt.Fprintf(g.stdout, "Kanji:      %d\n", kanjiCount)
	fmt.Fprintf(g.stdout, "Words:      %d\n", wordCount)
	fmt.Fprintf(g.stdout, "Dictionary: %s\n", cfg.Segmenter.Dictionary)
	return nil
}

// VersionCmd prints the version.
type VersionCmd struct{}

func (v *VersionCmd) Run(g *Globals) error {
	fmt.Fprintf(g.stdout, "yomu version %s\n", version)
	return nil
}
