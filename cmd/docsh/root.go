package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/kk-code-lab/docsh/internal/app"
	"github.com/kk-code-lab/docsh/internal/config"
	"github.com/kk-code-lab/docsh/internal/content"
	"github.com/kk-code-lab/docsh/internal/manifest"
	"github.com/kk-code-lab/docsh/internal/shell"
	"github.com/kk-code-lab/docsh/internal/vfs"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// Version is set via -ldflags.
var Version = "dev"

var errCommandFailed = errors.New("command failed")

func newRootCmd() *cobra.Command {
	var configFile string

	root := &cobra.Command{
		Use:   "docsh",
		Short: "Browse documentation through a read-only Unix-style shell",
		Long: `docsh presents a documentation set as a small read-only file system.
Navigate it with ls, cd and tree, read pages with cat, less, head and tail,
and search them with find. Type "help" inside the shell for details.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			env, err := setup(cmd, configFile, true)
			if err != nil {
				return report(cmd, err)
			}
			defer env.close()
			return report(cmd, env.interactive(cmd))
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "config file (default is $XDG_CONFIG_HOME/docsh/config.toml)")
	flags.String("manifest", "", "TOML manifest describing the document tree (default is the built-in manual)")
	flags.String("source-url", config.DefaultSourceURL, "base URL documents are fetched from")
	flags.String("source-dir", "", "read documents from a local directory instead of the network")
	flags.String("log-level", "info", "log level (debug, info, warn, error)")
	flags.String("log-file", "", "write logs to this file")
	root.Flags().Bool("line-mode", false, "use a plain line-oriented prompt instead of the full-screen console")

	root.AddCommand(newVersionCmd(), newTreeCmd(&configFile), newRunCmd(&configFile))
	return root
}

func report(cmd *cobra.Command, err error) error {
	if err != nil && !errors.Is(err, errCommandFailed) {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
	}
	return err
}

// environment is everything a session needs, resolved from configuration.
type environment struct {
	cfg      *config.Config
	tree     *vfs.Tree
	title    string
	loader   *content.Loader
	logger   *log.Logger
	logClose func() error
}

// setup resolves configuration and builds the tree and content loader.
// console is set for commands that may take over the terminal.
func setup(cmd *cobra.Command, configFile string, console bool) (*environment, error) {
	cfg, path, err := config.Load(config.LoadOptions{
		ConfigFile: configFile,
		Flags:      cmd.Flags(),
	})
	if err != nil {
		return nil, err
	}

	fullScreen := console && !cfg.UI.LineMode && app.IsInteractive()
	logger, logClose, err := newLogger(cfg, cmd.ErrOrStderr(), fullScreen)
	if err != nil {
		return nil, err
	}
	if path != "" {
		logger.Debug("config loaded", "file", path)
	}

	m := manifest.Default()
	if cfg.Manifest != "" {
		if m, err = manifest.LoadFile(afero.NewOsFs(), cfg.Manifest); err != nil {
			_ = logClose()
			return nil, err
		}
	}
	tree, err := m.Build()
	if err != nil {
		_ = logClose()
		return nil, err
	}

	var source content.Source
	if cfg.Source.Dir != "" {
		source = content.NewDirSource(cfg.Source.Dir)
		logger.Debug("content source", "dir", cfg.Source.Dir)
	} else {
		source = content.NewHTTPSource(cfg.Source.URL, cfg.Source.Timeout)
		logger.Debug("content source", "url", cfg.Source.URL)
	}

	return &environment{
		cfg:      cfg,
		tree:     tree,
		title:    m.Title,
		loader:   content.NewLoader(source, logger.WithPrefix("content")),
		logger:   logger,
		logClose: logClose,
	}, nil
}

// newLogger writes to the configured log file. Without one, logs go to
// stderr unless the full-screen console owns the terminal.
func newLogger(cfg *config.Config, stderr io.Writer, fullScreen bool) (*log.Logger, func() error, error) {
	out := stderr
	closeFn := func() error { return nil }
	switch {
	case cfg.Log.File != "":
		f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		out, closeFn = f, f.Close
	case fullScreen:
		out = io.Discard
	}
	logger := log.NewWithOptions(out, log.Options{
		Level:           cfg.Level(),
		ReportTimestamp: true,
		Prefix:          config.AppName,
	})
	return logger, closeFn, nil
}

func (env *environment) close() {
	_ = env.logClose()
}

func (env *environment) options() app.Options {
	return app.Options{
		Tree:       env.tree,
		Loader:     env.loader,
		Preload:    rootDocuments(env.tree),
		Title:      env.title,
		Prompt:     env.cfg.UI.Prompt,
		MaxResults: env.cfg.Search.MaxResults,
		Logger:     env.logger,
	}
}

func (env *environment) interactive(cmd *cobra.Command) error {
	if env.cfg.UI.LineMode || !app.IsInteractive() {
		session := app.NewLineSession(cmd.InOrStdin(), cmd.OutOrStdout(), env.options())
		return session.Run(cmd.Context())
	}

	application, err := app.NewApplication(env.options())
	if err != nil {
		return fmt.Errorf("initializing terminal: %w", err)
	}
	defer func() {
		_ = application.Close()
	}()
	application.Run(cmd.Context())
	return nil
}

// rootDocuments lists the content references of the top-level files.
func rootDocuments(tree *vfs.Tree) []string {
	var refs []string
	for _, n := range tree.Root().SortedChildren() {
		if !n.IsDir() {
			refs = append(refs, n.ContentRef)
		}
	}
	return refs
}

func newInterpreter(env *environment) *shell.Interpreter {
	return shell.New(env.tree, vfs.NewSession(), shell.Options{
		Loader:     env.loader,
		Title:      env.title,
		MaxResults: env.cfg.Search.MaxResults,
		Logger:     env.logger,
	})
}
