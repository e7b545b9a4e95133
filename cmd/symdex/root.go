package symdex

import (
	"embed"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/arthur-debert/symdex/internal/version"
	"github.com/arthur-debert/symdex/pkg/cobrax/topics"
	"github.com/arthur-debert/symdex/pkg/config"
	"github.com/arthur-debert/symdex/pkg/errors"
	"github.com/arthur-debert/symdex/pkg/format"
	"github.com/arthur-debert/symdex/pkg/index"
	"github.com/arthur-debert/symdex/pkg/logging"
	"github.com/arthur-debert/symdex/pkg/output"
	"github.com/arthur-debert/symdex/pkg/paths"
	"github.com/arthur-debert/symdex/pkg/resolver"
	"github.com/arthur-debert/symdex/pkg/types"
	"github.com/arthur-debert/symdex/pkg/ui"
	"github.com/arthur-debert/symdex/pkg/ui/lipbalm"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

//go:embed topics
var topicsFS embed.FS

// ProviderFactory opens the index files a command reads.
type ProviderFactory func(files []string) (index.Provider, error)

func openIndex(files []string) (index.Provider, error) {
	m, err := index.LoadFiles(files...)
	if err != nil {
		return nil, err
	}
	return m, nil
}

type options struct {
	open ProviderFactory
	// workDir is where the project config lookup starts; "" is the cwd.
	workDir string
}

type globalFlags struct {
	verbosity  int
	indexFiles []string
	open       []string
	color      string
	root       string
	tieBreak   string
	configPath string
}

type app struct {
	opts  options
	flags globalFlags
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	return newRootCmd(options{open: openIndex})
}

func newRootCmd(opts options) *cobra.Command {
	// Initialize custom template formatting functions
	initTemplateFormatting()

	a := &app{opts: opts}

	rootCmd := &cobra.Command{
		Use:     "symdex",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(a.flags.verbosity)
			logging.LogCommand(cmd.Name(), args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand: show help but fail
			_ = cmd.Help()
			return errors.New(errors.ErrUsage, MsgErrNoCommand)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}
	rootCmd.SetVersionTemplate(fmt.Sprintf(MsgVersionFormat, version.Version, version.Commit, version.Date))

	// Global flags
	pf := rootCmd.PersistentFlags()
	pf.CountVarP(&a.flags.verbosity, "verbose", "v", MsgFlagVerbose)
	pf.StringArrayVar(&a.flags.indexFiles, "index", nil, MsgFlagIndex)
	pf.StringArrayVarP(&a.flags.open, "open", "O", nil, MsgFlagOpen)
	pf.StringVar(&a.flags.color, "color", "auto", MsgFlagColor)
	pf.StringVar(&a.flags.root, "root", "", MsgFlagRoot)
	pf.StringVar(&a.flags.tieBreak, "tie-break", string(resolver.DefaultTieBreak), MsgFlagTieBreak)
	pf.StringVar(&a.flags.configPath, "config", "", MsgFlagConfig)

	rootCmd.AddGroup(&cobra.Group{
		ID:    "query",
		Title: "COMMANDS:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(a.newCompleteCmd())
	rootCmd.AddCommand(a.newTypeCmd())
	rootCmd.AddCommand(a.newLocateCmd())
	rootCmd.AddCommand(a.newPrintCmd())
	rootCmd.AddCommand(a.newConfigCmd())
	rootCmd.AddCommand(newCompletionCmd())

	// Topic-based help, rendered as markdown
	sub, err := fs.Sub(topicsFS, "topics")
	if err == nil {
		_, err = topics.Initialize(rootCmd, sub, topics.Options{
			Extensions: []string{".md"},
			Renderer:   topics.NewGlamourRenderer(ui.ColorAuto.Enabled(os.Stdout)),
		})
	}
	if err != nil {
		logger := logging.GetLogger("cli")
		logger.Warn().Err(err).Msg("Help topics unavailable")
	}

	return rootCmd
}

// overrides maps the global flags given on the command line onto config keys.
// Flags left at their defaults do not mask the config files.
func (a *app) overrides(cmd *cobra.Command) map[string]interface{} {
	flags := cmd.Flags()
	o := map[string]interface{}{}
	if flags.Changed("index") {
		o["index.files"] = a.flags.indexFiles
	}
	if flags.Changed("open") {
		o["scope.open"] = a.flags.open
	}
	if flags.Changed("color") {
		o["output.color"] = a.flags.color
	}
	if flags.Changed("root") {
		o["project.root"] = a.flags.root
	}
	if flags.Changed("tie-break") {
		o["resolve.tie_break"] = a.flags.tieBreak
	}
	return o
}

func (a *app) loadConfig(cmd *cobra.Command) (*config.Config, error) {
	return config.Load(config.LoadOptions{
		UserConfigPath: a.flags.configPath,
		WorkDir:        a.opts.workDir,
		Overrides:      a.overrides(cmd),
	})
}

// session is everything a query command needs once config and index are
// loaded.
type session struct {
	cfg      *config.Config
	resolver *resolver.Resolver
	renderer *lipgloss.Renderer
	format   format.Options
}

func (a *app) session(cmd *cobra.Command) (*session, error) {
	cfg, err := a.loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	p := paths.New()
	files := cfg.IndexFiles(p)
	if len(files) == 0 {
		return nil, errors.New(errors.ErrUsage, "no index files configured").
			WithDetail("default", p.DefaultIndexPath())
	}

	provider, err := a.opts.open(files)
	if err != nil {
		return nil, err
	}

	r := ui.NewRenderer(cmd.OutOrStdout(), cfg.ColorMode())
	return &session{
		cfg:      cfg,
		resolver: resolver.New(provider, resolver.WithTieBreak(cfg.TieBreak())),
		renderer: r,
		format: format.Options{
			Scope:       cfg.OpenScope(),
			ProjectRoot: cfg.ProjectRoot(),
			TypeWidth:   cfg.Output.SummaryTypeWidth,
			KindStyle:   ui.KindStyler(r),
		},
	}, nil
}

// encode writes entries to w with the session's rendering options.
func (s *session) encode(w io.Writer, settings output.Settings, entries []*types.Entry) error {
	settings.Format = s.format
	enc, err := output.New(settings)
	if err != nil {
		return err
	}
	return enc.Encode(w, entries)
}

// symbolCompletion completes the query argument from the index.
func (a *app) symbolCompletion(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	s, err := a.session(cmd)
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	entries, err := s.resolver.Complete(toComplete)
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}

	seen := map[string]bool{}
	var names []string
	for _, e := range entries {
		name := format.Qualified(e, s.format.Scope)
		if full := e.FullPath(); strings.HasPrefix(full, toComplete) && !strings.HasPrefix(name, toComplete) {
			name = full
		}
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}

// PrintError writes err to w in the Error style.
func PrintError(w io.Writer, err error) {
	r := ui.NewRenderer(w, ui.ColorAuto)
	_, _ = fmt.Fprintln(w, errorMessage(r, err))
}

func errorMessage(r *lipgloss.Renderer, err error) string {
	lipbalm.SetDefaultRenderer(r)
	details := errors.GetErrorDetails(err)

	tmpl, data := "", map[string]string{}
	switch errors.GetErrorCode(err) {
	case errors.ErrNotFound:
		if q, ok := details["query"].(string); ok {
			tmpl, data["Query"] = MsgNotFound, lipbalm.Escape(q)
		}
	case errors.ErrUsage:
		if def, ok := details["default"].(string); ok {
			tmpl, data["Default"] = MsgNoIndex, lipbalm.Escape(def)
		}
	}
	if tmpl != "" {
		if msg, rerr := lipbalm.Render(tmpl, data, ui.MessageStyles()); rerr == nil {
			return msg
		}
	}
	return ui.RenderMessage(r, "<Error>Error:</Error> "+lipbalm.Escape(err.Error()))
}
