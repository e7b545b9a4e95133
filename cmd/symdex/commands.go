package symdex

import (
	"fmt"

	"github.com/arthur-debert/symdex/pkg/errors"
	"github.com/arthur-debert/symdex/pkg/format"
	"github.com/arthur-debert/symdex/pkg/logging"
	"github.com/arthur-debert/symdex/pkg/output"
	"github.com/arthur-debert/symdex/pkg/resolver"
	"github.com/spf13/cobra"
)

func (a *app) newCompleteCmd() *cobra.Command {
	var (
		sexp bool
		tmpl string
	)

	cmd := &cobra.Command{
		Use:     "complete <prefix>",
		Short:   MsgCompleteShort,
		Long:    MsgCompleteLong,
		Example: MsgCompleteExample,
		GroupID: "query",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			settings := output.Settings{
				Sexp:        sexp,
				Template:    tmpl,
				HasTemplate: cmd.Flags().Changed("format"),
			}
			// Reject conflicting output flags before touching the index
			if _, err := output.New(settings); err != nil {
				return err
			}

			s, err := a.session(cmd)
			if err != nil {
				return err
			}
			entries, err := s.resolver.Complete(args[0])
			if err != nil {
				return err
			}
			logger := logging.GetLogger("complete")
			logger.Debug().
				Str("prefix", args[0]).
				Int("entries", len(entries)).
				Msg("Completed prefix")
			return s.encode(cmd.OutOrStdout(), settings, entries)
		},
	}

	cmd.Flags().BoolVar(&sexp, "sexp", false, MsgFlagSexp)
	cmd.Flags().StringVarP(&tmpl, "format", "f", "", MsgFlagFormat)

	return cmd
}

func (a *app) newTypeCmd() *cobra.Command {
	return &cobra.Command{
		Use:               "type <query>",
		Short:             MsgTypeShort,
		Long:              MsgTypeLong,
		Example:           MsgTypeExample,
		GroupID:           "query",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: a.symbolCompletion,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.session(cmd)
			if err != nil {
				return err
			}
			entry, err := s.resolver.ResolveUnique(args[0])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), format.Project(format.DirType, entry, s.format))
			return err
		},
	}
}

func (a *app) newLocateCmd() *cobra.Command {
	var iface bool

	cmd := &cobra.Command{
		Use:               "locate <query>",
		Short:             MsgLocateShort,
		Long:              MsgLocateLong,
		Example:           MsgLocateExample,
		GroupID:           "query",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: a.symbolCompletion,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.session(cmd)
			if err != nil {
				return err
			}

			prefer := s.cfg.PreferInterface()
			if cmd.Flags().Changed("interface") {
				prefer = iface
			}

			entries, effective, err := s.resolver.ResolveLocation(args[0], prefer)
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				return resolver.NotFound(args[0])
			}

			tmpl := "%l"
			if effective {
				tmpl = "%s"
			}
			return s.encode(cmd.OutOrStdout(), output.Settings{Template: tmpl, HasTemplate: true}, entries)
		},
	}

	cmd.Flags().BoolVarP(&iface, "interface", "i", false, MsgFlagInterface)

	return cmd
}

func (a *app) newPrintCmd() *cobra.Command {
	var sexp bool

	cmd := &cobra.Command{
		Use:     "print <query> [format]",
		Short:   MsgPrintShort,
		Long:    MsgPrintLong,
		Example: MsgPrintExample,
		GroupID: "query",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 || len(args) > 2 {
				return errors.Newf(errors.ErrUsage, MsgErrMaxArgs, len(args))
			}
			return nil
		},
		ValidArgsFunction: a.symbolCompletion,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings := output.Settings{Sexp: sexp}
			if len(args) == 2 {
				settings.Template, settings.HasTemplate = args[1], true
			}
			if _, err := output.New(settings); err != nil {
				return err
			}

			s, err := a.session(cmd)
			if err != nil {
				return err
			}
			entries, err := s.resolver.ResolveAll(args[0])
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				return resolver.NotFound(args[0])
			}
			return s.encode(cmd.OutOrStdout(), settings, entries)
		},
	}

	cmd.Flags().BoolVar(&sexp, "sexp", false, MsgFlagSexp)

	return cmd
}

func (a *app) newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "config",
		Short:   MsgConfigShort,
		Long:    MsgConfigLong,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.loadConfig(cmd)
			if err != nil {
				return err
			}
			data, err := cfg.TOML()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		GroupID:               "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(out)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return errors.Newf(errors.ErrUsage, "unsupported shell: %s", args[0])
		},
	}
}
