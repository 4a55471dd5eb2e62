package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/a-h/templ"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/pthm/compkit"
	"github.com/pthm/compkit/lib/encoding"
	"github.com/pthm/compkit/lib/logging"
	"github.com/pthm/compkit/lib/markup"
)

const version = "0.1.0"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbosity int

	root := &cobra.Command{
		Use:           "compkit",
		Short:         "Render and check component catalogs",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.Setup(verbosity)
		},
	}
	root.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "increase log verbosity (-v info, -vv debug, -vvv trace)")

	root.AddCommand(newRenderCmd(), newValidateCmd(), newConvertCmd(), newVersionCmd())
	return root
}

type renderFlags struct {
	catalog  string
	variants []string
	class    string
	tag      string
	attrs    []string
	options  []string
	raw      bool
}

func newRenderCmd() *cobra.Command {
	var f renderFlags

	cmd := &cobra.Command{
		Use:   "render <component> [content]",
		Short: "Render one component call to HTML on stdout",
		Example: `  compkit render list "Content" --catalog components.yaml --variant flush
  compkit render divider --catalog components.yaml --class extra`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := compkit.OpenCatalog(f.catalog, builtinDelegates(), compkit.WithLogger(engineLogger()))
			if err != nil {
				return err
			}

			call, err := f.call(args[1:])
			if err != nil {
				return err
			}

			node, err := reg.Render(args[0], call)
			if err != nil {
				return err
			}
			if err := node.Render(cmd.Context(), cmd.OutOrStdout()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout())
			return nil
		},
	}

	cmd.Flags().StringVarP(&f.catalog, "catalog", "c", "components.yaml", "catalog file (.yaml, .toml, .msgpack)")
	cmd.Flags().StringSliceVar(&f.variants, "variant", nil, "variant to activate (repeatable)")
	cmd.Flags().StringVar(&f.class, "class", "", "extra classes appended last")
	cmd.Flags().StringVar(&f.tag, "tag", "", "override the element tag")
	cmd.Flags().StringArrayVar(&f.attrs, "attr", nil, "attribute as key=value (repeatable)")
	cmd.Flags().StringArrayVar(&f.options, "option", nil, "option as key or key=value (repeatable)")
	cmd.Flags().BoolVar(&f.raw, "raw", false, "treat content as trusted markup instead of text")
	return cmd
}

func (f renderFlags) call(content []string) (compkit.Call, error) {
	opts := compkit.Options{}
	for _, kv := range f.attrs {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || k == "" {
			return compkit.Call{}, fmt.Errorf("attribute %q is not key=value", kv)
		}
		opts[k] = v
	}
	for _, kv := range f.options {
		k, v, ok := strings.Cut(kv, "=")
		if k == "" {
			return compkit.Call{}, fmt.Errorf("option %q has no name", kv)
		}
		opts[k] = optionValue(v, ok)
	}
	if f.class != "" {
		opts[compkit.KeyClass] = f.class
	}
	if f.tag != "" {
		opts[compkit.KeyTag] = f.tag
	}

	call := compkit.Call{Variants: f.variants, Options: opts}
	if len(content) > 0 {
		if f.raw {
			call.Content = compkit.Raw(content[0])
		} else {
			call.Content = compkit.Text(content[0])
		}
	}
	return call, nil
}

// optionValue turns "--option flag" into true and parses booleans, so
// "--option flag=false" switches an option off.
func optionValue(v string, hasValue bool) any {
	if !hasValue {
		return true
	}
	if b, err := strconv.ParseBool(v); err == nil {
		return b
	}
	return v
}

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <catalog>",
		Short: "Load a catalog and check every component definition",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := compkit.OpenCatalog(args[0], builtinDelegates())
			if err != nil {
				return err
			}
			names := reg.Names()
			for _, name := range names {
				c, _ := reg.Get(name)
				fmt.Fprintf(cmd.OutOrStdout(), "%-24s %s\n", name, c.Strategy())
			}
			logging.GetLogger("cli").Info().Int("components", len(names)).Str("catalog", args[0]).Msg("catalog valid")
			return nil
		},
	}
}

// engineLogger is the logger handed to the engine. The engine tags each
// entry with the component name itself.
func engineLogger() zerolog.Logger {
	return log.Logger
}

func newConvertCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "convert <in> <out>",
		Short: "Re-encode a catalog, choosing formats from the file extensions",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := encoding.ReadFile(args[0])
			if err != nil {
				return err
			}
			if err := encoding.WriteFile(args[1], doc); err != nil {
				return err
			}
			logging.GetLogger("cli").Info().Str("from", args[0]).Str("to", args[1]).Int("components", len(doc.Components)).Msg("catalog converted")
			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "compkit version %s\n", version)
		},
	}
}

// builtinDelegates are the delegates every catalog loaded by the command
// can refer to.
func builtinDelegates() map[string]*compkit.Delegate {
	html := markup.HTML{}
	return map[string]*compkit.Delegate{
		// link renders an anchor; catalogs pass href through attributes.
		"link": compkit.DelegateFunc(func(children templ.Component, attrs templ.Attributes) templ.Component {
			return html.ContentTag("a", children, attrs)
		}),
		// element renders whatever tag the component declares.
		"element": compkit.DelegateTagFunc(func(tag string, children templ.Component, attrs templ.Attributes) templ.Component {
			return html.ContentTag(tag, children, attrs)
		}),
	}
}
