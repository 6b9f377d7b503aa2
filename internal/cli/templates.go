package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/scope-labs/mkbpf/internal/scaffold"
	"github.com/spf13/cobra"
)

func newTemplatesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "templates [app_name]",
		Short: "List the files an application is generated from",
		Long: `List the embedded template set in output order. With an application name the
rendered filenames are shown next to their patterns.`,
		Args: usageArgs(cobra.MaximumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := scaffold.TemplateSet()
			if err != nil {
				return err
			}

			var files []scaffold.RenderedFile
			if len(args) == 1 {
				if err := scaffold.ValidateName(args[0]); err != nil {
					return err
				}
				if files, err = scaffold.Render(scaffold.NewRequest(args[0])); err != nil {
					return err
				}
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Template set %q: %s\n\n", set.Name, set.Description)

			w := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
			if files == nil {
				fmt.Fprintln(w, "ROLE\tPATTERN\tTEMPLATE")
				for _, f := range set.Files {
					fmt.Fprintf(w, "%s\t%s\t%s\n", f.Role, f.Path, f.Template)
				}
			} else {
				fmt.Fprintln(w, "ROLE\tPATTERN\tFILE")
				for i, f := range set.Files {
					fmt.Fprintf(w, "%s\t%s\t%s\n", f.Role, f.Path, files[i].Name)
				}
			}
			return w.Flush()
		},
	}
	cmd.AddCommand(newTemplatesShowCmd())
	return cmd
}

func newTemplatesShowCmd() *cobra.Command {
	var (
		name       string
		appVersion string
		bugAddress string
	)

	cmd := &cobra.Command{
		Use:   "show <role|filename>",
		Short: "Print one rendered file without writing anything",
		Long: `Render a single file of the template set to stdout. The file is selected by
role (header, probe, loader) or by its rendered filename.

Example:
  mkbpf templates show probe --name execsnoop`,
		Args: usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := scaffold.NewRequest(name)
			if appVersion != "" {
				req.Version = appVersion
			}
			if bugAddress != "" {
				req.BugAddress = bugAddress
			}
			if err := req.Validate(false); err != nil {
				return err
			}

			f, err := scaffold.RenderFile(req, args[0])
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(f.Content)
			return err
		},
	}
	cmd.Flags().StringVar(&name, "name", "app", "Application name to render with")
	cmd.Flags().StringVar(&appVersion, "app-version", "", "Program version written into the loader")
	cmd.Flags().StringVar(&bugAddress, "bug-address", "", "Bug report address written into the loader")
	return cmd
}
