package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"goa.design/goa/v3/codegen"

	"goa.design/facet/dispatch"
	"goa.design/facet/emit"
	"goa.design/facet/model"
)

// BuildCommand assembles a runnable cobra command tree for the service,
// dispatching every subcommand through the invoker. Results print as indented
// JSON on stdout; failures surface as errors whose exit code ExitCode maps
// from the failure category.
func BuildCommand(svc *model.Service, inv *dispatch.Invoker) *cobra.Command {
	root := &cobra.Command{
		Use:           codegen.KebabCase(svc.Name),
		Short:         svc.Name + " command line client",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	for _, m := range emit.Exposed(svc) {
		root.AddCommand(subcommand(m, inv))
	}
	return root
}

func subcommand(m *model.Method, inv *dispatch.Invoker) *cobra.Command {
	var (
		positionals []*model.Param
		flagged     []*model.Param
	)
	for _, p := range m.WireParams() {
		if p.Required() {
			positionals = append(positionals, p)
		} else {
			flagged = append(flagged, p)
		}
	}

	use := m.Op.Subcommand
	for _, p := range positionals {
		use += fmt.Sprintf(" <%s>", codegen.KebabCase(p.WireName))
	}
	flagVals := make(map[string]*string, len(flagged))

	method := m.Name
	cmd := &cobra.Command{
		Use:    use,
		Short:  m.Doc,
		Hidden: m.Visibility == model.VisibilityHidden,
		Args:   cobra.ExactArgs(len(positionals)),
		RunE: func(cmd *cobra.Command, args []string) error {
			call := make(map[string]any, len(args)+len(flagVals))
			for i, p := range positionals {
				call[p.WireName] = parseToken(args[i])
			}
			for _, p := range flagged {
				if cmd.Flags().Changed(codegen.KebabCase(p.WireName)) {
					call[p.WireName] = parseToken(*flagVals[p.WireName])
				}
			}
			res, err := inv.InvokeContext(cmd.Context(), method, call, dispatch.ContextFromEnv())
			if err != nil {
				return err
			}
			out, err := json.MarshalIndent(res, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		},
	}
	for _, p := range flagged {
		name := codegen.KebabCase(p.WireName)
		usage := p.Type.String()
		if p.Default != nil {
			usage += fmt.Sprintf(" (default %v)", p.Default)
		}
		flagVals[p.WireName] = cmd.Flags().String(name, "", usage)
	}
	return cmd
}

// parseToken interprets a command-line token as a JSON value when possible so
// numbers, booleans and structured literals round-trip; anything else stays a
// string.
func parseToken(s string) any {
	var v any
	if err := json.Unmarshal([]byte(s), &v); err == nil {
		return v
	}
	return s
}

// ExitCode maps a command error to the process exit code: dispatch failures
// use their category's code, everything else exits 1.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var resp *dispatch.ErrorResponse
	if errors.As(err, &resp) {
		return resp.Code.ExitCode()
	}
	return 1
}
