package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/espdhub/qualimport/internal/registry"
)

// DefsResult holds the summary of a loaded definition set.
type DefsResult struct {
	Valid        bool `json:"valid"`
	Requirements int  `json:"requirements"`
	Groups       int  `json:"groups"`
}

// RequirementInfo is one requirement definition as listed by defs list.
type RequirementInfo struct {
	ID          string   `json:"id"`
	Description string   `json:"description"`
	Response    string   `json:"response"`
	Fields      []string `json:"fields"`
}

// NewDefsCommand creates the defs command group.
func NewDefsCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "defs",
		Short: "Inspect the definition set",
	}

	cmd.AddCommand(newDefsValidateCommand(rootOpts))
	cmd.AddCommand(newDefsListCommand(rootOpts))

	return cmd
}

func newDefsValidateCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate the definition set",
		Long: `Load and validate the definition set without importing anything.

Checks id uniqueness, alias targets, response types, and the field list
shape of every requirement definition.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := &OutputFormatter{
				Format:    rootOpts.Format,
				Writer:    cmd.OutOrStdout(),
				ErrWriter: cmd.ErrOrStderr(),
				Verbose:   rootOpts.Verbose,
			}

			reg, err := loadRegistry(rootOpts, formatter)
			if err != nil {
				return err
			}

			result := DefsResult{
				Valid:        true,
				Requirements: reg.RequirementCount(),
				Groups:       reg.GroupCount(),
			}
			if formatter.Format == "json" {
				return formatter.Success(result)
			}
			fmt.Fprintf(formatter.Writer, "✓ Definition set valid: %d requirements, %d groups\n",
				result.Requirements, result.Groups)
			return nil
		},
	}
}

func newDefsListCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List requirement definitions",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := &OutputFormatter{
				Format:    rootOpts.Format,
				Writer:    cmd.OutOrStdout(),
				ErrWriter: cmd.ErrOrStderr(),
				Verbose:   rootOpts.Verbose,
			}

			reg, err := loadRegistry(rootOpts, formatter)
			if err != nil {
				return err
			}

			infos := listRequirements(reg)
			if formatter.Format == "json" {
				return formatter.Success(infos)
			}
			for _, info := range infos {
				fmt.Fprintf(formatter.Writer, "%s  %-16s %-28s %s\n",
					info.ID, info.Response, strings.Join(info.Fields, ","), info.Description)
			}
			return nil
		},
	}
}

func listRequirements(reg *registry.Registry) []RequirementInfo {
	defs := reg.Requirements()
	infos := make([]RequirementInfo, 0, len(defs))
	for _, def := range defs {
		infos = append(infos, RequirementInfo{
			ID:          def.ID,
			Description: def.Description,
			Response:    string(def.Response),
			Fields:      def.Fields,
		})
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].ID < infos[j].ID })
	return infos
}
