package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/collectiontypes/pkg/types"
)

func (a *app) newLabelsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "labels",
		Short: "Print the collection type vocabulary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			labels := make([]string, 0, 10)
			for _, ct := range types.CollectionTypes() {
				labels = append(labels, ct.String())
			}
			return a.render(cmd.OutOrStdout(), labels, func(w io.Writer) {
				for _, l := range labels {
					fmt.Fprintln(w, l)
				}
			})
		},
	}
}

func (a *app) newPlatformsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "platforms",
		Short: "Print the platforms the catalog covers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			names := make([]string, 0, 4)
			for _, p := range a.catalog.Platforms() {
				names = append(names, p.String())
			}
			return a.render(cmd.OutOrStdout(), names, func(w io.Writer) {
				for _, n := range names {
					fmt.Fprintln(w, n)
				}
			})
		},
	}
}

func (a *app) newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <platform>",
		Short: "Print the collection type hierarchy for one platform",
		Long: `Show prints the ordered collection types for a platform, outermost first.

Valid platforms: pacBio, illuminaMiSeqProject, illuminaMiSeqReport, illuminaHiSeqProject

Example:
  collectiontypes show illuminaMiSeqReport
  collectiontypes show pacBio -o json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := types.ParsePlatform(args[0])
			if err != nil {
				return userError(err)
			}
			seq, _ := a.catalog.Lookup(p)

			view := sequenceView{Platform: p.String(), CollectionTypes: seq}
			return a.render(cmd.OutOrStdout(), view, func(w io.Writer) {
				fmt.Fprintf(w, "%s: %s\n", p, seq)
			})
		},
	}
}

func (a *app) newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print every platform hierarchy",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			views := make([]sequenceView, 0, 4)
			for _, p := range a.catalog.Platforms() {
				seq, _ := a.catalog.Lookup(p)
				views = append(views, sequenceView{Platform: p.String(), CollectionTypes: seq})
			}
			return a.render(cmd.OutOrStdout(), views, func(w io.Writer) {
				for _, v := range views {
					fmt.Fprintf(w, "%-22s %s\n", v.Platform, v.CollectionTypes)
				}
			})
		},
	}
}

func (a *app) newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <platform> <collection-type>...",
		Short: "Check that a path follows a platform's hierarchy",
		Long: `Validate checks that the given collection types, outermost first, are the
leading levels of the platform's hierarchy. A partial path is valid.

Example:
  collectiontypes validate illuminaMiSeqReport Platform Analysis
  collectiontypes validate pacBio Platform Development Project Run Sample`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := types.ParsePlatform(args[0])
			if err != nil {
				return userError(err)
			}

			path := make([]types.CollectionType, 0, len(args)-1)
			for _, label := range args[1:] {
				ct, err := types.ParseCollectionType(label)
				if err != nil {
					return userError(err)
				}
				path = append(path, ct)
			}

			if err := a.catalog.ValidatePath(p, path); err != nil {
				a.log.WithField("platform", p.String()).WithError(err).Debug("path rejected")
				return userError(err)
			}

			result := map[string]any{
				"platform": p.String(),
				"path":     types.NewSequence(path...),
				"valid":    true,
			}
			return a.render(cmd.OutOrStdout(), result, func(w io.Writer) {
				fmt.Fprintf(w, "valid: %s\n", types.NewSequence(path...))
			})
		},
	}
}
