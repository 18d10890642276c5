package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/collectiontypes/internal/sqlite"
	"github.com/mesh-intelligence/collectiontypes/pkg/types"
)

func (a *app) newExportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export",
		Short: "Write the catalog to SQLite and JSONL files",
		Long: `Export writes collectiontypes.db, collection_types.jsonl, platforms.jsonl,
and sequences.jsonl into the export directory, replacing earlier exports.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dataDir, err := a.resolveDataDir()
			if err != nil {
				return sysError(fmt.Errorf("resolve data dir: %w", err))
			}

			summary, err := sqlite.NewExporter(dataDir, a.log).Export(cmd.Context(), a.catalog)
			if err != nil {
				return sysError(fmt.Errorf("export: %w", err))
			}

			result := map[string]any{
				"data_dir":         summary.DataDir,
				"db":               summary.DBPath,
				"collection_types": summary.CollectionTypes,
				"platforms":        summary.Platforms,
				"entries":          summary.Entries,
			}
			return a.render(cmd.OutOrStdout(), result, func(w io.Writer) {
				fmt.Fprintf(w, "Exported %d platforms (%d entries) to %s\n",
					summary.Platforms, summary.Entries, summary.DataDir)
			})
		},
	}
}

func (a *app) newVerifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify",
		Short: "Check that an export matches the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dataDir, err := a.resolveDataDir()
			if err != nil {
				return sysError(fmt.Errorf("resolve data dir: %w", err))
			}

			store, err := sqlite.Open(dataDir)
			if err != nil {
				if errors.Is(err, types.ErrExportMissing) {
					return userError(err)
				}
				return sysError(err)
			}
			defer store.Close()

			if err := store.Verify(cmd.Context(), a.catalog); err != nil {
				if errors.Is(err, types.ErrExportMismatch) {
					return userError(err)
				}
				return sysError(err)
			}

			a.log.WithField("data_dir", dataDir).Debug("export verified")
			return a.render(cmd.OutOrStdout(), map[string]any{"data_dir": dataDir, "match": true}, func(w io.Writer) {
				fmt.Fprintf(w, "Export in %s matches the catalog\n", dataDir)
			})
		},
	}
}
