package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tristendillon/stitch/core/config"
	"github.com/tristendillon/stitch/core/models"
	"github.com/tristendillon/stitch/core/resolver"
)

var (
	resolveSource  string
	resolveName    string
	resolveType    string
	resolveKind    string
	resolveNamed   []string
	resolveDefault string
)

// resolveCmd resolves a single import without a manifest, straight from flags.
var resolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Resolve one import path from flags",
	Long: `Resolves the relative import path from a source file to one target
using the layout policy in stitch.yaml. With --kind, renders the full
import/require statement instead of just the path.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to get config: %w", err)
		}
		policy, err := cfg.Policy()
		if err != nil {
			return fmt.Errorf("failed to build layout policy: %w", err)
		}

		descriptor := models.TargetDescriptor{
			SourceFilePath: resolveSource,
			TargetName:     resolveName,
			TargetType:     resolveType,
		}

		var result string
		if resolveKind == "" {
			result = resolver.ResolveImportPath(descriptor, policy)
		} else {
			result = resolver.GenerateImportStatement(models.StatementRequest{
				TargetDescriptor:  descriptor,
				Kind:              models.StatementKind(resolveKind),
				NamedExports:      resolveNamed,
				DefaultExportName: resolveDefault,
			}, policy)
		}

		if result == "" {
			os.Exit(1)
		}
		fmt.Println(result)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(resolveCmd)

	resolveCmd.Flags().StringVar(&resolveSource, "source", "", "File that will contain the import")
	resolveCmd.Flags().StringVar(&resolveName, "name", "", "Logical target name")
	resolveCmd.Flags().StringVar(&resolveType, "type", "", "Logical target type")
	resolveCmd.Flags().StringVar(&resolveKind, "kind", "", "Statement kind (typed-import, value-import, commonjs-require)")
	resolveCmd.Flags().StringSliceVar(&resolveNamed, "named", nil, "Named exports, in order")
	resolveCmd.Flags().StringVar(&resolveDefault, "default", "", "Default export name")
	resolveCmd.MarkFlagRequired("source")
	resolveCmd.MarkFlagRequired("name")
}
