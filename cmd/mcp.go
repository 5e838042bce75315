package cmd

import (
	"github.com/huangsam/gitintel/internal/contract"
	"github.com/huangsam/gitintel/internal/mcp"
	"github.com/spf13/cobra"
)

// mcpCmd represents the mcp command.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the Gitintel MCP server",
	Long:  `Launch an MCP server that allows AI agents to query commit history analytics via standard tools.`,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		// Stdio carries the protocol, so setup must not print to stdout.
		return sharedSetup(rootCtx, cmd, args)
	},
	RunE: func(_ *cobra.Command, _ []string) error {
		var ml contract.TextClassifier = contract.NoopClassifier{}
		if cfg.MLCommand != "" {
			ml = contract.NewExecClassifier(cfg.MLCommand)
		}
		return mcp.StartMCPServer(rootCtx, cfg, gitClient, contract.NewMailmapResolver(cfg.RepoPath), ml)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
