package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/docsift/docsift/constants"
	"github.com/docsift/docsift/internal/export"
	"github.com/docsift/docsift/internal/ingest"
	"github.com/docsift/docsift/internal/pipeline"
)

func newBatchCmd(a *app) *cobra.Command {
	var (
		docType  string
		xlsxPath string
		jsonPath string
	)

	cmd := &cobra.Command{
		Use:   "batch <dir>",
		Short: "Extract every document under a directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("type") {
				docType = a.cfg.Extraction.DefaultDocType
			}
			dt, ok := constants.ParseDocType(docType)
			if !ok {
				return fmt.Errorf("unknown document type %q", docType)
			}
			paths, err := ingest.DiscoverFiles(args[0], nil)
			if err != nil {
				return err
			}
			if len(paths) == 0 {
				return fmt.Errorf("no recognized documents under %s", args[0])
			}

			runner := pipeline.NewBatchRunner(a.proc, a.log, a.cfg.Extraction.Workers, a.cfg.Extraction.FileTimeout)
			results := runner.Run(cmd.Context(), paths, dt)

			svc := export.NewService(a.log)
			if xlsxPath != "" {
				book, err := svc.InvoicesXLSX(results)
				if err != nil {
					return err
				}
				if err := os.WriteFile(xlsxPath, book, 0o644); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", xlsxPath)
			}

			out := cmd.OutOrStdout()
			if jsonPath != "" {
				f, err := os.Create(jsonPath)
				if err != nil {
					return err
				}
				defer f.Close()
				out = f
			}
			if jsonPath != "" || xlsxPath == "" {
				if err := svc.WriteJSONL(out, results); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&docType, "type", "t", "unknown", "document type applied to every file")
	cmd.Flags().StringVar(&xlsxPath, "xlsx", "", "write an invoice workbook to this path")
	cmd.Flags().StringVar(&jsonPath, "jsonl", "", "write JSON lines to this path instead of stdout")
	return cmd
}
