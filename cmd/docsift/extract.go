package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/docsift/docsift/constants"
)

func newExtractCmd(a *app) *cobra.Command {
	var docType string

	cmd := &cobra.Command{
		Use:   "extract <file>",
		Short: "Extract fields from a single document and print JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("type") {
				docType = a.cfg.Extraction.DefaultDocType
			}
			dt, ok := constants.ParseDocType(docType)
			if !ok {
				return fmt.Errorf("unknown document type %q", docType)
			}
			res := a.proc.ProcessFile(cmd.Context(), args[0], dt)
			if res.Status == constants.JobStatusFailed {
				return fmt.Errorf("%s", res.Err)
			}
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(res)
		},
	}
	cmd.Flags().StringVarP(&docType, "type", "t", "unknown", "document type (invoice|contract|resume|legal|unknown)")
	return cmd
}
