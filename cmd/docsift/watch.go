package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/docsift/docsift/constants"
	"github.com/docsift/docsift/internal/ingest"
)

func newWatchCmd(a *app) *cobra.Command {
	var docType string

	cmd := &cobra.Command{
		Use:   "watch [dir...]",
		Short: "Watch directories and extract documents as they arrive",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("type") {
				docType = a.cfg.Extraction.DefaultDocType
			}
			dt, ok := constants.ParseDocType(docType)
			if !ok {
				return fmt.Errorf("unknown document type %q", docType)
			}
			roots := args
			if len(roots) == 0 {
				roots = a.cfg.Ingest.Roots
			}
			if len(roots) == 0 {
				return errors.New("no directories given and ingest.roots is empty")
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			files, errs, err := ingest.StartWatcher(ctx, ingest.WatchConfig{
				Roots:       roots,
				InitialScan: a.cfg.Ingest.InitialScan,
				Debounce:    a.cfg.Ingest.Debounce,
			}, a.log)
			if err != nil {
				return err
			}
			a.log.Info("watch.started", "roots", roots)

			enc := json.NewEncoder(cmd.OutOrStdout())
			for {
				select {
				case <-ctx.Done():
					return nil
				case werr, ok := <-errs:
					if !ok {
						return nil
					}
					a.log.Error("watch.error", "err", werr)
				case path, ok := <-files:
					if !ok {
						return nil
					}
					res := a.proc.ProcessFile(ctx, path, dt)
					if err := enc.Encode(res); err != nil {
						return err
					}
				}
			}
		},
	}
	cmd.Flags().StringVarP(&docType, "type", "t", "unknown", "document type applied to every file")
	return cmd
}
