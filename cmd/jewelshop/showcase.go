package main

import (
	"github.com/spf13/cobra"

	"github.com/sghaida/jewelshop/internal/showcase"
)

func (a *app) showcaseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "showcase",
		Short: "Print one line per jewelry building block",
		Args:  cobra.NoArgs,
		RunE:  a.runShowcase,
	}
}

func (a *app) runShowcase(cmd *cobra.Command, args []string) error {
	return showcase.Run(cmd.OutOrStdout(), a.cfg.Showcase, a.logger)
}
