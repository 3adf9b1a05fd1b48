package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *cli) healthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check that the backend and its store are reachable",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := c.client.Health(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(c.out, "status: %s\ndatabase: %s\n", h.Status, h.Database)
			if h.Message != "" {
				fmt.Fprintf(c.out, "message: %s\n", h.Message)
			}
			return nil
		},
	}
}
