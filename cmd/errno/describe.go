package main

import (
	"github.com/spf13/cobra"

	"github.com/jmgilman/go/errno"
)

func (a *app) newDescribeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "describe CODE...",
		Short: "Print the description of each code",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			codes := make([]errno.Errno, 0, len(args))
			for _, arg := range args {
				code, err := parseCode(arg)
				if err != nil {
					return err
				}
				codes = append(codes, code)
			}
			return a.render(cmd.OutOrStdout(), codes)
		},
	}
}
