package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmgilman/go/errno"
)

func (a *app) newListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print every code from 0 to --max that has a description",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			limit, err := a.maxCode(cmd)
			if err != nil {
				return err
			}
			return a.render(cmd.OutOrStdout(), known(limit, nil))
		},
	}
	cmd.Flags().Int("max", defaultMax, "highest code to consider")
	return cmd
}

func (a *app) newSearchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search WORD...",
		Short: "Print codes whose description contains every word",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			limit, err := a.maxCode(cmd)
			if err != nil {
				return err
			}

			words := make([]string, len(args))
			for i, w := range args {
				words[i] = strings.ToLower(w)
			}
			match := func(desc string) bool {
				desc = strings.ToLower(desc)
				for _, w := range words {
					if !strings.Contains(desc, w) {
						return false
					}
				}
				return true
			}

			codes := known(limit, match)
			a.log.WithField("matches", len(codes)).Debug("search complete")
			return a.render(cmd.OutOrStdout(), codes)
		},
	}
	cmd.Flags().Int("max", defaultMax, "highest code to consider")
	return cmd
}

// known returns the codes in [0, limit] that render successfully and, if
// match is non-nil, whose description satisfies match.
func known(limit int, match func(string) bool) []errno.Errno {
	var codes []errno.Errno
	for i := 0; i <= limit; i++ {
		code := errno.FromInt(int32(i))
		desc, err := code.Describe()
		if err != nil {
			continue
		}
		if match != nil && !match(desc) {
			continue
		}
		codes = append(codes, code)
	}
	return codes
}
