/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package main

import (
	"fmt"

	"dirpx.dev/dstatus/apis"
	"dirpx.dev/dstatus/code"
	"dirpx.dev/dstatus/reason"
	"github.com/spf13/cobra"
)

func newExplainCommand(load func() (apis.Mapper, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "explain CODE [REASON]",
		Short: "Show which rule decides the tentative gRPC code",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := code.Parse(args[0])
			if err != nil {
				return fmt.Errorf("code %q: %w", args[0], err)
			}
			r := reason.Empty
			if len(args) == 2 {
				if r, err = reason.Parse(args[1]); err != nil {
					return fmt.Errorf("reason %q: %w", args[1], err)
				}
			}
			m, err := load()
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), m.Explain(c, r))
			return err
		},
	}
}
