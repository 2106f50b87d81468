package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hupe1980/sorttrace"
)

func runList(cmd *cobra.Command, _ []string) error {
	st := sorttrace.New()
	infos := st.Algorithms()
	out := cmd.OutOrStdout()

	if jsonOut {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(infos)
	}

	for _, info := range infos {
		fmt.Fprintf(out, "%-20s %s\n", info.Name, info.Description)
	}
	return nil
}
