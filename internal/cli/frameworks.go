package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/SwagCode4U/projectmaker/internal/framework"
)

var frameworksCmd = &cobra.Command{
	Use:   "frameworks",
	Short: "List supported backend and frontend frameworks",
	RunE:  runFrameworks,
}

func init() {
	rootCmd.AddCommand(frameworksCmd)
}

func runFrameworks(cmd *cobra.Command, _ []string) error {
	reg := newRegistry()
	out := cmd.OutOrStdout()

	for _, section := range []struct {
		title string
		ns    framework.Namespace
	}{
		{"Backend", framework.Backend},
		{"Frontend", framework.Frontend},
	} {
		ids := reg.Registered(section.ns)
		sort.Strings(ids)

		pairs := make([]kvPair, 0, len(ids))
		for _, id := range ids {
			port := "-"
			if meta, ok := reg.Meta(id, section.ns); ok && meta.DevPort > 0 {
				port = fmt.Sprintf("dev port %d", meta.DevPort)
			}
			pairs = append(pairs, kvPair{displayName(id), port})
		}
		_, _ = fmt.Fprintln(out, renderCard(section.title+" Frameworks", renderKeyValueLines(pairs)))
	}
	return nil
}
