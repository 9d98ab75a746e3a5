package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
)

var headingsCmd = &cobra.Command{
	Use:   "headings",
	Short: "Print the section headings in use",
	Run: func(_ *cobra.Command, _ []string) {
		config, err := getConfig()
		if err != nil {
			log.Fatalf("getting a config: %s", err)
		}

		set, err := headingSet(config, nil)
		if err != nil {
			log.Fatalf("building the heading set: %s", err)
		}

		for _, label := range set.Labels() {
			fmt.Printf("%s\t%s\n", label, set.Canonical(label))
		}
	},
}

func init() {
	rootCmd.AddCommand(headingsCmd)
}
