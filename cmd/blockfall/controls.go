package main

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockfall/internal/platform/tui"
)

var controlsCmd = &cobra.Command{
	Use:   "controls",
	Short: "Show key bindings",
	Args:  cobra.NoArgs,
	Run:   runControls,
}

func runControls(cmd *cobra.Command, args []string) {
	h := help.New()
	h.ShowAll = true

	fmt.Println("Controls:")
	fmt.Println()
	fmt.Println(h.View(tui.DefaultKeyMap()))
	fmt.Println()
	fmt.Println("The window frontend uses the same keys.")
}
