package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	pathStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
)

// printSummary lists written files, styled when stdout is a terminal.
func printSummary(paths []string) {
	styled := isatty.IsTerminal(os.Stdout.Fd())

	for _, p := range paths {
		if styled {
			fmt.Println(successStyle.Render("wrote"), pathStyle.Render(p))
		} else {
			fmt.Println("wrote", p)
		}
	}
}
