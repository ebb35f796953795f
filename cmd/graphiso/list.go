package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/TimelessP/graphisomorphism/internal/fixture"
)

var (
	// Style definitions
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	nameStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14"))

	defaultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("12"))
)

type ListCmd struct{}

func (c *ListCmd) Run() error {
	fmt.Println(headerStyle.Render("Registered fixtures"))
	for _, f := range fixture.All() {
		defaults := fmt.Sprintf("seed=%d", f.DefaultSeed)
		if f.TakesText {
			defaults = fmt.Sprintf("text=%q %s", f.DefaultText, defaults)
		}
		fmt.Printf("  %s  %s\n", nameStyle.Render(f.Name), defaultStyle.Render(defaults))
	}
	return nil
}
