package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/laws2020/nigeriaPITaudit/internal/tui"
)

func main() {
	// Get payroll file path from arguments
	payrollPath := ""
	if len(os.Args) > 1 {
		payrollPath = os.Args[1]
	} else {
		fmt.Println("Usage: pitaudit-tui <payroll-csv>")
		os.Exit(1)
	}

	// Check if payroll file exists
	if _, err := os.Stat(payrollPath); os.IsNotExist(err) {
		fmt.Printf("Error: Payroll file not found: %s\n", payrollPath)
		os.Exit(1)
	}

	// Create the application model
	model := tui.NewModel(payrollPath)

	// Create the Bubble Tea program
	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Enable mouse support
	)

	// Run the program
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running TUI: %v\n", err)
		os.Exit(1)
	}
}
