// Command board runs the terminal frontend against two configured backends.
package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/celery8911/nest-aws/internal/ui"
)

func main() {
	primaryURL := flag.String("primary", "http://localhost:3000", "primary backend base URL")
	primaryName := flag.String("primary-name", "local", "primary backend label")
	secondaryURL := flag.String("secondary", "", "secondary backend base URL")
	secondaryName := flag.String("secondary-name", "lambda", "secondary backend label")
	flag.Parse()

	if *secondaryURL == "" {
		// With a single backend the switcher just points both slots at it.
		*secondaryURL = *primaryURL
		*secondaryName = *primaryName
	}

	model := ui.NewModel(
		ui.Endpoint{Name: *primaryName, URL: *primaryURL},
		ui.Endpoint{Name: *secondaryName, URL: *secondaryURL},
	)

	if _, err := tea.NewProgram(model).Run(); err != nil {
		fmt.Fprintf(os.Stderr, "board: %v\n", err)
		os.Exit(1)
	}
}
