package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/lixenwraith/termkit/backend"
	"github.com/lixenwraith/termkit/backend/ansi"
	"github.com/lixenwraith/termkit/backend/tc"
	"github.com/lixenwraith/termkit/gui"
	"github.com/lixenwraith/termkit/theme"
	"github.com/lixenwraith/termkit/views"
)

func main() {
	driver := flag.String("driver", "ansi", "terminal driver: ansi or tcell")
	themePath := flag.String("theme", "", "path to a TOML theme file")
	flag.Parse()

	b, err := newBackend(*driver)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	app := gui.New(b)
	if *themePath != "" {
		t, err := theme.Load(*themePath)
		if err != nil {
			b.Finish()
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		app.SetTheme(t)
	}

	counter := 0
	app.AddLayer(
		views.Around(views.NewNamed("status", views.NewTextView(statusText(0)))).
			Title("termkit").
			Button("Count", func(ctx views.Context) {
				counter++
				text := statusText(counter)
				app.CallOnAny("status", func(v views.View) {
					v.(*views.TextView).SetContent(text)
				})
			}).
			Button("About", func(ctx views.Context) {
				ctx.AddLayer(views.Info("A small dialog toolkit.\nArrows and Tab move focus."))
			}).
			Button("Quit", func(ctx views.Context) {
				ctx.Quit()
			}),
	)

	app.Run()
}

func newBackend(driver string) (backend.Backend, error) {
	switch driver {
	case "ansi":
		return ansi.New(ansi.Config{})
	case "tcell":
		return tc.New()
	}
	return nil, fmt.Errorf("unknown driver %q", driver)
}

func statusText(n int) string {
	return fmt.Sprintf("Hello from termkit!\n\nButton presses: %d", n)
}
