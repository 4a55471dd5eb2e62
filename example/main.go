// Command example renders a static todo page with the example component
// library and writes it to stdout.
package main

import (
	"context"
	"os"

	"github.com/a-h/templ"
	"github.com/rs/zerolog/log"

	"github.com/pthm/compkit"
	"github.com/pthm/compkit/example/components"
	"github.com/pthm/compkit/lib/logging"
)

func main() {
	logging.Setup(1)

	reg := compkit.NewRegistry(compkit.WithLogger(log.Logger))
	components.Init(reg)

	page, err := Page(NewStore().List())
	if err != nil {
		log.Fatal().Err(err).Msg("render page")
	}
	if err := page.Render(context.Background(), os.Stdout); err != nil {
		log.Fatal().Err(err).Msg("write page")
	}
	log.Info().Strs("components", reg.Names()).Msg("page rendered")
}

// Page lays out the navigation, the todo card and its actions.
func Page(todos []components.Todo) (templ.Component, error) {
	c := components.C

	home, err := c.NavLink.Variant("active")(compkit.Call{Content: compkit.Text("Todos"), Options: compkit.Options{"href": "/"}})
	if err != nil {
		return nil, err
	}
	about, err := c.NavLink.Render(compkit.Call{Content: compkit.Text("About"), Options: compkit.Options{"href": "/about"}})
	if err != nil {
		return nil, err
	}

	list, err := components.TodoList(todos, false)
	if err != nil {
		return nil, err
	}
	divider, err := c.Divider.Render(compkit.Call{})
	if err != nil {
		return nil, err
	}
	add, err := c.Button.Render(compkit.Call{
		Content:  compkit.Text("Add todo"),
		Variants: []string{"primary"},
		Options:  compkit.Options{"size": "sm"},
	})
	if err != nil {
		return nil, err
	}
	card, err := c.Card.Render(compkit.Call{
		Content:  compkit.Fragment(list, divider, add),
		Variants: []string{"raised"},
		Options:  compkit.Options{"id": "todos"},
	})
	if err != nil {
		return nil, err
	}

	return c.Page.Render(compkit.Call{Block: func() templ.Component {
		return compkit.Fragment(home, about, card)
	}})
}
