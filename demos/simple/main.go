// Demo code for the drag-to-reorder List primitive.
package main

import (
	"fmt"

	"github.com/gdamore/tcell/v3"

	"github.com/xqrs/draglist"
	"github.com/xqrs/draglist/dnd"
	"github.com/xqrs/draglist/keybind"
)

// root wraps the list so the demo can quit on its own key.
type root struct {
	*draglist.List

	quit keybind.Keybind
}

func (r *root) InputHandler(event *tcell.EventKey) draglist.Command {
	if keybind.Matches(event, r.quit) {
		return draglist.QuitCommand{}
	}
	return r.List.InputHandler(event)
}

func main() {
	list := draglist.NewList().
		SetShowHandles(true)
	list.SetBorders(draglist.BordersAll).
		SetTitle(" Drag to reorder ")

	for _, name := range []string{"alfred", "bernhard", "christian"} {
		item := draglist.NewTextItem(name)
		item.SetDragID(dnd.HashString(name))
		list.AddItem(item)
	}

	r := &root{
		List: list,
		quit: keybind.NewKeybind(
			keybind.WithKeys("q", "esc", "ctrl+c"),
			keybind.WithHelp("q", "quit"),
		),
	}

	app := draglist.NewApplication().
		EnableMouse(true).
		SetRoot(r)
	if err := app.Run(); err != nil {
		panic(err)
	}

	fmt.Println("final order:")
	for i, item := range list.GetItems() {
		if text, ok := item.(*draglist.TextItem); ok {
			fmt.Printf("%2d. %s\n", i+1, text.GetText())
		}
	}
}
