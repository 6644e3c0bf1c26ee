package server

import (
	"fmt"

	"github.com/InsanityAI/DialogQueue/internal/cycle"
	"github.com/InsanityAI/DialogQueue/internal/dialog"
)

// seedDemo queues a short scripted dialog flow for a newly connected player,
// built entirely through the legacy shim and the cycle consumer. Caller holds
// the scheduler lock.
func seedDemo(app *App, player dialog.PlayerID) {
	api := app.Shim

	welcome := api.Create()
	api.SetMessage(welcome, "Incoming transmission. Unknown signal requests a response.")
	listen, _ := api.AddButton(welcome, "Listen", "l")
	ignore, _ := api.AddButton(welcome, "Ignore", "i")

	listen.OnClick(func(_ *dialog.Button, _ *dialog.Entry, p dialog.PlayerID) {
		chooser, err := cycle.NewChooser(app.Sched, "Choose a callsign for this run.",
			[]string{"Vagrant", "Harrier", "Lodestar"}, "Confirm",
			func(p dialog.PlayerID, _ int, callsign string) {
				farewell := api.Create()
				api.SetMessage(farewell, fmt.Sprintf("Callsign %s registered. Good hunting.", callsign))
				_, _ = api.AddQuitButton(farewell, "Dismiss", "d", false)
				api.Display(p, farewell, true)
			})
		if err != nil {
			return
		}
		chooser.Show(p)
	})
	ignore.OnClick(func(_ *dialog.Button, _ *dialog.Entry, p dialog.PlayerID) {
		silence := api.Create()
		api.SetMessage(silence, "The signal fades into static.")
		_, _ = api.AddQuitButton(silence, "Close", "c", false)
		api.Display(p, silence, true)
	})

	api.Display(player, welcome, true)
}
