package cli

import (
	"context"
	"fmt"
)

const historySize = 20

// List prints the most recent entries saved from this device.
func (a *App) List(ctx context.Context) error {
	items, err := a.entryService.History(ctx, historySize)
	if err != nil {
		return err
	}
	if len(items) == 0 {
		fmt.Fprintln(a.out, "No entries yet")
		return nil
	}

	for _, e := range items {
		place := e.Location
		if place == "" {
			place = "-"
		}
		fmt.Fprintf(a.out, "%s  %s  %s  (%d images, %s)\n",
			e.CreatedAt.Local().Format("2006-01-02 15:04"), e.Id, e.Title, len(e.Images), place)
	}
	return nil
}
