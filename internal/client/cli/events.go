package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/Pritish2005/Event-Hub/internal/client/api"
)

const (
	defaultPage  = 1
	defaultLimit = 10
)

// parsePageArgs reads optional "[page] [limit]" arguments, falling back to
// the defaults for anything absent or unparsable.
func parsePageArgs(args []string) (page, limit int) {
	page, limit = defaultPage, defaultLimit
	if len(args) > 0 {
		if n, err := strconv.Atoi(args[0]); err == nil && n > 0 {
			page = n
		}
	}
	if len(args) > 1 {
		if n, err := strconv.Atoi(args[1]); err == nil && n > 0 {
			limit = n
		}
	}
	return page, limit
}

func printEvent(e *api.Event) {
	fmt.Printf("%s  %s\n", e.ID, e.Name)
	fmt.Printf("    %s @ %s, capacity %d, host %s\n", e.Date.Format(time.RFC3339), e.Location, e.Capacity, e.Owner)
	if e.Description != "" {
		fmt.Printf("    %s\n", e.Description)
	}
}

func printEventList(list *api.EventList) {
	for i := range list.Events {
		printEvent(&list.Events[i])
	}
	fmt.Printf("Page %d of %d\n", list.CurrentPage, list.TotalPages)
}

// Events lists the public event feed. Optional args: [page] [limit].
func (a *App) Events(ctx context.Context, args []string) error {
	page, limit := parsePageArgs(args)
	list, err := a.api.Events(ctx, page, limit)
	if err != nil {
		log.Printf("Error: %s", err.Error())
		return err
	}
	printEventList(list)
	return nil
}

// Filtered lists events excluding the ones the user owns. Optional args: [page] [limit].
func (a *App) Filtered(ctx context.Context, args []string) error {
	page, limit := parsePageArgs(args)
	list, err := a.api.FilteredEvents(ctx, page, limit)
	if err != nil {
		log.Printf("Error: %s", err.Error())
		return err
	}
	printEventList(list)
	return nil
}

// MyEvents lists every event the user owns.
func (a *App) MyEvents(ctx context.Context) error {
	items, err := a.api.MyEvents(ctx)
	if err != nil {
		log.Printf("Error: %s", err.Error())
		return err
	}
	if len(items) == 0 {
		fmt.Println("You have no events yet.")
		return nil
	}
	for i := range items {
		printEvent(&items[i])
	}
	return nil
}

// AddEvent interactively collects event fields and creates the event.
// The logged-in user becomes the owner.
func (a *App) AddEvent(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Event name", os.Stdout)
	if err != nil {
		return err
	}

	description, err := GetMultiline(a.reader, "Description", os.Stdout)
	if err != nil {
		return err
	}

	dateRaw, err := getSimpleText(a.reader, "Date (RFC3339, e.g. 2026-09-01T18:00:00Z)", os.Stdout)
	if err != nil {
		return err
	}
	date, err := time.Parse(time.RFC3339, dateRaw)
	if err != nil {
		log.Printf("Invalid date: %s", err.Error())
		return err
	}

	location, err := getSimpleText(a.reader, "Location", os.Stdout)
	if err != nil {
		return err
	}

	capacityRaw, err := getSimpleText(a.reader, "Capacity", os.Stdout)
	if err != nil {
		return err
	}
	capacity, err := strconv.Atoi(capacityRaw)
	if err != nil {
		log.Printf("Invalid capacity: %s", err.Error())
		return err
	}

	event, err := a.api.CreateEvent(ctx, &api.EventInput{
		Name:        name,
		Description: description,
		Date:        date,
		Location:    location,
		Capacity:    capacity,
	})
	if err != nil {
		log.Printf("Error: %s", err.Error())
		return err
	}

	fmt.Printf("Created event %s\n", event.ID)
	return nil
}

// UpdateEvent interactively edits an event the user owns. Fields left empty
// keep their current value; only entered fields are sent to the server.
func (a *App) UpdateEvent(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Event id to update", os.Stdout)
	if err != nil {
		return err
	}

	patch := &api.EventPatch{}

	name, err := getSimpleText(a.reader, "New name (empty to keep)", os.Stdout)
	if err != nil {
		return err
	}
	if name != "" {
		patch.Name = &name
	}

	description, err := getSimpleText(a.reader, "New description (empty to keep)", os.Stdout)
	if err != nil {
		return err
	}
	if description != "" {
		patch.Description = &description
	}

	dateRaw, err := getSimpleText(a.reader, "New date, RFC3339 (empty to keep)", os.Stdout)
	if err != nil {
		return err
	}
	if dateRaw != "" {
		date, err := time.Parse(time.RFC3339, dateRaw)
		if err != nil {
			log.Printf("Invalid date: %s", err.Error())
			return err
		}
		patch.Date = &date
	}

	location, err := getSimpleText(a.reader, "New location (empty to keep)", os.Stdout)
	if err != nil {
		return err
	}
	if location != "" {
		patch.Location = &location
	}

	capacityRaw, err := getSimpleText(a.reader, "New capacity (empty to keep)", os.Stdout)
	if err != nil {
		return err
	}
	if capacityRaw != "" {
		capacity, err := strconv.Atoi(capacityRaw)
		if err != nil {
			log.Printf("Invalid capacity: %s", err.Error())
			return err
		}
		patch.Capacity = &capacity
	}

	event, err := a.api.UpdateEvent(ctx, id, patch)
	if err != nil {
		log.Printf("Error: %s", err.Error())
		return err
	}

	fmt.Println("Updated:")
	printEvent(event)
	return nil
}

// DeleteEvent removes an event the user owns.
func (a *App) DeleteEvent(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Event id to delete", os.Stdout)
	if err != nil {
		return err
	}

	if err := a.api.DeleteEvent(ctx, id); err != nil {
		log.Printf("Error: %s", err.Error())
		return err
	}

	fmt.Println("Event deleted")
	return nil
}
