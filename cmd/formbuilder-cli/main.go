// Command formbuilder-cli works with a form-builder sqlite store from the
// terminal: publish drafts, fill shared forms interactively, inspect
// collected responses and export them as CSV.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"github.com/goliatone/go-formbuilder/internal/logging"
	"github.com/goliatone/go-formbuilder/internal/tui"
	"github.com/goliatone/go-formbuilder/pkg/collect"
	"github.com/goliatone/go-formbuilder/pkg/export"
	"github.com/goliatone/go-formbuilder/pkg/form"
	"github.com/goliatone/go-formbuilder/pkg/storage"
	"github.com/goliatone/go-formbuilder/pkg/template"
)

func newDraft() form.Form {
	return form.Form{
		ID:     uuid.NewString(),
		Title:  "New Form",
		Fields: []form.Field{},
		Steps:  []form.Step{},
	}
}

func main() {
	dbPath := flag.String("db", "formbuilder.db", "sqlite store path")
	origin := flag.String("origin", "http://localhost:3000", "origin used for share links")
	output := flag.String("output", "", "output file for export (stdout if empty)")
	verbose := flag.Bool("v", false, "verbose logging")
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		usage()
		os.Exit(2)
	}

	ctx := context.Background()

	gw, err := storage.OpenSQLite(ctx, *dbPath)
	if err != nil {
		log.Fatalf("open store: %v", err)
	}
	defer gw.Close()

	logger := logging.Logger(logging.Nop())
	if *verbose {
		logger = logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))
	}
	store := storage.NewStore(gw, storage.WithLogger(logger))

	switch args[0] {
	case "templates":
		err = listTemplates(ctx, gw)
	case "publish":
		err = publish(ctx, store, gw, args[1:], *origin)
	case "fill":
		err = fill(ctx, store, args[1:])
	case "responses":
		err = responses(ctx, store, args[1:])
	case "export":
		err = exportCSV(ctx, store, args[1:], *output)
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		log.Fatalf("%s: %v", args[0], err)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: formbuilder-cli [flags] <command>

commands:
  templates                 list available templates
  publish <template-key>    publish a form seeded from a template
  fill <share-id>           fill a shared form interactively
  responses <share-id>      list collected responses
  export <share-id>         export responses as CSV (-output file)

flags:`)
	flag.PrintDefaults()
}

func listTemplates(ctx context.Context, gw storage.Gateway) error {
	tpls := template.NewStore(gw)
	if err := tpls.LoadAll(ctx); err != nil {
		return err
	}
	for _, key := range tpls.Keys() {
		tpl, _ := tpls.Get(key)
		fmt.Printf("%-20s %s (%d fields)\n", key, tpl.Name, len(tpl.Fields))
	}
	return nil
}

func publish(ctx context.Context, store *storage.Store, gw storage.Gateway, args []string, origin string) error {
	if len(args) != 1 {
		return fmt.Errorf("expected a template key")
	}
	tpls := template.NewStore(gw)
	if err := tpls.LoadAll(ctx); err != nil {
		return err
	}
	tpl, ok := tpls.Get(args[0])
	if !ok {
		return fmt.Errorf("unknown template %q", args[0])
	}

	f := template.Apply(newDraft(), tpl)
	if err := store.SaveDraft(ctx, f); err != nil {
		return err
	}
	published, err := store.Publish(ctx, f)
	if err != nil {
		return err
	}
	fmt.Printf("published %q\nshare link: %s\n", published.Title, storage.ShareURL(origin, published.ShareID))
	return nil
}

func fill(ctx context.Context, store *storage.Store, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("expected a share id")
	}
	shareID := args[0]

	published, ok, err := store.Shared(ctx, shareID)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("form %q not found", shareID)
	}

	driver := tui.NewSurveyDriver()

	var options []collect.SessionOption
	if saved, hasSaved, err := store.Progress(ctx, shareID); err == nil && hasSaved {
		restore, err := driver.Confirm(ctx, tui.ConfirmConfig{
			Message: "You have a saved form in progress. Restore it?",
			Default: true,
		})
		if err != nil {
			return err
		}
		if restore {
			options = append(options, collect.WithSavedProgress(saved))
		} else if err := collect.DiscardProgress(ctx, store, shareID); err != nil {
			return err
		}
	}

	session := collect.NewSession(store, published, options...)
	defer session.Close()

	rec, err := tui.NewFiller(driver).Run(ctx, session)
	if err != nil {
		return err
	}
	fmt.Printf("\nThank you! Response recorded as %s\n", rec.ID)
	return nil
}

func responses(ctx context.Context, store *storage.Store, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("expected a share id")
	}
	records, err := store.Responses(ctx, args[0])
	if err != nil {
		return err
	}
	if len(records) == 0 {
		fmt.Println("no responses yet")
		return nil
	}
	for _, rec := range records {
		fmt.Printf("%s  %s  %s\n", rec.ID, rec.Timestamp.Local().Format("2006-01-02 15:04:05"), rec.Status)
	}
	return nil
}

func exportCSV(ctx context.Context, store *storage.Store, args []string, output string) error {
	if len(args) != 1 {
		return fmt.Errorf("expected a share id")
	}
	shareID := args[0]

	published, ok, err := store.Shared(ctx, shareID)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("form %q not found", shareID)
	}
	records, err := store.Responses(ctx, shareID)
	if err != nil {
		return err
	}

	out := os.Stdout
	if output != "" {
		f, err := os.Create(output)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}
	return export.WriteCSV(out, published.Form, records)
}
