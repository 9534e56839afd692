package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"eventsportal/internal/domain"
	"eventsportal/internal/i18n"
	"eventsportal/internal/screens"
	"eventsportal/internal/validation"
)

// usageError marks bad command-line input.
type usageError struct{ err error }

func (e usageError) Error() string { return e.err.Error() }

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func parse(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		return usageError{err}
	}
	return nil
}

// parseID reads the leading positional event id and parses the flags after it.
func parseID(fs *flag.FlagSet, args []string) (int64, error) {
	if len(args) == 0 || strings.HasPrefix(args[0], "-") {
		return 0, usageError{errors.New("missing event id")}
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || id <= 0 {
		return 0, usageError{fmt.Errorf("invalid event id %q", args[0])}
	}
	return id, parse(fs, args[1:])
}

func (a *App) screensAuth() *screens.Auth {
	return screens.NewAuth(a.auth, a, a, a.text)
}

func (a *App) promptPassword(pwd string) (string, error) {
	if pwd != "" {
		return pwd, nil
	}
	return a.readLine(a.text.T(i18n.MsgPasswordPrompt))
}

func (a *App) register(ctx context.Context, args []string) error {
	fs := newFlagSet("register")
	name := fs.String("name", "", "display name")
	email := fs.String("email", "", "email address")
	password := fs.String("password", "", "password (prompted when omitted)")
	if err := parse(fs, args); err != nil {
		return err
	}
	pwd, err := a.promptPassword(*password)
	if err != nil {
		return err
	}
	form := screens.NewRegisterForm(a.screensAuth())
	form.Name, form.Email = *name, *email
	form.SetPassword(pwd)
	return form.Submit(ctx)
}

func (a *App) login(ctx context.Context, args []string) error {
	fs := newFlagSet("login")
	email := fs.String("email", "", "email address")
	password := fs.String("password", "", "password (prompted when omitted)")
	if err := parse(fs, args); err != nil {
		return err
	}
	pwd, err := a.promptPassword(*password)
	if err != nil {
		return err
	}
	form := screens.NewLoginForm(a.screensAuth())
	form.Email, form.Password = *email, pwd
	return form.Submit(ctx)
}

func (a *App) logout(ctx context.Context, args []string) error {
	if err := parse(newFlagSet("logout"), args); err != nil {
		return err
	}
	a.screensAuth().Logout()
	return nil
}

func (a *App) whoami(ctx context.Context, args []string) error {
	if err := parse(newFlagSet("whoami"), args); err != nil {
		return err
	}
	st := a.auth.State()
	if !st.IsAuthenticated {
		return errNotLoggedIn
	}
	fmt.Fprintln(a.out, a.text.T(i18n.MsgLoggedInAs, st.Session.User.Name, st.Session.User.Email))
	return nil
}

// searchFlags binds the list filters to fs. apply copies the flags that were
// set into an EventSearch seeded with no filters.
func (a *App) searchFlags(fs *flag.FlagSet) (apply func() (domain.EventFilters, error)) {
	fields := map[string]*string{
		screens.FilterName:      fs.String("name", "", "name contains"),
		screens.FilterPlace:     fs.String("place", "", "place contains"),
		screens.FilterStartDate: fs.String("from", "", "starting at or after YYYY-MM-DDTHH:MM"),
		screens.FilterEndDate:   fs.String("to", "", "starting at or before YYYY-MM-DDTHH:MM"),
		screens.FilterSortBy:    fs.String("sort", "", "name, date or createdAt"),
		screens.FilterSortOrder: fs.String("order", "", "ASC or DESC"),
	}
	return func() (domain.EventFilters, error) {
		search := screens.NewEventSearch(domain.EventFilters{}).WithLocation(a.loc)
		for field, value := range fields {
			if err := search.UpdateFilter(field, *value); err != nil {
				return domain.EventFilters{}, usageError{err}
			}
		}
		return search.Submit(), nil
	}
}

func (a *App) list(ctx context.Context, args []string) error {
	fs := newFlagSet("list")
	filters := a.searchFlags(fs)
	if err := parse(fs, args); err != nil {
		return err
	}
	f, err := filters()
	if err != nil {
		return err
	}
	list := screens.NewEventsList(a.events)
	if err := list.Search(ctx, f); err != nil {
		return err
	}
	st := list.State()
	fmt.Fprintln(a.out, a.render.EventList(st.Events, st.Filters))
	return nil
}

func (a *App) showEvent(ctx context.Context, args []string) error {
	id, err := parseID(newFlagSet("show"), args)
	if err != nil {
		return err
	}
	a.Navigate(screens.RouteEventDetail(id))
	return nil
}

// formFlags binds the event form fields to fs.
func formFlags(fs *flag.FlagSet) map[string]*string {
	return map[string]*string{
		validation.FieldName:        fs.String("name", "", "event name"),
		validation.FieldDate:        fs.String("date", "", "start, YYYY-MM-DDTHH:MM in local time"),
		validation.FieldPlace:       fs.String("place", "", "place"),
		validation.FieldDescription: fs.String("description", "", "description"),
	}
}

func (a *App) create(ctx context.Context, args []string) error {
	fs := newFlagSet("create")
	fields := formFlags(fs)
	if err := parse(fs, args); err != nil {
		return err
	}
	form := screens.NewEventForm(a.events, 0, a, a, a.text).WithLocation(a.loc)
	for field, value := range fields {
		if err := form.UpdateField(field, *value); err != nil {
			return err
		}
	}
	return form.Submit(ctx)
}

func (a *App) edit(ctx context.Context, args []string) error {
	fs := newFlagSet("edit")
	fields := formFlags(fs)
	id, err := parseID(fs, args)
	if err != nil {
		return err
	}
	form := screens.NewEventForm(a.events, id, a, a, a.text).WithLocation(a.loc)
	if err := form.Load(ctx); err != nil {
		return err
	}
	var updateErr error
	fs.Visit(func(f *flag.Flag) {
		if updateErr == nil {
			updateErr = form.UpdateField(f.Name, *fields[f.Name])
		}
	})
	if updateErr != nil {
		return updateErr
	}
	return form.Submit(ctx)
}

func (a *App) deleteEvent(ctx context.Context, args []string) error {
	fs := newFlagSet("delete")
	yes := fs.Bool("yes", false, "skip the confirmation prompt")
	id, err := parseID(fs, args)
	if err != nil {
		return err
	}
	if !*yes {
		answer, err := a.readLine(a.text.T(i18n.MsgConfirmDelete))
		if err != nil {
			return err
		}
		switch strings.ToLower(strings.TrimSpace(answer)) {
		case "y", "yes", "s", "si", "sí":
		default:
			return nil
		}
	}
	return screens.NewEventDetail(a.events, id, a, a, a.text).Delete(ctx)
}

func (a *App) export(ctx context.Context, args []string) error {
	fs := newFlagSet("export")
	out := fs.String("out", "events.ics", "output file, - for stdout")
	filters := a.searchFlags(fs)
	if err := parse(fs, args); err != nil {
		return err
	}
	f, err := filters()
	if err != nil {
		return err
	}
	list := screens.NewEventsList(a.events)
	if err := list.Search(ctx, f); err != nil {
		return err
	}
	events := list.State().Events

	if *out == "-" {
		return a.exporter.Write(a.out, a.text.T(i18n.MsgEvents), events)
	}
	file, err := os.Create(*out)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", *out, err)
	}
	if err := a.exporter.Write(file, a.text.T(i18n.MsgEvents), events); err != nil {
		file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", *out, err)
	}
	a.Success(a.text.T(i18n.MsgExported, len(events), *out))
	return nil
}
