// Package cli is the terminal front end: one subcommand per screen action,
// rendered with lipgloss. Screens navigate through the App, which renders the
// target page once the command finishes.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"eventsportal/internal/adapters/ical"
	"eventsportal/internal/domain"
	"eventsportal/internal/i18n"
	"eventsportal/internal/screens"
	"eventsportal/internal/store"
	"eventsportal/internal/validation"
)

// Exit codes.
const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

var (
	errNotLoggedIn   = errors.New(i18n.MsgNotLoggedIn)
	errEventNotFound = errors.New(i18n.MsgEventNotFound)
)

// Deps are the collaborators of an App.
type Deps struct {
	Auth     *store.AuthStore
	Events   *store.EventStore
	Text     *i18n.Catalog
	Exporter *ical.Exporter
	Location *time.Location
	Logger   *slog.Logger
	In       io.Reader
	Out      io.Writer
	Err      io.Writer
}

// App dispatches subcommands. It implements screens.Navigator and screens.Notifier.
type App struct {
	auth     *store.AuthStore
	events   *store.EventStore
	text     *i18n.Catalog
	render   Renderer
	exporter *ical.Exporter
	loc      *time.Location
	logger   *slog.Logger
	in       *bufio.Reader
	out      io.Writer
	errOut   io.Writer

	next string
}

var (
	_ screens.Navigator = (*App)(nil)
	_ screens.Notifier  = (*App)(nil)
)

func New(d Deps) *App {
	if d.Location == nil {
		d.Location = time.Local
	}
	if d.Exporter == nil {
		d.Exporter = ical.NewExporter("")
	}
	if d.Logger == nil {
		d.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if d.In == nil {
		d.In = strings.NewReader("")
	}
	return &App{
		auth:     d.Auth,
		events:   d.Events,
		text:     d.Text,
		render:   NewRenderer(d.Text),
		exporter: d.Exporter,
		loc:      d.Location,
		logger:   d.Logger,
		in:       bufio.NewReader(d.In),
		out:      d.Out,
		errOut:   d.Err,
	}
}

// Navigate records the page to show when the running command returns.
func (a *App) Navigate(route string) { a.next = route }

// Success prints a toast.
func (a *App) Success(message string) { fmt.Fprintln(a.out, a.render.Toast(message)) }

type command struct {
	usage string
	auth  bool
	run   func(a *App, ctx context.Context, args []string) error
}

var commands = map[string]command{
	"register": {usage: "register --name NAME --email EMAIL [--password PASSWORD]", run: (*App).register},
	"login":    {usage: "login --email EMAIL [--password PASSWORD]", run: (*App).login},
	"logout":   {usage: "logout", run: (*App).logout},
	"whoami":   {usage: "whoami", run: (*App).whoami},
	"list":     {usage: "list [--name S] [--place S] [--from DATE] [--to DATE] [--sort name|date|createdAt] [--order ASC|DESC]", auth: true, run: (*App).list},
	"show":     {usage: "show ID", auth: true, run: (*App).showEvent},
	"create":   {usage: "create --name NAME --date YYYY-MM-DDTHH:MM [--place S] [--description S]", auth: true, run: (*App).create},
	"edit":     {usage: "edit ID [--name NAME] [--date YYYY-MM-DDTHH:MM] [--place S] [--description S]", auth: true, run: (*App).edit},
	"delete":   {usage: "delete ID [--yes]", auth: true, run: (*App).deleteEvent},
	"export":   {usage: "export [--out FILE|-] [list filters]", auth: true, run: (*App).export},
}

var commandOrder = []string{"register", "login", "logout", "whoami", "list", "show", "create", "edit", "delete", "export"}

// Run executes one command line and returns the process exit code.
func (a *App) Run(ctx context.Context, args []string) int {
	if len(args) == 0 || args[0] == "help" || args[0] == "-h" || args[0] == "--help" {
		a.usage(a.out)
		return ExitOK
	}
	cmd, ok := commands[args[0]]
	if !ok {
		fmt.Fprintf(a.errOut, "unknown command %q\n\n", args[0])
		a.usage(a.errOut)
		return ExitUsage
	}

	a.next = ""
	if cmd.auth && !a.auth.State().IsAuthenticated {
		return a.fail(errNotLoggedIn)
	}
	if err := cmd.run(a, ctx, args[1:]); err != nil {
		var ue usageError
		if errors.As(err, &ue) {
			fmt.Fprintf(a.errOut, "%v\nusage: eventsctl %s\n", ue.err, cmd.usage)
			return ExitUsage
		}
		return a.fail(err)
	}
	if a.next != "" {
		if err := a.show(ctx, a.next); err != nil {
			return a.fail(err)
		}
	}
	return ExitOK
}

func (a *App) usage(w io.Writer) {
	fmt.Fprintln(w, "usage: eventsctl <command> [flags]")
	fmt.Fprintln(w)
	for _, name := range commandOrder {
		fmt.Fprintln(w, "  "+commands[name].usage)
	}
}

// fail renders err as field errors or an alert and returns ExitError.
// A rejected token drops the stored session.
func (a *App) fail(err error) int {
	var fe validation.FieldErrors
	switch {
	case errors.As(err, &fe):
		fmt.Fprintln(a.errOut, a.render.FieldErrors(fe))
		return ExitError
	case errors.Is(err, domain.ErrUnauthorized) && a.auth.State().IsAuthenticated:
		a.auth.Logout()
		fmt.Fprintln(a.errOut, a.render.Alert(a.errorMessage(err)))
		fmt.Fprintln(a.errOut, styleDimmed.Render(a.text.T(i18n.MsgSessionExpired)))
		return ExitError
	}
	fmt.Fprintln(a.errOut, a.render.Alert(a.errorMessage(err)))
	return ExitError
}

// errorMessage prefers the store message, which is what a screen would show.
func (a *App) errorMessage(err error) string {
	if msg := a.events.State().Error; msg != "" {
		return msg
	}
	if msg := a.auth.State().Error; msg != "" {
		return msg
	}
	a.logger.Debug("command failed", "err", err)
	return err.Error()
}

// show renders the page of route.
func (a *App) show(ctx context.Context, route string) error {
	if route == screens.RouteEvents {
		list := screens.NewEventsList(a.events)
		if err := list.Load(ctx); err != nil {
			return err
		}
		st := list.State()
		fmt.Fprintln(a.out, a.render.EventList(st.Events, st.Filters))
		return nil
	}
	if id, edit, ok := screens.ParseEventRoute(route); ok && !edit {
		detail := screens.NewEventDetail(a.events, id, a, a, a.text)
		err := detail.Load(ctx)
		ev := detail.Event()
		if ev == nil {
			if detail.NotFound() {
				fmt.Fprintln(a.out, a.render.NotFound())
			}
			if err == nil {
				err = errEventNotFound
			}
			return err
		}
		if err != nil {
			return err
		}
		fmt.Fprintln(a.out, a.render.EventDetail(*ev))
		return nil
	}
	// Form routes have no page of their own in the terminal.
	return nil
}

func (a *App) readLine(prompt string) (string, error) {
	fmt.Fprint(a.out, prompt)
	line, err := a.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
