package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/idilsaglam/weekcal/internal/ics"
	appLog "github.com/idilsaglam/weekcal/internal/log"
	"github.com/idilsaglam/weekcal/internal/model"
	"github.com/idilsaglam/weekcal/internal/store/jsonstore"
	"github.com/idilsaglam/weekcal/internal/tui"
	"github.com/idilsaglam/weekcal/internal/ui"
)

// Options carry the root flags.
type Options struct {
	ConfigPath string // empty means config.DefaultPath()
	EventsPath string // .json or .ics seed replacing the configured events
	Theme      string // overrides the configured theme
	Out        io.Writer
}

func (o Options) out() io.Writer {
	if o.Out == nil {
		return os.Stdout
	}
	return o.Out
}

// Run dispatches subcommands and returns an exit code (0 ok, 1 error, 2 usage).
// Without a subcommand the interactive week view starts.
func Run(args []string, opt Options) int {
	cmd, a := "week", []string(nil)
	if len(args) > 0 {
		cmd, a = args[0], args[1:]
	}

	switch cmd {
	case "help", "-h", "--help":
		PrintHelp(opt.out())
		return 0

	case "week":
		if len(a) != 0 {
			ui.Fail("usage: weekcal week")
			return 2
		}
		return doWeek(opt)

	case "ls":
		if len(a) > 1 {
			ui.Fail("usage: weekcal ls [day]")
			return 2
		}
		day := 0
		if len(a) == 1 {
			d, err := parseDay(a[0])
			if err != nil {
				ui.Fail("ls: " + err.Error())
				return 2
			}
			day = d
		}
		return doList(day, opt)

	case "export":
		return doExport(a, opt)
	}

	ui.Fail("unknown subcommand: " + cmd)
	fmt.Fprintln(os.Stderr)
	PrintHelp(os.Stderr)
	return 2
}

func PrintHelp(w io.Writer) {
	fmt.Fprint(w, `weekcal - a week calendar in the terminal

Usage:
  weekcal [flags] [subcommand] [args]

Subcommands:
  week                          Open the interactive week view (default)
  ls [day]                      Print the week, or one day (1-7 or a weekday name)
  export [--format ics|json] [-o file]
                                Write the week's events to stdout or a file

Flags:
  -config <file>                Config file (default ~/.config/weekcal/config.yaml)
  -events <file.json|file.ics>  Seed events from a file instead of the config
  -theme <classic|neon|mono>    Output theme

Week view:
  drag an event with the mouse to move it, click an empty cell to create,
  right-click an event to edit; c create, tab select, e edit, d delete, q quit

Examples:
  weekcal
  weekcal ls tue
  weekcal export --format ics -o week.ics
`)
}

// parseDay accepts 1..7 or a weekday name or prefix ("tue", "Tuesday").
func parseDay(s string) (int, error) {
	if n, err := strconv.Atoi(s); err == nil {
		if n < 1 || n > model.DaysPerWeek {
			return 0, fmt.Errorf("day out of range: %d", n)
		}
		return n, nil
	}
	name := strings.ToLower(strings.TrimSpace(s))
	if len(name) >= 2 {
		for i, wd := range model.WeekdayNames {
			if strings.HasPrefix(strings.ToLower(wd), name) {
				return i + 1, nil
			}
		}
	}
	return 0, fmt.Errorf("unknown day %q", s)
}

// -------------- subcommand impls ----------------

func doWeek(opt Options) int {
	sess, err := openSession(opt)
	if err != nil {
		ui.Fail("load: " + err.Error())
		return 1
	}

	// The alternate screen owns the terminal; logs go to the configured file.
	var logw io.Writer = io.Discard
	if sess.cfg.LogFile != "" {
		f, err := os.OpenFile(sess.cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			ui.Fail("log file: " + err.Error())
			return 1
		}
		defer f.Close()
		logw = f
	}
	appLog.SetOutput(logw)
	defer appLog.SetOutput(os.Stderr)

	appLog.Info("week view starting", "events", len(sess.cal.Store().All()), "week_start", sess.cfg.WeekStart, "level", string(appLog.CurrentLevel()))
	if err := tui.Run(sess.cal, tui.Options{RowsPerHour: sess.cfg.RowsPerHour, WeekStart: sess.weekStart}); err != nil {
		ui.Fail("tui: " + err.Error())
		return 1
	}
	return 0
}

func doList(day int, opt Options) int {
	sess, err := openSession(opt)
	if err != nil {
		ui.Fail("load: " + err.Error())
		return 1
	}
	all := sess.cal.Store().All()
	t := ui.Current()

	total := 0
	for _, ev := range all {
		total += ev.Duration()
	}
	header := fmt.Sprintf("%s  %s %d  %s %s",
		ui.C(t.Title, "Week of "+sess.weekStart.Format("Mon 2 Jan 2006")),
		ui.C(t.Accent, "Events"), len(all),
		ui.C(t.Accent, "Booked"), formatMinutes(total),
	)

	lines := []string{header, ""}
	for d := 1; d <= model.DaysPerWeek; d++ {
		if day != 0 && d != day {
			continue
		}
		lines = append(lines, dayLines(sess, d)...)
	}
	lines = append(lines, ui.C(t.Muted, "Tip: run `weekcal` to drag events around"))
	ui.Fpanel(opt.out(), lines)
	return 0
}

func dayLines(sess *session, day int) []string {
	t := ui.Current()
	events := sess.cal.Store().ByDay(day)
	booked := 0
	for _, ev := range events {
		booked += ev.Duration()
	}
	date := sess.weekStart.AddDate(0, 0, day-1)
	head := fmt.Sprintf("%-12s %s", date.Format("Mon 2 Jan"),
		ui.C(t.Muted, ui.LoadBar(booked, model.WindowEnd-model.WindowStart, 20)))

	out := []string{ui.C(t.Accent, head)}
	if len(events) == 0 {
		out = append(out, ui.C(t.Muted, "  (free)"))
	}
	for _, ev := range events {
		title := ui.Truncate(ev.Title, 40)
		if ev.Recurrence.Repeats() {
			title += " " + ui.C(t.Muted, t.Repeat)
		}
		line := fmt.Sprintf("  %s-%s %s %s", ev.Start, ev.End, ui.Swatch(ev.Color, t.Block), title)
		if ev.Location != "" {
			line += ui.Dim("  @ " + ui.Truncate(ev.Location, 24))
		}
		out = append(out, line)
	}
	return append(out, "")
}

func formatMinutes(m int) string {
	if m%60 == 0 {
		return fmt.Sprintf("%dh", m/60)
	}
	return fmt.Sprintf("%dh%02d", m/60, m%60)
}

func doExport(args []string, opt Options) int {
	fs := flag.NewFlagSet("export", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	format := fs.String("format", "ics", "output format: ics or json")
	outPath := fs.String("o", "", "write to file instead of stdout")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	if fs.NArg() != 0 {
		ui.Fail("usage: weekcal export [--format ics|json] [-o file]")
		return 2
	}
	*format = strings.ToLower(*format)
	if *format != "ics" && *format != "json" {
		ui.Fail("export: unknown format " + *format)
		return 2
	}

	sess, err := openSession(opt)
	if err != nil {
		ui.Fail("load: " + err.Error())
		return 1
	}
	events := sess.cal.Store().All()

	if *format == "json" && *outPath != "" {
		if err := jsonstore.Save(*outPath, events); err != nil {
			ui.Fail("export: " + err.Error())
			return 1
		}
		ui.OK(fmt.Sprintf("exported %d events to %s", len(events), *outPath))
		return 0
	}

	w := opt.out()
	if *outPath != "" {
		f, err := os.Create(*outPath)
		if err != nil {
			ui.Fail("export: " + err.Error())
			return 1
		}
		defer f.Close()
		w = f
	}

	switch *format {
	case "json":
		err = jsonstore.Encode(w, events)
	default:
		err = ics.Encode(w, events, sess.weekStart, now())
	}
	if err != nil {
		ui.Fail("export: " + err.Error())
		return 1
	}
	if *outPath != "" {
		ui.OK(fmt.Sprintf("exported %d events to %s", len(events), *outPath))
	}
	return 0
}
