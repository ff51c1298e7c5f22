package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/oksasatya/growth-sessions/internal/client"
	"github.com/oksasatya/growth-sessions/internal/common/clock"
	"github.com/oksasatya/growth-sessions/internal/domain/calendar"
	"github.com/oksasatya/growth-sessions/pkg/api"
)

func main() {
	_ = godotenv.Load()

	app := &cli.App{
		Name:  "mobctl",
		Usage: "Browse, join and host growth sessions from the terminal.",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Value: client.DefaultConfigPath(), Usage: "path to the config file"},
			&cli.StringFlag{Name: "url", EnvVars: []string{"MOBCTL_URL"}, Usage: "API base URL (overrides the config file)"},
			&cli.StringFlag{Name: "token", EnvVars: []string{"MOBCTL_TOKEN"}, Usage: "access token (overrides the config file)"},
		},
		Commands: []*cli.Command{
			loginCommand(),
			weekCommand(),
			showCommand(),
			searchCommand(),
			cardCommand("join", "Join a growth session", func(ctx context.Context, c *client.Card) error { return c.Join(ctx) }),
			cardCommand("leave", "Leave a growth session", func(ctx context.Context, c *client.Card) error { return c.Leave(ctx) }),
			cardCommand("delete", "Delete a growth session you own", func(ctx context.Context, c *client.Card) error { return c.Delete(ctx) }),
			commentCommand(),
			createCommand(),
			editCommand(),
			channelsCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		logrus.WithError(err).Error("mobctl failed")
		os.Exit(1)
	}
}

type env struct {
	cfg *client.Config
	api *client.API
	loc *time.Location
	clk clock.Clock
	out io.Writer
}

// today is the calendar day in the configured timezone.
func (e *env) today() string {
	return calendar.Today(e.clk, e.loc).ToDateString()
}

func setup(c *cli.Context) (*env, error) {
	cfg, err := client.LoadConfig(c.String("config"))
	if err != nil {
		return nil, err
	}
	if v := c.String("url"); v != "" {
		cfg.URL = v
	}
	if v := c.String("token"); v != "" {
		cfg.Token = v
	}
	loc := time.Local
	if cfg.Timezone != "" {
		l, err := time.LoadLocation(cfg.Timezone)
		if err != nil {
			return nil, fmt.Errorf("invalid timezone %q: %w", cfg.Timezone, err)
		}
		loc = l
	}
	return &env{cfg: cfg, api: client.NewAPI(cfg.URL, cfg.Token), loc: loc, clk: &clock.DefaultClock{}, out: c.App.Writer}, nil
}

// viewer is nil when no token is configured.
func (e *env) viewer(ctx context.Context) (*int64, error) {
	if e.cfg.Token == "" {
		return nil, nil
	}
	me, err := e.api.Me(ctx)
	if err != nil {
		return nil, fmt.Errorf("who am i: %w", err)
	}
	return &me.ID, nil
}

func (e *env) card(ctx context.Context, id int64) (*client.Card, error) {
	viewer, err := e.viewer(ctx)
	if err != nil {
		return nil, err
	}
	gs, err := e.api.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return &client.Card{
		Session:  client.NewGrowthSession(gs, e.loc),
		ViewerID: viewer,
		API:      e.api,
		Confirm:  client.ConfirmFunc(func(prompt string) bool { return confirm(os.Stdin, e.out, prompt) }),
		Clock:    e.clk,
		Location: e.loc,
	}, nil
}

func sessionID(c *cli.Context) (int64, error) {
	var id int64
	if _, err := fmt.Sscan(c.Args().First(), &id); err != nil || id <= 0 {
		return 0, cli.Exit("expected a growth session id", 2)
	}
	return id, nil
}

func loginCommand() *cli.Command {
	return &cli.Command{
		Name:      "login",
		Usage:     "Store the API URL and an access token in the config file",
		ArgsUsage: "<access token>",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "timezone", Usage: "IANA zone used to decide which sessions are past"},
		},
		Action: func(c *cli.Context) error {
			e, err := setup(c)
			if err != nil {
				return err
			}
			if tok := c.Args().First(); tok != "" {
				e.cfg.Token = tok
			}
			if tz := c.String("timezone"); tz != "" {
				e.cfg.Timezone = tz
			}
			me, err := client.NewAPI(e.cfg.URL, e.cfg.Token).Me(c.Context)
			if err != nil {
				return fmt.Errorf("token rejected: %w", err)
			}
			if err := e.cfg.Save(c.String("config")); err != nil {
				return err
			}
			fmt.Fprintf(e.out, "Signed in as %s (@%s)\n", me.Name, me.GithubNickname)
			return nil
		},
	}
}

func weekCommand() *cli.Command {
	return &cli.Command{
		Name:  "week",
		Usage: "List the growth sessions of a week",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "date", Usage: "any day of the week, YYYY-MM-DD (default: this week)"},
		},
		Action: func(c *cli.Context) error {
			e, err := setup(c)
			if err != nil {
				return err
			}
			res, err := e.api.Week(c.Context, c.String("date"))
			if err != nil {
				return err
			}
			viewer, err := e.viewer(c.Context)
			if err != nil {
				return err
			}
			week := client.NewWeekGrowthSessions(res.Days, e.loc)
			fmt.Fprintf(e.out, "Week of %s to %s\n", res.FirstDay, res.LastDay)
			tw := tabwriter.NewWriter(e.out, 0, 4, 2, ' ', 0)
			for _, day := range week.Dates() {
				fmt.Fprintf(tw, "\n%s\n", day.Time().Format("Monday, Jan 2"))
				sessions := week.GetSessionByDate(day)
				if len(sessions) == 0 {
					fmt.Fprintln(tw, "  (nothing scheduled)")
				}
				for _, gs := range sessions {
					card := &client.Card{Session: gs, ViewerID: viewer, Clock: e.clk, Location: e.loc}
					fmt.Fprintf(tw, "  #%d\t%s - %s\t%s\t%s\t%s\t%s\n", gs.ID, gs.StartTime, gs.EndTime, gs.Title, gs.Location, gs.Seats(), actions(card))
				}
			}
			return tw.Flush()
		},
	}
}

func actions(c *client.Card) string {
	ctl := c.Controls()
	var out []string
	if ctl.CanJoin {
		out = append(out, "join")
	}
	if ctl.CanLeave {
		out = append(out, "leave")
	}
	if ctl.CanEdit {
		out = append(out, "edit")
	}
	if ctl.CanDelete {
		out = append(out, "delete")
	}
	return strings.Join(out, ",")
}

func showCommand() *cli.Command {
	return &cli.Command{
		Name:      "show",
		Usage:     "Show one growth session with attendees and comments",
		ArgsUsage: "<id>",
		Action: func(c *cli.Context) error {
			id, err := sessionID(c)
			if err != nil {
				return err
			}
			e, err := setup(c)
			if err != nil {
				return err
			}
			card, err := e.card(c.Context, id)
			if err != nil {
				return err
			}
			printSession(e.out, card)
			return nil
		},
	}
}

func printSession(w io.Writer, card *client.Card) {
	gs := card.Session
	fmt.Fprintf(w, "#%d %s\n", gs.ID, gs.Title)
	fmt.Fprintf(w, "%s, %s - %s at %s\n", gs.Date, gs.StartTime, gs.EndTime, gs.Location)
	fmt.Fprintf(w, "Hosted by %s, %s attending\n", gs.Owner.Name, gs.Seats())
	if !gs.IsPublic {
		fmt.Fprintln(w, "Members only")
	}
	fmt.Fprintf(w, "\n%s\n", gs.Topic)
	if len(gs.Attendees) > 0 {
		names := make([]string, 0, len(gs.Attendees))
		for _, a := range gs.Attendees {
			names = append(names, a.Name)
		}
		fmt.Fprintf(w, "\nAttendees: %s\n", strings.Join(names, ", "))
	}
	for _, cm := range gs.Comments {
		author := "someone"
		if cm.User != nil {
			author = cm.User.Name
		}
		fmt.Fprintf(w, "  [%s] %s: %s\n", cm.CreatedAt.Format("Jan 2 15:04"), author, cm.Content)
	}
	if a := actions(card); a != "" {
		fmt.Fprintf(w, "\nYou can: %s\n", a)
	}
}

func searchCommand() *cli.Command {
	return &cli.Command{
		Name:      "search",
		Usage:     "Search sessions by title, topic or location",
		ArgsUsage: "<query>",
		Action: func(c *cli.Context) error {
			e, err := setup(c)
			if err != nil {
				return err
			}
			found, err := e.api.Search(c.Context, strings.Join(c.Args().Slice(), " "))
			if err != nil {
				return err
			}
			for _, gs := range found {
				fmt.Fprintf(e.out, "#%d %s  %s %s  %s\n", gs.ID, gs.Date, gs.StartTime, gs.Title, gs.Location)
			}
			return nil
		},
	}
}

func cardCommand(name, usage string, act func(ctx context.Context, c *client.Card) error) *cli.Command {
	return &cli.Command{
		Name:      name,
		Usage:     usage,
		ArgsUsage: "<id>",
		Action: func(c *cli.Context) error {
			id, err := sessionID(c)
			if err != nil {
				return err
			}
			e, err := setup(c)
			if err != nil {
				return err
			}
			card, err := e.card(c.Context, id)
			if err != nil {
				return err
			}
			if err := act(c.Context, card); err != nil {
				if errors.Is(err, client.ErrCancelled) {
					fmt.Fprintln(e.out, "Nothing changed.")
					return nil
				}
				return err
			}
			fmt.Fprintf(e.out, "%s: done\n", name)
			return nil
		},
	}
}

func commentCommand() *cli.Command {
	return &cli.Command{
		Name:      "comment",
		Usage:     "Comment on a growth session",
		ArgsUsage: "<id> <text>",
		Action: func(c *cli.Context) error {
			id, err := sessionID(c)
			if err != nil {
				return err
			}
			text := strings.Join(c.Args().Tail(), " ")
			if strings.TrimSpace(text) == "" {
				return cli.Exit("comment text is required", 2)
			}
			e, err := setup(c)
			if err != nil {
				return err
			}
			cm, err := e.api.Comment(c.Context, id, text)
			if err != nil {
				return err
			}
			fmt.Fprintf(e.out, "comment #%d added\n", cm.ID)
			return nil
		},
	}
}

func formFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "title"},
		&cli.StringFlag{Name: "topic"},
		&cli.StringFlag{Name: "location"},
		&cli.StringFlag{Name: "date", Usage: "YYYY-MM-DD"},
		&cli.StringFlag{Name: "start", Usage: "start time, e.g. 3:30 pm"},
		&cli.StringFlag{Name: "end", Usage: "end time (default " + client.DefaultEndTime + ")"},
		&cli.BoolFlag{Name: "public", Usage: "visible to guests"},
		&cli.IntFlag{Name: "limit", Usage: "attendee limit"},
		&cli.BoolFlag{Name: "no-limit", Usage: "remove the attendee limit"},
		&cli.StringFlag{Name: "channel", Usage: "Discord channel id or name; fills the location when none is given"},
	}
}

// applyFlags feeds only the flags the user set into the form, in the order a person would
// fill it in, so channel auto-fill sees a manual location first.
func applyFlags(ctx context.Context, c *cli.Context, e *env, f *client.Form) error {
	setters := []struct {
		name string
		set  func()
	}{
		{"title", func() { f.SetTitle(c.String("title")) }},
		{"topic", func() { f.SetTopic(c.String("topic")) }},
		{"location", func() { f.SetLocation(c.String("location")) }},
		{"date", func() { f.SetDate(c.String("date")) }},
		{"start", func() { f.SetStartTime(c.String("start")) }},
		{"end", func() { f.SetEndTime(c.String("end")) }},
		{"public", func() { f.SetPublic(c.Bool("public")) }},
		{"limit", func() { f.SetLimit(c.Int("limit")) }},
		{"no-limit", func() { f.SetNoLimit(c.Bool("no-limit")) }},
	}
	for _, s := range setters {
		if c.IsSet(s.name) {
			s.set()
		}
	}
	if c.IsSet("limit") && !c.IsSet("no-limit") {
		f.SetNoLimit(false)
	}
	if want := c.String("channel"); want != "" {
		channels, err := e.api.DiscordChannels(ctx)
		if err != nil {
			return err
		}
		ch, ok := findChannel(channels, want)
		if !ok {
			return cli.Exit(fmt.Sprintf("unknown Discord channel %q (see mobctl channels)", want), 2)
		}
		f.SelectChannel(ch)
	}
	return nil
}

func findChannel(channels []api.DiscordChannel, want string) (api.DiscordChannel, bool) {
	for _, ch := range channels {
		if ch.ID == want || strings.EqualFold(ch.Name, want) {
			return ch, true
		}
	}
	return api.DiscordChannel{}, false
}

func submit(c *cli.Context, e *env, f *client.Form) error {
	f.OnSubmitted(func(gs api.GrowthSession) {
		fmt.Fprintf(e.out, "Saved #%d %s on %s at %s\n", gs.ID, gs.Title, gs.Date, gs.StartTime)
	})
	if !f.CanSubmit() {
		return cli.Exit(client.ErrIncomplete.Error(), 2)
	}
	_, err := f.Submit(c.Context)
	return err
}

func createCommand() *cli.Command {
	return &cli.Command{
		Name:  "create",
		Usage: "Host a new growth session",
		Flags: formFlags(),
		Action: func(c *cli.Context) error {
			e, err := setup(c)
			if err != nil {
				return err
			}
			f := client.NewForm(e.api, e.today())
			f.SetNoLimit(true)
			if err := applyFlags(c.Context, c, e, f); err != nil {
				return err
			}
			return submit(c, e, f)
		},
	}
}

func editCommand() *cli.Command {
	return &cli.Command{
		Name:      "edit",
		Usage:     "Change a growth session you own",
		ArgsUsage: "<id>",
		Flags:     formFlags(),
		Action: func(c *cli.Context) error {
			id, err := sessionID(c)
			if err != nil {
				return err
			}
			e, err := setup(c)
			if err != nil {
				return err
			}
			card, err := e.card(c.Context, id)
			if err != nil {
				return err
			}
			if !card.Controls().CanEdit {
				return client.ErrNotAllowed
			}
			f := client.NewEditForm(e.api, card.Session.GrowthSession)
			if err := applyFlags(c.Context, c, e, f); err != nil {
				return err
			}
			return submit(c, e, f)
		},
	}
}

func channelsCommand() *cli.Command {
	return &cli.Command{
		Name:  "channels",
		Usage: "List the Discord channels sessions can link to",
		Action: func(c *cli.Context) error {
			e, err := setup(c)
			if err != nil {
				return err
			}
			channels, err := e.api.DiscordChannels(c.Context)
			if err != nil {
				return err
			}
			for _, ch := range channels {
				fmt.Fprintf(e.out, "%s\t%s\n", ch.ID, ch.Name)
			}
			return nil
		},
	}
}

func confirm(in io.Reader, out io.Writer, prompt string) bool {
	fmt.Fprintf(out, "%s [y/N]: ", prompt)
	answer, _ := bufio.NewReader(in).ReadString('\n')
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	}
	return false
}
