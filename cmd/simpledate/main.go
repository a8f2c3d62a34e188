package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
	"time"

	"charm.land/lipgloss/v2"
	"github.com/midbel/cli"
	"github.com/midbel/simpledate/calendar"
	"github.com/midbel/simpledate/format"
	"github.com/midbel/simpledate/internal/config"
	"github.com/midbel/simpledate/internal/ds"
	"github.com/midbel/simpledate/locale"
	"github.com/rs/zerolog"
)

var errFail = errors.New("fail")

var (
	summary = "simpledate formats dates with SimpleDateFormat patterns"
	help    = ""
)

func main() {
	var (
		set     = cli.NewFlagSet("simpledate")
		file    string
		verbose bool
	)
	set.StringVar(&file, "c", "", "configuration file")
	set.BoolVar(&verbose, "v", false, "verbose output")
	if err := set.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			root := prepare(Env{Config: config.Default(), Logger: zerolog.Nop(), Out: os.Stdout})
			root.Help()
			os.Exit(2)
		}
	}
	cfg, err := config.Load(file)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	env := Env{
		Config: cfg,
		Logger: cfg.Logger(os.Stderr, verbose),
		Out:    os.Stdout,
	}
	root := prepare(env)
	err = root.Execute(set.Args())
	if err != nil {
		if s, ok := err.(cli.SuggestionError); ok && len(s.Others) > 0 {
			fmt.Fprintln(os.Stderr, "similar command(s)")
			for _, n := range s.Others {
				fmt.Fprintln(os.Stderr, "-", n)
			}
		}
		if !errors.Is(err, errFail) {
			env.Logger.Error().Err(err).Msg("command failed")
		}
		os.Exit(1)
	}
}

type Env struct {
	Config *config.Config
	Logger zerolog.Logger
	Out    io.Writer
}

func prepare(env Env) *cli.CommandTrie {
	root := cli.New()
	root.SetSummary(summary)
	root.SetHelp(help)
	root.Register([]string{"format"}, &cli.Command{
		Name:    "format",
		Alias:   []string{"fmt", "print"},
		Summary: "format one or more dates with a pattern",
		Usage:   "format [-p pattern] [-l locale] [-f file] [-z offset] [-lenient] [date,...]",
		Handler: &FormatCommand{Env: env},
	})
	root.Register([]string{"tokens"}, &cli.Command{
		Name:    "tokens",
		Alias:   []string{"scan"},
		Summary: "print the tokens of a pattern",
		Usage:   "tokens [-n] <pattern>",
		Handler: &TokensCommand{Env: env},
	})
	root.Register([]string{"fields"}, &cli.Command{
		Name:    "fields",
		Summary: "print every calendar field of a date",
		Usage:   "fields [-l locale] [-f file] [-z offset] [date]",
		Handler: &FieldsCommand{Env: env},
	})
	root.Register([]string{"locales"}, &cli.Command{
		Name:    "locales",
		Alias:   []string{"patterns"},
		Summary: "list the default pattern of locales",
		Usage:   "locales [prefix]",
		Handler: &LocalesCommand{Env: env},
	})
	return root
}

type dateOptions struct {
	Locale     string
	LocaleFile string
	Offset     *int
}

func (o *dateOptions) register(set *flag.FlagSet, cfg *config.Config) {
	set.StringVar(&o.Locale, "l", cfg.Locale, "locale")
	set.StringVar(&o.LocaleFile, "f", cfg.LocaleFile, "locale definition file")
	set.Func("z", "offset to UTC in minutes", func(str string) error {
		var n int
		if _, err := fmt.Sscan(str, &n); err != nil {
			return fmt.Errorf("%s: invalid offset", str)
		}
		o.Offset = &n
		return nil
	})
}

func (o *dateOptions) locale(env Env) (*locale.Locale, error) {
	var (
		loc *locale.Locale
		err error
	)
	if o.LocaleFile != "" {
		loc, err = locale.LoadFile(o.LocaleFile)
	} else {
		var cat *locale.Catalog
		if cat, err = locale.Builtin(); err == nil {
			loc, err = cat.Get(o.Locale)
		}
	}
	if err != nil {
		return nil, err
	}
	if o.LocaleFile == "" && o.Locale != "" {
		loc.Name = o.Locale
	}
	env.Logger.Debug().Str("locale", loc.String()).Str("week", loc.Week.String()).Msg("locale loaded")
	return loc, nil
}

func (o *dateOptions) date(str string) (time.Time, error) {
	var (
		when time.Time
		err  error
	)
	if str == "" || str == "now" {
		when = time.Now()
	} else {
		when, err = time.Parse(time.RFC3339Nano, str)
		if err != nil {
			return when, err
		}
	}
	if o.Offset != nil {
		when = calendar.At(when, *o.Offset)
	}
	return when, nil
}

func (o *dateOptions) options(env Env, loc *locale.Locale) []format.Option {
	options := []format.Option{
		format.WithLocale(loc),
	}
	if o.LocaleFile == "" {
		options = append(options, format.WithDefaults(locale.DefaultPatterns))
	}
	if rule, ok := env.Config.WeekRule(loc.Week); ok {
		env.Logger.Debug().Str("week", rule.String()).Msg("week rule overridden")
		options = append(options, format.WithWeekRule(rule))
	}
	return options
}

type FormatCommand struct {
	Env
	dateOptions

	Pattern string
	Lenient bool
}

func (c FormatCommand) Run(args []string) error {
	set := cli.NewFlagSet("format")
	set.StringVar(&c.Pattern, "p", c.Config.Pattern, "pattern")
	set.BoolVar(&c.Lenient, "lenient", c.Config.Lenient, "drop unknown pattern letters")
	c.dateOptions.register(set, c.Config)
	if err := set.Parse(args); err != nil {
		return err
	}
	loc, err := c.locale(c.Env)
	if err != nil {
		return err
	}
	options := c.options(c.Env, loc)
	if c.Lenient {
		options = append(options, format.WithLenient())
	}
	f := format.New(c.Pattern, options...)
	if pattern, err := f.Pattern(); err == nil {
		c.Logger.Debug().Str("pattern", pattern).Msg("formatter ready")
	}

	dates := set.Args()
	if len(dates) == 0 {
		dates = append(dates, "now")
	}
	for _, str := range dates {
		when, err := c.date(str)
		if err != nil {
			return err
		}
		res, err := f.Format(when)
		if err != nil {
			return err
		}
		fmt.Fprintln(c.Out, res)
	}
	return nil
}

var (
	literalStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	fieldStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	errorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
)

type TokensCommand struct {
	Env
	NoColor bool
}

func (c TokensCommand) Run(args []string) error {
	set := cli.NewFlagSet("tokens")
	set.BoolVar(&c.NoColor, "n", false, "disable colors")
	if err := set.Parse(args); err != nil {
		return err
	}
	pattern := strings.Join(set.Args(), " ")
	if pattern == "" {
		pattern = c.Config.Pattern
	}
	if pattern == "" {
		return format.ErrMissingPattern
	}
	var invalid int
	for tok, err := range format.Tokens(pattern) {
		var (
			style = literalStyle
			str   = tok.String()
		)
		switch {
		case err != nil:
			style = errorStyle
			str = err.Error()
			invalid++
		case tok.Type == format.Field:
			style = fieldStyle
		}
		if !c.NoColor {
			str = style.Render(str)
		}
		fmt.Fprintf(c.Out, "%-4d %s", tok.Pos, str)
		fmt.Fprintln(c.Out)
	}
	if invalid > 0 {
		c.Logger.Debug().Int("count", invalid).Msg("invalid tokens found")
		return errFail
	}
	return nil
}

type FieldsCommand struct {
	Env
	dateOptions
}

var fieldList = []struct {
	Name    string
	Pattern string
}{
	{Name: "era", Pattern: "G"},
	{Name: "year", Pattern: "yyyy"},
	{Name: "week year", Pattern: "YYYY"},
	{Name: "month", Pattern: "MM"},
	{Name: "month name", Pattern: "MMMM"},
	{Name: "standalone month", Pattern: "LLLL"},
	{Name: "week of year", Pattern: "w"},
	{Name: "week in month", Pattern: "W"},
	{Name: "day of year", Pattern: "D"},
	{Name: "day of month", Pattern: "d"},
	{Name: "day of week in month", Pattern: "F"},
	{Name: "day name", Pattern: "EEEE"},
	{Name: "iso day number", Pattern: "u"},
	{Name: "am/pm", Pattern: "a"},
	{Name: "hour (0-23)", Pattern: "H"},
	{Name: "hour (1-24)", Pattern: "k"},
	{Name: "hour (0-11)", Pattern: "K"},
	{Name: "hour (1-12)", Pattern: "h"},
	{Name: "minute", Pattern: "mm"},
	{Name: "second", Pattern: "ss"},
	{Name: "millisecond", Pattern: "SSS"},
	{Name: "rfc 822 zone", Pattern: "Z"},
	{Name: "iso 8601 zone", Pattern: "XXX"},
}

func (c FieldsCommand) Run(args []string) error {
	set := cli.NewFlagSet("fields")
	c.dateOptions.register(set, c.Config)
	if err := set.Parse(args); err != nil {
		return err
	}
	loc, err := c.locale(c.Env)
	if err != nil {
		return err
	}
	when, err := c.date(set.Arg(0))
	if err != nil {
		return err
	}
	f := format.New(format.DefaultDatePattern, c.options(c.Env, loc)...)
	fmt.Fprintf(c.Out, "%-22s %s", "week rule", f.WeekRule())
	fmt.Fprintln(c.Out)
	for _, fd := range fieldList {
		if err := f.ApplyPattern(fd.Pattern); err != nil {
			return err
		}
		str, err := f.Format(when)
		if err != nil {
			return err
		}
		fmt.Fprintf(c.Out, "%-22s %-5s %s", fd.Name, fd.Pattern, str)
		fmt.Fprintln(c.Out)
	}
	return nil
}

type LocalesCommand struct {
	Env
}

func (c LocalesCommand) Run(args []string) error {
	set := cli.NewFlagSet("locales")
	if err := set.Parse(args); err != nil {
		return err
	}
	cat, err := locale.Builtin()
	if err != nil {
		return err
	}
	trie := ds.NewTrie[string]()
	for tag, pattern := range locale.DefaultPatterns {
		var path []string
		if tag != locale.Root {
			path = strings.Split(tag, "_")
		}
		trie.Register(path, pattern)
	}
	var (
		prefix = splitTag(set.Arg(0))
		names  = cat.Names()
		count  int
	)
	trie.Walk(prefix, func(path []string, pattern string) {
		count++
		name := strings.Join(path, "_")
		printLocale(c.Out, name, pattern, slices.Contains(names, name))
	})
	if count == 0 {
		pattern, depth, ok := trie.Closest(prefix)
		if !ok {
			return fmt.Errorf("%w: %s", locale.ErrNotFound, set.Arg(0))
		}
		name := strings.Join(prefix[:depth], "_")
		c.Logger.Debug().Str("tag", set.Arg(0)).Str("closest", name).Msg("no exact match")
		printLocale(c.Out, name, pattern, slices.Contains(names, name))
	}
	return nil
}

func splitTag(tag string) []string {
	tag = strings.ReplaceAll(tag, "-", "_")
	if tag == "" {
		return nil
	}
	return strings.Split(tag, "_")
}

func printLocale(w io.Writer, name, pattern string, builtin bool) {
	mark := " "
	if builtin {
		mark = "*"
	}
	if name == locale.Root {
		name = "root"
	}
	fmt.Fprintf(w, "%s %-24s %s", mark, name, pattern)
	fmt.Fprintln(w)
}
