// Command tmplvars is a terminal editor for message templates with typed
// `{#name#}` variables. It writes the finished template as JSON.
package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/iw2rmb/tmplvars"
	"github.com/iw2rmb/tmplvars/draft"
	"github.com/iw2rmb/tmplvars/internal/config"
	"github.com/iw2rmb/tmplvars/internal/logging"
	"github.com/iw2rmb/tmplvars/placeholder"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}

type options struct {
	configPath string
	envFile    string
	in         string
	out        string
	stats      string
	preview    bool
	values     assignments
	version    bool
}

// assignments collects repeated -set name=value flags.
type assignments map[string]string

func (a *assignments) String() string { return fmt.Sprint(map[string]string(*a)) }

func (a *assignments) Set(s string) error {
	name, value, ok := strings.Cut(s, "=")
	name = strings.TrimSpace(name)
	if !ok || name == "" {
		return fmt.Errorf("want name=value, got %q", s)
	}
	if *a == nil {
		*a = assignments{}
	}
	(*a)[name] = value
	return nil
}

func parseFlags(args []string) (options, error) {
	var o options
	fs := flag.NewFlagSet("tmplvars", flag.ContinueOnError)
	fs.StringVar(&o.configPath, "config", "", "YAML config file")
	fs.StringVar(&o.envFile, "env", ".env", "dotenv file with TMPLVARS_* overrides")
	fs.StringVar(&o.in, "in", "", "template JSON to edit")
	fs.StringVar(&o.out, "out", "", `output file, "-" for stdout (overrides config)`)
	fs.StringVar(&o.stats, "stats", "", "print status counts of a JSON template listing and exit")
	fs.BoolVar(&o.preview, "preview", false, "print the -in content with variables filled from -set and exit")
	fs.Var(&o.values, "set", "variable value for -preview as name=value (repeatable)")
	fs.BoolVar(&o.version, "version", false, "print the version and exit")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	return o, nil
}

func run(args []string, stdout io.Writer) error {
	o, err := parseFlags(args)
	if err != nil {
		return err
	}
	if o.version {
		_, err := fmt.Fprintln(stdout, tmplvars.Banner())
		return err
	}

	loadOpts := []config.Option{config.WithEnvFile(o.envFile)}
	if o.configPath != "" {
		loadOpts = append(loadOpts, config.WithFile(o.configPath))
	}
	cfg, err := config.Load(loadOpts...)
	if err != nil {
		return err
	}
	if o.out != "" {
		cfg.Output.Path = o.out
	}

	if o.stats != "" {
		return printStats(o.stats, stdout)
	}
	if o.preview {
		return printPreview(o.in, o.values, stdout)
	}

	log, err := logging.New(cfg.Log.Level, cfg.Log.File)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	var initial *draft.Template
	if o.in != "" {
		t, err := readTemplate(o.in)
		if err != nil {
			return err
		}
		initial = &t
	}

	log.Info("starting editor", zap.String("version", tmplvars.Banner()), zap.String("in", o.in), zap.String("out", cfg.Output.Path))
	p := tea.NewProgram(newForm(cfg, log, systemClipboard{}, initial), tea.WithAltScreen(), tea.WithMouseCellMotion())
	final, err := p.Run()
	if err != nil {
		return err
	}

	f, ok := final.(form)
	if !ok || f.saved == nil {
		log.Info("quit without saving")
		return nil
	}
	return writeTemplate(cfg, *f.saved, stdout)
}

func readTemplate(path string) (draft.Template, error) {
	file, err := os.Open(path)
	if err != nil {
		return draft.Template{}, err
	}
	defer file.Close()
	return draft.Decode(file)
}

func writeTemplate(cfg config.Config, t draft.Template, stdout io.Writer) error {
	if cfg.StdoutOutput() {
		return t.Encode(stdout)
	}

	file, err := os.Create(cfg.Output.Path)
	if err != nil {
		return err
	}
	if err := t.Encode(file); err != nil {
		_ = file.Close()
		return err
	}
	return file.Close()
}

func printStats(path string, stdout io.Writer) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	body, err := io.ReadAll(file)
	if err != nil {
		return err
	}
	ts, err := draft.DecodeList(bytes.NewReader(body))
	if err != nil {
		// A saved error reply carries its own message.
		return fmt.Errorf("stats %s: %s", path, draft.ParseErrorPayload(body, err.Error()))
	}
	s := draft.Summarize(ts)
	_, err = fmt.Fprintf(stdout, "total %d\napproved %d\npending %d\nrejected %d\n", s.Total, s.Approved, s.Pending, s.Rejected)
	return err
}

// printPreview renders the message a recipient would get. Names without
// a value are left as tokens and listed after the message.
func printPreview(path string, values map[string]string, stdout io.Writer) error {
	if path == "" {
		return errors.New("-preview needs -in")
	}
	t, err := readTemplate(path)
	if err != nil {
		return err
	}
	msg, missing := placeholder.Fill(t.Content, values)
	if _, err := fmt.Fprintln(stdout, msg); err != nil {
		return err
	}
	if len(missing) > 0 {
		_, err = fmt.Fprintf(stdout, "missing: %s\n", strings.Join(missing, ", "))
	}
	return err
}
