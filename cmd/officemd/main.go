// Command officemd converts office documents to and from Markdown.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/glamour"

	"github.com/tsawler/officemd"
	"github.com/tsawler/officemd/format"
	"github.com/tsawler/officemd/internal/config"
	"github.com/tsawler/officemd/internal/logger"
)

const version = "0.1.0"

// CLI defines the command-line interface for officemd.
type CLI struct {
	// Global flags
	Config  string `name:"config" short:"c" help:"Config file path (default: officemd/config.yaml under the XDG config home)" type:"path"`
	Verbose bool   `short:"v" help:"Log conversion details to stderr"`

	Import     ImportCmd     `cmd:"" help:"Convert a document to Markdown"`
	Export     ExportCmd     `cmd:"" help:"Convert Markdown to a document"`
	View       ViewCmd       `cmd:"" help:"Render a document as Markdown in the terminal"`
	Detect     DetectCmd     `cmd:"" help:"Detect the format of a file"`
	Formats    FormatsCmd    `cmd:"" help:"List supported formats"`
	InitConfig InitConfigCmd `cmd:"" name:"init-config" help:"Write a config file with the default settings"`
	Version    VersionCmd    `cmd:"" help:"Print version information"`
}

// app carries what every command needs once flags are parsed.
type app struct {
	cfg        *config.Config
	configPath string
	log        *logger.Logger
	stdout     io.Writer
}

func newApp(cli *CLI, stdout, stderr io.Writer) (*app, error) {
	path := cli.Config
	if path == "" {
		path = config.ConfigPath()
	}

	cfg, err := config.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config %s: %w", path, err)
	}

	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}
	if cli.Verbose {
		level, _ = logger.ParseLevel("debug")
	}

	l := logger.NewWithLevel(stderr, level)
	l.ConfigLoaded(path, cfg.Source != "")

	return &app{cfg: cfg, configPath: path, log: l, stdout: stdout}, nil
}

// ImportCmd converts a document to Markdown.
type ImportCmd struct {
	Path    string `arg:"" help:"Document to convert" type:"existingfile"`
	Out     string `short:"o" help:"Write Markdown to this file instead of stdout" type:"path"`
	Format  string `short:"f" help:"Source format (docx, xlsx, ods, csv, pptx, pdf); detected when empty"`
	MaxRows int    `name:"max-rows" help:"Data rows rendered per sheet; 0 uses the config"`
}

func (c *ImportCmd) Run(a *app) error {
	md, err := a.toMarkdown(c.Path, c.Format, c.MaxRows)
	if err != nil {
		return err
	}

	if c.Out == "" {
		_, err := io.WriteString(a.stdout, md)
		return err
	}

	if err := os.MkdirAll(filepath.Dir(c.Out), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.WriteFile(c.Out, []byte(md), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", c.Out, err)
	}

	fmt.Fprintf(a.stdout, "%s %s -> %s\n", successStyle.Render("Imported"), c.Path, c.Out)
	return nil
}

// ExportCmd converts Markdown to a document.
type ExportCmd struct {
	Path          string `arg:"" help:"Markdown file to convert" type:"existingfile"`
	Dest          string `arg:"" help:"Destination document (.docx, .xlsx, .pptx)" type:"path"`
	Format        string `short:"f" help:"Destination format (docx, xlsx, pptx); taken from the destination extension when empty"`
	SlideTitle    string `name:"slide-title" help:"Title of the slide made from Markdown without top-level headings"`
	FallbackSheet string `name:"fallback-sheet" help:"Sheet name used when the Markdown has no tables"`
}

func (c *ExportCmd) Run(a *app) error {
	data, err := os.ReadFile(c.Path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", c.Path, err)
	}

	w := officemd.FromMarkdown(string(data)).
		CompressionLevel(a.cfg.CompressionLevel).
		SlideTitle(orDefault(c.SlideTitle, a.cfg.DefaultSlideTitle)).
		FallbackSheet(orDefault(c.FallbackSheet, a.cfg.FallbackSheetName)).
		Logger(a.log.Logger)

	if c.Format != "" {
		f := format.Parse(c.Format)
		if !f.CanExport() {
			return fmt.Errorf("cannot export to %q", c.Format)
		}
		w = w.As(f)
	}

	if err := os.MkdirAll(filepath.Dir(c.Dest), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := w.WriteFile(c.Dest); err != nil {
		return err
	}

	fmt.Fprintf(a.stdout, "%s %s -> %s\n", successStyle.Render("Exported"), c.Path, c.Dest)
	return nil
}

// ViewCmd renders a document in the terminal.
type ViewCmd struct {
	Path  string `arg:"" help:"Document or Markdown file to view" type:"existingfile"`
	Style string `help:"Glamour style (auto, dark, light, notty, ...); the config decides when empty"`
	Width int    `default:"100" help:"Word wrap width"`
}

func (c *ViewCmd) Run(a *app) error {
	var md string
	if format.Detect(c.Path) == format.Markdown {
		data, err := os.ReadFile(c.Path)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", c.Path, err)
		}
		md = string(data)
	} else {
		var err error
		if md, err = a.toMarkdown(c.Path, "", 0); err != nil {
			return err
		}
	}

	_, err := io.WriteString(a.stdout, render(md, orDefault(c.Style, a.cfg.ViewStyle), c.Width))
	return err
}

// render formats Markdown for the terminal, falling back to the raw text
// when glamour cannot render it.
func render(md, style string, width int) string {
	styleOpt := glamour.WithStandardStyle(style)
	if style == "auto" {
		styleOpt = glamour.WithAutoStyle()
	}

	renderer, err := glamour.NewTermRenderer(styleOpt, glamour.WithWordWrap(width))
	if err != nil {
		return md
	}

	rendered, err := renderer.Render(md)
	if err != nil {
		return md
	}
	return rendered
}

// DetectCmd reports the format of a file.
type DetectCmd struct {
	Path string `arg:"" help:"File to inspect" type:"existingfile"`
}

func (c *DetectCmd) Run(a *app) error {
	f, err := officemd.Open(c.Path).Format()
	if err != nil {
		a.log.Skipped(c.Path, err.Error())
		fmt.Fprintf(a.stdout, "%s: %s\n", c.Path, warningStyle.Render("unknown format"))
		return nil
	}

	fmt.Fprintf(a.stdout, "%s: %s %s\n", c.Path, f, dimStyle.Render("("+capabilities(f)+")"))
	return nil
}

// FormatsCmd lists the supported formats.
type FormatsCmd struct{}

func (c *FormatsCmd) Run(a *app) error {
	fmt.Fprintln(a.stdout, titleStyle.Render("Supported formats"))
	for _, f := range format.All {
		fmt.Fprintf(a.stdout, "  %s%s%s\n",
			formatStyle.Render(f.String()),
			columnStyle.Render(f.Extension()),
			dimStyle.Render(capabilities(f)))
	}
	return nil
}

func capabilities(f format.Format) string {
	var caps []string
	if f.CanImport() {
		caps = append(caps, "import")
	}
	if f.CanExport() {
		caps = append(caps, "export")
	}
	if len(caps) == 0 {
		return "canonical"
	}
	return strings.Join(caps, ", ")
}

// InitConfigCmd writes the default configuration.
type InitConfigCmd struct {
	Force bool `help:"Overwrite an existing config file"`
}

func (c *InitConfigCmd) Run(a *app) error {
	if _, err := os.Stat(a.configPath); err == nil && !c.Force {
		return fmt.Errorf("config file %s already exists (use --force to overwrite)", a.configPath)
	}
	if err := config.DefaultConfig().Save(a.configPath); err != nil {
		return err
	}

	fmt.Fprintf(a.stdout, "%s %s\n", successStyle.Render("Wrote"), a.configPath)
	return nil
}

// VersionCmd prints version information.
type VersionCmd struct{}

func (c *VersionCmd) Run(a *app) error {
	fmt.Fprintf(a.stdout, "officemd version %s\n", version)
	return nil
}

// toMarkdown imports path with the configured row cap.
func (a *app) toMarkdown(path, formatName string, maxRows int) (string, error) {
	if maxRows <= 0 {
		maxRows = a.cfg.MaxSheetRows
	}

	ext := officemd.Open(path).MaxSheetRows(maxRows).Logger(a.log.Logger)
	if formatName != "" {
		f := format.Parse(formatName)
		if !f.CanImport() {
			return "", fmt.Errorf("cannot import %q", formatName)
		}
		ext = ext.As(f)
	}
	return ext.Markdown()
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

// run parses args and executes the selected command.
func run(args []string, stdout, stderr io.Writer) error {
	var cli CLI
	parser, err := kong.New(&cli,
		kong.Name("officemd"),
		kong.Description("Convert office documents to and from Markdown"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Writers(stdout, stderr),
	)
	if err != nil {
		return err
	}

	ctx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	a, err := newApp(&cli, stdout, stderr)
	if err != nil {
		return err
	}
	return ctx.Run(a)
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render("error: "+err.Error()))
		os.Exit(1)
	}
}
