// FILE: lixenwraith/bind/cmd/bindcheck/demo.go
package main

import (
	_ "embed"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/lixenwraith/bind"
	"github.com/lixenwraith/bind/internal/headless"
)

//go:embed demo.toml
var demoSchema []byte

var (
	defaultProfile = uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")
	backupProfile  = uuid.MustParse("6ba7b811-9dad-11d1-80b4-00c04fd430c8")
)

// settings is the configuration object edited by the demo page
type settings struct {
	auth       bool
	serverName string
	token      bind.Secret
	port       int
	logLevel   int
	background bind.Color
	profile    bind.Identifier
	hosts      bind.StringList
}

func (s *settings) Authentication() bool            { return s.auth }
func (s *settings) SetAuthentication(v bool)        { s.auth = v }
func (s *settings) ServerName() string              { return s.serverName }
func (s *settings) SetServerName(v string)          { s.serverName = v }
func (s *settings) AccessToken() bind.Secret        { return s.token }
func (s *settings) SetAccessToken(v bind.Secret)    { s.token = v }
func (s *settings) ServerPort() int                 { return s.port }
func (s *settings) SetServerPort(v int)             { s.port = v }
func (s *settings) LogLevel() int                   { return s.logLevel }
func (s *settings) SetLogLevel(v int)               { s.logLevel = v }
func (s *settings) BackgroundColor() bind.Color     { return s.background }
func (s *settings) SetBackgroundColor(v bind.Color) { s.background = v }
func (s *settings) Profile() bind.Identifier        { return s.profile }
func (s *settings) SetProfile(v bind.Identifier)    { s.profile = v }
func (s *settings) Hosts() bind.StringList          { return s.hosts }
func (s *settings) SetHosts(v bind.StringList)      { s.hosts = v }

// page holds the headless widgets of the demo settings page
type page struct {
	auth       *headless.GroupBox
	serverName *headless.LineEdit
	token      *headless.LineEdit
	port       *headless.SpinBox
	logLevel   *headless.ComboBox
	background *headless.PushButton
	dialog     *headless.ColorDialog
	profile    *headless.ComboBox
	hosts      *headless.Label
}

func newPage() *page {
	return &page{
		auth:       headless.NewGroupBox("Authentication"),
		serverName: headless.NewLineEdit("ServerName"),
		token:      headless.NewLineEdit("AccessToken"),
		port:       headless.NewSpinBox("ServerPort", 1, 65535),
		logLevel: headless.NewComboBox("LogLevel",
			headless.Item{Text: "debug"},
			headless.Item{Text: "info"},
			headless.Item{Text: "warn"},
			headless.Item{Text: "error"},
		),
		background: headless.NewPushButton("BackgroundColor"),
		dialog:     headless.NewColorDialog(),
		profile: headless.NewComboBox("Profile",
			headless.Item{Text: "Default", Data: defaultProfile},
			headless.Item{Text: "Backup", Data: backupProfile},
			headless.Item{Text: "None"},
		),
		hosts: headless.NewLabel("Hosts", ""),
	}
}

func (p *page) controls() map[string]any {
	return map[string]any{
		"Authentication":  bind.NewGroupToggle(p.auth),
		"ServerName":      bind.NewLineText(p.serverName),
		"AccessToken":     bind.NewSecretLine(p.token),
		"ServerPort":      bind.NewStepper(p.port),
		"LogLevel":        bind.NewIndexChoice(p.logLevel),
		"BackgroundColor": bind.NewColorTrigger(p.background, bind.DialogPicker(p.dialog)),
		"Profile":         bind.NewTokenChoice(p.profile),
		"Hosts":           bind.NewPassive[bind.StringList](p.hosts),
	}
}

// demoCmd wires a sample configuration object to headless controls and
// simulates a user editing the page.
var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run a headless settings page through the binding engine",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		log := newLogger()
		defer log.Sync() //nolint:errcheck
		return runDemo(cmd.OutOrStdout(), log)
	},
}

func runDemo(out io.Writer, log *zap.Logger) error {
	schema, err := bind.ParseSchema(demoSchema, "toml")
	if err != nil {
		return fmt.Errorf("embedded schema: %w", err)
	}

	cfg := &settings{
		serverName: "example.org",
		token:      bind.SecretFromPlainText("s3cr3t"),
		port:       8080,
		logLevel:   2,
		background: colorful.Color{R: 1, G: 1, B: 1},
		profile:    backupProfile,
		hosts:      bind.StringList{"alpha", "beta"},
	}
	ui := newPage()

	form, err := bind.NewBuilder().
		WithOwner(cfg).
		WithSchema(schema).
		WithClass("Demo").
		WithControls(ui.controls()).
		WithLogger(log).
		Build()
	if err != nil {
		return err
	}

	form.Init()
	fmt.Fprintln(out, "== initialized")
	printState(out, cfg, ui)
	printFlags(out, form)

	if err := form.Connect(); err != nil {
		return err
	}

	ui.auth.Toggle()
	ui.serverName.Type("db.internal")
	ui.token.SetText("rotated")
	ui.port.StepBy(1)
	ui.logLevel.SetCurrentText("error")
	ui.profile.SetCurrentIndex(2)

	ui.dialog.Queue(headless.Reject())
	ui.background.Click()
	ui.dialog.Queue(headless.Accept(colorful.Color{R: 0.2, G: 0.4, B: 0.6}))
	ui.background.Click()

	fmt.Fprintln(out, "== after edits")
	printState(out, cfg, ui)

	restored := form.RestoreDefaults()
	fmt.Fprintf(out, "== restored %d defaults\n", restored)
	printState(out, cfg, ui)
	return nil
}

func printState(out io.Writer, cfg *settings, ui *page) {
	fmt.Fprintf(out, "  authentication  %-14v widget=%v\n", cfg.auth, ui.auth.IsChecked())
	fmt.Fprintf(out, "  server name     %-14s widget=%s\n", cfg.serverName, ui.serverName.Text())
	fmt.Fprintf(out, "  access token    %-14s set=%v\n", cfg.token, !cfg.token.IsEmpty())
	fmt.Fprintf(out, "  server port     %-14d widget=%d\n", cfg.port, ui.port.Value())
	fmt.Fprintf(out, "  log level       %-14d widget=%s\n", cfg.logLevel, ui.logLevel.CurrentText())
	fmt.Fprintf(out, "  background      %-14s swatch=%s\n", bind.FormatColor(cfg.background), bind.FormatColor(ui.background.SwatchColor()))
	fmt.Fprintf(out, "  profile         %s widget=%s\n", cfg.profile, ui.profile.CurrentText())
	fmt.Fprintf(out, "  hosts           %v label=%q\n", cfg.hosts, ui.hosts.Text)
}

func printFlags(out io.Writer, form *bind.Form) {
	for _, b := range form.Bindings() {
		if f := form.Flags(b.Key()); f != 0 {
			fmt.Fprintf(out, "  flags %-22s %s\n", b.Key(), f)
		}
	}
}
