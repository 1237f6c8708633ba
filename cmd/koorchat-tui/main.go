// Command koorchat-tui shows the live conversation list in the terminal:
// one history fetch, then every mutation driven by push events.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/digimonkt/koor-chat-go/koorchat"
	"github.com/digimonkt/koor-chat-go/koorchat/convlist"
	"github.com/digimonkt/koor-chat-go/koorchat/listview"
	"github.com/digimonkt/koor-chat-go/koorchat/rest"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "koorchat-tui",
		Short: "Live conversation list for a KOOR chat account",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context())
		},
	}

	cmd.Flags().String("ws-url", "", "websocket URL of the push channel")
	cmd.Flags().String("api-base", "", "REST base URL, e.g. https://host/chat")
	cmd.Flags().String("token", "", "bearer token")
	cmd.Flags().String("room", "", "routing key of the conversation open elsewhere")
	cmd.Flags().String("log-level", "warn", "log level (debug, info, warn, error)")
	cmd.Flags().Bool("bell", true, "ring the terminal bell on new messages")

	viper.SetEnvPrefix("KOORCHAT")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
	_ = viper.BindPFlags(cmd.Flags())

	return cmd
}

func run(ctx context.Context) error {
	level, err := zerolog.ParseLevel(viper.GetString("log-level"))
	if err != nil {
		level = zerolog.WarnLevel
	}
	zl := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()
	logger := koorchat.NewZerologLogger(zl)

	cfg := koorchat.DefaultConfig()
	cfg.URL = viper.GetString("ws-url")
	cfg.APIBase = viper.GetString("api-base")
	cfg.Token = viper.GetString("token")
	cfg.CurrentRoom = viper.GetString("room")
	if cfg.URL == "" || cfg.APIBase == "" {
		return fmt.Errorf("--ws-url and --api-base are required")
	}

	list := convlist.New(cfg.CurrentRoom)
	list.SetLogger(logger)
	if viper.GetBool("bell") {
		list.SetNotifier(convlist.BellNotifier{W: os.Stdout})
	}

	api := rest.NewClient(cfg.APIBase)
	api.SetToken(cfg.Token)
	loader := convlist.NewLoader(list, api)
	loader.SetLogger(logger)
	if err := loader.LoadPrevious(ctx, ""); err != nil {
		// Partial state is acceptable; the push channel still runs.
		zl.Error().Err(err).Msg("history load failed, continuing with partial list")
	}

	client := koorchat.NewClient(cfg)
	client.SetLogger(logger)

	p := tea.NewProgram(newModel(list), tea.WithContext(ctx))

	client.OnConversation(func(ev koorchat.ConversationEvent) {
		list.ApplyConversation(ev)
		p.Send(listChangedMsg{})
	})
	client.OnMessage(func(ev koorchat.MessageEvent) {
		list.ApplyMessage(ev)
		p.Send(listChangedMsg{})
	})
	client.OnPresence(func(ev koorchat.PresenceEvent) {
		applied, focused := list.ApplyPresence(ev)
		if focused {
			p.Send(focusedStatusMsg{online: ev.IsOnline})
		}
		if applied {
			p.Send(listChangedMsg{})
		}
	})
	client.OnError(func(err error) {
		zl.Warn().Err(err).Msg("push channel error")
	})

	if err := client.Connect(ctx); err != nil {
		return err
	}
	defer client.Close()

	_, err = p.Run()
	return err
}

type listChangedMsg struct{}

type focusedStatusMsg struct{ online bool }

type model struct {
	list          *convlist.List
	styles        listview.Styles
	focusedStatus string
}

func newModel(list *convlist.List) model {
	return model{list: list, styles: listview.DefaultStyles()}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		}
	case focusedStatusMsg:
		if msg.online {
			m.focusedStatus = "Online"
		} else {
			m.focusedStatus = "Offline"
		}
	case listChangedMsg:
		// View re-reads the snapshot; nothing to store.
	}
	return m, nil
}

func (m model) View() string {
	var b strings.Builder
	b.WriteString("Conversations")
	if m.focusedStatus != "" {
		b.WriteString("  [" + m.focusedStatus + "]")
	}
	b.WriteString("\n\n")
	b.WriteString(listview.Render(m.styles, m.list.Snapshot()))
	b.WriteString("\n\nq: quit\n")
	return b.String()
}
