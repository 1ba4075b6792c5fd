package main

import (
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/saravenpi/inbox/internal/config"
	"github.com/saravenpi/inbox/internal/store"
	"github.com/saravenpi/inbox/internal/ui"
)

const version = "1.0.0"

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "version", "-v", "--version":
			fmt.Printf("Inbox v%s\n", version)
			return
		case "help", "-h", "--help":
			printHelp()
			return
		case "config":
			if len(os.Args) > 2 && os.Args[2] == "init" {
				initConfig()
				return
			}
			cfg, err := config.Load()
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				os.Exit(1)
			}
			fmt.Printf("# %s\n%s", config.GetConfigPath(), cfg)
			return
		default:
			fmt.Printf("Unknown command: %s\n", os.Args[1])
			printHelp()
			os.Exit(1)
		}
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	if err := run(cfg); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	log.SetOutput(io.Discard)
	if cfg.DebugLog != "" {
		f, err := tea.LogToFile(cfg.DebugLog, "inbox")
		if err != nil {
			return fmt.Errorf("failed to open debug log: %w", err)
		}
		defer f.Close()
	}

	s := store.New()
	unsubscribe := s.Subscribe(func() {
		log.Printf("store: %d messages, %d unread", s.MessageCount(), s.UnreadMessageCount())
	})
	defer unsubscribe()

	initialModel := ui.NewInboxModel(s, cfg.MessageCount, cfg.Description)
	defer initialModel.Close()

	p := tea.NewProgram(initialModel, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

func initConfig() {
	path := config.GetConfigPath()
	created, err := config.Init(path)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	if !created {
		fmt.Printf("Config already exists: %s\n", path)
		return
	}
	fmt.Printf("Wrote default config to %s\n", path)
}

func printHelp() {
	help := `Inbox - Terminal Mail Inbox

Usage:
  inbox              Start the inbox
  inbox version      Show version information
  inbox config       Show the resolved configuration
  inbox config init  Write the default config file
  inbox help         Show this help message

Navigation:
  ↑/↓ or j/k        Navigate messages
  Enter             Open message (marks it read)
  x or space        Mark message as read
  ESC               Back to the inbox
  q                 Quit
  ctrl+c            Force quit

Configuration:
  Settings are read from ~/.inbox/config.yml

    message_count: 5
    description: Hello world!

  Environment variables override the file:
    INBOX_MESSAGE_COUNT   number of messages to generate
    INBOX_DESCRIPTION     placeholder text of each message
    INBOX_DEBUG_LOG       write store changes to this log file
`
	fmt.Print(help)
}
