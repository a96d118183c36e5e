package main

import (
	"bufio"
	"context"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/Knoblauchpilze/backend-toolkit/pkg/config"
	"github.com/Knoblauchpilze/backend-toolkit/pkg/logger"
	"github.com/bitsacm/pollz-client/cmd/pollz-chat/internal"
	"github.com/bitsacm/pollz-client/internal/service"
	"github.com/bitsacm/pollz-client/pkg/backend"
	"github.com/bitsacm/pollz-client/pkg/communication"
	"github.com/bitsacm/pollz-client/pkg/messages"
	"github.com/bitsacm/pollz-client/pkg/session"
	"github.com/joho/godotenv"
)

const profileFetchTimeout = 5 * time.Second
const orderCreateTimeout = 10 * time.Second

func determineConfigName() string {
	if len(os.Args) < 2 {
		return "config-prod.yml"
	}

	return os.Args[1]
}

func main() {
	// The access token comes from the environment, optionally through a
	// local .env file.
	godotenv.Load()

	log := logger.New(logger.NewPrettyWriter(os.Stdout))

	conf, err := config.Load(determineConfigName(), internal.DefaultConfig())
	if err != nil {
		log.Errorf("Failed to load configuration: %v", err)
		os.Exit(1)
	}

	tokens := session.NewTokenStore(os.Getenv("POLLZ_ACCESS_TOKEN"))

	apiClient := backend.NewClient(backend.Props{
		Config: conf.Backend,
		Tokens: tokens,
		OnUnauthorized: func() {
			log.Warnf("Session expired, sending is disabled until you log in again")
		},
		Log: log,
	})

	conf.Chat.User = resolveUser(apiClient, tokens, log)

	chatSession := service.NewChatSession(service.ChatSessionProps{
		Config: conf.Chat,
		Events: service.Events{
			OnMessage: func(msg messages.ChatMessage) {
				printMessage(log, msg)
			},
			OnConnected: func() {
				log.Infof("Connected to live chat as %s", conf.Chat.User.DisplayName())
			},
			OnDisconnected: func() {
				log.Warnf("Disconnected from live chat")
			},
		},
		Log: log,
	})

	highlights := service.NewHighlightService(
		apiClient, conf.HighlightPollInterval, log,
	)
	superChats := service.NewSuperChatService(apiClient)

	chatSession.Start()
	highlights.Start()

	notifyCtx, stop := signal.NotifyContext(
		context.Background(), os.Interrupt, syscall.SIGTERM,
	)
	defer stop()

	done := make(chan struct{}, 1)
	go func() {
		defer func() {
			done <- struct{}{}
		}()

		runInputLoop(chatSession, highlights, superChats, log)
	}()

	select {
	case <-notifyCtx.Done():
		log.Infof("Received shutdown signal, shutting down...")
	case <-done:
		log.Infof("Input closed, shutting down...")
	}

	highlights.Stop()
	chatSession.Stop()

	log.Infof("Gracefully shutdown")
}

func resolveUser(
	apiClient backend.Client, tokens session.TokenStore, log logger.Logger,
) session.User {
	if tokens.Token() == "" {
		log.Infof("No access token found, joining the chat as Anonymous")
		return session.User{}
	}

	ctx, cancel := context.WithTimeout(context.Background(), profileFetchTimeout)
	defer cancel()

	profile, err := apiClient.GetProfile(ctx)
	if err != nil {
		log.Warnf("Failed to fetch profile, joining the chat as Anonymous: %v", err)
		return session.User{}
	}

	return communication.ToUser(profile)
}

func runInputLoop(
	chatSession service.ChatSession,
	highlights service.HighlightService,
	superChats service.SuperChatService,
	log logger.Logger,
) {
	scanner := bufio.NewScanner(os.Stdin)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		switch {
		case line == "":
		case line == "/quit":
			return
		case line == "/retry":
			chatSession.Reconnect()
		case line == "/status":
			log.Infof("Connection status: %v", chatSession.Status())
		case line == "/highlights":
			printHighlights(highlights, log)
		case strings.HasPrefix(line, "/superchat "):
			sendSuperChat(chatSession, superChats, log, strings.TrimPrefix(line, "/superchat "))
		default:
			if err := chatSession.SendText(line); err != nil {
				log.Warnf("Failed to send message: %v", err)
			}
		}
	}
}

func sendSuperChat(
	chatSession service.ChatSession,
	superChats service.SuperChatService,
	log logger.Logger,
	args string,
) {
	fields := strings.SplitN(args, " ", 2)
	if len(fields) < 2 {
		log.Warnf("Usage: /superchat <amount> <message>")
		return
	}

	amount, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		log.Warnf("Invalid superchat amount %q", fields[0])
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), orderCreateTimeout)
	defer cancel()

	order, err := superChats.CreateOrder(ctx, amount, fields[1])
	if err != nil {
		log.Warnf("Failed to create superchat order: %v", err)
		return
	}

	// The checkout normally happens in the payment gateway. The order
	// id serves as the payment reference for this client.
	log.Infof("Created order %s (%.0f %s)", order.OrderId, order.Amount, order.Currency)

	if err := chatSession.SendSuperChat(fields[1], order.Amount, order.OrderId); err != nil {
		log.Warnf("Failed to send superchat: %v", err)
	}
}

func printMessage(log logger.Logger, msg messages.ChatMessage) {
	if msg.Kind == messages.SUPERCHAT {
		log.Infof("[superchat %.0f] %s: %s", msg.Amount, msg.Username, msg.Message)
		return
	}

	log.Infof("%s: %s", msg.Username, msg.Message)
}

func printHighlights(highlights service.HighlightService, log logger.Logger) {
	snapshot := highlights.Highlights()
	if len(snapshot) == 0 {
		log.Infof("No superchat highlights yet")
		return
	}

	for _, highlight := range snapshot {
		log.Infof(
			"[superchat %.0f] %s: %s",
			highlight.Amount, highlight.User, highlight.Message,
		)
	}
}
