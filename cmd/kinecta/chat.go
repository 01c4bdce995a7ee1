package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/kinecta/kinecta/pkg/chat"
	"github.com/kinecta/kinecta/pkg/conversation"
	"github.com/kinecta/kinecta/pkg/events"
	"github.com/kinecta/kinecta/pkg/heritage"
	"github.com/kinecta/kinecta/pkg/inference"
)

func newChatCommand() *cobra.Command {
	var (
		ethnicity    string
		region       string
		timePeriod   string
		relationship string
		occupation   string
		traits       string
		resumeID     string
	)

	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Start or resume a conversation with your ancestor",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext()
			if err != nil {
				return err
			}
			defer app.Close()

			ctx := cmd.Context()

			if resumeID != "" {
				record, ok := app.history.Get(resumeID)
				if !ok {
					return errors.Errorf("no saved conversation with id %s", resumeID)
				}
				if err := app.controller.Resume(record); err != nil {
					return err
				}
			} else {
				sel := heritage.Selection{
					Ethnicity:    ethnicity,
					Region:       region,
					TimePeriod:   timePeriod,
					Relationship: relationship,
					Occupation:   occupation,
					Traits:       traits,
				}
				if err := app.controller.SelectHeritage(sel); err != nil {
					return err
				}
			}

			engine, err := inference.NewEngine(inference.Settings{
				Provider:    app.settings.Backend.Provider,
				Host:        app.settings.Backend.Host,
				APIKey:      app.settings.Backend.APIKey,
				Model:       app.settings.Backend.Model,
				Temperature: app.settings.Backend.Temperature,
				TopP:        app.settings.Backend.TopP,
				MaxTokens:   app.settings.Backend.MaxTokens,
			})
			if err != nil {
				return err
			}

			orchestrator := chat.NewOrchestrator(
				app.controller,
				engine,
				chat.WithGreetingDelay(app.settings.Chat.GreetingDelay),
				chat.WithProfileStore(app.profiles),
			)

			stopEvents, err := watchSessionEvents(ctx, app)
			if err != nil {
				return err
			}
			defer stopEvents()

			return runChatLoop(ctx, orchestrator)
		},
	}

	cmd.Flags().StringVar(&ethnicity, "ethnicity", "", "heritage background (hakka, hokkien, cantonese)")
	cmd.Flags().StringVar(&region, "region", "", "ancestral region")
	cmd.Flags().StringVar(&timePeriod, "time-period", "", "historical window (e.g. 1890s-1910s)")
	cmd.Flags().StringVar(&relationship, "relationship", "grandfather", "relationship to the ancestor")
	cmd.Flags().StringVar(&occupation, "occupation", "", "ancestor's occupation")
	cmd.Flags().StringVar(&traits, "traits", "", "free-text personality traits")
	cmd.Flags().StringVar(&resumeID, "resume", "", "resume the saved conversation with this id")

	return cmd
}

// watchSessionEvents subscribes a gochannel pubsub to the controller's event
// fan-out and logs persistence milestones while the chat runs.
func watchSessionEvents(ctx context.Context, app *appContext) (func(), error) {
	pubsub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})

	messages, err := pubsub.Subscribe(ctx, events.TopicSession)
	if err != nil {
		return nil, errors.Wrap(err, "subscribe to session events")
	}
	app.controller.PublisherManager().SubscribePublisher(events.TopicSession, pubsub)

	go func() {
		for msg := range messages {
			var event events.SessionEvent
			if err := json.Unmarshal(msg.Payload, &event); err != nil {
				log.Warn().Err(err).Msg("failed to decode session event")
				msg.Ack()
				continue
			}
			if event.Type == events.EventTypeTurnCompleted {
				log.Debug().
					Str("conversation_id", event.ConversationID).
					Int("messages", event.MessageCount).
					Msg("conversation saved")
			}
			msg.Ack()
		}
	}()

	return func() {
		if err := pubsub.Close(); err != nil {
			log.Warn().Err(err).Msg("failed to close event pubsub")
		}
	}, nil
}

func runChatLoop(ctx context.Context, orchestrator *chat.Orchestrator) error {
	if err := orchestrator.Start(ctx); err != nil {
		return err
	}
	printNewMessages(orchestrator.Messages(), 0)

	fmt.Println(`Type your message and press enter. "exit" ends the conversation.`)
	scanner := bufio.NewScanner(os.Stdin)
	printed := len(orchestrator.Messages())

	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		if strings.TrimSpace(line) == "exit" {
			break
		}

		if err := orchestrator.Submit(ctx, line); err != nil {
			if errors.Is(err, chat.ErrTurnInFlight) {
				fmt.Println("(your ancestor is still speaking...)")
				continue
			}
			return err
		}
		printed = printNewMessages(orchestrator.Messages(), printed)
	}

	return scanner.Err()
}

func printNewMessages(messages conversation.Conversation, printed int) int {
	for _, msg := range messages[printed:] {
		speaker := "You"
		if msg.Sender == conversation.SenderAncestor {
			speaker = "Ancestor"
		}
		fmt.Printf("\n[%s] %s\n", speaker, msg.Content)
	}
	return len(messages)
}
