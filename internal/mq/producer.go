package mq

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

func SendMessage(ch *amqp.Channel, queueName string, message any) error {
	body, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	err = ch.PublishWithContext(
		context.Background(),
		"",
		queueName,
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Body:         body,
			Timestamp:    time.Now(),
		},
	)
	if err != nil {
		return fmt.Errorf("failed to publish message to queue %s: %w", queueName, err)
	}

	return nil
}

// PublishContentEvent announces a catalog mutation on the content events
// queue.
func PublishContentEvent(ch *amqp.Channel, action ContentAction, movieID, title string) error {
	return SendMessage(ch, ContentEventsQueue, ContentEvent{
		Action:  action,
		MovieID: movieID,
		Title:   title,
		At:      time.Now(),
	})
}
