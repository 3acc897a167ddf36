package mq

import (
	amqp "github.com/rabbitmq/amqp091-go"
)

func NewMQConn(url string) (*amqp.Connection, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, err
	}
	return conn, nil
}

func NewChannel(conn *amqp.Connection) (*amqp.Channel, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, err
	}
	return ch, nil
}

// InitQueues declares every queue the service publishes to. Declaration is
// idempotent, so concurrent instances can all run it at startup.
func InitQueues(mqConn *amqp.Connection) error {
	ch, err := NewChannel(mqConn)
	if err != nil {
		return err
	}
	defer ch.Close()

	_, err = ch.QueueDeclare(ContentEventsQueue, true, false, false, false, nil)
	return err
}
