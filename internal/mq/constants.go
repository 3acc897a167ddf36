package mq

import "time"

// Queue names and message definitions

// durable queue carrying catalog change notifications for downstream
// consumers (other instances, audit trails)
const (
	ContentEventsQueue = "content.events"
)

type ContentAction string

const (
	ActionCreated ContentAction = "created"
	ActionUpdated ContentAction = "updated"
	ActionDeleted ContentAction = "deleted"
)

type ContentEvent struct {
	Action  ContentAction `json:"action"`
	MovieID string        `json:"movie_id"`
	Title   string        `json:"title,omitempty"`
	At      time.Time     `json:"at"`
}
