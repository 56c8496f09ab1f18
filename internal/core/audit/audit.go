// Copyright (c) 2026 Sommelier. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package audit keeps a trail of the catalog edits made through the admin API.

Each create, update or delete forwarded to the recommendation service leaves
one [Entry] holding the operator, the target record and the wire payloads
before and after the change. Canonical objects are never stored.
*/
package audit

import (
	"encoding/json"
	"time"
)

// Action is the kind of change recorded.
type Action string

const (
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

// EntityType names the catalog a change applies to.
type EntityType string

const (
	EntityWine EntityType = "wine"
	EntityDish EntityType = "dish"
)

// Entry is one row of the audit log.
type Entry struct {
	ID           string          `json:"id"`
	ActorID      string          `json:"actor_id"`
	Action       Action          `json:"action"`
	EntityType   EntityType      `json:"entity_type"`
	EntityID     string          `json:"entity_id"`
	RestaurantID string          `json:"restaurant_id"`
	Before       json.RawMessage `json:"before,omitempty"`
	After        json.RawMessage `json:"after,omitempty"`
	IPAddress    string          `json:"ip_address,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
}

// Change is what a catalog service reports after a successful write.
// Before and After are marshalled to JSON as-is.
type Change struct {
	Action       Action
	EntityType   EntityType
	EntityID     string
	RestaurantID string
	Before       any
	After        any
}

// Filter narrows an audit listing. Nil fields match everything.
type Filter struct {
	EntityType *string
	EntityID   *string
}

const (
	FieldEntityType = "entity_type"
	FieldEntityID   = "entity_id"
)
