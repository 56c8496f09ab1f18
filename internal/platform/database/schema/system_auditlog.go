// Copyright (c) 2026 Sommelier. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package schema names the tables and columns used by the storage adapters.
package schema

// SystemAuditLogTable represents the 'system.auditlog' table
type SystemAuditLogTable struct {
	Table        string
	ID           string
	ActorID      string
	Action       string
	EntityType   string
	EntityID     string
	RestaurantID string
	Before       string
	After        string
	IPAddress    string
	CreatedAt    string
}

var SystemAuditLog = SystemAuditLogTable{
	Table:        "system.auditlog",
	ID:           "id",
	ActorID:      "actorid",
	Action:       "action",
	EntityType:   "entitytype",
	EntityID:     "entityid",
	RestaurantID: "restaurantid",
	Before:       "before",
	After:        "after",
	IPAddress:    "ipaddress",
	CreatedAt:    "createdat",
}
