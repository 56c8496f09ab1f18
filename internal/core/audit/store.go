// Copyright (c) 2026 Sommelier. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package audit

import "context"

// Repository persists audit entries.
type Repository interface {
	InsertEntry(context context.Context, entry *Entry) error
	ListEntries(context context.Context, filter Filter, limit, offset int) ([]*Entry, int, error)
}
