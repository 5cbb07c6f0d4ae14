package core

import "context"

// PropertyStore persists small named values, such as the auditor's
// progress offset.
type PropertyStore interface {
	Get(ctx context.Context, key string, value any) error
	Set(ctx context.Context, key string, value any) error
}
