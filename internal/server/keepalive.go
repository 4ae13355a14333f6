package server

import "context"

// BackgroundTask is a loop the server starts with Run and stops on shutdown.
type BackgroundTask interface {
	Start(ctx context.Context)
	Stop(ctx context.Context) error
}
