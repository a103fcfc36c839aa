package actionlog

import (
	"context"

	"sg-console-srv/internal/model"
)

// Recorder is what mutating domains depend on. Record never fails the caller.
type Recorder interface {
	Record(ctx context.Context, sc model.Scope, input RecordInput)
}

//go:generate mockery --name UseCase
type UseCase interface {
	Recorder
	Store(ctx context.Context, event ActionEvent) error
	List(ctx context.Context, sc model.Scope, input ListInput) (ListOutput, error)
	// Export writes the project's action logs, newest first, to a CSV object and returns
	// a presigned download link.
	Export(ctx context.Context, sc model.Scope, input ExportInput) (ExportOutput, error)
}

// Producer publishes action events to the message bus.
type Producer interface {
	PublishAction(ctx context.Context, event ActionEvent) error
}
