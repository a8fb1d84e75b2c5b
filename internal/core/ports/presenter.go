package ports

import "go.trai.ch/xclean/internal/core/domain"

// Presenter receives state changes from the cleanup coordinator.
// Every method is called on the interactive execution context.
//
//go:generate mockgen -source=presenter.go -destination=mocks/mock_presenter.go -package=mocks
type Presenter interface {
	// OnSnapshot replaces the entry list shown to the user.
	OnSnapshot(snapshot domain.Snapshot)
	// OnEntrySized is called once per entry when its size becomes known.
	OnEntrySized(entry *domain.Entry)
	// OnDeleteFailed reports a non-fatal deletion error.
	OnDeleteFailed(op domain.Operation, err error)
	// OnUnavailable reports that op could not run because the cache root is unknown.
	OnUnavailable(op domain.Operation)
}
