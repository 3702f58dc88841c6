package port

//go:generate mockgen -source=session_port.go -destination=../mocks/mock_session_port.go

import (
	"context"

	"rental-frontend/app/domain"
)

// SessionManager is the single source of truth for who is logged in
type SessionManager interface {
	Snapshot() domain.Snapshot
	Subscribe() (<-chan domain.Snapshot, func())
	SignIn(ctx context.Context, email, password string) (domain.Snapshot, error)
	SignUp(ctx context.Context, req domain.SignUpRequest) (domain.Snapshot, error)
	SignOut(ctx context.Context) error
	UpdateProfile(ctx context.Context, update domain.ProfileUpdate) (*domain.Profile, error)
}

// SessionObserver is notified about session transitions and operation outcomes
type SessionObserver interface {
	StatusChanged(from, to domain.SessionStatus)
	OperationCompleted(operation string, err error)
}
