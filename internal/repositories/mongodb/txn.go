package mongodb

import (
	"context"

	"github.com/awash-lottery/backend/internal/repositories"
	"go.mongodb.org/mongo-driver/mongo"
)

// SessionRunner implements repositories.TransactionRunner on a mongo client
// session. The session context is handed to fn, so repository calls made
// with it join the same transaction and commit or abort as one unit.
type SessionRunner struct {
	client *mongo.Client
}

// NewSessionRunner creates a new SessionRunner
func NewSessionRunner(client *mongo.Client) repositories.TransactionRunner {
	return &SessionRunner{client: client}
}

// Run executes fn inside a single multi-document transaction
func (r *SessionRunner) Run(ctx context.Context, fn func(ctx context.Context) error) error {
	session, err := r.client.StartSession()
	if err != nil {
		return err
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sessCtx mongo.SessionContext) (interface{}, error) {
		return nil, fn(sessCtx)
	})
	return err
}
