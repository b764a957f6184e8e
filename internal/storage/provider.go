package storage

import (
	"context"
	"errors"
)

// Keys under which the application state is persisted.
const (
	KeyWorkouts        = "fitness-workouts"
	KeyCustomExercises = "fitness-custom-exercises"
	KeyBodyWeight      = "fitness-bodyweight"
	KeyGoals           = "fitness-goals"
)

var AllKeys = []string{KeyWorkouts, KeyCustomExercises, KeyBodyWeight, KeyGoals}

var ErrEmptyKey = errors.New("storage key empty")

//go:generate mockgen -source=$GOFILE -destination=provider_mocks_test.go -package=storage_test

// Provider is a key-value store for serialized state.
// Load reports found=false (and no error) for a key that was never saved.
type Provider interface {
	Load(ctx context.Context, key string) (value []byte, found bool, err error)
	Save(ctx context.Context, key string, value []byte) error
}

// Namespaced prefixes every key with "<namespace>:" before delegating.
type Namespaced struct {
	namespace string
	inner     Provider
}

// WithNamespace wraps inner so that all keys are prefixed. An empty namespace returns inner as is.
func WithNamespace(namespace string, inner Provider) Provider {
	if namespace == "" {
		return inner
	}
	return &Namespaced{
		namespace: namespace,
		inner:     inner,
	}
}

func (n *Namespaced) key(key string) string {
	return n.namespace + ":" + key
}

func (n *Namespaced) Load(ctx context.Context, key string) ([]byte, bool, error) {
	return n.inner.Load(ctx, n.key(key))
}

func (n *Namespaced) Save(ctx context.Context, key string, value []byte) error {
	return n.inner.Save(ctx, n.key(key), value)
}
