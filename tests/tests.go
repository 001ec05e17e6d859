// Package tests provides utilities for managing test context with unique
// identifiers and test metadata. It allows tests to carry test-specific
// information (test name, unique ID) through context.Context, making it
// easier to correlate test execution with log output.
package tests

import (
	"context"
	"testing"

	"github.com/google/uuid"
)

// contextKey is a private type used for storing test metadata in context.Context.
// Using a custom type instead of string prevents collisions with other packages
// that might use the same key names.
type contextKey string

const (
	testIdKey   contextKey = "testId"
	testNameKey contextKey = "testName"
)

// Info holds the metadata attached to a test context.
type Info struct {
	Id   string
	Name string
}

// GetUniqueContext creates a new context derived from t.Context() that
// includes a unique test identifier (UUID with "test-" prefix) and the test
// name from t.Name().
func GetUniqueContext(t *testing.T) context.Context {
	t.Helper()

	ctx := context.WithValue(t.Context(), testIdKey, "test-"+uuid.New().String())

	return context.WithValue(ctx, testNameKey, t.Name())
}

// GetTestInfo extracts the test metadata from a context created by
// GetUniqueContext. The second return value is false if the context carries
// no test metadata.
func GetTestInfo(ctx context.Context) (Info, bool) {
	id, ok := ctx.Value(testIdKey).(string)
	if !ok {
		return Info{}, false
	}

	name, _ := ctx.Value(testNameKey).(string)

	return Info{Id: id, Name: name}, true
}
