package app

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompose_AllSucceed(t *testing.T) {
	var (
		a string
		b int
	)

	err := Compose(context.Background(), "home", nil,
		Required("a", &a, func(context.Context) (string, error) { return "alpha", nil }),
		Optional("b", &b, func(context.Context) (int, error) { return 7, nil }),
	)

	require.NoError(t, err)
	assert.Equal(t, "alpha", a)
	assert.Equal(t, 7, b)
}

func TestCompose_OptionalFailureDegrades(t *testing.T) {
	var (
		products []string
		ads      []string
		mu       sync.Mutex
		degraded []string
	)

	onDegrade := func(_ context.Context, section string, _ error) {
		mu.Lock()
		defer mu.Unlock()

		degraded = append(degraded, section)
	}

	ads = []string{"untouched"}

	err := Compose(context.Background(), "products", onDegrade,
		Required("products", &products, func(context.Context) ([]string, error) { return []string{"p1"}, nil }),
		Optional("ads", &ads, func(context.Context) ([]string, error) { return nil, errors.New("ads down") }),
	)

	require.NoError(t, err)
	assert.Equal(t, []string{"p1"}, products)
	assert.Equal(t, []string{"untouched"}, ads, "failed section must not overwrite its destination")
	assert.Equal(t, []string{"ads"}, degraded)
}

func TestCompose_RequiredFailureFailsPage(t *testing.T) {
	backendErr := errors.New("503 from backend")

	var (
		products []string
		brands   []string
	)

	err := Compose(context.Background(), "products", nil,
		Required("products", &products, func(context.Context) ([]string, error) { return nil, backendErr }),
		Required("brands", &brands, func(ctx context.Context) ([]string, error) {
			<-ctx.Done()
			return nil, ctx.Err()
		}),
	)

	require.Error(t, err)
	assert.ErrorIs(t, err, backendErr)
	assert.Contains(t, err.Error(), "products products")
}

func TestCompose_RunsConcurrently(t *testing.T) {
	const sections = 4

	var started sync.WaitGroup
	started.Add(sections)

	wait := func(ctx context.Context) (bool, error) {
		started.Done()
		started.Wait()

		return true, nil
	}

	results := make([]bool, sections)
	ss := make([]Section, 0, sections)

	for i := range results {
		ss = append(ss, Optional("s", &results[i], wait))
	}

	done := make(chan error, 1)
	go func() { done <- Compose(context.Background(), "home", nil, ss...) }()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("sections did not run concurrently")
	}

	assert.Equal(t, []bool{true, true, true, true}, results)
}
