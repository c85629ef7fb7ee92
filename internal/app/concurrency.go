package app

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/plazasales/storefront/internal/platform/logging"
)

// Section is one backend call contributing to a composed page.
type Section struct {
	Name     string
	Required bool
	run      func(ctx context.Context) error
}

// Required builds a section whose failure fails the page. dst is written
// only on success.
func Required[T any](name string, dst *T, fetch func(context.Context) (T, error)) Section {
	return Section{Name: name, Required: true, run: assign(dst, fetch)}
}

// Optional builds a section that degrades to its zero value on failure.
func Optional[T any](name string, dst *T, fetch func(context.Context) (T, error)) Section {
	return Section{Name: name, run: assign(dst, fetch)}
}

func assign[T any](dst *T, fetch func(context.Context) (T, error)) func(context.Context) error {
	return func(ctx context.Context) error {
		v, err := fetch(ctx)
		if err != nil {
			return err
		}

		*dst = v

		return nil
	}
}

// degradeFunc is told about each optional section that failed.
type degradeFunc func(ctx context.Context, section string, err error)

// Compose runs all sections concurrently. The first required failure cancels
// the others and is returned; optional failures are reported to onDegrade
// and logged at warn.
func Compose(ctx context.Context, page string, onDegrade degradeFunc, sections ...Section) error {
	g, gctx := errgroup.WithContext(ctx)

	for _, s := range sections {
		g.Go(func() error {
			err := s.run(gctx)
			if err == nil {
				return nil
			}

			if s.Required {
				return fmt.Errorf("%s %s: %w", page, s.Name, err)
			}

			logging.FromContext(ctx).WarnContext(ctx, "page section degraded",
				slog.String("page", page),
				slog.String("section", s.Name),
				slog.Any("error", err),
			)

			if onDegrade != nil {
				onDegrade(ctx, s.Name, err)
			}

			return nil
		})
	}

	return g.Wait()
}
