// Package context scopes memoized reads and staged writes to one request.
//
// Reads are fetched at most once per key, so the validate and perform steps
// of a flow can both ask for the career being applied to:
//
//	career, err := context.Fetch(rc, "career:"+slug, func(ctx context.Context) (*domain.Career, error) {
//	    return careers.GetCareer(ctx, slug)
//	})
//
// Writes are staged as actions and committed in order. When one fails, the
// actions already done are undone in reverse:
//
//	rc.Stage(context.Func{Label: "upload resume", DoFn: put, UndoFn: remove})
//	rc.Stage(context.Func{Label: "submit application", DoFn: submit})
//
//	if err := rc.Commit(ctx); err != nil {
//	    // the resume has been deleted again
//	}
package context
