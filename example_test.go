package fieldquote_test

import (
	"context"
	"fmt"

	"github.com/fieldquote/fieldquote"
	"github.com/fieldquote/fieldquote/pkg/domain"
)

// ExampleNew demonstrates the stateless turn loop: the caller keeps the
// returned phase and context and passes both back with the next message.
func ExampleNew() {
	eng := fieldquote.New()
	ctx := context.Background()

	// Naming a job type up front skips the job menu.
	res := eng.Dispatch(ctx, fieldquote.StartPhase, nil, "panel upgrade", domain.Settings{})
	fmt.Println(res.Phase)
	fmt.Println(res.Message)

	// The next turn resumes exactly where the returned pair says.
	res = eng.Dispatch(ctx, res.Phase, res.Context, "200 amp", domain.Settings{})
	fmt.Println(res.Message)

	// Output:
	// scoping
	// Question 1 of 3: What amperage is the new service?
	// Question 2 of 3: Where is the panel located?
}
