package input

import (
	"context"
	"io"

	"countdown/internal/domain"
)

type CountdownUseCase interface {
	// Run validates args (already stripped of language tokens) and counts
	// down, writing every line to w in lang.
	Run(ctx context.Context, w io.Writer, lang domain.Language, args []string) error
}
