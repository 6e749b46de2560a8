package fotzpdf

import (
	"context"
	"fmt"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// documentMerger concatenates finished PDF files page-for-page, in the
// order given. Merging happens at the document level: every source is a
// fully paginated PDF before it reaches the merger.
type documentMerger interface {
	Merge(ctx context.Context, inFiles []string, outFile string) error
}

// pdfcpuMerger merges with relaxed validation. Chrome's print output is
// well formed but not always strictly conformant.
type pdfcpuMerger struct{}

func (pdfcpuMerger) Merge(ctx context.Context, inFiles []string, outFile string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	cfg := model.NewDefaultConfiguration()
	cfg.ValidationMode = model.ValidationRelaxed
	if err := api.MergeCreateFile(inFiles, outFile, false, cfg); err != nil {
		return fmt.Errorf("%w: %v", ErrMergeFailed, err)
	}
	return nil
}
