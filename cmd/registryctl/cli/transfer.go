package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/shareregistry/backoffice/internal/platform/crud"
)

// TransferCLI runs spreadsheet import and export against module transfers.
type TransferCLI struct {
	transfers map[string]crud.Transfer
}

// NewTransferCLI wraps the transfers keyed by module slug.
func NewTransferCLI(transfers map[string]crud.Transfer) (*TransferCLI, error) {
	if len(transfers) == 0 {
		return nil, errors.New("transfer cli: no modules")
	}
	return &TransferCLI{transfers: transfers}, nil
}

func (c *TransferCLI) lookup(slug string) (crud.Transfer, error) {
	t, ok := c.transfers[slug]
	if !ok {
		return nil, fmt.Errorf("unknown module %q (run `registryctl modules`)", slug)
	}
	return t, nil
}

// Modules prints every module slug with its capabilities.
func (c *TransferCLI) Modules(out io.Writer) {
	slugs := make([]string, 0, len(c.transfers))
	for slug := range c.transfers {
		slugs = append(slugs, slug)
	}
	sort.Strings(slugs)
	for _, slug := range slugs {
		scope := "unscoped"
		if c.transfers[slug].Scoped() {
			scope = "scoped"
		}
		fmt.Fprintf(out, "%-28s %s\n", slug, scope)
	}
}

// Import reads the workbook at path into module slug.
func (c *TransferCLI) Import(ctx context.Context, slug, path string, out io.Writer) (crud.ImportResult, error) {
	t, err := c.lookup(slug)
	if err != nil {
		return crud.ImportResult{}, err
	}
	f, err := os.Open(path)
	if err != nil {
		return crud.ImportResult{}, err
	}
	defer f.Close()
	result, err := t.Import(ctx, f)
	if err != nil {
		return result, err
	}
	fmt.Fprintf(out, "imported %d rows, %d failed\n", result.SuccessCount, result.ErrorCount)
	if result.FileName != "" {
		fmt.Fprintf(out, "failure report: %s\n", result.FileName)
	}
	return result, nil
}

// Export writes every record of module slug, optionally within scope, to path.
func (c *TransferCLI) Export(ctx context.Context, slug string, scope int64, path string, out io.Writer) (int, error) {
	t, err := c.lookup(slug)
	if err != nil {
		return 0, err
	}
	var filter crud.Filter
	if scope > 0 {
		filter.ScopeID = &scope
	} else if t.Scoped() {
		return 0, fmt.Errorf("module %q is scoped: pass --scope", slug)
	}
	f, err := os.Create(path)
	if err != nil {
		return 0, err
	}
	n, err := t.Export(ctx, f, filter)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(path)
		return 0, err
	}
	fmt.Fprintf(out, "exported %d rows to %s\n", n, path)
	return n, nil
}
