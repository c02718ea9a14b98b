// Package processor runs the search for a CLI config or a search-node request and returns/prints the result
package processor

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/UnendingLoop/MiniGrep/internal/matcher"
	"github.com/UnendingLoop/MiniGrep/internal/model"
	"github.com/UnendingLoop/MiniGrep/internal/reader"
	"github.com/cespare/xxhash/v2"
	"github.com/docker/distribution/uuid"
)

// Run reads the file from cfg, searches it and writes every matching line to out.
// Zero matches is a success with no output at all.
func Run(cfg *model.SearchConfig, out io.Writer) error {
	content, err := reader.ReadContent(cfg.FilePath)
	if err != nil {
		return err
	}

	w := bufio.NewWriter(out)
	for _, line := range search(cfg.Query, content, cfg.IgnoreCase) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("failed to write result: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to write result: %w", err)
	}
	return nil
}

type Processor struct{}

func (p Processor) ProcessRequest(ctx context.Context, req *model.SearchRequest) *model.SearchResult {
	result := model.SearchResult{
		RequestID: uuid.Generate().String(),
		Matches:   search(req.Query, req.Content, req.IgnoreCase),
	}

	// считаем общий хеш
	result.HashSumm = hasher(ctx, result.Matches)

	return &result
}

func search(query, content string, ignoreCase bool) []string {
	if ignoreCase {
		return matcher.SearchCaseInsensitive(query, content)
	}
	return matcher.Search(query, content)
}

// hasher returns 0 if ctx is done before all lines are hashed
func hasher(ctx context.Context, input []string) uint64 {
	hs := xxhash.New()
	for _, s := range input {
		select {
		case <-ctx.Done():
			return 0
		default:
			_, _ = hs.WriteString(s)
			_, _ = hs.WriteString("\n")
		}
	}
	return hs.Sum64()
}
