package processor

import (
	"context"
	"log/slog"

	"github.com/joseph-ayodele/statement-extractor/internal/candidates"
	"github.com/joseph-ayodele/statement-extractor/internal/common"
	"github.com/joseph-ayodele/statement-extractor/internal/patterns"
	"github.com/joseph-ayodele/statement-extractor/internal/resolve"
)

// ParseStage turns page text into candidates and resolved fields. It never fails:
// whatever cannot be resolved is left at NOT_FOUND.
type ParseStage struct {
	Library  *patterns.Library
	Resolver *resolve.Resolver
	Logger   *slog.Logger
}

func NewParseStage(lib *patterns.Library, logger *slog.Logger) *ParseStage {
	if logger == nil {
		logger = slog.Default()
	}
	if lib == nil {
		lib = patterns.Default()
	}
	return &ParseStage{Library: lib, Resolver: resolve.New(lib, logger), Logger: logger}
}

func (s *ParseStage) Run(ctx context.Context, text string) (candidates.Scan, resolve.Resolution) {
	scan := candidates.Extract(s.Library, text)
	res := s.Resolver.ResolveScan(scan)

	s.Logger.Debug("parse stage done",
		"document_id", common.DocumentIDFromContext(ctx),
		"dates", len(scan.Candidates.Dates),
		"amounts", len(scan.Candidates.Amounts),
		"masked", len(scan.Candidates.Masked),
		"labels", len(scan.Labels),
		"unresolved", len(res.Unresolved()),
	)
	return scan, res
}
