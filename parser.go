package fbref

// Parser transforms a raw match report document into a normalized record.
// Parsing is a pure transformation: it performs no I/O and holds no state
// across calls, so implementations are safe for concurrent use.
type Parser interface {
	// ParseReport extracts a MatchReport from raw HTML. Page-level failures
	// (challenge page, missing page, rate limit, missing scorebox) return an
	// error whose ErrorCode is EBLOCKED, ENOTFOUND, ERATELIMITED, or
	// EINVALID respectively; all other missing data is omitted from the
	// report rather than failing the extraction.
	ParseReport(sourceURL, html string) (*MatchReport, error)
}
