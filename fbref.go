// Package fbref provides structured extraction of football match reports
// from FBref match pages. It turns a raw, semi-structured HTML report into
// a normalized record of match facts, team statistics, and per-player
// statistics, and exposes scraping, persistence, and export on top of it.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, sqlite/, rod/).
package fbref
