// Package content is the in-memory model of a site's content.
//
// A Content value is built once per source item from already rendered HTML
// plus metadata. Construction derives the template, author, language, slug,
// date format, locale date and status in a fixed order and never fails;
// mandatory fields are checked separately by CheckProperties so that the
// caller can skip and log invalid items instead of aborting a run.
//
// URL and SaveAs are computed on demand from the <KIND>_URL and
// <KIND>_SAVE_AS settings. ContentFor rewrites |filename|path placeholders
// in href and src attributes against a site-wide Context and caches the
// result per site URL for the lifetime of the value.
//
// Category, Tag and Author share URLWrapper. Wrappers compare and hash by
// name only: two tags called "Go" are the same tag wherever they come from.
package content
