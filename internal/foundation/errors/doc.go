// Package errors provides the classified error type used across sitecontent.
//
// A ClassifiedError carries a category (config, validation, ...), a severity
// and a small context map. Nothing in the content model is process-fatal:
// severities describe the scope of the failure (one attribute, one entity)
// and callers decide whether to skip, log or abort.
//
// Example usage:
//
//	err := errors.ConfigError("url template setting is missing").
//		WithContext("setting", "ARTICLE_URL").
//		Build()
package errors
