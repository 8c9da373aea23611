// Package extractors contains text extraction implementations for the
// supported document formats. Each subpackage implements the
// driven.Extractor port for one format family.
package extractors
