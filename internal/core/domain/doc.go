// Package domain contains the core business entities for pdfchat.
//
// This package has no dependencies on infrastructure - it defines
// documents, chunks, retrieval results, conversation state and the
// error taxonomy shared by services and adapters.
package domain
