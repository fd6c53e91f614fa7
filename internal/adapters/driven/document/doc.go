// Package document loads text and PDF documents into pages and watches them
// for changes on disk.
//
// Text files are paged on form feeds and line counts. PDF files get one
// page per page tree leaf, read with seehuhn.de/go/pdf.
package document
