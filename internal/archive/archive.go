// Package archive stores completion transcripts in object storage for
// later review. Archiving is best effort: a failed write never fails the
// request that produced the transcript.
package archive

import "context"

type Archiver interface {
	Archive(ctx context.Context, userID, mode string, content []byte) error
}

// Nop is wired when no object-store configuration is present.
type Nop struct{}

func (Nop) Archive(context.Context, string, string, []byte) error { return nil }
