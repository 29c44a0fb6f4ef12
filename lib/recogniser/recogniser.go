// Package recogniser defines the boundary to black-box NER model backends.
package recogniser

import (
	"context"

	"gitlab.mdcatapult.io/informatics/software-engineering/multilingual-annotation/gen/pb"
)

// Client runs one text through an NER backend and returns the raw spans the
// model found. A backend that is down or missing its model weights returns
// an error - extraction has no safe fallback vocabulary, so unavailability
// is a hard failure, never a silent empty result.
type Client interface {
	Recognise(ctx context.Context, request *pb.ExtractRequest) ([]*pb.NativeSpan, error)
}
