package testhelpers

import (
	"io"

	"gitlab.mdcatapult.io/informatics/software-engineering/multilingual-annotation/gen/mocks"
	"gitlab.mdcatapult.io/informatics/software-engineering/multilingual-annotation/gen/pb"
)

func Span(text, label string, start, end uint32) *pb.NativeSpan {
	return &pb.NativeSpan{
		Text:  text,
		Label: label,
		Start: start,
		End:   end,
	}
}

// NewMockExtractStream builds a Recognizer_ExtractClient mock that replays
// the given spans and then EOF, the way a real backend stream would.
func NewMockExtractStream(spans ...*pb.NativeSpan) *mocks.Recognizer_ExtractClient {
	stream := &mocks.Recognizer_ExtractClient{}
	for _, span := range spans {
		stream.On("Recv").Return(span, nil).Once()
	}
	stream.On("Recv").Return(nil, io.EOF).Once()
	return stream
}
