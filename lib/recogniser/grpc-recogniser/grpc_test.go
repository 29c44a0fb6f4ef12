package grpc_recogniser

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"gitlab.mdcatapult.io/informatics/software-engineering/multilingual-annotation/gen/mocks"
	"gitlab.mdcatapult.io/informatics/software-engineering/multilingual-annotation/gen/pb"
	"gitlab.mdcatapult.io/informatics/software-engineering/multilingual-annotation/lib/testhelpers"
)

func TestRecognise(t *testing.T) {
	request := &pb.ExtractRequest{Text: "BERT beats LSTM", Language: "en", Model: "scibert"}
	spans := []*pb.NativeSpan{
		testhelpers.Span("BERT", "PRODUCT", 0, 4),
		testhelpers.Span("LSTM", "PRODUCT", 11, 15),
	}

	client := &mocks.RecognizerClient{}
	client.On("Extract", mock.Anything, request).
		Return(testhelpers.NewMockExtractStream(spans...), nil)

	got, err := New(client).Recognise(context.Background(), request)
	require.NoError(t, err)

	assert.Equal(t, spans, got)
	client.AssertExpectations(t)
}

func TestRecogniseNoSpans(t *testing.T) {
	client := &mocks.RecognizerClient{}
	client.On("Extract", mock.Anything, mock.Anything).
		Return(testhelpers.NewMockExtractStream(), nil)

	got, err := New(client).Recognise(context.Background(), &pb.ExtractRequest{Text: "nothing here"})
	require.NoError(t, err)

	assert.Empty(t, got)
}

func TestRecogniseDialError(t *testing.T) {
	client := &mocks.RecognizerClient{}
	client.On("Extract", mock.Anything, mock.Anything).
		Return(nil, errors.New("connection refused"))

	got, err := New(client).Recognise(context.Background(), &pb.ExtractRequest{Text: "some text"})

	assert.Nil(t, got)
	assert.EqualError(t, err, "connection refused")
}

func TestRecogniseStreamError(t *testing.T) {
	stream := &mocks.Recognizer_ExtractClient{}
	stream.On("Recv").Return(testhelpers.Span("BERT", "PRODUCT", 0, 4), nil).Once()
	stream.On("Recv").Return(nil, errors.New("stream reset")).Once()

	client := &mocks.RecognizerClient{}
	client.On("Extract", mock.Anything, mock.Anything).Return(stream, nil)

	got, err := New(client).Recognise(context.Background(), &pb.ExtractRequest{Text: "some text"})

	assert.Nil(t, got)
	assert.EqualError(t, err, "stream reset")
}
