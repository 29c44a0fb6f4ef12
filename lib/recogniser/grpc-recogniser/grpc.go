package grpc_recogniser

import (
	"context"
	"io"

	"gitlab.mdcatapult.io/informatics/software-engineering/multilingual-annotation/gen/pb"
	"gitlab.mdcatapult.io/informatics/software-engineering/multilingual-annotation/lib/recogniser"
)

func New(client pb.RecognizerClient) recogniser.Client {
	return &grpcRecogniser{client: client}
}

type grpcRecogniser struct {
	client pb.RecognizerClient
}

func (g *grpcRecogniser) Recognise(ctx context.Context, request *pb.ExtractRequest) ([]*pb.NativeSpan, error) {
	stream, err := g.client.Extract(ctx, request)
	if err != nil {
		return nil, err
	}

	var spans []*pb.NativeSpan
	for {
		span, err := stream.Recv()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, err
		}
		spans = append(spans, span)
	}

	return spans, nil
}
