package storage

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockPutObject struct {
	mock.Mock
}

func (m *mockPutObject) PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*s3.PutObjectOutput), args.Error(1)
}

func TestUpload(t *testing.T) {
	api := new(mockPutObject)
	api.On("PutObject", mock.Anything, mock.MatchedBy(func(in *s3.PutObjectInput) bool {
		body, _ := io.ReadAll(in.Body)
		return aws.ToString(in.Bucket) == "reports" &&
			aws.ToString(in.Key) == "outcomes/2026-10.xlsx" &&
			string(body) == "xlsx-bytes"
	})).Return(&s3.PutObjectOutput{}, nil)

	uri, err := Upload(context.Background(), api, "reports", "outcomes/2026-10.xlsx", []byte("xlsx-bytes"), "application/octet-stream")
	require.NoError(t, err)
	assert.Equal(t, "s3://reports/outcomes/2026-10.xlsx", uri)
	api.AssertExpectations(t)
}

func TestUploadErrors(t *testing.T) {
	api := new(mockPutObject)
	_, err := Upload(context.Background(), api, "", "k", nil, "text/plain")
	assert.ErrorIs(t, err, ErrNoBucket)

	boom := errors.New("access denied")
	api.On("PutObject", mock.Anything, mock.Anything).Return(nil, boom)
	_, err = Upload(context.Background(), api, "reports", "k", nil, "text/plain")
	assert.ErrorIs(t, err, boom)
}

func TestEndpointResolution(t *testing.T) {
	assert.Empty(t, Config{Provider: ProviderAWS, Region: "us-east-1"}.endpoint())
	assert.Equal(t, "https://s3.eu-central-1.wasabisys.com", Config{Provider: ProviderWasabi, Region: "eu-central-1"}.endpoint())
	assert.Equal(t, "http://minio:9000", Config{Provider: ProviderAWS, Endpoint: "http://minio:9000"}.endpoint())
}
