package usecase

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	bCtx "github.com/framemarket/goapi/base/ctx"
	"github.com/framemarket/goapi/domain"
	"github.com/framemarket/goapi/domain/mocks"
)

const (
	testContract = domain.Address("0x9c2e6f2b86dd7f7e67b9bba1679859b3f5a84c4c")
	testTokenId  = domain.TokenId("7")
)

func newTestUseCase(uri *mocks.TokenURIReader, readers map[string]*mocks.WebResourceReaderRepository) domain.MetadataUseCase {
	return NewMetadataUseCase(&MetadataUseCaseCfg{
		TokenURI:      uri,
		HttpReader:    readers["http"],
		IpfsReader:    readers["ipfs"],
		DataUriReader: readers["datauri"],
		PublicGateway: "https://ipfs.io/ipfs",
	})
}

func emptyReaders() map[string]*mocks.WebResourceReaderRepository {
	return map[string]*mocks.WebResourceReaderRepository{
		"http":    {},
		"ipfs":    {},
		"datauri": {},
	}
}

func Test_metadataUseCase_Resolve(t *testing.T) {
	tests := []struct {
		name         string
		uri          string
		calledReader string
		calledUrl    string
		body         string
		want         domain.NftMetadata
		wantErr      error
	}{
		{
			name:         "https metadata",
			uri:          "https://example.org/7.json",
			calledReader: "http",
			calledUrl:    "https://example.org/7.json",
			body:         `{"name":"Frame #7","description":"framed","image":"https://example.org/7.png"}`,
			want:         domain.NftMetadata{Name: "Frame #7", Description: "framed", Image: "https://example.org/7.png"},
		},
		{
			name:         "ipfs metadata with ipfs image rewritten to gateway",
			uri:          "ipfs://QmeSjSinHpPnmXmspMjwiXyN6zS4E9zccariGR3jxcaWtq/7",
			calledReader: "ipfs",
			calledUrl:    "QmeSjSinHpPnmXmspMjwiXyN6zS4E9zccariGR3jxcaWtq/7",
			body:         `{"name":"Frame #7","image":"ipfs://QmRRPWG96cmgTn2qSzjwr2qvfNEuhunv6FNeMFGa9bx6mQ"}`,
			want:         domain.NftMetadata{Name: "Frame #7", Image: "https://ipfs.io/ipfs/QmRRPWG96cmgTn2qSzjwr2qvfNEuhunv6FNeMFGa9bx6mQ"},
		},
		{
			name:         "data uri metadata",
			uri:          `data:application/json;utf8,{"name":"Frame #7"}`,
			calledReader: "datauri",
			calledUrl:    `data:application/json;utf8,{"name":"Frame #7"}`,
			body:         `{"name":"Frame #7"}`,
			want:         domain.NftMetadata{Name: "Frame #7"},
		},
		{
			name:    "unsupported schema yields empty result",
			uri:     "ftp://example.org/7.json",
			wantErr: domain.ErrUnsupportedSchema,
		},
		{
			name:         "invalid json yields empty result",
			uri:          "https://example.org/7.json",
			calledReader: "http",
			calledUrl:    "https://example.org/7.json",
			body:         `<html>not json</html>`,
			wantErr:      domain.ErrInvalidJsonFormat,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			ctx := bCtx.Background()

			uriReader := &mocks.TokenURIReader{}
			uriReader.On("TokenURI", mock.Anything, testContract, testTokenId).Return(tt.uri, nil)
			readers := emptyReaders()
			if len(tt.calledReader) > 0 {
				readers[tt.calledReader].On("Get", mock.Anything, tt.calledUrl).Return([]byte(tt.body), nil)
			}

			u := newTestUseCase(uriReader, readers)
			got, err := u.Resolve(ctx, testContract, testTokenId)
			if tt.wantErr != nil {
				req.ErrorIs(err, tt.wantErr)
			} else {
				req.NoError(err)
			}
			req.NotNil(got)
			req.Equal(tt.want, *got)
		})
	}
}

func Test_metadataUseCase_Resolve_cachesOnce(t *testing.T) {
	req := require.New(t)
	ctx := bCtx.Background()

	uriReader := &mocks.TokenURIReader{}
	uriReader.On("TokenURI", mock.Anything, testContract, testTokenId).Return("https://example.org/7.json", nil).Once()
	readers := emptyReaders()
	readers["http"].On("Get", mock.Anything, "https://example.org/7.json").Return([]byte(`{"name":"Frame #7"}`), nil).Once()

	u := newTestUseCase(uriReader, readers)

	got, err := u.Resolve(ctx, testContract, testTokenId)
	req.NoError(err)
	req.Equal("Frame #7", got.Name)

	// second resolve is served from cache, mocks are exhausted
	got, err = u.Resolve(ctx, testContract, testTokenId)
	req.NoError(err)
	req.Equal("Frame #7", got.Name)
	uriReader.AssertExpectations(t)
	readers["http"].AssertExpectations(t)
}

func Test_metadataUseCase_Invalidate(t *testing.T) {
	req := require.New(t)
	ctx := bCtx.Background()

	uriReader := &mocks.TokenURIReader{}
	uriReader.On("TokenURI", mock.Anything, testContract, testTokenId).Return("https://example.org/7.json", nil).Twice()
	readers := emptyReaders()
	readers["http"].On("Get", mock.Anything, "https://example.org/7.json").Return([]byte(`{"name":"Frame #7"}`), nil).Twice()

	u := newTestUseCase(uriReader, readers)

	_, err := u.Resolve(ctx, testContract, testTokenId)
	req.NoError(err)
	req.NoError(u.Invalidate(ctx, testContract, testTokenId))

	_, err = u.Resolve(ctx, testContract, testTokenId)
	req.NoError(err)
	uriReader.AssertExpectations(t)
	readers["http"].AssertExpectations(t)
}
