package usecase

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	bCtx "github.com/framemarket/goapi/base/ctx"
	"github.com/framemarket/goapi/base/log"
	"github.com/framemarket/goapi/domain"
	"github.com/framemarket/goapi/domain/keys"
	"github.com/framemarket/goapi/service/cache"
	"github.com/framemarket/goapi/service/cache/provider/primitive"
)

type MetadataUseCaseCfg struct {
	CacheTtl      time.Duration
	TokenURI      domain.TokenURIReader
	HttpReader    domain.WebResourceReaderRepository
	IpfsReader    domain.WebResourceReaderRepository
	DataUriReader domain.WebResourceReaderRepository
	// PublicGateway rewrites ipfs:// image pointers into fetchable https
	// urls, e.g. https://ipfs.io/ipfs.
	PublicGateway string
}

type metadataUseCase struct {
	tokenURI      domain.TokenURIReader
	httpReader    domain.WebResourceReaderRepository
	ipfsReader    domain.WebResourceReaderRepository
	dataUriReader domain.WebResourceReaderRepository
	publicGateway string
	cache         cache.Service
}

func NewMetadataUseCase(cfg *MetadataUseCaseCfg) domain.MetadataUseCase {
	ttl := cfg.CacheTtl
	if ttl == 0 {
		ttl = time.Hour
	}
	return &metadataUseCase{
		tokenURI:      cfg.TokenURI,
		httpReader:    cfg.HttpReader,
		ipfsReader:    cfg.IpfsReader,
		dataUriReader: cfg.DataUriReader,
		publicGateway: strings.TrimSuffix(cfg.PublicGateway, "/"),
		cache: cache.New(cache.ServiceConfig{
			Ttl:   ttl,
			Pfx:   keys.PfxMetadata,
			Cache: primitive.NewPrimitive("metadata", 128),
		}),
	}
}

// Resolve returns the descriptive document for the token. The result is
// always renderable; on a failed fetch the fields stay empty and the error
// explains why. Each (contract, tokenId) pair is fetched from the network
// at most once per cache window, failures included.
func (u *metadataUseCase) Resolve(c bCtx.Ctx, contract domain.Address, tokenId domain.TokenId) (*domain.NftMetadata, error) {
	key := keys.CacheKey(contract.ToLowerStr(), tokenId.String())

	res := domain.NftMetadata{}
	if err := u.cache.Get(c, key, &res); err == nil {
		return &res, nil
	} else if err != cache.ErrNotFound {
		c.WithField("err", err).Warn("metadata cache read failed")
	}

	metadata, resolveErr := u.fetch(c, contract, tokenId)
	if metadata == nil {
		metadata = &domain.NftMetadata{}
	}
	// negative results are cached too, the pair is fetched at most once
	if err := u.cache.Set(c, key, metadata); err != nil {
		c.WithField("err", err).Warn("metadata cache write failed")
	}
	return metadata, resolveErr
}

func (u *metadataUseCase) Invalidate(c bCtx.Ctx, contract domain.Address, tokenId domain.TokenId) error {
	key := keys.CacheKey(contract.ToLowerStr(), tokenId.String())
	return u.cache.Del(c, key)
}

func (u *metadataUseCase) fetch(c bCtx.Ctx, contract domain.Address, tokenId domain.TokenId) (*domain.NftMetadata, error) {
	rawUrl, err := u.tokenURI.TokenURI(c, contract, tokenId)
	if err != nil {
		c.WithFields(log.Fields{
			"contract": contract,
			"tokenId":  tokenId,
			"err":      err,
		}).Warn("tokenURI read failed")
		return nil, domain.ErrMetadataFetchFailed
	}

	data, err := u.getFromUrl(c, rawUrl)
	if err != nil {
		return nil, err
	}
	if !json.Valid(data) {
		c.WithField("url", rawUrl).Error("invalid json")
		return nil, domain.ErrInvalidJsonFormat
	}

	metadata := domain.NftMetadata{}
	if err := json.Unmarshal(data, &metadata); err != nil {
		c.WithField("url", rawUrl).Error("invalid json")
		return nil, domain.ErrInvalidJsonFormat
	}
	metadata.Image = u.rewriteImage(metadata.Image)
	return &metadata, nil
}

func (u *metadataUseCase) getFromUrl(c bCtx.Ctx, rawUrl string) ([]byte, error) {
	pUrl, err := url.Parse(rawUrl)
	if err != nil {
		c.WithFields(log.Fields{
			"url": rawUrl,
			"err": err,
		}).Error("failed to parse url")
		return nil, domain.ErrUnsupportedSchema
	}

	var data []byte
	switch pUrl.Scheme {
	case "http", "https":
		data, err = u.httpReader.Get(c, rawUrl)
	case "ipfs":
		data, err = u.ipfsReader.Get(c, strings.TrimPrefix(rawUrl, "ipfs://"))
	case "data":
		data, err = u.dataUriReader.Get(c, rawUrl)
	default:
		return nil, domain.ErrUnsupportedSchema
	}

	if err != nil {
		c.WithFields(log.Fields{
			"schema": pUrl.Scheme,
			"url":    rawUrl,
			"err":    err,
		}).Error("failed to fetch")
		return nil, domain.ErrMetadataFetchFailed
	}
	return data, nil
}

func (u *metadataUseCase) rewriteImage(image string) string {
	if u.publicGateway == "" || !strings.HasPrefix(image, "ipfs://") {
		return image
	}
	return fmt.Sprintf("%s/%s", u.publicGateway, strings.TrimPrefix(image, "ipfs://"))
}
