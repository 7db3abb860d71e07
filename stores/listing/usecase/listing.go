package usecase

import (
	"github.com/viney-shih/goroutines"
	bCtx "github.com/framemarket/goapi/base/ctx"
	"github.com/framemarket/goapi/base/log"
	"github.com/framemarket/goapi/base/metrics"
	pricefomatter "github.com/framemarket/goapi/base/price_fomatter"
	"github.com/framemarket/goapi/domain"
	"github.com/framemarket/goapi/domain/listing"
	"github.com/framemarket/goapi/service/ens"
)

type ListingUseCaseCfg struct {
	Repo           listing.Repo
	Metadata       domain.MetadataUseCase
	Ens            ens.ENS
	PriceFormatter pricefomatter.PriceFormatter
	// BatchConcurrency bounds parallel detail reads during enumeration.
	BatchConcurrency int
}

type impl struct {
	repo           listing.Repo
	metadata       domain.MetadataUseCase
	ens            ens.ENS
	priceFormatter pricefomatter.PriceFormatter
	concurrency    int
	metrics        metrics.Service
}

func NewListingUseCase(cfg *ListingUseCaseCfg) listing.UseCase {
	concurrency := cfg.BatchConcurrency
	if concurrency <= 0 {
		concurrency = 10
	}
	return &impl{
		repo:           cfg.Repo,
		metadata:       cfg.Metadata,
		ens:            cfg.Ens,
		priceFormatter: cfg.PriceFormatter,
		concurrency:    concurrency,
		metrics:        metrics.New("listing"),
	}
}

// ListAllIds derives the dense id range [0, nextListingId) from the
// monotonic counter. Ids are never reused, so the range is complete.
func (im *impl) ListAllIds(c bCtx.Ctx) ([]listing.Id, error) {
	next, err := im.repo.NextListingId(c)
	if err != nil {
		c.WithField("err", err).Error("repo.NextListingId failed")
		return nil, err
	}
	ids := make([]listing.Id, 0, next)
	for i := uint64(0); i < next; i++ {
		ids = append(ids, listing.Id(i))
	}
	return ids, nil
}

func (im *impl) GetListing(c bCtx.Ctx, id listing.Id) (*listing.Detail, error) {
	record, err := im.repo.GetListing(c, id)
	if err != nil {
		if err != domain.ErrNotFound {
			c.WithFields(log.Fields{
				"id":  id,
				"err": err,
			}).Error("repo.GetListing failed")
		}
		return nil, err
	}
	return im.toDetail(c, record), nil
}

// GetListings enumerates the full range and reads details in parallel.
// Ids whose read failed after enumeration are skipped rather than failing
// the whole snapshot.
func (im *impl) GetListings(c bCtx.Ctx, activeOnly bool) ([]*listing.Detail, error) {
	defer im.metrics.BumpTime("getListings.time").End()

	ids, err := im.ListAllIds(c)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []*listing.Detail{}, nil
	}

	details := make([]*listing.Detail, len(ids))
	b := goroutines.NewBatch(im.concurrency, goroutines.WithBatchSize(len(ids)))
	defer b.Close()
	for i := 0; i < len(ids); i++ {
		idx := i
		b.Queue(func() (interface{}, error) {
			id := ids[idx]
			if activeOnly {
				// the active flag read is much cheaper than the full
				// record plus metadata, screen ids with it first
				active, err := im.repo.IsActive(c, id)
				if err != nil {
					c.WithFields(log.Fields{
						"id":  id,
						"err": err,
					}).Warn("skipping unreadable listing")
					return nil, nil
				}
				if !active {
					return nil, nil
				}
			}
			detail, err := im.GetListing(c, id)
			if err != nil {
				c.WithFields(log.Fields{
					"id":  id,
					"err": err,
				}).Warn("skipping unreadable listing")
				return nil, nil
			}
			details[idx] = detail
			return nil, nil
		})
	}
	b.QueueComplete()
	for ret := range b.Results() {
		if ret.Error() != nil {
			c.WithField("err", ret.Error()).Error("listing batch error result")
		}
	}

	res := make([]*listing.Detail, 0, len(details))
	for _, detail := range details {
		if detail == nil {
			continue
		}
		if activeOnly && !detail.Active {
			continue
		}
		res = append(res, detail)
	}
	return res, nil
}

func (im *impl) GetFee(c bCtx.Ctx) (*listing.Fee, error) {
	fee, err := im.repo.GetFee(c)
	if err != nil {
		c.WithField("err", err).Error("repo.GetFee failed")
		return nil, err
	}
	return fee, nil
}

// toDetail augments the raw record with display data. Metadata and ens
// failures leave their fields empty, the listing still renders.
func (im *impl) toDetail(c bCtx.Ctx, record *listing.Listing) *listing.Detail {
	detail := &listing.Detail{
		Listing:      *record,
		DisplayPrice: im.priceFormatter.FormatNative(record.Price),
		SellerShort:  record.Seller.Short(),
	}

	if name, err := im.ens.ReverseResolve(c, record.Seller); err == nil {
		detail.SellerEns = name
	}

	metadata, err := im.metadata.Resolve(c, record.Nft, record.TokenId)
	if err != nil {
		c.WithFields(log.Fields{
			"nft":     record.Nft,
			"tokenId": record.TokenId,
			"err":     err,
		}).Warn("metadata unavailable for listing")
	}
	if metadata != nil {
		detail.Name = metadata.Name
		detail.Description = metadata.Description
		detail.Image = metadata.Image
	}
	return detail
}
