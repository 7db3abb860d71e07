package main

import (
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/viper"

	"github.com/go-playground/validator/v10"
	"github.com/framemarket/goapi/base/ctx"
	"github.com/framemarket/goapi/base/log"
	pricefomatter "github.com/framemarket/goapi/base/price_fomatter"
	bValidator "github.com/framemarket/goapi/base/validator"
	"github.com/framemarket/goapi/domain"
	mmiddleware "github.com/framemarket/goapi/middleware"
	"github.com/framemarket/goapi/service/chain"
	"github.com/framemarket/goapi/service/chain/contract"
	"github.com/framemarket/goapi/service/ens"
	wallet_service "github.com/framemarket/goapi/service/wallet"
	hc_delivery "github.com/framemarket/goapi/stores/healthcheck/delivery/http"
	hc_repo "github.com/framemarket/goapi/stores/healthcheck/repository"
	hc_usecase "github.com/framemarket/goapi/stores/healthcheck/usecase"
	listing_delivery "github.com/framemarket/goapi/stores/listing/delivery/http"
	listing_repository "github.com/framemarket/goapi/stores/listing/repository"
	listing_usecase "github.com/framemarket/goapi/stores/listing/usecase"
	market_delivery "github.com/framemarket/goapi/stores/market/delivery/http"
	market_repository "github.com/framemarket/goapi/stores/market/repository"
	market_usecase "github.com/framemarket/goapi/stores/market/usecase"
	metadata_usecase "github.com/framemarket/goapi/stores/metadata/usecase"
	tx_repository "github.com/framemarket/goapi/stores/tx/repository"
	tx_usecase "github.com/framemarket/goapi/stores/tx/usecase"
	wallet_delivery "github.com/framemarket/goapi/stores/wallet/delivery/http"
	wallet_repository "github.com/framemarket/goapi/stores/wallet/repository"
	wallet_usecase "github.com/framemarket/goapi/stores/wallet/usecase"
	web_resource_repository "github.com/framemarket/goapi/stores/web_resource/repository"

	ipfsapi "github.com/ipfs/go-ipfs-api"
)

func init() {
	viper.SetConfigType("yaml")
	viper.SetConfigFile(`infra/configs/config.yaml`)
	err := viper.ReadInConfig()
	if err != nil {
		panic(err)
	}

	if viper.GetBool(`debug`) {
		log.Log().Info("Service RUN on DEBUG mode")
	}
}

func main() {
	// init echo
	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{}))
	e.Use(middleware.RequestID())
	middL := mmiddleware.InitMiddleware()
	e.Use(middL.ResponseLogger())
	e.Use(middL.AddContext())
	e.Use(middleware.CORS())
	e.Validator = bValidator.NewCustomValidator(validator.New())

	context := ctx.Background()

	// init chain service
	context.Info("init chain service")
	chainService, err := chain.NewClient(context, &chain.ClientCfg{
		ChainId:        domain.ChainId(viper.GetInt32("network.chainId")),
		RpcUrl:         viper.GetString("network.rpcUrl"),
		MaxConcurrency: viper.GetInt("network.maxConcurrency"),
	})
	if err != nil {
		panic(err)
	}

	marketAddress := domain.Address(viper.GetString("market.address")).ToLower()
	frameMarket := contract.NewFrameMarket(chainService, marketAddress)
	erc721Service := contract.NewErc721(chainService)

	// ens on ethereum mainnet, not the marketplace network
	ensService := ens.New(viper.GetString("ens.rpcUrl"))

	httpTimeout := viper.GetDuration("http.timeout")
	publicGateway := viper.GetString("ipfs.publicGateway")

	// prefer a local ipfs node when configured, fall back to the gateway
	var ipfsReader domain.WebResourceReaderRepository
	if nodeApiUrl := viper.GetString("ipfs.nodeApiUrl"); nodeApiUrl != "" {
		ipfsReader = web_resource_repository.NewIpfsNodeApiReaderRepo(ipfsapi.NewShell(nodeApiUrl), httpTimeout)
	} else {
		ipfsReader = web_resource_repository.NewIpfsGatewayReaderRepo(http.Client{}, publicGateway, httpTimeout)
	}

	walletProvider := wallet_service.NewKeystoreProvider(context, &wallet_service.KeystoreProviderCfg{
		KeystoreDir:  viper.GetString("keystore.dir"),
		Passphrase:   viper.GetString("keystore.passphrase"),
		ChainService: chainService,
	})

	priceFormatter := pricefomatter.NewPriceFormatter(&pricefomatter.PriceFormatterCfg{
		Symbol: viper.GetString("currency.symbol"),
	})

	// construct repository, usecase and delivery
	hcRepo := hc_repo.New(chainService)
	listingRepo := listing_repository.NewListingRepo(frameMarket)
	balanceRepo := wallet_repository.NewBalanceRepo(chainService)
	receiptRepo := tx_repository.NewReceiptRepo(chainService)
	simulatorRepo := tx_repository.NewSimulatorRepo(chainService)

	hc := hc_usecase.New(hcRepo)
	metadata := metadata_usecase.NewMetadataUseCase(&metadata_usecase.MetadataUseCaseCfg{
		CacheTtl:      viper.GetDuration("metadata.cacheTtl"),
		TokenURI:      erc721Service,
		HttpReader:    web_resource_repository.NewHttpReaderRepo(http.Client{}, httpTimeout),
		IpfsReader:    ipfsReader,
		DataUriReader: web_resource_repository.NewDataUriReaderRepo(),
		PublicGateway: publicGateway,
	})
	walletSession := wallet_usecase.NewWalletUseCase(context, &wallet_usecase.WalletUseCaseCfg{
		Provider: walletProvider,
		Balance:  balanceRepo,
	})
	executor := tx_usecase.NewExecutor(&tx_usecase.ExecutorCfg{
		Session:     walletSession,
		Provider:    walletProvider,
		Sim:         simulatorRepo,
		Receipts:    receiptRepo,
		PollStart:   viper.GetDuration("tx.pollStart"),
		PollLimit:   viper.GetDuration("tx.pollLimit"),
		PollTimeout: viper.GetDuration("tx.pollTimeout"),
	})
	listingUseCase := listing_usecase.NewListingUseCase(&listing_usecase.ListingUseCaseCfg{
		Repo:             listingRepo,
		Metadata:         metadata,
		Ens:              ensService,
		PriceFormatter:   priceFormatter,
		BatchConcurrency: viper.GetInt("listing.batchConcurrency"),
	})
	marketUseCase := market_usecase.NewMarketUseCase(&market_usecase.MarketUseCaseCfg{
		Session:  walletSession,
		Executor: executor,
		Market:   frameMarket,
		Token:    erc721Service,
		Notifier: market_repository.NewLogNotifier(),
	})

	hc_delivery.New(e, hc)
	listing_delivery.New(e, listingUseCase)
	wallet_delivery.New(e, walletSession)
	market_delivery.New(e, marketUseCase, priceFormatter)

	go func() {
		if err := e.Start(viper.GetString("server.address")); err != nil && err != http.ErrServerClosed {
			log.Log().WithField("err", err).Error("shutting down the server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with a timeout of 10 seconds.
	// Use a buffered channel to avoid missing signals as recommended for signal.Notify
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	sig := <-quit
	log.Log().WithField("signal", sig).Info("received signal")

	walletSession.Teardown()

	ctx, cancel := ctx.WithTimeout(context, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Log().WithField("err", err).Error("shutting down the server")
	} else {
		log.Log().Info("shutdown server successfully")
	}
}
