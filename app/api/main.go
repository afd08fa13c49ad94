package main

import (
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/google/uuid"
	ipfsapi "github.com/ipfs/go-ipfs-api"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/x-xyz/warplet/base/ctx"
	"github.com/x-xyz/warplet/base/database/redisclient"
	"github.com/x-xyz/warplet/base/env"
	"github.com/x-xyz/warplet/base/log"
	"github.com/x-xyz/warplet/base/metrics"
	bValidator "github.com/x-xyz/warplet/base/validator"
	"github.com/x-xyz/warplet/domain/chain"
	mmiddleware "github.com/x-xyz/warplet/middleware"
	"github.com/x-xyz/warplet/service/cache"
	"github.com/x-xyz/warplet/service/cache/provider"
	"github.com/x-xyz/warplet/service/cache/provider/compound"
	"github.com/x-xyz/warplet/service/cache/provider/primitive"
	redisProvider "github.com/x-xyz/warplet/service/cache/provider/redis"
	"github.com/x-xyz/warplet/service/ens"
	"github.com/x-xyz/warplet/service/moralis"
	"github.com/x-xyz/warplet/service/redis"
	"github.com/x-xyz/warplet/service/web3bio"
	hc_delivery "github.com/x-xyz/warplet/stores/healthcheck/delivery/http"
	hc_repo "github.com/x-xyz/warplet/stores/healthcheck/repository"
	hc_usecase "github.com/x-xyz/warplet/stores/healthcheck/usecase"
	holding_delivery "github.com/x-xyz/warplet/stores/holding/delivery/http"
	holding_repository "github.com/x-xyz/warplet/stores/holding/repository"
	holding_usecase "github.com/x-xyz/warplet/stores/holding/usecase"
	identity_delivery "github.com/x-xyz/warplet/stores/identity/delivery/http"
	identity_usecase "github.com/x-xyz/warplet/stores/identity/usecase"
	transfer_delivery "github.com/x-xyz/warplet/stores/transfer/delivery/http"
	transfer_usecase "github.com/x-xyz/warplet/stores/transfer/usecase"
	web_resource_repository "github.com/x-xyz/warplet/stores/web_resource/repository"
	web_resource_usecase "github.com/x-xyz/warplet/stores/web_resource/usecase"

	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/x-xyz/warplet/app/api/docs"
)

func init() {
	configFile := pflag.String("config", "infra/configs/config.yaml", "path to the yaml config")
	pflag.Parse()

	viper.SetConfigType("yaml")
	viper.SetConfigFile(*configFile)
	viper.SetEnvPrefix("warplet")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	setDefaults()
	err := viper.ReadInConfig()
	if err != nil {
		panic(err)
	}

	log.SetDebug(viper.GetBool(`debug`))
	if viper.GetBool(`debug`) {
		log.Log().Info("Service RUN on DEBUG mode")
	}
}

func setDefaults() {
	viper.SetDefault("server.address", ":8080")
	viper.SetDefault("http.timeout", 10*time.Second)
	viper.SetDefault("moralis.rateLimit", 20)
	viper.SetDefault("moralis.burst", 5)
	viper.SetDefault("moralis.retries", 2)
	viper.SetDefault("moralis.maxPages", 1)
	viper.SetDefault("ens.suffixes", []string{".eth"})
	viper.SetDefault("ipfs.gateway", web_resource_usecase.DefaultIpfsGateway)
	viper.SetDefault("arweave.gateway", web_resource_usecase.DefaultArweaveGateway)
	viper.SetDefault("cache.ttl", 2*time.Minute)
	viper.SetDefault("cache.sizeMB", 64)
	viper.SetDefault("enrich.workers", 5)
	viper.SetDefault("redis_cache.name", "warplet-cache")
	viper.SetDefault("redis_cache.poolMultiplier", 1)
}

//	@title			Warplet API
//	@version		1.0
//	@description	Wallet NFT aggregation across EVM chains.

// main
func main() {
	// init echo
	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{}))
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: func() string { return uuid.New().String() },
	}))
	middL := mmiddleware.InitMiddleware()
	e.Use(middL.ResponseLogger())
	e.Use(middL.AddContext())
	e.Use(middleware.CORS())
	e.Validator = bValidator.NewCustomValidator(bValidator.New())

	context := ctx.Background()
	httpTimeout := viper.GetDuration("http.timeout")

	// init Redis service, optional
	var redisCache redis.Service
	layers := []provider.Provider{
		primitive.NewPrimitive("warplet", viper.GetInt("cache.sizeMB")),
	}
	if redisCacheURI := viper.GetString("redis_cache.uri"); redisCacheURI != "" {
		context.Info("init redis cache")
		redisCacheName := viper.GetString("redis_cache.name")
		redisCachePwd := viper.GetString("redis_cache.password")
		redisCachePoolMultiplier := viper.GetFloat64("redis_cache.poolMultiplier")
		redisCachePool := redisclient.MustConnectRedis(redisCacheURI, redisCachePwd, redisclient.RedisParam{
			PoolMultiplier: redisCachePoolMultiplier,
			Retry:          true,
		})
		redisCache = redis.New(redisCacheName, metrics.New(redisCacheName), &redis.Pools{
			Src: redisCachePool,
		})
		layers = append(layers, redisProvider.NewRedis(redisCache))
	}
	responseCache := cache.New(cache.ServiceConfig{
		Ttl:   viper.GetDuration("cache.ttl"),
		Pfx:   "warplet",
		Cache: compound.NewCompound(layers),
	})

	// web resources
	ipfsGateway := viper.GetString("ipfs.gateway")
	arweaveGateway := viper.GetString("arweave.gateway")
	ipfsReader := web_resource_repository.NewIpfsGatewayReaderRepo(http.Client{}, ipfsGateway, httpTimeout)
	if nodeApi := viper.GetString("ipfs.nodeApi"); nodeApi != "" {
		context.WithField("nodeApi", nodeApi).Info("reading ipfs through node api")
		ipfsReader = web_resource_repository.NewIpfsNodeApiReaderRepo(ipfsapi.NewShell(nodeApi), httpTimeout)
	}
	webResource := web_resource_usecase.NewWebResourceUseCase(&web_resource_usecase.WebResourceUseCaseCfg{
		HttpReader:     web_resource_repository.NewHttpReaderRepo(http.Client{}, httpTimeout, nil),
		IpfsReader:     ipfsReader,
		DataUriReader:  web_resource_repository.NewDataUriReaderRepo(),
		ArUriReader:    web_resource_repository.NewArReaderRepo(http.Client{}, arweaveGateway, httpTimeout, nil),
		IpfsGateway:    ipfsGateway,
		ArweaveGateway: arweaveGateway,
	})

	// providers
	moralisClient := moralis.NewClient(&moralis.ClientCfg{
		HttpClient: http.Client{},
		Timeout:    httpTimeout,
		Apikey:     viper.GetString("moralis.apiKey"),
		BaseUrl:    viper.GetString("moralis.baseUrl"),
		RateLimit:  viper.GetFloat64("moralis.rateLimit"),
		Burst:      viper.GetInt("moralis.burst"),
		Retries:    viper.GetInt("moralis.retries"),
	})
	profileClient := web3bio.NewClient(&web3bio.ClientCfg{
		HttpClient: http.Client{},
		Timeout:    httpTimeout,
		BaseUrl:    viper.GetString("profile.baseUrl"),
	})
	ensService, err := ens.New(viper.GetString("ens.rpcUrl"), httpTimeout)
	if err != nil {
		context.WithField("err", err).Panic("ens.New failed")
	}

	// construct repository, usecase and delivery
	hcRepo := hc_repo.New(redisCache)
	indexerRepo := holding_repository.NewMoralisRepo(&holding_repository.Cfg{
		Client:      moralisClient,
		WebResource: webResource,
		MaxPages:    viper.GetInt("moralis.maxPages"),
	})

	hc := hc_usecase.New(hcRepo)
	holding := holding_usecase.New(&holding_usecase.Cfg{
		Indexer:       indexerRepo,
		WebResource:   webResource,
		Cache:         responseCache,
		EnrichWorkers: viper.GetInt("enrich.workers"),
	})
	resolver := identity_usecase.New(&identity_usecase.Cfg{
		NameService:  ensService,
		ProfileRepo:  profileClient,
		NameSuffixes: viper.GetStringSlice("ens.suffixes"),
	})
	transfer := transfer_usecase.New(&transfer_usecase.Cfg{
		Resolver: resolver,
		Runtime:  env.Runtime(),
	})

	supported := chain.NormalizeList(viper.GetStringSlice("chains.supported"))

	hc_delivery.New(e, hc)
	identity_delivery.New(e, resolver)
	holding_delivery.New(e, holding, supported)
	transfer_delivery.New(e, transfer)

	e.GET("/swagger/*", echoSwagger.WrapHandler)

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
	ctx, cancel := ctx.WithTimeout(context, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Log().WithField("err", err).Error("shutting down the server")
	} else {
		log.Log().Info("shutdown server successfully")
	}
	_ = log.Sync()
}
