package gin

import (
	"errors"
	"net/http"
	"strconv"
	"sync"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/klever-io/mx-gig-escrow-go/config"
	"github.com/klever-io/mx-gig-escrow-go/escrow"
	"github.com/klever-io/mx-gig-escrow-go/escrow/journal"
	"github.com/multiversx/mx-chain-core-go/core/check"
	"github.com/multiversx/mx-chain-go/api/shared"
	logger "github.com/multiversx/mx-chain-logger-go"
)

// DefaultRestInterfaceOff is the interface value which disables the REST API
const DefaultRestInterfaceOff = "off"

const defaultTransactionsListLimit = 100

var log = logger.GetOrCreate("escrow/api/gin")

// ArgsWebServerHandler is the argument DTO for the NewWebServerHandler function
type ArgsWebServerHandler struct {
	Facade           EscrowFacade
	Journal          TransactionsJournal
	Metrics          HTTPMetricsHandler
	Hub              ReceiptsHub
	Config           config.ApiConfig
	RestApiInterface string
}

type webServer struct {
	sync.RWMutex
	facade           EscrowFacade
	journal          TransactionsJournal
	metrics          HTTPMetricsHandler
	hub              ReceiptsHub
	config           config.ApiConfig
	restApiInterface string
	httpServer       *httpServer
}

// NewWebServerHandler returns a new instance of webServer
func NewWebServerHandler(args ArgsWebServerHandler) (*webServer, error) {
	err := checkArgsWebServerHandler(args)
	if err != nil {
		return nil, err
	}

	return &webServer{
		facade:           args.Facade,
		journal:          args.Journal,
		metrics:          args.Metrics,
		hub:              args.Hub,
		config:           args.Config,
		restApiInterface: args.RestApiInterface,
	}, nil
}

func checkArgsWebServerHandler(args ArgsWebServerHandler) error {
	if check.IfNil(args.Facade) {
		return ErrNilEscrowFacade
	}
	if check.IfNil(args.Journal) {
		return ErrNilTransactionsJournal
	}
	if check.IfNil(args.Metrics) {
		return ErrNilMetricsHandler
	}
	if check.IfNil(args.Hub) {
		return ErrNilReceiptsHub
	}
	if len(args.Config.ApiToken) == 0 {
		return ErrEmptyApiToken
	}
	if args.Config.RateLimitPerSecond > 0 && args.Config.RateLimitBurst < 1 {
		return ErrInvalidRateLimit
	}

	return nil
}

// StartHttpServer will create a new instance of http.Server and populate it with all the routes
func (ws *webServer) StartHttpServer() error {
	ws.Lock()
	defer ws.Unlock()

	if ws.restApiInterface == DefaultRestInterfaceOff {
		log.Debug("web server is turned off")
		return nil
	}

	gin.DefaultWriter = &ginWriter{}
	gin.DefaultErrorWriter = &ginErrorWriter{}
	gin.DisableConsoleColor()
	gin.SetMode(gin.ReleaseMode)

	engine, err := ws.createEngine()
	if err != nil {
		return err
	}

	server := &http.Server{Addr: ws.restApiInterface, Handler: engine}
	log.Debug("creating gin web sever", "interface", ws.restApiInterface)
	ws.httpServer, err = NewHttpServer(server)
	if err != nil {
		return err
	}

	log.Debug("starting web server")
	go ws.httpServer.Start()

	return nil
}

func (ws *webServer) createEngine() (*gin.Engine, error) {
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(cors.New(createCorsConfig(ws.config.CorsAllowedOrigins)))
	engine.Use(requestIDMiddleware())
	engine.Use(metricsMiddleware(ws.metrics))

	writeRoutes := engine.Group("/")
	writeRoutes.Use(apiTokenMiddleware(ws.config.ApiToken))
	writeRoutes.Use(jsonContentTypeMiddleware())
	if ws.config.RateLimitPerSecond > 0 {
		limiter, err := newClientRateLimiter(ws.config.RateLimitPerSecond, ws.config.RateLimitBurst)
		if err != nil {
			return nil, err
		}
		writeRoutes.Use(limiter.middleware())
	}

	writeRoutes.POST("/wallet/connect", ws.walletConnect)

	sellerRoutes := writeRoutes.Group("/seller")
	sellerRoutes.POST("/list", ws.sellerList)
	sellerRoutes.POST("/unlist", ws.sellerGigAction(escrow.ActionUnlist))
	sellerRoutes.POST("/deliver", ws.sellerGigAction(escrow.ActionDeliver))
	sellerRoutes.POST("/claim", ws.sellerGigAction(escrow.ActionClaim))

	buyerRoutes := writeRoutes.Group("/buyer")
	buyerRoutes.POST("/order", ws.buyerOrder)
	buyerRoutes.POST("/refund", ws.buyerGigAction(escrow.ActionRefund))
	buyerRoutes.POST("/dispute", ws.buyerGigAction(escrow.ActionDispute))
	buyerRoutes.POST("/accept", ws.buyerGigAction(escrow.ActionAccept))

	engine.GET("/transactions", ws.listTransactions)
	engine.GET("/transactions/:hash", ws.getTransaction)
	engine.GET("/ws/transactions", ws.hub.HandleWebSocket)
	if ws.config.MetricsEnabled {
		engine.GET("/metrics", gin.WrapH(ws.metrics.Handler()))
	}

	return engine, nil
}

func createCorsConfig(allowedOrigins []string) cors.Config {
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, requestIDHeader, apiTokenHeader)
	corsConfig.ExposeHeaders = []string{requestIDHeader}

	if len(allowedOrigins) == 0 {
		// same-origin requests never reach this function
		corsConfig.AllowOriginFunc = func(_ string) bool {
			return false
		}
		return corsConfig
	}
	if containsAllOrigins(allowedOrigins) {
		corsConfig.AllowAllOrigins = true
		return corsConfig
	}

	corsConfig.AllowOrigins = allowedOrigins

	return corsConfig
}

func containsAllOrigins(allowedOrigins []string) bool {
	for _, origin := range allowedOrigins {
		if origin == allOrigins {
			return true
		}
	}

	return false
}

func (ws *webServer) walletConnect(c *gin.Context) {
	result := ws.facade.Connect(c.Request.Context())

	response := connectResponse{
		Status:  string(result.Status),
		Address: result.Address,
	}
	if result.Err != nil {
		c.JSON(http.StatusServiceUnavailable, shared.GenericAPIResponse{
			Data:  response,
			Error: result.Err.Error(),
			Code:  shared.ReturnCodeInternalError,
		})
		return
	}

	c.JSON(http.StatusOK, shared.GenericAPIResponse{
		Data:  response,
		Error: "",
		Code:  shared.ReturnCodeSuccess,
	})
}

func (ws *webServer) sellerList(c *gin.Context) {
	request := &sellerListRequest{}
	err := c.ShouldBindJSON(request)
	if err != nil {
		respondBadRequest(c, err)
		return
	}

	gigID, err := escrow.ParseGigID(request.GigID.String())
	if err != nil {
		respondBadRequest(c, err)
		return
	}

	deadline, err := escrow.ParseDeadline(request.Deadline.String())
	if err != nil {
		respondBadRequest(c, err)
		return
	}

	receipt, err := ws.facade.SellerList(c.Request.Context(), request.Caller, gigID, deadline, request.Price.String())
	respondReceipt(c, receipt, err)
}

func (ws *webServer) sellerGigAction(action escrow.Action) gin.HandlerFunc {
	return func(c *gin.Context) {
		request := &gigRequest{}
		err := c.ShouldBindJSON(request)
		if err != nil {
			respondBadRequest(c, err)
			return
		}

		gigID, err := escrow.ParseGigID(request.GigID.String())
		if err != nil {
			respondBadRequest(c, err)
			return
		}

		var receipt *escrow.Receipt
		switch action {
		case escrow.ActionUnlist:
			receipt, err = ws.facade.SellerUnlist(c.Request.Context(), request.Caller, gigID)
		case escrow.ActionDeliver:
			receipt, err = ws.facade.SellerDeliver(c.Request.Context(), request.Caller, gigID)
		default:
			receipt, err = ws.facade.SellerClaim(c.Request.Context(), request.Caller, gigID)
		}

		respondReceipt(c, receipt, err)
	}
}

func (ws *webServer) buyerOrder(c *gin.Context) {
	request := &buyerOrderRequest{}
	err := c.ShouldBindJSON(request)
	if err != nil {
		respondBadRequest(c, err)
		return
	}

	gigID, err := escrow.ParseGigID(request.GigID.String())
	if err != nil {
		respondBadRequest(c, err)
		return
	}

	receipt, err := ws.facade.BuyerOrder(c.Request.Context(), request.Caller, gigID, request.Seller, request.Payment.String())
	respondReceipt(c, receipt, err)
}

func (ws *webServer) buyerGigAction(action escrow.Action) gin.HandlerFunc {
	return func(c *gin.Context) {
		request := &buyerRequest{}
		err := c.ShouldBindJSON(request)
		if err != nil {
			respondBadRequest(c, err)
			return
		}

		gigID, err := escrow.ParseGigID(request.GigID.String())
		if err != nil {
			respondBadRequest(c, err)
			return
		}

		var receipt *escrow.Receipt
		switch action {
		case escrow.ActionRefund:
			receipt, err = ws.facade.BuyerRefund(c.Request.Context(), request.Caller, gigID, request.Seller)
		case escrow.ActionDispute:
			receipt, err = ws.facade.BuyerDispute(c.Request.Context(), request.Caller, gigID, request.Seller)
		default:
			receipt, err = ws.facade.BuyerAccept(c.Request.Context(), request.Caller, gigID, request.Seller)
		}

		respondReceipt(c, receipt, err)
	}
}

func (ws *webServer) listTransactions(c *gin.Context) {
	limit := ws.config.TransactionsListLimit
	if limit <= 0 {
		limit = defaultTransactionsListLimit
	}

	limitParam := c.Query("limit")
	if len(limitParam) > 0 {
		requestedLimit, err := strconv.Atoi(limitParam)
		if err != nil || requestedLimit <= 0 {
			respondBadRequest(c, errors.New("invalid limit"))
			return
		}
		if requestedLimit < limit {
			limit = requestedLimit
		}
	}

	entries, err := ws.journal.List(limit)
	if err != nil {
		respondInternalError(c, err)
		return
	}

	c.JSON(http.StatusOK, shared.GenericAPIResponse{
		Data:  gin.H{"transactions": entries},
		Error: "",
		Code:  shared.ReturnCodeSuccess,
	})
}

func (ws *webServer) getTransaction(c *gin.Context) {
	entry, err := ws.journal.Get(c.Param("hash"))
	if errors.Is(err, journal.ErrEntryNotFound) {
		c.JSON(http.StatusNotFound, shared.GenericAPIResponse{
			Data:  nil,
			Error: err.Error(),
			Code:  shared.ReturnCodeRequestError,
		})
		return
	}
	if err != nil {
		respondInternalError(c, err)
		return
	}

	c.JSON(http.StatusOK, shared.GenericAPIResponse{
		Data:  gin.H{"transaction": entry},
		Error: "",
		Code:  shared.ReturnCodeSuccess,
	})
}

// respondReceipt maps the facade outcome: a receipt with an error means the transaction was sent
// but its execution could not be confirmed
func respondReceipt(c *gin.Context, receipt *escrow.Receipt, err error) {
	switch {
	case err == nil:
		c.JSON(http.StatusOK, shared.GenericAPIResponse{
			Data:  gin.H{"receipt": receipt},
			Error: "",
			Code:  shared.ReturnCodeSuccess,
		})
	case receipt != nil:
		c.JSON(http.StatusAccepted, shared.GenericAPIResponse{
			Data:  gin.H{"receipt": receipt},
			Error: err.Error(),
			Code:  shared.ReturnCodeInternalError,
		})
	case isRequestError(err):
		respondBadRequest(c, err)
	default:
		respondInternalError(c, err)
	}
}

func isRequestError(err error) bool {
	requestErrors := []error{
		escrow.ErrInvalidCallerAddress,
		escrow.ErrInvalidSellerAddress,
		escrow.ErrInvalidGigID,
		escrow.ErrInvalidDeadline,
		escrow.ErrInvalidAmount,
	}
	for _, requestErr := range requestErrors {
		if errors.Is(err, requestErr) {
			return true
		}
	}

	return false
}

func respondBadRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, shared.GenericAPIResponse{
		Data:  nil,
		Error: err.Error(),
		Code:  shared.ReturnCodeRequestError,
	})
}

func respondInternalError(c *gin.Context, err error) {
	log.Debug("request failed", "route", c.FullPath(), "error", err)
	c.JSON(http.StatusInternalServerError, shared.GenericAPIResponse{
		Data:  nil,
		Error: err.Error(),
		Code:  shared.ReturnCodeInternalError,
	})
}

// Close will handle the closing of inner components
func (ws *webServer) Close() error {
	ws.Lock()
	defer ws.Unlock()

	if ws.httpServer == nil {
		return nil
	}

	_ = ws.hub.Close()

	return ws.httpServer.Close()
}

// IsInterfaceNil returns true if there is no value under the interface
func (ws *webServer) IsInterfaceNil() bool {
	return ws == nil
}
