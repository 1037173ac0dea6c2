package api

import (
	"bytes"
	"database/sql"
	"fmt"
	"io"
	"time"

	"tradejournal/internal/db/models/postgres/public/model"
	"tradejournal/internal/logger"
	"tradejournal/internal/repository"
	"tradejournal/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ApiHandler struct {
	Db                       *sql.DB
	JwtDecodeToken           string
	UserAccountRepository    repository.UserAccountRepository
	TradingAccountRepository repository.TradingAccountRepository
	TradeRepository          repository.TradeRepository
	ApiRequestRepository     repository.ApiRequestRepository
	PerformanceService       service.PerformanceService
	MetricsService           service.MetricsService
	ImportService            service.ImportService
	SyncService              service.SyncService
	TradeFilterService       service.TradeFilterService
}

func int64Ptr(i int64) *int64 {
	return &i
}
func int32Ptr(i int32) *int32 {
	return &i
}
func strPtr(s string) *string {
	return &s
}

func (m ApiHandler) Router() *gin.Engine {
	router := gin.Default()
	router.Use(cors.Default())
	router.Use(m.logRequestMiddleware)

	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(200, map[string]string{"message": "welcome to tradejournal"})
	})

	authorized := router.Group("/", m.authMiddleware)
	authorized.POST("/accounts", m.createAccount)
	authorized.GET("/accounts", m.listAccounts)
	authorized.DELETE("/accounts/:accountID", m.deleteAccount)

	authorized.POST("/accounts/:accountID/trades", m.createTrade)
	authorized.GET("/accounts/:accountID/trades", m.listTrades)
	authorized.DELETE("/accounts/:accountID/trades/:tradeID", m.deleteTrade)
	authorized.POST("/accounts/:accountID/trades/filter", m.filterTrades)
	authorized.POST("/accounts/:accountID/trades/import", m.importTrades)
	authorized.POST("/accounts/:accountID/sync", m.syncTrades)

	authorized.GET("/accounts/:accountID/metrics", m.getAccountMetrics)
	authorized.POST("/accounts/:accountID/metrics/recompute", m.recomputeAccountMetrics)
	authorized.GET("/accounts/:accountID/dailyPerformance", m.accountDailyPerformance)
	authorized.GET("/accounts/:accountID/openAssets", m.accountOpenAssets)
	authorized.GET("/accounts/:accountID/returnStats", m.accountReturnStats)
	authorized.GET("/accounts/:accountID/performanceReview", m.performanceReview)

	authorized.GET("/user/dailyPerformance", m.userDailyPerformance)
	authorized.GET("/user/openAssets", m.userOpenAssets)

	return router
}

func (m ApiHandler) StartApi(port int) error {
	return m.Router().Run(fmt.Sprintf(":%d", port))
}

func returnErrorJson(err error, c *gin.Context) {
	returnErrorJsonCode(err, c, 500)
}

func returnErrorJsonCode(err error, c *gin.Context, code int) {
	zap.S().Error(err.Error())
	c.AbortWithStatusJSON(code, gin.H{
		"error": err.Error(),
	})
}

// userAccountID returns the authenticated user's account id, set by
// authMiddleware.
func userAccountID(c *gin.Context) (uuid.UUID, error) {
	ginUserAccountID, ok := c.Get("userAccountID")
	if !ok {
		return uuid.Nil, fmt.Errorf("must be logged in")
	}
	userAccountIDStr, ok := ginUserAccountID.(string)
	if !ok {
		return uuid.Nil, fmt.Errorf("misformatted user account id")
	}

	return uuid.Parse(userAccountIDStr)
}

// ownedAccount resolves the :accountID route param and verifies the
// account belongs to the authenticated user. Someone else's account id
// gets a 404 rather than a 403 so ids are not probeable.
func (m ApiHandler) ownedAccount(c *gin.Context) (*model.TradingAccount, error) {
	userID, err := userAccountID(c)
	if err != nil {
		return nil, err
	}

	accountID, err := uuid.Parse(c.Param("accountID"))
	if err != nil {
		return nil, fmt.Errorf("invalid account id: %w", err)
	}

	account, err := m.TradingAccountRepository.Get(accountID)
	if err != nil {
		return nil, fmt.Errorf("account not found")
	}
	if account.UserAccountID != userID {
		return nil, fmt.Errorf("account not found")
	}

	return account, nil
}

type responseBodyWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (r responseBodyWriter) Write(b []byte) (int, error) {
	r.body.Write(b)
	return r.ResponseWriter.Write(b)
}

func (m ApiHandler) logRequestMiddleware(ctx *gin.Context) {
	log := logger.FromContext(ctx.Request.Context())

	w := &responseBodyWriter{body: &bytes.Buffer{}, ResponseWriter: ctx.Writer}
	ctx.Writer = w

	body, err := ctx.GetRawData()
	if err != nil {
		log.Warnf("failed to get raw request data: %v", err)
	}
	ctx.Request.Body = io.NopCloser(bytes.NewReader(body))

	start := time.Now().UTC()
	req, err := m.ApiRequestRepository.Add(m.Db, model.APIRequest{
		IPAddress:   strPtr(ctx.ClientIP()),
		Method:      ctx.Request.Method,
		Route:       ctx.Request.URL.Path,
		RequestBody: strPtr(string(body)),
		StartTs:     start,
	})
	if err != nil {
		log.Warnf("failed to record api request: %v", err)
	}

	ctx.Next()

	if req != nil {
		req.DurationMs = int64Ptr(time.Since(start).Milliseconds())
		req.StatusCode = int32Ptr(int32(ctx.Writer.Status()))
		req.ResponseBody = strPtr(w.body.String())

		err = m.ApiRequestRepository.Update(m.Db, *req)
		if err != nil {
			log.Warnf("failed to update api request record: %v", err)
		}
	}
}
