package handler

import (
	"net/http"
	"time"

	"mf-api/internal/api/dto"
	"mf-api/internal/api/middleware"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// NewRouter registers every route behind the shared middleware chain.
func NewRouter(hd *Handler, log logrus.FieldLogger, requestTimeout time.Duration) *gin.Engine {
	r := gin.New()
	// Handlers pass *gin.Context on as a context.Context; let it carry the
	// request deadline and values.
	r.ContextWithFallback = true

	r.Use(
		middleware.RequestID(),
		middleware.Logger(log),
		gin.CustomRecovery(func(c *gin.Context, recovered any) {
			c.AbortWithStatusJSON(http.StatusInternalServerError, dto.Failure("internal server error"))
		}),
		middleware.CORS(hd.corsOrigins),
		middleware.Error(),
		middleware.Timeout(requestTimeout),
	)

	r.GET("/", hd.Root)
	r.GET("/health", hd.Health)
	r.GET("/ready", hd.Ready)

	r.GET("/getAllFunds", hd.GetAllFunds)
	r.GET("/getFundInfo", hd.GetFundInfo)
	r.GET("/getAllStocks", hd.GetAllStocks)
	r.GET("/getStockInfo", hd.GetStockInfo)
	r.GET("/getStockTimeline", hd.GetStockTimeline)

	api := r.Group("/api")
	{
		users := api.Group("/users")
		users.POST("", hd.CreateUser)
		users.GET("", hd.GetUserByEmail)
		users.GET("/all", hd.ListUsers)
		users.GET("/:id", hd.GetUser)
		users.PUT("/:id", hd.UpdateUser)
		users.DELETE("/:id", hd.DeleteUser)

		favorites := api.Group("/favorites")
		favorites.GET("", hd.GetFavorites)
		favorites.POST("", hd.AddFavorite)
		favorites.POST("/rpc/add", hd.AddFavorite)
		favorites.POST("/rpc/remove", hd.RemoveFavoriteRPC)
		favorites.DELETE("/:item_id", hd.RemoveFavorite)
		favorites.GET("/stocks", hd.GetFavoriteStocks)
		favorites.GET("/funds", hd.GetFavoriteFunds)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, dto.Failure("Not found"))
	})

	return r
}
