package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/ayushbenny/shopping-cart/api/middleware"
	v1 "github.com/ayushbenny/shopping-cart/api/v1"
	"github.com/ayushbenny/shopping-cart/config"
	"github.com/ayushbenny/shopping-cart/internal/dao"
	"github.com/ayushbenny/shopping-cart/internal/dao/mysql"
	"github.com/ayushbenny/shopping-cart/internal/dao/redis"
	"github.com/ayushbenny/shopping-cart/internal/model"
	"github.com/ayushbenny/shopping-cart/internal/service"
	"github.com/ayushbenny/shopping-cart/pkg/app"
	"github.com/ayushbenny/shopping-cart/pkg/logger"
	"github.com/ayushbenny/shopping-cart/pkg/utils"
	"github.com/gin-gonic/gin"
)

func main() {
	// 加载配置
	cfg := app.BootstrapApp()

	// 设置Gin模式
	switch cfg.Server.Mode {
	case "release":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.DebugMode)
	}

	// 初始化MySQL
	db, err := mysql.InitDB(&cfg.Database.Mysql)
	if err != nil {
		logger.Error("初始化MySQL失败", "error", err)
		return
	}
	// 自动建表
	if err := db.AutoMigrate(
		&model.User{},
		&model.Product{},
		&model.Order{},
		&model.OrderItem{},
		&model.Payment{},
	); err != nil {
		logger.Error("自动建表失败", "error", err)
		return
	}

	// 初始化Redis（商品缓存，失败时降级为直查数据库）
	rdb, err := redis.InitRedis(&cfg.Database.Redis)
	if err != nil {
		logger.Warn("初始化Redis失败，商品缓存不可用", "error", err)
		rdb = nil
	}

	// JWT 工具
	jwtUtil := utils.NewJWTUtil(cfg.JWT.Secret, cfg.JWT.ExpireHours, cfg.JWT.RefreshExpireHours)

	// 组装 dao / service / handler
	authDao := dao.NewAuthDao(db)
	userDao := dao.NewUserDao(db)
	productDao := dao.NewProductDao(db, rdb, cfg.Database.Redis.ProductCacheTTL)
	orderDao := dao.NewOrderDao(db)
	paymentDao := dao.NewPaymentDao(db)

	authService := service.NewAuthService(authDao, jwtUtil)
	userService := service.NewUserService(userDao)
	productService := service.NewProductService(productDao)
	orderService := service.NewOrderService(orderDao)
	paymentService := service.NewPaymentService(orderDao, paymentDao)

	authHandler := v1.NewAuthHandler(authService)
	userHandler := v1.NewUserHandler(userService)
	productHandler := v1.NewProductHandler(productService)
	orderHandler := v1.NewOrderHandler(orderService)
	paymentHandler := v1.NewPaymentHandler(paymentService)

	// 初始化Gin引擎
	r := gin.Default()

	// 全局限流中间件
	r.Use(middleware.GlobalRateLimit(cfg))

	// 健康检查接口
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "shopping-cart server is running",
		})
	})

	// 定义API路由组
	api := r.Group("/api/v1")
	{
		// 注册认证路由与商品浏览（无需认证）
		authHandler.RegisterRoutes(api)
		productHandler.RegisterPublicRoutes(api)

		// 受保护的路由组（需要JWT认证）
		protected := api.Group("")
		protected.Use(middleware.JWTAuthMiddleware(jwtUtil))
		{
			userHandler.RegisterRoutes(protected)
			productHandler.RegisterProtectedRoutes(protected)
		}

		// 订单路由（需要JWT认证 + 更严格的限流）
		orders := api.Group("/orders")
		orders.Use(middleware.JWTAuthMiddleware(jwtUtil))
		orders.Use(middleware.OrderRateLimit(cfg))
		{
			orderHandler.RegisterRoutes(orders)
		}

		// 支付路由（需要JWT认证 + 更严格的限流）
		payments := api.Group("/payments")
		payments.Use(middleware.JWTAuthMiddleware(jwtUtil))
		payments.Use(middleware.PaymentRateLimit(cfg))
		{
			paymentHandler.RegisterRoutes(payments)
		}
	}

	// 启动服务器
	serverAddr := fmt.Sprintf(":%d", cfg.Server.Port)
	srv := newServer(serverAddr, r, cfg)
	logger.Info("shopping-cart server starting on " + serverAddr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("服务启动失败", "error", err)
	}
}

func newServer(addr string, handler http.Handler, cfg *config.Config) *http.Server {
	return &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}
}
