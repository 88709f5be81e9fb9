package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/beka-birhanu/vinom-maze/api"
	gameapi "github.com/beka-birhanu/vinom-maze/api/game"
	api_i "github.com/beka-birhanu/vinom-maze/api/i"
	"github.com/beka-birhanu/vinom-maze/api/identity"
	mazeapi "github.com/beka-birhanu/vinom-maze/api/maze"
	"github.com/beka-birhanu/vinom-maze/config"
	"github.com/beka-birhanu/vinom-maze/infrastruture/cache"
	"github.com/beka-birhanu/vinom-maze/infrastruture/leaderboard"
	logger "github.com/beka-birhanu/vinom-maze/infrastruture/log"
	"github.com/beka-birhanu/vinom-maze/infrastruture/repo"
	"github.com/beka-birhanu/vinom-maze/infrastruture/token"
	"github.com/beka-birhanu/vinom-maze/service"
	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Global variables for dependencies
var (
	mongoClient        *mongo.Client
	redisClient        *redis.Client
	userRepo           *repo.UserRepo
	mazeRepo           i.MazeRepo
	mazeCache          i.MazeCache
	scoreBoard         i.Leaderboard
	mazeService        i.MazeProvider
	gameSessionManager *service.GameSessionManager
	jwtTokenizer       i.Tokenizer
	authService        i.Authenticator
	authController     api_i.Controller
	mazeController     api_i.Controller
	gameController     api_i.Controller
	router             *api.Router
	appLogger          i.Logger
)

func fatal(msg string, err error) {
	appLogger.Error(fmt.Sprintf("%s: %v", msg, err))
	os.Exit(1)
}

func newLogger(name, color string) i.Logger {
	l, err := logger.New(name, color, os.Stdout)
	if err != nil {
		fatal("Creating "+name+" logger", err)
	}
	return l
}

func initMongo(ctx context.Context) {
	uri := fmt.Sprintf("mongodb://%s:%s@%s:%v", config.Envs.DBUser, config.Envs.DBPassword, config.Envs.DBHost, config.Envs.DBPort)

	clientOptions := options.Client().ApplyURI(uri)
	var err error
	mongoClient, err = mongo.Connect(ctx, clientOptions)
	if err != nil {
		fatal("Failed to connect to MongoDB", err)
	}
	if err = mongoClient.Ping(ctx, nil); err != nil {
		fatal("MongoDB ping failed", err)
	}
	appLogger.Info("Connected to MongoDB")
}

func initRedis(ctx context.Context) {
	redisClient = redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", config.Envs.RedisHost, config.Envs.RedisPort),
		Password: config.Envs.RedisPassword,
	})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		fatal("Redis ping failed", err)
	}
	appLogger.Info("Connected to Redis")
}

func initRepos(ctx context.Context) {
	userRepo = repo.NewUserRepo(mongoClient, config.Envs.DBName, "users")
	if err := userRepo.EnsureIndexes(ctx); err != nil {
		fatal("Creating user indexes", err)
	}
	mazeRepo = repo.NewMazeRepo(mongoClient, config.Envs.DBName, "mazes")
	appLogger.Info("Repositories initialized")
}

func initRedisStores() {
	var err error
	mazeCache, err = cache.NewRedisMazeCache(redisClient, config.Envs.CacheTTLSeconds, newLogger("MAZE-CACHE", config.ColorBlue))
	if err != nil {
		fatal("Creating maze cache", err)
	}

	scoreBoard, err = leaderboard.NewRedisLeaderboard(redisClient, "")
	if err != nil {
		fatal("Creating leaderboard", err)
	}
	appLogger.Info("Maze cache and leaderboard initialized")
}

func initMazeService() {
	var err error
	mazeService, err = service.NewMazeService(service.MazeServiceConfig{
		Repo:         mazeRepo,
		Cache:        mazeCache,
		Logger:       newLogger("MAZE", config.ColorMagenta),
		MaxDimension: config.Envs.MazeMaxDimension,
	})
	if err != nil {
		fatal("Creating maze service", err)
	}
	appLogger.Info("Maze service initialized")
}

func initSessionManager() {
	var err error
	gameSessionManager, err = service.NewGameSessionManager(&service.Config{
		Mazes:        mazeService,
		Leaderboard:  scoreBoard,
		UserRepo:     userRepo,
		Logger:       newLogger("SESSION-MANAGER", config.ColorCyan),
		GameDuration: time.Duration(config.Envs.GameDurationSeconds) * time.Second,
	})
	if err != nil {
		fatal("Creating game session manager", err)
	}
	appLogger.Info("Session manager initialized")
}

func initJWTTokenizer() {
	jwtTokenizer = token.NewJwtService(config.Envs.JWTSecret, config.Envs.JWTIssuer)
	appLogger.Info("JWT Tokenizer initialized")
}

func initAuthService() {
	var err error
	authService, err = service.NewAuthService(userRepo, jwtTokenizer)
	if err != nil {
		fatal("Creating auth service", err)
	}
	appLogger.Info("Auth service initialized")
}

func initControllers() {
	authController = identity.NewIdentityServer(authService)

	var err error
	mazeController, err = mazeapi.NewController(mazeapi.Config{
		Mazes:       mazeService,
		Leaderboard: scoreBoard,
		DefaultRows: config.Envs.MazeRows,
		DefaultCols: config.Envs.MazeCols,
	})
	if err != nil {
		fatal("Creating maze controller", err)
	}

	gameController, err = gameapi.NewGameController(gameSessionManager, config.Envs.MazeRows, config.Envs.MazeCols)
	if err != nil {
		fatal("Creating game controller", err)
	}
	appLogger.Info("Controllers initialized")
}

func initRouter(t i.Tokenizer) {
	router = api.NewRouter(api.Config{
		Addr:                    fmt.Sprintf("%s:%v", config.Envs.HostIP, config.Envs.RESTPort),
		BaseURL:                 "/api",
		Controllers:             []api_i.Controller{authController, mazeController, gameController},
		AuthorizationMiddleware: identity.Authoriz(t),
	})
	appLogger.Info("Router initialized")
}

func main() {
	appLogger = newLogger("APP", config.ColorGreen)
	config.Load()
	gin.SetMode(config.Envs.GinMode)

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	initMongo(ctx)
	defer func() {
		_ = mongoClient.Disconnect(context.Background())
	}()

	initRedis(ctx)
	defer redisClient.Close()

	initRepos(ctx)
	initRedisStores()
	initMazeService()
	initSessionManager()
	defer gameSessionManager.StopAll()

	initJWTTokenizer()
	initAuthService()
	initControllers()
	initRouter(jwtTokenizer)

	server := router.Server()
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			fatal("Starting server", err)
		}
	}()
	appLogger.Info(fmt.Sprintf("Listening on %s", server.Addr))

	stop, release := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer release()
	<-stop.Done()

	appLogger.Info("Shutting down")
	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()
	if err := server.Shutdown(shutdownCtx); err != nil {
		appLogger.Error(fmt.Sprintf("Shutting down server: %v", err))
	}
}
